package domain

import (
	"errors"
	"strings"
)

// AppStatus gates the whole client application (live, maintenance, coming
// soon, down). Stored uppercase, single row.
type AppStatus string

const (
	AppLive        AppStatus = "LIVE"
	AppMaintenance AppStatus = "MAINT"
	AppComingSoon  AppStatus = "COMING"
	AppDown        AppStatus = "DOWN"
)

var ErrUnknownAppStatus = errors.New("unknown app status")

func ParseAppStatus(raw string) (AppStatus, error) {
	s := AppStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case AppLive, AppMaintenance, AppComingSoon, AppDown:
		return s, nil
	}
	return "", ErrUnknownAppStatus
}

type AppConfig struct {
	ID     int64     `json:"id"`
	Status AppStatus `json:"status"`
}
