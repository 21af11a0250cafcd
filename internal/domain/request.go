package domain

import (
	"errors"
	"strings"
	"time"
)

// Status is the shared request lifecycle state. Values are always stored
// uppercase; ParseStatus is the only way to obtain one from client input.
type Status string

const (
	StatusInit      Status = "INIT"
	StatusProc      Status = "PROC"
	StatusCancelled Status = "CANC"
	StatusRejected  Status = "REJC"
	StatusCompleted Status = "COMP"
)

var ErrUnknownStatus = errors.New("unknown request status")

// ParseStatus normalizes case-insensitive input to one of the five codes.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusInit, StatusProc, StatusCancelled, StatusRejected, StatusCompleted:
		return s, nil
	}
	return "", ErrUnknownStatus
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusCancelled, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Mutable reports whether request fields may still be edited in s.
func (s Status) Mutable() bool {
	return s == StatusInit || s == StatusProc
}

// CanTransitionTo implements the status machine:
// INIT -> PROC/CANC/REJC/COMP, PROC -> CANC/REJC/COMP, terminal -> nothing.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Terminal() || next == s {
		return false
	}
	if next == StatusInit {
		return false
	}
	return true
}

// CostumeLine is one priced costume selection inside a kindergarten request:
// the costume itself, the ordered paper size and any per-line additions.
type CostumeLine struct {
	CostumeID int64   `json:"costume_id" validate:"required"`
	SizeID    int64   `json:"size_id" validate:"required"`
	Additions []int64 `json:"additions,omitempty"`
}

type KindergartenRequest struct {
	ID                  int64         `json:"id"`
	RequestID           string        `json:"request_id" gorm:"uniqueIndex"`
	UserID              int64         `json:"user_id"`
	KindergartenID      int64         `json:"kindergarten_id" validate:"required"`
	KindergartenClassID int64         `json:"kindergarten_class_id" validate:"required"`
	ChildName           string        `json:"child_name" validate:"required"`
	Costumes            []CostumeLine `json:"costumes" gorm:"serializer:json" validate:"required,min=1"`
	FriendName          string        `json:"friend_name,omitempty"`
	Remarks             string        `json:"remarks,omitempty"`
	Additions           []int64       `json:"additions,omitempty" gorm:"serializer:json"`
	AdditionalFees      float64       `json:"additional_fees"`
	NetPrice            float64       `json:"net_price"`
	Status              Status        `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type ServiceRequest struct {
	ID             int64     `json:"id"`
	RequestID      string    `json:"request_id" gorm:"uniqueIndex"`
	UserID         int64     `json:"user_id"`
	ClientName     string    `json:"client_name,omitempty"`
	TypeID         int64     `json:"type_id" validate:"required"`
	ThemeID        *int64    `json:"theme_id,omitempty"`
	PackageID      int64     `json:"package_id" validate:"required"`
	Appointment    string    `json:"appointment,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
	Additions      []int64   `json:"additions,omitempty" gorm:"serializer:json"`
	AdditionalFees float64   `json:"additional_fees"`
	NetPrice       float64   `json:"net_price"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
