package appstatus

import (
	"context"
	"errors"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

var ErrValidation = errors.New("unknown app status")

type ConfigRepository interface {
	Get(ctx context.Context) (*domain.AppConfig, error)
	Set(ctx context.Context, status domain.AppStatus) (*domain.AppConfig, error)
}

type Service struct {
	configs ConfigRepository
	hub     *Hub
}

func NewService(configs ConfigRepository, hub *Hub) *Service {
	return &Service{configs: configs, hub: hub}
}

// Get returns the current app status. A missing config row reads as
// maintenance, never as an error: a half-provisioned deployment should hold
// clients at the door rather than let them in.
func (s *Service) Get(ctx context.Context) (domain.AppStatus, error) {
	cfg, err := s.configs.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AppMaintenance, nil
	}
	if err != nil {
		return "", err
	}
	return cfg.Status, nil
}

// Update normalizes and persists the status, then broadcasts the change to
// every websocket subscriber.
func (s *Service) Update(ctx context.Context, raw string) (domain.AppStatus, error) {
	status, err := domain.ParseAppStatus(raw)
	if err != nil {
		return "", ErrValidation
	}

	cfg, err := s.configs.Set(ctx, status)
	if err != nil {
		return "", err
	}

	if s.hub != nil {
		s.hub.Broadcast(StatusEvent{Event: "app_status", Status: cfg.Status})
	}
	return cfg.Status, nil
}

// StatusEvent is the wire shape pushed over the websocket.
type StatusEvent struct {
	Event  string           `json:"event"`
	Status domain.AppStatus `json:"status"`
}
