package order

import (
	"context"
	"errors"
	"sort"
	"time"

	"photoorders/internal/domain"
)

var ErrValidation = errors.New("invalid order query")

// Order is the merged client-facing view over both request families.
type Order struct {
	RequestID string        `json:"request_id"`
	Type      string        `json:"type"`
	Status    domain.Status `json:"status"`
	NetPrice  float64       `json:"net_price"`
	CreatedAt time.Time     `json:"created_at"`
	Details   any           `json:"details"`
}

const (
	TypeKindergarten = "kindergarten"
	TypeService      = "service"
)

type OrderSource interface {
	OrderRequestIDs(ctx context.Context, userID int64) ([]string, error)
}

type KindergartenRequestFinder interface {
	FindByRequestIDs(ctx context.Context, requestIDs []string, status domain.Status) ([]domain.KindergartenRequest, error)
}

type ServiceRequestFinder interface {
	FindByRequestIDs(ctx context.Context, requestIDs []string, status domain.Status) ([]domain.ServiceRequest, error)
}

type Service struct {
	orders OrderSource
	kReqs  KindergartenRequestFinder
	sReqs  ServiceRequestFinder
}

func NewService(orders OrderSource, kReqs KindergartenRequestFinder, sReqs ServiceRequestFinder) *Service {
	return &Service{orders: orders, kReqs: kReqs, sReqs: sReqs}
}

// List returns the user's orders across both request families, newest first,
// windowed by skip/limit after the merge.
func (s *Service) List(ctx context.Context, userID int64, rawStatus string, skip, limit int) ([]Order, error) {
	status, err := optionalStatus(rawStatus)
	if err != nil {
		return nil, ErrValidation
	}

	merged, err := s.fetch(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	if skip < 0 {
		skip = 0
	}
	if skip >= len(merged) {
		return []Order{}, nil
	}
	merged = merged[skip:]
	if limit > 0 && limit < len(merged) {
		merged = merged[:limit]
	}
	return merged, nil
}

// Count returns the combined number of orders across both families.
func (s *Service) Count(ctx context.Context, userID int64, rawStatus string) (int, error) {
	status, err := optionalStatus(rawStatus)
	if err != nil {
		return 0, ErrValidation
	}
	merged, err := s.fetch(ctx, userID, status)
	if err != nil {
		return 0, err
	}
	return len(merged), nil
}

func (s *Service) fetch(ctx context.Context, userID int64, status domain.Status) ([]Order, error) {
	requestIDs, err := s.orders.OrderRequestIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(requestIDs) == 0 {
		return []Order{}, nil
	}

	kReqs, err := s.kReqs.FindByRequestIDs(ctx, requestIDs, status)
	if err != nil {
		return nil, err
	}
	sReqs, err := s.sReqs.FindByRequestIDs(ctx, requestIDs, status)
	if err != nil {
		return nil, err
	}

	merged := make([]Order, 0, len(kReqs)+len(sReqs))
	for i := range kReqs {
		r := &kReqs[i]
		merged = append(merged, Order{
			RequestID: r.RequestID,
			Type:      TypeKindergarten,
			Status:    r.Status,
			NetPrice:  r.NetPrice,
			CreatedAt: r.CreatedAt,
			Details:   r,
		})
	}
	for i := range sReqs {
		r := &sReqs[i]
		merged = append(merged, Order{
			RequestID: r.RequestID,
			Type:      TypeService,
			Status:    r.Status,
			NetPrice:  r.NetPrice,
			CreatedAt: r.CreatedAt,
			Details:   r,
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

func optionalStatus(raw string) (domain.Status, error) {
	if raw == "" {
		return "", nil
	}
	return domain.ParseStatus(raw)
}
