package request

import (
	"context"
	"errors"

	"photoorders/internal/domain"
	"photoorders/internal/modules/pricing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const codeRetries = 3

// Actor identifies who is performing an operation. Admins may act on any
// request; clients only on their own.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

func (a Actor) Admin() bool { return a.Role == domain.RoleAdmin }

// Pricer validates a draft's catalog references and computes its net price.
type Pricer interface {
	ValidateAndPriceKindergarten(ctx context.Context, draft *domain.KindergartenRequest) (float64, *pricing.ResolvedKindergarten, error)
	ValidateAndPriceService(ctx context.Context, draft *domain.ServiceRequest) (float64, *pricing.ResolvedService, error)
}

type Service struct {
	kReqs  KindergartenRequestRepository
	sReqs  ServiceRequestRepository
	pricer Pricer
	orders OrderTracker
}

func NewService(
	kReqs KindergartenRequestRepository,
	sReqs ServiceRequestRepository,
	pricer Pricer,
	orders OrderTracker,
) *Service {
	return &Service{
		kReqs:  kReqs,
		sReqs:  sReqs,
		pricer: pricer,
		orders: orders,
	}
}

/* ---------- kindergarten requests ---------- */

func (s *Service) CreateKindergarten(ctx context.Context, actor Actor, draft *domain.KindergartenRequest) (*domain.KindergartenRequest, error) {
	draft.UserID = actor.UserID
	draft.Status = domain.StatusInit

	net, _, err := s.pricer.ValidateAndPriceKindergarten(ctx, draft)
	if err != nil {
		return nil, err
	}
	draft.NetPrice = net

	if err := s.createWithCode(ctx, draft, nil); err != nil {
		return nil, err
	}

	// Best-effort order tracking; the request itself is already committed.
	if err := s.orders.AppendOrder(ctx, actor.UserID, draft.RequestID); err != nil {
		logrus.WithError(err).WithField("request_id", draft.RequestID).
			Warn("failed to append request to user orders")
	}

	return draft, nil
}

func (s *Service) GetKindergarten(ctx context.Context, actor Actor, id int64) (*domain.KindergartenRequest, error) {
	req, err := s.kReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.Admin() && req.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return req, nil
}

func (s *Service) ListKindergarten(ctx context.Context, actor Actor, rawStatus string, skip, limit int) ([]domain.KindergartenRequest, error) {
	status, err := optionalStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	scope := actor.UserID
	if actor.Admin() {
		scope = 0
	}
	return s.kReqs.List(ctx, scope, status, skip, limit)
}

func (s *Service) CountKindergarten(ctx context.Context, rawStatus string) (int64, error) {
	status, err := optionalStatus(rawStatus)
	if err != nil {
		return 0, err
	}
	return s.kReqs.Count(ctx, 0, status)
}

// UpdateKindergarten replaces the request's line items while it is still
// mutable, re-resolving and re-pricing the full draft.
func (s *Service) UpdateKindergarten(ctx context.Context, actor Actor, id int64, draft *domain.KindergartenRequest) (*domain.KindergartenRequest, error) {
	current, err := s.kReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.Admin() && current.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if !current.Status.Mutable() {
		return nil, ErrRequestClosed
	}

	net, _, err := s.pricer.ValidateAndPriceKindergarten(ctx, draft)
	if err != nil {
		return nil, err
	}

	draft.ID = current.ID
	draft.RequestID = current.RequestID
	draft.UserID = current.UserID
	draft.Status = current.Status
	draft.NetPrice = net

	if err := s.kReqs.Update(ctx, draft); err != nil {
		return nil, mapRepoErr(err)
	}
	return draft, nil
}

func (s *Service) DeleteKindergarten(ctx context.Context, id int64) error {
	return s.kReqs.Delete(ctx, id)
}

/* ---------- service requests ---------- */

func (s *Service) CreateService(ctx context.Context, actor Actor, draft *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	draft.UserID = actor.UserID
	draft.Status = domain.StatusInit

	net, _, err := s.pricer.ValidateAndPriceService(ctx, draft)
	if err != nil {
		return nil, err
	}
	draft.NetPrice = net

	if err := s.createWithCode(ctx, nil, draft); err != nil {
		return nil, err
	}

	if err := s.orders.AppendOrder(ctx, actor.UserID, draft.RequestID); err != nil {
		logrus.WithError(err).WithField("request_id", draft.RequestID).
			Warn("failed to append request to user orders")
	}

	return draft, nil
}

func (s *Service) GetService(ctx context.Context, actor Actor, id int64) (*domain.ServiceRequest, error) {
	req, err := s.sReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.Admin() && req.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return req, nil
}

func (s *Service) ListService(ctx context.Context, actor Actor, rawStatus string, skip, limit int) ([]domain.ServiceRequest, error) {
	status, err := optionalStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	scope := actor.UserID
	if actor.Admin() {
		scope = 0
	}
	return s.sReqs.List(ctx, scope, status, skip, limit)
}

func (s *Service) CountService(ctx context.Context, rawStatus string) (int64, error) {
	status, err := optionalStatus(rawStatus)
	if err != nil {
		return 0, err
	}
	return s.sReqs.Count(ctx, 0, status)
}

func (s *Service) UpdateService(ctx context.Context, actor Actor, id int64, draft *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	current, err := s.sReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.Admin() && current.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if !current.Status.Mutable() {
		return nil, ErrRequestClosed
	}

	net, _, err := s.pricer.ValidateAndPriceService(ctx, draft)
	if err != nil {
		return nil, err
	}

	draft.ID = current.ID
	draft.RequestID = current.RequestID
	draft.UserID = current.UserID
	draft.Status = current.Status
	draft.NetPrice = net

	if err := s.sReqs.Update(ctx, draft); err != nil {
		return nil, mapRepoErr(err)
	}
	return draft, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	return s.sReqs.Delete(ctx, id)
}

/* ---------- helpers ---------- */

// createWithCode persists the draft under a fresh human code, retrying a few
// times if the generated code collides with an existing row.
func (s *Service) createWithCode(ctx context.Context, k *domain.KindergartenRequest, sr *domain.ServiceRequest) error {
	var lastErr error
	for i := 0; i < codeRetries; i++ {
		if k != nil {
			k.ID = 0
			k.RequestID = NewKindergartenCode()
			lastErr = s.kReqs.Create(ctx, k)
		} else {
			sr.ID = 0
			sr.RequestID = NewServiceCode()
			lastErr = s.sReqs.Create(ctx, sr)
		}
		if lastErr == nil {
			return nil
		}
		if !isUniqueViolation(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func optionalStatus(raw string) (domain.Status, error) {
	if raw == "" {
		return "", nil
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return "", ErrValidation
	}
	return status, nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
