package request

import (
	"context"

	"photoorders/internal/domain"
	"photoorders/internal/modules/pricing"
)

// Status lifecycle operations. Every state change funnels through the guard
// on domain.Status; nothing below writes a transition the table forbids.

func (s *Service) TransitionKindergarten(ctx context.Context, id int64, rawStatus string) (*domain.KindergartenRequest, error) {
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, ErrValidation
	}

	req, err := s.kReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	if err := s.kReqs.UpdateStatus(ctx, id, next); err != nil {
		return nil, mapRepoErr(err)
	}
	req.Status = next
	return req, nil
}

func (s *Service) TransitionService(ctx context.Context, id int64, rawStatus string) (*domain.ServiceRequest, error) {
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, ErrValidation
	}

	req, err := s.sReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	if err := s.sReqs.UpdateStatus(ctx, id, next); err != nil {
		return nil, mapRepoErr(err)
	}
	req.Status = next
	return req, nil
}

// CancelKindergarten is the user-facing cancellation: permitted only while
// the request still sits in INIT.
func (s *Service) CancelKindergarten(ctx context.Context, actor Actor, id int64) (*domain.KindergartenRequest, error) {
	req, err := s.kReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.Admin() && req.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if req.Status != domain.StatusInit {
		return nil, ErrInvalidState
	}
	if err := s.kReqs.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		return nil, mapRepoErr(err)
	}
	req.Status = domain.StatusCancelled
	return req, nil
}

func (s *Service) CancelService(ctx context.Context, actor Actor, id int64) (*domain.ServiceRequest, error) {
	req, err := s.sReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !actor.Admin() && req.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if req.Status != domain.StatusInit {
		return nil, ErrInvalidState
	}
	if err := s.sReqs.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		return nil, mapRepoErr(err)
	}
	req.Status = domain.StatusCancelled
	return req, nil
}

// UpdateKindergartenFees adjusts the manual fee on a still-open request. The
// stored net price moves by exactly the fee delta; line items are not
// re-resolved (prices were snapshotted at write time).
func (s *Service) UpdateKindergartenFees(ctx context.Context, id int64, fees float64) (*domain.KindergartenRequest, error) {
	req, err := s.kReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !req.Status.Mutable() {
		return nil, ErrInvalidState
	}

	net := pricing.Round2(req.NetPrice - req.AdditionalFees + fees)
	if err := s.kReqs.UpdateFees(ctx, id, fees, net); err != nil {
		return nil, mapRepoErr(err)
	}
	req.AdditionalFees = fees
	req.NetPrice = net
	return req, nil
}

func (s *Service) UpdateServiceFees(ctx context.Context, id int64, fees float64) (*domain.ServiceRequest, error) {
	req, err := s.sReqs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !req.Status.Mutable() {
		return nil, ErrInvalidState
	}

	net := pricing.Round2(req.NetPrice - req.AdditionalFees + fees)
	if err := s.sReqs.UpdateFees(ctx, id, fees, net); err != nil {
		return nil, mapRepoErr(err)
	}
	req.AdditionalFees = fees
	req.NetPrice = net
	return req, nil
}

// BulkTransitionKindergarten moves every still-open request in ids to the
// target status. Terminal requests are silently skipped; the call fails if
// nothing remains to update.
func (s *Service) BulkTransitionKindergarten(ctx context.Context, ids []int64, rawStatus string) (int64, error) {
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return 0, ErrValidation
	}
	if next == domain.StatusInit {
		return 0, ErrInvalidTransition
	}

	candidates, err := s.kReqs.FindMutableIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, ErrNothingToUpdate
	}

	updated, err := s.kReqs.UpdateStatusBulk(ctx, candidates, next)
	if err != nil {
		return 0, err
	}
	if updated == 0 {
		return 0, ErrNothingToUpdate
	}
	return updated, nil
}

func (s *Service) BulkTransitionService(ctx context.Context, ids []int64, rawStatus string) (int64, error) {
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return 0, ErrValidation
	}
	if next == domain.StatusInit {
		return 0, ErrInvalidTransition
	}

	candidates, err := s.sReqs.FindMutableIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, ErrNothingToUpdate
	}

	updated, err := s.sReqs.UpdateStatusBulk(ctx, candidates, next)
	if err != nil {
		return 0, err
	}
	if updated == 0 {
		return 0, ErrNothingToUpdate
	}
	return updated, nil
}
