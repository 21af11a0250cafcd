package request

import (
	"context"

	"photoorders/internal/domain"
)

type KindergartenRequestRepository interface {
	Create(ctx context.Context, req *domain.KindergartenRequest) error
	GetByID(ctx context.Context, id int64) (*domain.KindergartenRequest, error)
	List(ctx context.Context, userID int64, status domain.Status, skip, limit int) ([]domain.KindergartenRequest, error)
	Count(ctx context.Context, userID int64, status domain.Status) (int64, error)
	Update(ctx context.Context, req *domain.KindergartenRequest) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindMutableIDs(ctx context.Context, ids []int64) ([]int64, error)
	UpdateStatusBulk(ctx context.Context, ids []int64, status domain.Status) (int64, error)
	UpdateFees(ctx context.Context, id int64, fees, netPrice float64) error
	Delete(ctx context.Context, id int64) error
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error)
	List(ctx context.Context, userID int64, status domain.Status, skip, limit int) ([]domain.ServiceRequest, error)
	Count(ctx context.Context, userID int64, status domain.Status) (int64, error)
	Update(ctx context.Context, req *domain.ServiceRequest) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindMutableIDs(ctx context.Context, ids []int64) ([]int64, error)
	UpdateStatusBulk(ctx context.Context, ids []int64, status domain.Status) (int64, error)
	UpdateFees(ctx context.Context, id int64, fees, netPrice float64) error
	Delete(ctx context.Context, id int64) error
}

// OrderTracker appends a created request to its owner's order history.
type OrderTracker interface {
	AppendOrder(ctx context.Context, userID int64, requestID string) error
}
