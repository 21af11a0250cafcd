package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type ServiceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ServiceRequestRepository) List(ctx context.Context, userID int64, status domain.Status, skip, limit int) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return reqs, q.Find(&reqs).Error
}

func (r *ServiceRequestRepository) Count(ctx context.Context, userID int64, status domain.Status) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.ServiceRequest{})
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *ServiceRequestRepository) FindByRequestIDs(ctx context.Context, requestIDs []string, status domain.Status) ([]domain.ServiceRequest, error) {
	var reqs []domain.ServiceRequest
	if len(requestIDs) == 0 {
		return reqs, nil
	}
	q := r.db.WithContext(ctx).Where("request_id IN ?", requestIDs)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return reqs, q.Find(&reqs).Error
}

func (r *ServiceRequestRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"client_name":     req.ClientName,
			"type_id":         req.TypeID,
			"theme_id":        req.ThemeID,
			"package_id":      req.PackageID,
			"appointment":     req.Appointment,
			"remarks":         req.Remarks,
			"additions":       req.Additions,
			"additional_fees": req.AdditionalFees,
			"net_price":       req.NetPrice,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRequestRepository) FindMutableIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var out []int64
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("id IN ? AND status IN ?", ids, []domain.Status{domain.StatusInit, domain.StatusProc}).
		Pluck("id", &out).Error
	return out, err
}

func (r *ServiceRequestRepository) UpdateStatusBulk(ctx context.Context, ids []int64, status domain.Status) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("id IN ? AND status IN ?", ids, []domain.Status{domain.StatusInit, domain.StatusProc}).
		Update("status", status)
	return tx.RowsAffected, tx.Error
}

func (r *ServiceRequestRepository) UpdateFees(ctx context.Context, id int64, fees, netPrice float64) error {
	tx := r.db.WithContext(ctx).Model(&domain.ServiceRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{"additional_fees": fees, "net_price": netPrice})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRequestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceRequest{}, id).Error
}
