package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type KindergartenRequestRepository struct {
	db *gorm.DB
}

func NewKindergartenRequestRepository(db *gorm.DB) *KindergartenRequestRepository {
	return &KindergartenRequestRepository{db: db}
}

func (r *KindergartenRequestRepository) Create(ctx context.Context, req *domain.KindergartenRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *KindergartenRequestRepository) GetByID(ctx context.Context, id int64) (*domain.KindergartenRequest, error) {
	var req domain.KindergartenRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// List scopes to one user when userID > 0 (admins pass 0 to see everything).
func (r *KindergartenRequestRepository) List(ctx context.Context, userID int64, status domain.Status, skip, limit int) ([]domain.KindergartenRequest, error) {
	var reqs []domain.KindergartenRequest
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

func (r *KindergartenRequestRepository) Count(ctx context.Context, userID int64, status domain.Status) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.KindergartenRequest{})
	if userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *KindergartenRequestRepository) FindByRequestIDs(ctx context.Context, requestIDs []string, status domain.Status) ([]domain.KindergartenRequest, error) {
	var reqs []domain.KindergartenRequest
	if len(requestIDs) == 0 {
		return reqs, nil
	}
	q := r.db.WithContext(ctx).Where("request_id IN ?", requestIDs)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return reqs, q.Find(&reqs).Error
}

func (r *KindergartenRequestRepository) Update(ctx context.Context, req *domain.KindergartenRequest) error {
	tx := r.db.WithContext(ctx).Model(&domain.KindergartenRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"kindergarten_id":       req.KindergartenID,
			"kindergarten_class_id": req.KindergartenClassID,
			"child_name":            req.ChildName,
			"costumes":              req.Costumes,
			"friend_name":           req.FriendName,
			"remarks":               req.Remarks,
			"additions":             req.Additions,
			"additional_fees":       req.AdditionalFees,
			"net_price":             req.NetPrice,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *KindergartenRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	tx := r.db.WithContext(ctx).Model(&domain.KindergartenRequest{}).
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

// FindMutableIDs narrows ids to requests still in INIT or PROC.
func (r *KindergartenRequestRepository) FindMutableIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var out []int64
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Model(&domain.KindergartenRequest{}).
		Where("id IN ? AND status IN ?", ids, []domain.Status{domain.StatusInit, domain.StatusProc}).
		Pluck("id", &out).Error
	return out, err
}

// UpdateStatusBulk writes the status onto the given rows, re-checking the
// mutable-state guard inside the statement, and reports rows touched.
func (r *KindergartenRequestRepository) UpdateStatusBulk(ctx context.Context, ids []int64, status domain.Status) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.KindergartenRequest{}).
		Where("id IN ? AND status IN ?", ids, []domain.Status{domain.StatusInit, domain.StatusProc}).
		Update("status", status)
	return tx.RowsAffected, tx.Error
}

func (r *KindergartenRequestRepository) UpdateFees(ctx context.Context, id int64, fees, netPrice float64) error {
	tx := r.db.WithContext(ctx).Model(&domain.KindergartenRequest{}).
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

func (r *KindergartenRequestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.KindergartenRequest{}, id).Error
}
