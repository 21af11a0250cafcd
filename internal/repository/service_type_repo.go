package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type ServiceTypeRepository struct {
	db *gorm.DB
}

func NewServiceTypeRepository(db *gorm.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{db: db}
}

func (r *ServiceTypeRepository) Create(ctx context.Context, t *domain.ServiceType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ServiceTypeRepository) Update(ctx context.Context, t *domain.ServiceType) error {
	tx := r.db.WithContext(ctx).Where("id = ?", t.ID).Save(t)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceType{}, id).Error
}

func (r *ServiceTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	var t domain.ServiceType
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ServiceTypeRepository) List(ctx context.Context, skip, limit int) ([]domain.ServiceType, error) {
	var types []domain.ServiceType
	q := r.db.WithContext(ctx).Order("id")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return types, q.Find(&types).Error
}
