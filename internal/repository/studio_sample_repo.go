package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type StudioSampleRepository struct {
	db *gorm.DB
}

func NewStudioSampleRepository(db *gorm.DB) *StudioSampleRepository {
	return &StudioSampleRepository{db: db}
}

func (r *StudioSampleRepository) Create(ctx context.Context, s *domain.StudioSample) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StudioSampleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.StudioSample{}, id).Error
}

func (r *StudioSampleRepository) GetByID(ctx context.Context, id int64) (*domain.StudioSample, error) {
	var s domain.StudioSample
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudioSampleRepository) List(ctx context.Context, skip, limit int) ([]domain.StudioSample, error) {
	var samples []domain.StudioSample
	q := r.db.WithContext(ctx).Order("id DESC")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return samples, q.Find(&samples).Error
}

func (r *StudioSampleRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.StudioSample{}).Count(&cnt).Error
	return cnt, err
}
