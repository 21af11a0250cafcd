package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type PreschoolRepository struct {
	db *gorm.DB
}

func NewPreschoolRepository(db *gorm.DB) *PreschoolRepository {
	return &PreschoolRepository{db: db}
}

func (r *PreschoolRepository) Create(ctx context.Context, p *domain.Preschool) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PreschoolRepository) Update(ctx context.Context, p *domain.Preschool) error {
	tx := r.db.WithContext(ctx).Where("id = ?", p.ID).Save(p)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PreschoolRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Preschool{}, id).Error
}

func (r *PreschoolRepository) GetByID(ctx context.Context, id int64) (*domain.Preschool, error) {
	var p domain.Preschool
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PreschoolRepository) List(ctx context.Context, skip, limit int) ([]domain.Preschool, error) {
	var items []domain.Preschool
	q := r.db.WithContext(ctx).Order("name")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return items, q.Find(&items).Error
}
