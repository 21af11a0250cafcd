package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type PaperSizeRepository struct {
	db *gorm.DB
}

func NewPaperSizeRepository(db *gorm.DB) *PaperSizeRepository {
	return &PaperSizeRepository{db: db}
}

func (r *PaperSizeRepository) Create(ctx context.Context, s *domain.PaperSize) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PaperSizeRepository) Update(ctx context.Context, s *domain.PaperSize) error {
	tx := r.db.WithContext(ctx).Model(&domain.PaperSize{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"size":      s.Size,
			"price":     s.Price,
			"discount":  s.Discount,
			"net_price": s.NetPrice,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaperSizeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PaperSize{}, id).Error
}

func (r *PaperSizeRepository) GetByID(ctx context.Context, id int64) (*domain.PaperSize, error) {
	var s domain.PaperSize
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PaperSizeRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.PaperSize, error) {
	var sizes []domain.PaperSize
	if len(ids) == 0 {
		return sizes, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&sizes).Error
	return sizes, err
}

func (r *PaperSizeRepository) List(ctx context.Context, skip, limit int) ([]domain.PaperSize, error) {
	var sizes []domain.PaperSize
	q := r.db.WithContext(ctx).Order("id")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return sizes, q.Find(&sizes).Error
}

func (r *PaperSizeRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.PaperSize{}).Count(&cnt).Error
	return cnt, err
}
