package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type CostumeRepository struct {
	db *gorm.DB
}

func NewCostumeRepository(db *gorm.DB) *CostumeRepository {
	return &CostumeRepository{db: db}
}

func (r *CostumeRepository) Create(ctx context.Context, c *domain.Costume) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CostumeRepository) Update(ctx context.Context, c *domain.Costume) error {
	tx := r.db.WithContext(ctx).Where("id = ?", c.ID).Save(c)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CostumeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Costume{}, id).Error
}

func (r *CostumeRepository) GetByID(ctx context.Context, id int64) (*domain.Costume, error) {
	var c domain.Costume
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CostumeRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Costume, error) {
	var costumes []domain.Costume
	if len(ids) == 0 {
		return costumes, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&costumes).Error
	return costumes, err
}

func (r *CostumeRepository) List(ctx context.Context, skip, limit int) ([]domain.Costume, error) {
	var costumes []domain.Costume
	q := r.db.WithContext(ctx).Order("id")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return costumes, q.Find(&costumes).Error
}

func (r *CostumeRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Costume{}).Count(&cnt).Error
	return cnt, err
}
