package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type KindergartenRepository struct {
	db *gorm.DB
}

func NewKindergartenRepository(db *gorm.DB) *KindergartenRepository {
	return &KindergartenRepository{db: db}
}

func (r *KindergartenRepository) Create(ctx context.Context, k *domain.Kindergarten) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *KindergartenRepository) Update(ctx context.Context, k *domain.Kindergarten) error {
	tx := r.db.WithContext(ctx).Where("id = ?", k.ID).Save(k)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *KindergartenRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Kindergarten{}, id).Error
}

func (r *KindergartenRepository) GetByID(ctx context.Context, id int64) (*domain.Kindergarten, error) {
	var k domain.Kindergarten
	if err := r.db.WithContext(ctx).First(&k, id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

// List returns kindergartens; activeOnly narrows to ones still open for orders.
func (r *KindergartenRepository) List(ctx context.Context, activeOnly bool, skip, limit int) ([]domain.Kindergarten, error) {
	var items []domain.Kindergarten
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return items, q.Find(&items).Error
}

func (r *KindergartenRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Kindergarten{}).Count(&cnt).Error
	return cnt, err
}

/* ---------- classes ---------- */

func (r *KindergartenRepository) CreateClass(ctx context.Context, c *domain.KindergartenClass) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *KindergartenRepository) UpdateClass(ctx context.Context, c *domain.KindergartenClass) error {
	tx := r.db.WithContext(ctx).Where("id = ?", c.ID).Save(c)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *KindergartenRepository) DeleteClass(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.KindergartenClass{}, id).Error
}

func (r *KindergartenRepository) GetClassByID(ctx context.Context, id int64) (*domain.KindergartenClass, error) {
	var c domain.KindergartenClass
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *KindergartenRepository) ListClasses(ctx context.Context, kindergartenID int64) ([]domain.KindergartenClass, error) {
	var classes []domain.KindergartenClass
	err := r.db.WithContext(ctx).
		Where("kindergarten_id = ?", kindergartenID).
		Order("name").
		Find(&classes).Error
	return classes, err
}
