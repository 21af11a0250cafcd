package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type ThemeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) Create(ctx context.Context, t *domain.Theme) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ThemeRepository) Update(ctx context.Context, t *domain.Theme) error {
	tx := r.db.WithContext(ctx).Where("id = ?", t.ID).Save(t)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ThemeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Theme{}, id).Error
}

func (r *ThemeRepository) GetByID(ctx context.Context, id int64) (*domain.Theme, error) {
	var t domain.Theme
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ThemeRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Theme, error) {
	var themes []domain.Theme
	if len(ids) == 0 {
		return themes, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&themes).Error
	return themes, err
}

// List returns themes; studioOnly narrows to those flagged for the studio page.
func (r *ThemeRepository) List(ctx context.Context, studioOnly bool, skip, limit int) ([]domain.Theme, error) {
	var themes []domain.Theme
	q := r.db.WithContext(ctx).Order("id")
	if studioOnly {
		q = q.Where("show_in_studio = ?", true)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return themes, q.Find(&themes).Error
}

func (r *ThemeRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Theme{}).Count(&cnt).Error
	return cnt, err
}
