package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	tx := r.db.WithContext(ctx).Model(&domain.Package{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":      p.Name,
			"quantity":  p.Quantity,
			"price":     p.Price,
			"discount":  p.Discount,
			"net_price": p.NetPrice,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Package{}, id).Error
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Package, error) {
	var packages []domain.Package
	if len(ids) == 0 {
		return packages, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&packages).Error
	return packages, err
}

func (r *PackageRepository) List(ctx context.Context, skip, limit int) ([]domain.Package, error) {
	var packages []domain.Package
	q := r.db.WithContext(ctx).Order("id")
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return packages, q.Find(&packages).Error
}

func (r *PackageRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Package{}).Count(&cnt).Error
	return cnt, err
}
