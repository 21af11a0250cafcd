package repository

import (
	"context"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type ServiceAdditionRepository struct {
	db *gorm.DB
}

func NewServiceAdditionRepository(db *gorm.DB) *ServiceAdditionRepository {
	return &ServiceAdditionRepository{db: db}
}

func (r *ServiceAdditionRepository) Create(ctx context.Context, a *domain.ServiceAddition) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ServiceAdditionRepository) Update(ctx context.Context, a *domain.ServiceAddition) error {
	tx := r.db.WithContext(ctx).Model(&domain.ServiceAddition{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"name":                 a.Name,
			"service":              a.Service,
			"description":          a.Description,
			"per_item":             a.PerItem,
			"conditional":          a.Conditional,
			"num_of_img_condition": a.NumOfImgCondition,
			"price":                a.Price,
			"discount":             a.Discount,
			"net_price":            a.NetPrice,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceAdditionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceAddition{}, id).Error
}

func (r *ServiceAdditionRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceAddition, error) {
	var a domain.ServiceAddition
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ServiceAdditionRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.ServiceAddition, error) {
	var adds []domain.ServiceAddition
	if len(ids) == 0 {
		return adds, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&adds).Error
	return adds, err
}

// List returns additions, optionally narrowed to one service family (K or O).
func (r *ServiceAdditionRepository) List(ctx context.Context, service domain.AdditionService, skip, limit int) ([]domain.ServiceAddition, error) {
	var adds []domain.ServiceAddition
	q := r.db.WithContext(ctx).Order("id")
	if service != "" {
		q = q.Where("service = ?", service)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return adds, q.Find(&adds).Error
}

func (r *ServiceAdditionRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.ServiceAddition{}).Count(&cnt).Error
	return cnt, err
}
