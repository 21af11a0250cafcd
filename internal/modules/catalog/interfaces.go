package catalog

import (
	"context"

	"photoorders/internal/domain"
)

type PaperSizeRepository interface {
	Create(ctx context.Context, s *domain.PaperSize) error
	Update(ctx context.Context, s *domain.PaperSize) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.PaperSize, error)
	List(ctx context.Context, skip, limit int) ([]domain.PaperSize, error)
}

type ServiceAdditionRepository interface {
	Create(ctx context.Context, a *domain.ServiceAddition) error
	Update(ctx context.Context, a *domain.ServiceAddition) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceAddition, error)
	List(ctx context.Context, service domain.AdditionService, skip, limit int) ([]domain.ServiceAddition, error)
}

type PackageRepository interface {
	Create(ctx context.Context, p *domain.Package) error
	Update(ctx context.Context, p *domain.Package) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context, skip, limit int) ([]domain.Package, error)
}

type ThemeRepository interface {
	Create(ctx context.Context, t *domain.Theme) error
	Update(ctx context.Context, t *domain.Theme) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Theme, error)
	List(ctx context.Context, studioOnly bool, skip, limit int) ([]domain.Theme, error)
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, t *domain.ServiceType) error
	Update(ctx context.Context, t *domain.ServiceType) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
	List(ctx context.Context, skip, limit int) ([]domain.ServiceType, error)
}

type CostumeRepository interface {
	Create(ctx context.Context, c *domain.Costume) error
	Update(ctx context.Context, c *domain.Costume) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Costume, error)
	List(ctx context.Context, skip, limit int) ([]domain.Costume, error)
}

type StudioSampleRepository interface {
	Create(ctx context.Context, s *domain.StudioSample) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.StudioSample, error)
	List(ctx context.Context, skip, limit int) ([]domain.StudioSample, error)
}
