package pricing

import (
	"context"

	"photoorders/internal/domain"
)

// Catalog lookups the engine depends on. All are read-only; entries are
// treated as immutable during a single resolution pass.

type PaperSizeLookup interface {
	FindByIDs(ctx context.Context, ids []int64) ([]domain.PaperSize, error)
}

type AdditionLookup interface {
	FindByIDs(ctx context.Context, ids []int64) ([]domain.ServiceAddition, error)
}

type PackageLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
}

type ThemeLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Theme, error)
}

type CostumeLookup interface {
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Costume, error)
}
