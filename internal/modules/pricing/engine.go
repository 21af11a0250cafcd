package pricing

import (
	"context"
	"errors"
	"fmt"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

// Engine resolves a request draft's catalog references and computes its net
// price. Resolution is all-or-nothing: any unresolvable ID rejects the draft
// before a single price is summed. Prices are snapshotted at request write
// time; later catalog edits never touch an already-priced request.
type Engine struct {
	sizes     PaperSizeLookup
	additions AdditionLookup
	packages  PackageLookup
	themes    ThemeLookup
	costumes  CostumeLookup
}

func NewEngine(
	sizes PaperSizeLookup,
	additions AdditionLookup,
	packages PackageLookup,
	themes ThemeLookup,
	costumes CostumeLookup,
) *Engine {
	return &Engine{
		sizes:     sizes,
		additions: additions,
		packages:  packages,
		themes:    themes,
		costumes:  costumes,
	}
}

// ResolvedKindergarten holds every catalog entry a kindergarten draft refers
// to, keyed by ID.
type ResolvedKindergarten struct {
	Costumes  map[int64]domain.Costume
	Sizes     map[int64]domain.PaperSize
	Additions map[int64]domain.ServiceAddition
}

// ResolvedService holds the catalog entries a service draft refers to.
type ResolvedService struct {
	Package   *domain.Package
	Theme     *domain.Theme
	Additions map[int64]domain.ServiceAddition
}

func (e *Engine) ResolveKindergarten(ctx context.Context, draft *domain.KindergartenRequest) (*ResolvedKindergarten, error) {
	if len(draft.Costumes) == 0 {
		return nil, fmt.Errorf("%w: request must have one costume at least", ErrValidation)
	}

	var costumeIDs, sizeIDs, additionIDs []int64
	for _, line := range draft.Costumes {
		costumeIDs = append(costumeIDs, line.CostumeID)
		sizeIDs = append(sizeIDs, line.SizeID)
		additionIDs = append(additionIDs, line.Additions...)
	}
	additionIDs = append(additionIDs, draft.Additions...)

	costumes, err := e.resolveCostumes(ctx, costumeIDs)
	if err != nil {
		return nil, err
	}
	sizes, err := e.resolveSizes(ctx, sizeIDs)
	if err != nil {
		return nil, err
	}
	additions, err := e.resolveAdditions(ctx, additionIDs)
	if err != nil {
		return nil, err
	}

	return &ResolvedKindergarten{
		Costumes:  costumes,
		Sizes:     sizes,
		Additions: additions,
	}, nil
}

func (e *Engine) ResolveService(ctx context.Context, draft *domain.ServiceRequest) (*ResolvedService, error) {
	if draft.PackageID == 0 {
		return nil, fmt.Errorf("%w: package is required", ErrValidation)
	}

	pkg, err := e.packages.GetByID(ctx, draft.PackageID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: package %d", ErrNotFound, draft.PackageID)
	}

	var theme *domain.Theme
	if draft.ThemeID != nil {
		theme, err = e.themes.GetByID(ctx, *draft.ThemeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if theme == nil {
			return nil, fmt.Errorf("%w: theme %d", ErrNotFound, *draft.ThemeID)
		}
	}

	additions, err := e.resolveAdditions(ctx, draft.Additions)
	if err != nil {
		return nil, err
	}

	return &ResolvedService{
		Package:   pkg,
		Theme:     theme,
		Additions: additions,
	}, nil
}

// PriceKindergarten sums per-line size and addition net prices, top-level
// additions and manual fees:
//
//	Σ(line.size.net + Σ line.additions.net) + Σ additions.net + fees
func PriceKindergarten(draft *domain.KindergartenRequest, res *ResolvedKindergarten) float64 {
	var total float64
	for _, line := range draft.Costumes {
		total += res.Sizes[line.SizeID].NetPrice
		for _, id := range line.Additions {
			total += res.Additions[id].NetPrice
		}
	}
	for _, id := range draft.Additions {
		total += res.Additions[id].NetPrice
	}
	total += draft.AdditionalFees
	return Round2(total)
}

// PriceService sums the theme charge (flat, when present), addition net
// prices, the package net price and manual fees.
func PriceService(draft *domain.ServiceRequest, res *ResolvedService) float64 {
	var total float64
	if res.Theme != nil {
		total += res.Theme.AdditionalCharge
	}
	for _, id := range draft.Additions {
		total += res.Additions[id].NetPrice
	}
	total += res.Package.NetPrice
	total += draft.AdditionalFees
	return Round2(total)
}

// ValidateAndPriceKindergarten is the contract the request service calls
// before any persistence happens.
func (e *Engine) ValidateAndPriceKindergarten(ctx context.Context, draft *domain.KindergartenRequest) (float64, *ResolvedKindergarten, error) {
	res, err := e.ResolveKindergarten(ctx, draft)
	if err != nil {
		return 0, nil, err
	}
	return PriceKindergarten(draft, res), res, nil
}

func (e *Engine) ValidateAndPriceService(ctx context.Context, draft *domain.ServiceRequest) (float64, *ResolvedService, error) {
	res, err := e.ResolveService(ctx, draft)
	if err != nil {
		return 0, nil, err
	}
	return PriceService(draft, res), res, nil
}

func (e *Engine) resolveCostumes(ctx context.Context, ids []int64) (map[int64]domain.Costume, error) {
	ids = uniqueIDs(ids)
	found, err := e.costumes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.Costume, len(found))
	for _, c := range found {
		out[c.ID] = c
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("%w: costume %d", ErrNotFound, id)
		}
	}
	return out, nil
}

func (e *Engine) resolveSizes(ctx context.Context, ids []int64) (map[int64]domain.PaperSize, error) {
	ids = uniqueIDs(ids)
	found, err := e.sizes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.PaperSize, len(found))
	for _, s := range found {
		out[s.ID] = s
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("%w: paper size %d", ErrNotFound, id)
		}
	}
	return out, nil
}

func (e *Engine) resolveAdditions(ctx context.Context, ids []int64) (map[int64]domain.ServiceAddition, error) {
	ids = uniqueIDs(ids)
	found, err := e.additions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.ServiceAddition, len(found))
	for _, a := range found {
		out[a.ID] = a
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("%w: service addition %d", ErrNotFound, id)
		}
	}
	return out, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
