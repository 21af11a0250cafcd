package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"photoorders/internal/domain"
	"photoorders/internal/modules/pricing"
	"photoorders/internal/pkg/validator"

	"gorm.io/gorm"
)

// Service owns the admin-managed catalog. Every price-bearing write derives
// NetPrice through pricing.Net before it reaches the repository, so a stored
// row never carries a stale or client-supplied net price.
type Service struct {
	sizes     PaperSizeRepository
	additions ServiceAdditionRepository
	packages  PackageRepository
	themes    ThemeRepository
	types     ServiceTypeRepository
	costumes  CostumeRepository
	samples   StudioSampleRepository
}

func NewService(
	sizes PaperSizeRepository,
	additions ServiceAdditionRepository,
	packages PackageRepository,
	themes ThemeRepository,
	types ServiceTypeRepository,
	costumes CostumeRepository,
	samples StudioSampleRepository,
) *Service {
	return &Service{sizes, additions, packages, themes, types, costumes, samples}
}

/* ---------- PAPER SIZES ---------- */

func (s *Service) CreatePaperSize(ctx context.Context, in PaperSizeInput) (*domain.PaperSize, error) {
	size := &domain.PaperSize{
		Size:     in.Size,
		Price:    in.Price,
		Discount: in.Discount,
		NetPrice: pricing.Net(in.Price, in.Discount),
	}
	if err := checkDomain(size); err != nil {
		return nil, err
	}
	if err := s.sizes.Create(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

func (s *Service) UpdatePaperSize(ctx context.Context, id int64, in PaperSizeInput) (*domain.PaperSize, error) {
	size, err := s.sizes.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	size.Size = in.Size
	size.Price = in.Price
	size.Discount = in.Discount
	size.NetPrice = pricing.Net(in.Price, in.Discount)
	if err := checkDomain(size); err != nil {
		return nil, err
	}
	if err := s.sizes.Update(ctx, size); err != nil {
		return nil, mapRepoErr(err)
	}
	return size, nil
}

func (s *Service) DeletePaperSize(ctx context.Context, id int64) error {
	return mapRepoErr(s.sizes.Delete(ctx, id))
}

func (s *Service) GetPaperSize(ctx context.Context, id int64) (*domain.PaperSize, error) {
	size, err := s.sizes.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return size, nil
}

func (s *Service) ListPaperSizes(ctx context.Context, skip, limit int) ([]domain.PaperSize, error) {
	return s.sizes.List(ctx, skip, limit)
}

/* ---------- SERVICE ADDITIONS ---------- */

func (s *Service) CreateAddition(ctx context.Context, in ServiceAdditionInput) (*domain.ServiceAddition, error) {
	addition := &domain.ServiceAddition{
		Name:              in.Name,
		Service:           domain.AdditionService(strings.ToUpper(in.Service)),
		Description:       in.Description,
		PerItem:           in.PerItem,
		Conditional:       in.Conditional,
		NumOfImgCondition: in.NumOfImgCondition,
		Price:             in.Price,
		Discount:          in.Discount,
		NetPrice:          pricing.Net(in.Price, in.Discount),
	}
	if err := checkDomain(addition); err != nil {
		return nil, err
	}
	if err := s.additions.Create(ctx, addition); err != nil {
		return nil, err
	}
	return addition, nil
}

func (s *Service) UpdateAddition(ctx context.Context, id int64, in ServiceAdditionInput) (*domain.ServiceAddition, error) {
	addition, err := s.additions.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	addition.Name = in.Name
	addition.Service = domain.AdditionService(strings.ToUpper(in.Service))
	addition.Description = in.Description
	addition.PerItem = in.PerItem
	addition.Conditional = in.Conditional
	addition.NumOfImgCondition = in.NumOfImgCondition
	addition.Price = in.Price
	addition.Discount = in.Discount
	addition.NetPrice = pricing.Net(in.Price, in.Discount)
	if err := checkDomain(addition); err != nil {
		return nil, err
	}
	if err := s.additions.Update(ctx, addition); err != nil {
		return nil, mapRepoErr(err)
	}
	return addition, nil
}

func (s *Service) DeleteAddition(ctx context.Context, id int64) error {
	return mapRepoErr(s.additions.Delete(ctx, id))
}

func (s *Service) GetAddition(ctx context.Context, id int64) (*domain.ServiceAddition, error) {
	addition, err := s.additions.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return addition, nil
}

// ListAdditions filters by request family when service is "K" or "O"; an
// empty service returns everything.
func (s *Service) ListAdditions(ctx context.Context, service string, skip, limit int) ([]domain.ServiceAddition, error) {
	family := domain.AdditionService(strings.ToUpper(service))
	if family != "" && family != domain.AdditionKindergarten && family != domain.AdditionOther {
		return nil, ErrValidation
	}
	return s.additions.List(ctx, family, skip, limit)
}

/* ---------- PACKAGES ---------- */

func (s *Service) CreatePackage(ctx context.Context, in PackageInput) (*domain.Package, error) {
	pkg := &domain.Package{
		Name:     in.Name,
		Quantity: in.Quantity,
		Price:    in.Price,
		Discount: in.Discount,
		NetPrice: pricing.Net(in.Price, in.Discount),
	}
	if err := checkDomain(pkg); err != nil {
		return nil, err
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *Service) UpdatePackage(ctx context.Context, id int64, in PackageInput) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	pkg.Name = in.Name
	pkg.Quantity = in.Quantity
	pkg.Price = in.Price
	pkg.Discount = in.Discount
	pkg.NetPrice = pricing.Net(in.Price, in.Discount)
	if err := checkDomain(pkg); err != nil {
		return nil, err
	}
	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, mapRepoErr(err)
	}
	return pkg, nil
}

func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	return mapRepoErr(s.packages.Delete(ctx, id))
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return pkg, nil
}

func (s *Service) ListPackages(ctx context.Context, skip, limit int) ([]domain.Package, error) {
	return s.packages.List(ctx, skip, limit)
}

/* ---------- THEMES ---------- */

func (s *Service) CreateTheme(ctx context.Context, in ThemeInput) (*domain.Theme, error) {
	theme := &domain.Theme{
		Title:            in.Title,
		Description:      in.Description,
		AdditionalCharge: in.AdditionalCharge,
		ImagesPaths:      in.ImagesPaths,
		ShowInStudio:     in.ShowInStudio,
	}
	if err := checkDomain(theme); err != nil {
		return nil, err
	}
	if err := s.themes.Create(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *Service) UpdateTheme(ctx context.Context, id int64, in ThemeInput) (*domain.Theme, error) {
	theme, err := s.themes.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	theme.Title = in.Title
	theme.Description = in.Description
	theme.AdditionalCharge = in.AdditionalCharge
	theme.ImagesPaths = in.ImagesPaths
	theme.ShowInStudio = in.ShowInStudio
	if err := checkDomain(theme); err != nil {
		return nil, err
	}
	if err := s.themes.Update(ctx, theme); err != nil {
		return nil, mapRepoErr(err)
	}
	return theme, nil
}

func (s *Service) DeleteTheme(ctx context.Context, id int64) error {
	return mapRepoErr(s.themes.Delete(ctx, id))
}

func (s *Service) GetTheme(ctx context.Context, id int64) (*domain.Theme, error) {
	theme, err := s.themes.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return theme, nil
}

func (s *Service) ListThemes(ctx context.Context, studioOnly bool, skip, limit int) ([]domain.Theme, error) {
	return s.themes.List(ctx, studioOnly, skip, limit)
}

/* ---------- SERVICE TYPES ---------- */

func (s *Service) CreateServiceType(ctx context.Context, in ServiceTypeInput) (*domain.ServiceType, error) {
	st := &domain.ServiceType{
		Name:        in.Name,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		ThemeBased:  in.ThemeBased,
		Themes:      in.Themes,
		Packages:    in.Packages,
	}
	if err := checkDomain(st); err != nil {
		return nil, err
	}
	if err := s.types.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) UpdateServiceType(ctx context.Context, id int64, in ServiceTypeInput) (*domain.ServiceType, error) {
	st, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	st.Name = in.Name
	st.Description = in.Description
	st.Thumbnail = in.Thumbnail
	st.ThemeBased = in.ThemeBased
	st.Themes = in.Themes
	st.Packages = in.Packages
	if err := checkDomain(st); err != nil {
		return nil, err
	}
	if err := s.types.Update(ctx, st); err != nil {
		return nil, mapRepoErr(err)
	}
	return st, nil
}

func (s *Service) DeleteServiceType(ctx context.Context, id int64) error {
	return mapRepoErr(s.types.Delete(ctx, id))
}

func (s *Service) GetServiceType(ctx context.Context, id int64) (*domain.ServiceType, error) {
	st, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return st, nil
}

func (s *Service) ListServiceTypes(ctx context.Context, skip, limit int) ([]domain.ServiceType, error) {
	return s.types.List(ctx, skip, limit)
}

/* ---------- COSTUMES ---------- */

func (s *Service) CreateCostume(ctx context.Context, in CostumeInput) (*domain.Costume, error) {
	costume := &domain.Costume{
		Title:      in.Title,
		ImagePath:  in.ImagePath,
		Sizes:      in.Sizes,
		Tags:       in.Tags,
		WithFriend: in.WithFriend,
	}
	if err := checkDomain(costume); err != nil {
		return nil, err
	}
	if err := s.costumes.Create(ctx, costume); err != nil {
		return nil, err
	}
	return costume, nil
}

func (s *Service) UpdateCostume(ctx context.Context, id int64, in CostumeInput) (*domain.Costume, error) {
	costume, err := s.costumes.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	costume.Title = in.Title
	costume.ImagePath = in.ImagePath
	costume.Sizes = in.Sizes
	costume.Tags = in.Tags
	costume.WithFriend = in.WithFriend
	if err := checkDomain(costume); err != nil {
		return nil, err
	}
	if err := s.costumes.Update(ctx, costume); err != nil {
		return nil, mapRepoErr(err)
	}
	return costume, nil
}

func (s *Service) DeleteCostume(ctx context.Context, id int64) error {
	return mapRepoErr(s.costumes.Delete(ctx, id))
}

func (s *Service) GetCostume(ctx context.Context, id int64) (*domain.Costume, error) {
	costume, err := s.costumes.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return costume, nil
}

func (s *Service) ListCostumes(ctx context.Context, skip, limit int) ([]domain.Costume, error) {
	return s.costumes.List(ctx, skip, limit)
}

/* ---------- STUDIO SAMPLES ---------- */

func (s *Service) CreateSample(ctx context.Context, in StudioSampleInput) (*domain.StudioSample, error) {
	sample := &domain.StudioSample{
		ImagePath:   in.ImagePath,
		Description: in.Description,
		Tags:        in.Tags,
	}
	if err := checkDomain(sample); err != nil {
		return nil, err
	}
	if err := s.samples.Create(ctx, sample); err != nil {
		return nil, err
	}
	return sample, nil
}

func (s *Service) DeleteSample(ctx context.Context, id int64) error {
	return mapRepoErr(s.samples.Delete(ctx, id))
}

func (s *Service) GetSample(ctx context.Context, id int64) (*domain.StudioSample, error) {
	sample, err := s.samples.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return sample, nil
}

func (s *Service) ListSamples(ctx context.Context, skip, limit int) ([]domain.StudioSample, error) {
	return s.samples.List(ctx, skip, limit)
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// checkDomain runs the struct-level validation rules as a second line of
// defense behind the binding tags, so repository writes never see an entity
// the tags forbid.
func checkDomain(v any) error {
	if fields := validator.Validate(v); fields != nil {
		return fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	return nil
}
