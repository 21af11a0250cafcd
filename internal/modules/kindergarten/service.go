package kindergarten

import (
	"context"
	"errors"

	"photoorders/internal/domain"
	"photoorders/internal/repository"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("kindergarten not found")

type Service struct {
	kindergartens *repository.KindergartenRepository
	preschools    *repository.PreschoolRepository
}

func NewService(kindergartens *repository.KindergartenRepository, preschools *repository.PreschoolRepository) *Service {
	return &Service{kindergartens: kindergartens, preschools: preschools}
}

/* ---------- KINDERGARTENS ---------- */

func (s *Service) CreateKindergarten(ctx context.Context, in KindergartenInput) (*domain.Kindergarten, error) {
	k := &domain.Kindergarten{
		Name:     in.Name,
		District: in.District,
		Active:   true,
	}
	if err := s.kindergartens.Create(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *Service) UpdateKindergarten(ctx context.Context, id int64, in KindergartenInput) (*domain.Kindergarten, error) {
	k, err := s.kindergartens.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	k.Name = in.Name
	k.District = in.District
	if in.Active != nil {
		k.Active = *in.Active
	}
	if err := s.kindergartens.Update(ctx, k); err != nil {
		return nil, mapRepoErr(err)
	}
	return k, nil
}

func (s *Service) DeleteKindergarten(ctx context.Context, id int64) error {
	return mapRepoErr(s.kindergartens.Delete(ctx, id))
}

func (s *Service) GetKindergarten(ctx context.Context, id int64) (*domain.Kindergarten, error) {
	k, err := s.kindergartens.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return k, nil
}

func (s *Service) ListKindergartens(ctx context.Context, activeOnly bool, skip, limit int) ([]domain.Kindergarten, error) {
	return s.kindergartens.List(ctx, activeOnly, skip, limit)
}

/* ---------- CLASSES ---------- */

func (s *Service) CreateClass(ctx context.Context, kindergartenID int64, in ClassInput) (*domain.KindergartenClass, error) {
	if _, err := s.kindergartens.GetByID(ctx, kindergartenID); err != nil {
		return nil, mapRepoErr(err)
	}
	class := &domain.KindergartenClass{
		KindergartenID: kindergartenID,
		Name:           in.Name,
		Active:         true,
	}
	if err := s.kindergartens.CreateClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *Service) UpdateClass(ctx context.Context, id int64, in ClassInput) (*domain.KindergartenClass, error) {
	class, err := s.kindergartens.GetClassByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	class.Name = in.Name
	if in.Active != nil {
		class.Active = *in.Active
	}
	if err := s.kindergartens.UpdateClass(ctx, class); err != nil {
		return nil, mapRepoErr(err)
	}
	return class, nil
}

func (s *Service) DeleteClass(ctx context.Context, id int64) error {
	return mapRepoErr(s.kindergartens.DeleteClass(ctx, id))
}

func (s *Service) ListClasses(ctx context.Context, kindergartenID int64) ([]domain.KindergartenClass, error) {
	return s.kindergartens.ListClasses(ctx, kindergartenID)
}

/* ---------- PRESCHOOLS ---------- */

func (s *Service) CreatePreschool(ctx context.Context, in PreschoolInput) (*domain.Preschool, error) {
	p := &domain.Preschool{
		Name:     in.Name,
		District: in.District,
	}
	if err := s.preschools.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePreschool(ctx context.Context, id int64, in PreschoolInput) (*domain.Preschool, error) {
	p, err := s.preschools.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	p.Name = in.Name
	p.District = in.District
	if err := s.preschools.Update(ctx, p); err != nil {
		return nil, mapRepoErr(err)
	}
	return p, nil
}

func (s *Service) DeletePreschool(ctx context.Context, id int64) error {
	return mapRepoErr(s.preschools.Delete(ctx, id))
}

func (s *Service) ListPreschools(ctx context.Context, skip, limit int) ([]domain.Preschool, error) {
	return s.preschools.List(ctx, skip, limit)
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
