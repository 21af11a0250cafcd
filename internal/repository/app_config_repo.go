package repository

import (
	"context"
	"errors"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type AppConfigRepository struct {
	db *gorm.DB
}

func NewAppConfigRepository(db *gorm.DB) *AppConfigRepository {
	return &AppConfigRepository{db: db}
}

func (r *AppConfigRepository) Get(ctx context.Context) (*domain.AppConfig, error) {
	var cfg domain.AppConfig
	err := r.db.WithContext(ctx).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Set writes the single config row, creating it on first use.
func (r *AppConfigRepository) Set(ctx context.Context, status domain.AppStatus) (*domain.AppConfig, error) {
	var cfg domain.AppConfig
	err := r.db.WithContext(ctx).First(&cfg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = domain.AppConfig{Status: status}
		if err := r.db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg, nil
	case err != nil:
		return nil, err
	}

	cfg.Status = status
	if err := r.db.WithContext(ctx).Save(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}
