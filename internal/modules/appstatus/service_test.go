package appstatus

import (
	"context"
	"testing"

	"photoorders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockConfigRepo struct {
	mock.Mock
}

func (m *MockConfigRepo) Get(ctx context.Context) (*domain.AppConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppConfig), args.Error(1)
}

func (m *MockConfigRepo) Set(ctx context.Context, status domain.AppStatus) (*domain.AppConfig, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppConfig), args.Error(1)
}

func TestGet_MissingRowDefaultsToMaintenance(t *testing.T) {
	configs := new(MockConfigRepo)
	configs.On("Get", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(configs, nil)
	status, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.AppMaintenance, status)
}

func TestUpdate_NormalizesInput(t *testing.T) {
	configs := new(MockConfigRepo)
	configs.On("Set", mock.Anything, domain.AppLive).
		Return(&domain.AppConfig{ID: 1, Status: domain.AppLive}, nil)

	svc := NewService(configs, NewHub())
	status, err := svc.Update(context.Background(), " live ")
	assert.NoError(t, err)
	assert.Equal(t, domain.AppLive, status)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	configs := new(MockConfigRepo)

	svc := NewService(configs, nil)
	_, err := svc.Update(context.Background(), "OFFLINE")
	assert.ErrorIs(t, err, ErrValidation)
	configs.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}
