package auth

import (
	"context"
	"testing"
	"time"

	"photoorders/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) TouchLastLogin(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepo) List(ctx context.Context, filter map[string]string, sort map[string]string, skip, limit int) ([]domain.User, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) Count(ctx context.Context, filter map[string]string) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Start(ctx context.Context, phone string) error {
	return m.Called(ctx, phone).Error(0)
}

func (m *MockVerifier) Check(ctx context.Context, phone, code string) (bool, error) {
	args := m.Called(ctx, phone, code)
	return args.Bool(0), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func newTestAuth() (*Service, *MockUserRepo, *MockVerifier) {
	users := new(MockUserRepo)
	verifier := new(MockVerifier)
	return NewService(users, stubJWT{}, verifier), users, verifier
}

func TestStartVerification(t *testing.T) {
	svc, users, verifier := newTestAuth()
	users.On("GetByPhone", mock.Anything, "77001112233").
		Return(&domain.User{ID: 1, Phone: "77001112233"}, nil)
	verifier.On("Start", mock.Anything, "77001112233").Return(nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.VerificationSent && u.VerificationTime > 0
	})).Return(nil)

	err := svc.StartVerification(context.Background(), " 77001112233 ")
	assert.NoError(t, err)
	verifier.AssertExpectations(t)
}

func TestStartVerification_UnknownPhone(t *testing.T) {
	svc, users, verifier := newTestAuth()
	users.On("GetByPhone", mock.Anything, "700").Return(nil, gorm.ErrRecordNotFound)

	err := svc.StartVerification(context.Background(), "700")
	assert.ErrorIs(t, err, ErrUserNotFound)
	verifier.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestStartVerification_Cooldown(t *testing.T) {
	svc, users, verifier := newTestAuth()
	users.On("GetByPhone", mock.Anything, "77001112233").
		Return(&domain.User{
			ID: 1, Phone: "77001112233",
			VerificationSent: true,
			VerificationTime: time.Now().Unix(),
		}, nil)

	err := svc.StartVerification(context.Background(), "77001112233")
	assert.ErrorIs(t, err, ErrTooManyRequests)
	verifier.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestCheckVerification(t *testing.T) {
	svc, users, verifier := newTestAuth()
	users.On("GetByPhone", mock.Anything, "77001112233").
		Return(&domain.User{ID: 1, Phone: "77001112233", Role: domain.RoleClient, VerificationSent: true}, nil)
	verifier.On("Check", mock.Anything, "77001112233", "123456").Return(true, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)
	users.On("TouchLastLogin", mock.Anything, int64(1)).Return(nil)

	result, err := svc.CheckVerification(context.Background(), "77001112233", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.False(t, result.User.VerificationSent)
}

func TestCheckVerification_WrongCode(t *testing.T) {
	svc, users, verifier := newTestAuth()
	users.On("GetByPhone", mock.Anything, "77001112233").
		Return(&domain.User{ID: 1, Phone: "77001112233"}, nil)
	verifier.On("Check", mock.Anything, "77001112233", "000000").Return(false, nil)

	_, err := svc.CheckVerification(context.Background(), "77001112233", "000000")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	users.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything)
}

func TestRegisterClient_DuplicatePhone(t *testing.T) {
	svc, users, _ := newTestAuth()
	users.On("GetByPhone", mock.Anything, "77001112233").
		Return(&domain.User{ID: 1, Phone: "77001112233"}, nil)

	_, err := svc.RegisterClient(context.Background(), RegisterInput{Phone: "77001112233"})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestRegisterClient(t *testing.T) {
	svc, users, _ := newTestAuth()
	users.On("GetByPhone", mock.Anything, "77001112233").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleClient && u.PasswordHash == ""
	})).Return(nil)

	user, err := svc.RegisterClient(context.Background(), RegisterInput{
		Phone: "77001112233", Name: "Aruzhan", Email: "A@Example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	svc, users, _ := newTestAuth()
	users.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&domain.User{ID: 2, Email: "admin@example.com", Role: domain.RoleAdmin, PasswordHash: string(hash)}, nil)
	users.On("TouchLastLogin", mock.Anything, int64(2)).Return(nil)

	result, err := svc.AdminLogin(context.Background(), "Admin@Example.com", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)

	svc, users, _ := newTestAuth()
	users.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&domain.User{ID: 2, Role: domain.RoleAdmin, PasswordHash: string(hash)}, nil)

	_, err := svc.AdminLogin(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogin_ClientRoleRejected(t *testing.T) {
	svc, users, _ := newTestAuth()
	users.On("GetByEmail", mock.Anything, "user@example.com").
		Return(&domain.User{ID: 3, Role: domain.RoleClient}, nil)

	_, err := svc.AdminLogin(context.Background(), "user@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDevVerifier(t *testing.T) {
	v := DevVerifier{Code: "000000"}

	ok, err := v.Check(context.Background(), "700", "000000")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, _ = v.Check(context.Background(), "700", "123456")
	assert.False(t, ok)
}
