package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"photoorders/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// resendCooldown guards the verification endpoint against rapid re-requests
// for the same phone.
const resendCooldown = 60 * time.Second

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users    UserRepositoryInterface
	jwt      jwtService
	verifier Verifier
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepositoryInterface, jwt jwtService, verifier Verifier) *Service {
	return &Service{users: users, jwt: jwt, verifier: verifier}
}

// StartVerification kicks off an OTP round for a registered phone.
func (s *Service) StartVerification(ctx context.Context, phone string) error {
	phone = normalizePhone(phone)

	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.VerificationSent && time.Since(time.Unix(user.VerificationTime, 0)) < resendCooldown {
		return ErrTooManyRequests
	}

	if err := s.verifier.Start(ctx, phone); err != nil {
		return err
	}

	user.VerificationSent = true
	user.VerificationTime = time.Now().Unix()
	return s.users.Update(ctx, user)
}

// CheckVerification turns a correct OTP into a session token.
func (s *Service) CheckVerification(ctx context.Context, phone, code string) (*LoginResult, error) {
	phone = normalizePhone(phone)

	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ok, err := s.verifier.Check(ctx, phone, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVerificationFailed
	}

	user.VerificationSent = false
	user.VerificationTime = 0
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token}, nil
}

// Exists reports whether a phone already has an account. The client app uses
// it to choose between the register and login screens.
func (s *Service) Exists(ctx context.Context, phone string) (bool, error) {
	_, err := s.users.GetByPhone(ctx, normalizePhone(phone))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RegisterClient creates a phone-login account. No password: the OTP round
// is the credential.
func (s *Service) RegisterClient(ctx context.Context, in RegisterInput) (*domain.User, error) {
	phone := normalizePhone(in.Phone)

	exists, err := s.Exists(ctx, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPhoneAlreadyExists
	}

	user := &domain.User{
		Phone: phone,
		Name:  in.Name,
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Role:  domain.RoleClient,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminLogin authenticates an administrator by email and password.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Role != domain.RoleAdmin || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

// ListUsers is the admin user browser. Filter and sort pairs outside the
// repository allow-lists are dropped, not rejected.
func (s *Service) ListUsers(ctx context.Context, filter, sort map[string]string, skip, limit int) ([]domain.User, error) {
	return s.users.List(ctx, filter, sort, skip, limit)
}

func (s *Service) CountUsers(ctx context.Context, filter map[string]string) (int64, error) {
	return s.users.Count(ctx, filter)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func normalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// HashPassword is used by the seeder when provisioning admin accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
