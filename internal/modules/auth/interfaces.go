package auth

import (
	"context"

	"photoorders/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
	List(ctx context.Context, filter map[string]string, sort map[string]string, skip, limit int) ([]domain.User, error)
	Count(ctx context.Context, filter map[string]string) (int64, error)
}

// Verifier starts and checks phone number verifications. Implementations:
// TwilioVerifier (hosted), CodeVerifier (redis-backed codes), DevVerifier
// (fixed code for local work).
type Verifier interface {
	Start(ctx context.Context, phone string) error
	Check(ctx context.Context, phone, code string) (bool, error)
}

// SMSSender delivers a text message. CodeVerifier uses it to push generated
// codes; tests and dev setups plug in a logger.
type SMSSender interface {
	Send(ctx context.Context, phone, body string) error
}
