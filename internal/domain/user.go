package domain

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// User is either a phone-verified client or an email/password administrator.
// Clients never carry a password hash; admins never go through OTP.
type User struct {
	ID               int64      `json:"id"`
	Phone            string     `json:"phone" gorm:"uniqueIndex" validate:"required,numeric,min=9"`
	Email            string     `json:"email,omitempty"`
	PasswordHash     string     `json:"-"`
	Name             string     `json:"name,omitempty"`
	Role             UserRole   `json:"role"`
	VerificationSent bool       `json:"-"`
	VerificationTime int64      `json:"-"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// UserOrder links a user to a request they placed. The append is best-effort
// after the request write; a missing row is an accepted inconsistency.
type UserOrder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" gorm:"index"`
	RequestID string    `json:"request_id"`
	CreatedAt time.Time `json:"created_at"`
}
