package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPhoneAlreadyExists = errors.New("phone already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrVerificationFailed = errors.New("verification failed")
	ErrTooManyRequests    = errors.New("verification recently sent")
)
