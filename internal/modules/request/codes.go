package request

import "crypto/rand"

const (
	kindergartenCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	serviceCodeAlphabet      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewKindergartenCode returns a human order code like "K-7GQ2MX".
func NewKindergartenCode() string {
	return "K-" + randomCode(kindergartenCodeAlphabet, 6)
}

// NewServiceCode returns a human order code like "S-x9bQk2LmZ1".
func NewServiceCode() string {
	return "S-" + randomCode(serviceCodeAlphabet, 10)
}

func randomCode(alphabet string, n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure means the process is unusable
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
