package auth

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedTransport struct {
	status   int
	body     string
	lastURL  string
	lastForm string
}

func (t *cannedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.lastURL = req.URL.String()
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		t.lastForm = string(b)
	}
	return &http.Response{
		StatusCode: t.status,
		Status:     http.StatusText(t.status),
		Body:       io.NopCloser(strings.NewReader(t.body)),
		Header:     make(http.Header),
	}, nil
}

func newTwilioWithCanned(status int, body string) (*TwilioVerifier, *cannedTransport) {
	transport := &cannedTransport{status: status, body: body}
	v := NewTwilioVerifier("AC123", "token", "VA456")
	v.client = &http.Client{Transport: transport, Timeout: time.Second}
	return v, transport
}

func TestTwilioCheckWrongCodeStaysPending(t *testing.T) {
	// Twilio answers 200 for a wrong code too; only the body says "pending".
	v, _ := newTwilioWithCanned(http.StatusOK, `{"status":"pending","valid":false}`)

	ok, err := v.Check(context.Background(), "77001112233", "999999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTwilioCheckApproved(t *testing.T) {
	v, transport := newTwilioWithCanned(http.StatusOK, `{"status":"approved","valid":true}`)

	ok, err := v.Check(context.Background(), "77001112233", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, transport.lastURL, "/Services/VA456/VerificationCheck")
	assert.Contains(t, transport.lastForm, "Code=123456")
}

func TestTwilioCheckExpiredVerification(t *testing.T) {
	v, _ := newTwilioWithCanned(http.StatusNotFound, `{"code":20404}`)

	ok, err := v.Check(context.Background(), "77001112233", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTwilioCheckServerError(t *testing.T) {
	v, _ := newTwilioWithCanned(http.StatusTooManyRequests, `{"code":60203}`)

	ok, err := v.Check(context.Background(), "77001112233", "123456")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestTwilioStartRejected(t *testing.T) {
	v, _ := newTwilioWithCanned(http.StatusBadRequest, `{"code":60200}`)

	err := v.Start(context.Background(), "not-a-phone")
	assert.Error(t, err)
}
