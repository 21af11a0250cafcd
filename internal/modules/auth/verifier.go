package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

/* ---------- twilio ---------- */

// TwilioVerifier fronts the Twilio Verify API. Twilio holds the code and the
// expiry; we only relay start/check calls.
type TwilioVerifier struct {
	accountSID string
	authToken  string
	serviceSID string
	client     *http.Client
}

func NewTwilioVerifier(accountSID, authToken, serviceSID string) *TwilioVerifier {
	return &TwilioVerifier{
		accountSID: accountSID,
		authToken:  authToken,
		serviceSID: serviceSID,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *TwilioVerifier) Start(ctx context.Context, phone string) error {
	form := url.Values{"To": {phone}, "Channel": {"sms"}}
	resp, err := v.post(ctx, "Verifications", form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("verification start rejected: %s", resp.Status)
	}
	return nil
}

func (v *TwilioVerifier) Check(ctx context.Context, phone, code string) (bool, error) {
	form := url.Values{"To": {phone}, "Code": {code}}
	resp, err := v.post(ctx, "VerificationCheck", form)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	// 404 means the verification expired or never existed.
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= 300 {
		return false, fmt.Errorf("verification check rejected: %s", resp.Status)
	}
	// A wrong code still answers 200, with status "pending". Only an
	// explicit "approved" verifies.
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.Status == "approved", nil
}

func (v *TwilioVerifier) post(ctx context.Context, endpoint string, form url.Values) (*http.Response, error) {
	u := fmt.Sprintf("https://verify.twilio.com/v2/Services/%s/%s", v.serviceSID, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(v.accountSID, v.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return v.client.Do(req)
}

/* ---------- redis-backed ---------- */

// CodeVerifier generates its own codes, keeps them in redis under a TTL and
// delivers them through an SMSSender.
type CodeVerifier struct {
	rdb    *redis.Client
	sender SMSSender
	ttl    time.Duration
}

func NewCodeVerifier(rdb *redis.Client, sender SMSSender, ttl time.Duration) *CodeVerifier {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CodeVerifier{rdb: rdb, sender: sender, ttl: ttl}
}

func otpKey(phone string) string { return "otp:" + phone }

func (v *CodeVerifier) Start(ctx context.Context, phone string) error {
	code, err := numericCode(6)
	if err != nil {
		return err
	}
	if err := v.rdb.Set(ctx, otpKey(phone), code, v.ttl).Err(); err != nil {
		return err
	}
	return v.sender.Send(ctx, phone, "Your verification code: "+code)
}

func (v *CodeVerifier) Check(ctx context.Context, phone, code string) (bool, error) {
	stored, err := v.rdb.Get(ctx, otpKey(phone)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	v.rdb.Del(ctx, otpKey(phone))
	return true, nil
}

func numericCode(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		fmt.Fprint(&b, d)
	}
	return b.String(), nil
}

/* ---------- dev ---------- */

// DevVerifier accepts a single fixed code. Local and staging only.
type DevVerifier struct {
	Code string
}

func (v DevVerifier) Start(ctx context.Context, phone string) error {
	logrus.WithField("phone", phone).Info("dev verifier: start requested")
	return nil
}

func (v DevVerifier) Check(ctx context.Context, phone, code string) (bool, error) {
	return code == v.Code, nil
}

// LogSender writes messages to the log instead of sending SMS.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, phone, body string) error {
	logrus.WithField("phone", phone).Info(body)
	return nil
}
