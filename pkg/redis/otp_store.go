package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultOTPTTL is how long a stored passcode stays valid. Redis evicts the
// key after the TTL, so verification can never accept a stale code.
const DefaultOTPTTL = 5 * time.Minute

// OTPStore keeps one pending passcode per email in Redis. A resend simply
// overwrites the previous code (last write wins).
type OTPStore struct {
	ttl time.Duration
}

var (
	setOTPValue = Set
	getOTPValue = Get
	delOTPValue = Del
)

// NewOTPStore creates a new OTP store with the given TTL
func NewOTPStore(ttl time.Duration) *OTPStore {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPStore{ttl: ttl}
}

// Save stores a passcode for an email, overwriting any pending one
func (s *OTPStore) Save(ctx context.Context, email, code string) error {
	return setOTPValue(ctx, "otp:"+email, code, s.ttl)
}

// Get returns the pending passcode for an email. The second return value is
// false when no code is pending (never issued, consumed, or expired).
func (s *OTPStore) Get(ctx context.Context, email string) (string, bool, error) {
	code, err := getOTPValue(ctx, "otp:"+email)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return code, true, nil
}

// Delete removes the pending passcode for an email
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	return delOTPValue(ctx, "otp:"+email)
}
