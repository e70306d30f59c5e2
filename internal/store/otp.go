package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOTP = errors.New("otp provided is incorrect")
	ErrOTPExpired = errors.New("otp has expired")
)

type (
	// OTPAttempt is a single registration verification attempt. Each
	// sendOtp call issues a fresh attempt; codes are scoped to their
	// attempt, not shared globally.
	OTPAttempt struct {
		AttemptID string
		Code      string
		IssuedAt  time.Time
		ExpiresAt time.Time
	}

	OTPStore interface {
		Issue(code string) OTPAttempt
		Consume(attemptID, code string) error
	}

	inMemoryOTPs struct {
		mu       sync.Mutex
		ttl      time.Duration
		attempts map[string]OTPAttempt
		now      func() time.Time
	}
)

func (otps *inMemoryOTPs) Issue(code string) OTPAttempt {
	otps.mu.Lock()
	defer otps.mu.Unlock()

	issuedAt := otps.now()
	attempt := OTPAttempt{
		AttemptID: uuid.NewString(),
		Code:      code,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(otps.ttl),
	}
	otps.attempts[attempt.AttemptID] = attempt
	return attempt
}

// Consume compares and invalidates atomically. A matching code deletes
// the attempt so it cannot be replayed; a wrong code leaves it in place
// for retry until expiry.
func (otps *inMemoryOTPs) Consume(attemptID, code string) error {
	otps.mu.Lock()
	defer otps.mu.Unlock()

	attempt, exists := otps.attempts[attemptID]
	if !exists {
		return ErrInvalidOTP
	}

	if otps.now().After(attempt.ExpiresAt) {
		delete(otps.attempts, attemptID)
		return ErrOTPExpired
	}

	if attempt.Code != code {
		return ErrInvalidOTP
	}

	delete(otps.attempts, attemptID)
	return nil
}

func NewOTPStore(ttl time.Duration) OTPStore {
	return &inMemoryOTPs{
		ttl:      ttl,
		attempts: make(map[string]OTPAttempt),
		now:      time.Now,
	}
}
