package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/apperror"
)

var (
	ErrAlreadyVerified = apperror.Conflict("otp has already been verified")
	ErrExpired         = apperror.BadRequest("otp has expired")
	ErrInvalid         = apperror.Unauthorized("invalid otp")
	ErrMissing         = apperror.BadRequest("no otp has been issued for this booking")
)

type Config struct {
	Digits       int
	ResendWindow time.Duration
	PickupGrace  time.Duration
}

// Engine issues and checks the pickup codes shown to the parking in-charge.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Digits < 4 || cfg.Digits > 6 {
		cfg.Digits = 6
	}
	return &Engine{cfg: cfg}
}

// Generate returns a zero-padded numeric code of the configured length.
func (e *Engine) Generate() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < e.cfg.Digits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	code := n.String()
	for len(code) < e.cfg.Digits {
		code = "0" + code
	}
	return code, nil
}

// ExpirationTime is the short window used when a code is resent.
func (e *Engine) ExpirationTime(now time.Time) time.Time {
	return now.Add(e.cfg.ResendWindow)
}

// ExpirationForPickup keeps the code alive until the pickup moment plus the
// grace period, never measured from before now.
func (e *Engine) ExpirationForPickup(pickupDate, now time.Time) time.Time {
	anchor := pickupDate
	if anchor.Before(now) {
		anchor = now
	}
	return anchor.Add(e.cfg.PickupGrace)
}

func (e *Engine) ShouldRegenerate(currentExpiry *time.Time, newPickupDate time.Time) bool {
	if currentExpiry == nil {
		return true
	}
	return newPickupDate.After(*currentExpiry)
}

func (e *Engine) Verify(submitted, stored string, expiry *time.Time, alreadyVerified bool, now time.Time) error {
	if alreadyVerified {
		return ErrAlreadyVerified
	}
	if stored == "" {
		return ErrMissing
	}
	if expiry != nil && now.After(*expiry) {
		return ErrExpired
	}
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) != 1 {
		return ErrInvalid
	}
	return nil
}
