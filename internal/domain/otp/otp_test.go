package otp

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(Config{Digits: 6, ResendWindow: 10 * time.Minute, PickupGrace: 24 * time.Hour})
}

func TestGenerate(t *testing.T) {
	for _, digits := range []int{4, 5, 6} {
		e := NewEngine(Config{Digits: digits})
		re := regexp.MustCompile(fmt.Sprintf("^[0-9]{%d}$", digits))
		for i := 0; i < 50; i++ {
			code, err := e.Generate()
			require.NoError(t, err)
			assert.Regexp(t, re, code)
		}
	}

	t.Run("out of range digits fall back to six", func(t *testing.T) {
		code, err := NewEngine(Config{Digits: 12}).Generate()
		require.NoError(t, err)
		assert.Len(t, code, 6)
	})
}

func TestExpiration(t *testing.T) {
	e := newTestEngine()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(10*time.Minute), e.ExpirationTime(now))

	t.Run("future pickup anchors the expiry", func(t *testing.T) {
		pickup := now.Add(72 * time.Hour)
		assert.Equal(t, pickup.Add(24*time.Hour), e.ExpirationForPickup(pickup, now))
	})

	t.Run("past pickup anchors on now", func(t *testing.T) {
		pickup := now.Add(-2 * time.Hour)
		assert.Equal(t, now.Add(24*time.Hour), e.ExpirationForPickup(pickup, now))
	})
}

func TestShouldRegenerate(t *testing.T) {
	e := newTestEngine()
	expiry := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		pickup time.Time
		want   bool
	}{
		{"earlier pickup keeps code", expiry.Add(-48 * time.Hour), false},
		{"pickup equal to expiry keeps code", expiry, false},
		{"later pickup regenerates", expiry.Add(time.Minute), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ShouldRegenerate(&expiry, tt.pickup))
		})
	}

	assert.True(t, e.ShouldRegenerate(nil, expiry))
}

func TestVerify(t *testing.T) {
	e := newTestEngine()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Second)

	assert.NoError(t, e.Verify("123456", "123456", &future, false, now))
	assert.ErrorIs(t, e.Verify("123456", "123456", &future, true, now), ErrAlreadyVerified)
	assert.ErrorIs(t, e.Verify("123456", "123456", &past, false, now), ErrExpired)
	assert.ErrorIs(t, e.Verify("654321", "123456", &future, false, now), ErrInvalid)
	assert.ErrorIs(t, e.Verify("123456", "", &future, false, now), ErrMissing)

	t.Run("already verified wins over expiry", func(t *testing.T) {
		assert.ErrorIs(t, e.Verify("000000", "123456", &past, true, now), ErrAlreadyVerified)
	})
}
