package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Policy holds the booking business rules that vary per deployment.
type Policy struct {
	AdvancePercentage     float64       `yaml:"advance_percentage"`
	MaxRescheduleCount    int           `yaml:"max_reschedule_count"`
	DefaultLateFeeRate    float64       `yaml:"default_late_fee_rate"`
	OTPDigits             int           `yaml:"otp_digits"`
	OTPResendWindow       time.Duration `yaml:"otp_resend_window"`
	OTPPickupGrace        time.Duration `yaml:"otp_pickup_grace"`
	TopupCacheTTL         time.Duration `yaml:"topup_cache_ttl"`
	OverdueSweepSchedule  string        `yaml:"overdue_sweep_schedule"`
	OverdueSweepBatchSize int           `yaml:"overdue_sweep_batch_size"`
}

func DefaultPolicy() Policy {
	return Policy{
		AdvancePercentage:     0.30,
		MaxRescheduleCount:    3,
		DefaultLateFeeRate:    0.10,
		OTPDigits:             6,
		OTPResendWindow:       10 * time.Minute,
		OTPPickupGrace:        24 * time.Hour,
		TopupCacheTTL:         5 * time.Minute,
		OverdueSweepSchedule:  "0 */15 * * * *",
		OverdueSweepBatchSize: 200,
	}
}

// LoadPolicy starts from DefaultPolicy and overlays the YAML file at path.
// An empty path returns the defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read policy file: %w", err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse policy file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid policy: %w", err)
	}
	return p, nil
}

func (p Policy) Validate() error {
	if p.AdvancePercentage <= 0 || p.AdvancePercentage >= 1 {
		return errors.New("advance_percentage must be between 0 and 1")
	}
	if p.MaxRescheduleCount < 0 {
		return errors.New("max_reschedule_count cannot be negative")
	}
	if p.DefaultLateFeeRate < 0 {
		return errors.New("default_late_fee_rate cannot be negative")
	}
	if p.OTPDigits < 4 || p.OTPDigits > 6 {
		return errors.New("otp_digits must be between 4 and 6")
	}
	if p.OTPResendWindow <= 0 || p.OTPPickupGrace < 0 {
		return errors.New("otp windows must be positive")
	}
	if p.OverdueSweepBatchSize <= 0 {
		return errors.New("overdue_sweep_batch_size must be positive")
	}
	return nil
}
