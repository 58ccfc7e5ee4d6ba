package ratelimiter

import "time"

type Limiter interface {
	// Allow reports whether key may proceed and, when it may not, how long
	// until its window resets.
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
