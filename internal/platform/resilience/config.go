package resilience

import "time"

// CircuitBreakerConfig tunes the breaker in front of the ledger's document
// store. Only store outages count as failures; rejected writes do not.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// DefaultCircuitBreakerConfig opens after three consecutive outages and
// lets a single call through to test recovery, since one settlement batch
// is enough to tell whether the store accepts writes again.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      10 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

// LogFields renders the config as logger key/value pairs.
func (c CircuitBreakerConfig) LogFields() []any {
	return []any{
		"enabled", c.Enabled,
		"failure_threshold", c.FailureThreshold,
		"open_timeout", c.OpenTimeout.String(),
		"half_open_max_req", c.HalfOpenMaxReq,
	}
}
