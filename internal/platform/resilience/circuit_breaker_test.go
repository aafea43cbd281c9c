package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteCountsOnlyMatchingFailures(t *testing.T) {
	errDown := errors.New("store down")
	errRejected := errors.New("row rejected")

	var transitions []string
	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{FailureThreshold: 2, OpenTimeout: time.Second, HalfOpenMaxReq: 1}).
		WithFailurePredicate(func(err error) bool { return errors.Is(err, errDown) }).
		WithStateChange(func(from, to CircuitState) {
			transitions = append(transitions, string(from)+"->"+string(to))
		})

	for i := 0; i < 3; i++ {
		if err := b.Execute(func() error { return errRejected }); !errors.Is(err, errRejected) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("rejections must not open the breaker, got %s", state)
	}

	_ = b.Execute(func() error { return errDown })
	_ = b.Execute(func() error { return errDown })
	if err := b.Execute(func() error { return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if len(transitions) != 1 || transitions[0] != "closed->open" {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("NormalizeCircuitBreakerConfig()=%+v want=%+v", got, want)
	}
}

func TestCircuitBreakerConfig_LogFields(t *testing.T) {
	fields := DefaultCircuitBreakerConfig().LogFields()
	want := []any{"enabled", true, "failure_threshold", 3, "open_timeout", "10s", "half_open_max_req", 1}
	if len(fields) != len(want) {
		t.Fatalf("LogFields()=%v want=%v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("LogFields()[%d]=%v want=%v", i, fields[i], want[i])
		}
	}
}
