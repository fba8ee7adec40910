package resilience

import (
	"errors"
	"testing"
	"time"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }
func succeeding() error { return nil }

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := NewBreaker(3, time.Minute)

	for i := 0; i < 3; i++ {
		if err := b.Execute(failing); !errors.Is(err, errBoom) {
			t.Fatalf("call %d: err = %v, want %v", i, err, errBoom)
		}
	}

	if got := b.State(); got != StateOpen {
		t.Fatalf("state = %q, want %q", got, StateOpen)
	}
	if err := b.Execute(succeeding); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("err = %v, want ErrCircuitOpen", err)
	}
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(3, time.Minute)

	_ = b.Execute(failing)
	_ = b.Execute(failing)
	_ = b.Execute(succeeding)
	_ = b.Execute(failing)
	_ = b.Execute(failing)

	if got := b.State(); got != StateClosed {
		t.Fatalf("state = %q, want %q", got, StateClosed)
	}
}

func TestBreakerProbesAfterCooldown(t *testing.T) {
	current := time.Unix(1000, 0)
	b := NewBreaker(1, 30*time.Second)
	b.now = func() time.Time { return current }

	_ = b.Execute(failing)
	if err := b.Execute(succeeding); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("before cooldown: err = %v, want ErrCircuitOpen", err)
	}

	current = current.Add(31 * time.Second)

	// The probe is admitted and its success closes the circuit.
	if err := b.Execute(succeeding); err != nil {
		t.Fatalf("probe: err = %v, want nil", err)
	}
	if got := b.State(); got != StateClosed {
		t.Fatalf("state = %q, want %q", got, StateClosed)
	}
}

func TestBreakerFailedProbeReopens(t *testing.T) {
	current := time.Unix(1000, 0)
	b := NewBreaker(1, 30*time.Second)
	b.now = func() time.Time { return current }

	_ = b.Execute(failing)
	current = current.Add(31 * time.Second)

	if err := b.Execute(failing); !errors.Is(err, errBoom) {
		t.Fatalf("probe: err = %v, want %v", err, errBoom)
	}
	if got := b.State(); got != StateOpen {
		t.Fatalf("state = %q, want %q", got, StateOpen)
	}
	if err := b.Execute(succeeding); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("after failed probe: err = %v, want ErrCircuitOpen", err)
	}
}
