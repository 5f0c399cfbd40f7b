package middleware

import (
	"testing"
	"time"
)

func TestFixedWindowLimiter(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewFixedWindowLimiter(time.Minute, 5)
	limiter.now = func() time.Time { return current }

	for i := 1; i <= 5; i++ {
		result := limiter.Check("1.2.3.4")
		if !result.Allowed {
			t.Fatalf("Check() call %d denied; expected allowed", i)
		}
		if result.Remaining != 5-i {
			t.Errorf("Check() call %d remaining = %d; expected %d", i, result.Remaining, 5-i)
		}
	}

	result := limiter.Check("1.2.3.4")
	if result.Allowed {
		t.Error("Check() call 6 allowed; expected denied")
	}
	if result.Remaining != 0 {
		t.Errorf("Check() call 6 remaining = %d; expected 0", result.Remaining)
	}
	expectedReset := current.Add(time.Minute)
	if !result.ResetTime.Equal(expectedReset) {
		t.Errorf("Check() reset time = %v; expected %v", result.ResetTime, expectedReset)
	}
}

func TestFixedWindowLimiterReset(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewFixedWindowLimiter(time.Minute, 2)
	limiter.now = func() time.Time { return current }

	limiter.Check("key")
	limiter.Check("key")
	if limiter.Check("key").Allowed {
		t.Error("Check() over limit allowed; expected denied")
	}

	current = current.Add(time.Minute + time.Second)
	result := limiter.Check("key")
	if !result.Allowed {
		t.Error("Check() after window expiry denied; expected allowed")
	}
	if result.Remaining != 1 {
		t.Errorf("Check() after reset remaining = %d; expected 1", result.Remaining)
	}
}

func TestFixedWindowLimiterIndependentKeys(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewFixedWindowLimiter(time.Minute, 1)
	limiter.now = func() time.Time { return current }

	if !limiter.Check("a").Allowed {
		t.Error("Check(a) denied; expected allowed")
	}
	if limiter.Check("a").Allowed {
		t.Error("Check(a) second call allowed; expected denied")
	}
	if !limiter.Check("b").Allowed {
		t.Error("Check(b) denied; expected allowed")
	}
}

func TestFixedWindowLimiterCleanup(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewFixedWindowLimiter(time.Minute, 5)
	limiter.now = func() time.Time { return current }

	limiter.Check("stale")
	current = current.Add(3 * time.Minute)
	limiter.Check("fresh")
	limiter.cleanup()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, exists := limiter.windows["stale"]; exists {
		t.Error("cleanup() kept stale window; expected removal")
	}
	if _, exists := limiter.windows["fresh"]; !exists {
		t.Error("cleanup() removed fresh window; expected retention")
	}
}
