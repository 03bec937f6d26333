package middleware

import (
	"testing"
	"time"
)

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}
	if limiter.Allow("1.2.3.4") {
		t.Error("expected the fourth request to be rejected")
	}

	// Other clients have their own window.
	if !limiter.Allow("5.6.7.8") {
		t.Error("expected a different IP to be allowed")
	}
}

func TestIPRateLimiterWindowExpiry(t *testing.T) {
	limiter := NewIPRateLimiter(1, 20*time.Millisecond)

	if !limiter.Allow("1.2.3.4") {
		t.Fatal("expected the first request to be allowed")
	}
	if limiter.Allow("1.2.3.4") {
		t.Fatal("expected the second request to be rejected")
	}

	time.Sleep(30 * time.Millisecond)

	if !limiter.Allow("1.2.3.4") {
		t.Error("expected a request after the window to be allowed")
	}
}
