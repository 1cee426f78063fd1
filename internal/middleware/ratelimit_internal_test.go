package middleware

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestIPLimitersBoundedByCacheSize(t *testing.T) {
	l, err := newIPLimiters(rate.Limit(1.0/60.0), 1, 2)
	if err != nil {
		t.Fatalf("newIPLimiters: %v", err)
	}

	first := l.get("10.0.0.1")
	if !first.Allow() {
		t.Fatal("fresh limiter should allow the first request")
	}
	if first.Allow() {
		t.Fatal("burst of 1 should be spent after one request")
	}

	// Two newer clients push the first one out of the size-2 cache.
	l.get("10.0.0.2")
	l.get("10.0.0.3")

	if got := l.cache.Len(); got != 2 {
		t.Errorf("cache len = %d, want 2", got)
	}
	if _, ok := l.cache.Get("10.0.0.1"); ok {
		t.Error("least recently seen client not evicted")
	}

	// The evicted client comes back with a fresh limiter and budget.
	again := l.get("10.0.0.1")
	if again == first {
		t.Error("evicted client kept its old limiter")
	}
	if !again.Allow() {
		t.Error("re-admitted client should get a fresh budget")
	}
}
