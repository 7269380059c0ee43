package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow("https://google.serper.dev/search") {
			allowed++
		}
	}

	if allowed != 3 {
		t.Errorf("Expected burst of 3 allowed, got %d", allowed)
	}
}

func TestLimiter_ZeroRateFallsBackToDefaults(t *testing.T) {
	l := NewLimiter(0, 0)

	// A zero-valued config must not stall requests once the burst is
	// spent; waits past the default burst clear at the default rate
	for i := 0; i < 4; i++ {
		if !l.Allow("https://zero.example.com/x") {
			t.Fatalf("Expected request %d within default burst allowed", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := l.Wait(ctx, "https://zero.example.com/x"); err != nil {
		t.Errorf("Expected wait to clear at the default rate, got %v", err)
	}
}

func TestLimiter_HostsAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://a.example.com/x") {
		t.Fatal("Expected first request to host a allowed")
	}
	if l.Allow("https://a.example.com/y") {
		t.Error("Expected second request to host a throttled")
	}
	if !l.Allow("https://b.example.com/x") {
		t.Error("Expected request to host b unaffected")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetHostRate("fast.example.com", 100, 10)

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.Allow("https://fast.example.com/x") {
			allowed++
		}
	}
	if allowed != 10 {
		t.Errorf("Expected 10 allowed with raised burst, got %d", allowed)
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)

	// Exhaust the burst so the next wait would block for a long time
	if err := l.Wait(context.Background(), "https://slow.example.com"); err != nil {
		t.Fatalf("First wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://slow.example.com"); err == nil {
		t.Error("Expected context error for blocked wait")
	}
}
