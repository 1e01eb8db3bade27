package testutil

import (
	"testing"
	"time"
)

// TestContextAppliesTimeout verifies the context deadline never exceeds the
// requested timeout.
func TestContextAppliesTimeout(t *testing.T) {
	start := time.Now()
	ctx := Context(t, 2*time.Second)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if deadline.After(start.Add(2*time.Second + 100*time.Millisecond)) {
		t.Fatalf("deadline %v exceeds timeout", deadline.Sub(start))
	}
}

// TestContextAcceptsTB verifies helpers taking testing.TB can derive contexts.
func TestContextAcceptsTB(t *testing.T) {
	var tb testing.TB = t
	ctx := Context(tb, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if time.Until(deadline) > DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", time.Until(deadline))
	}
}
