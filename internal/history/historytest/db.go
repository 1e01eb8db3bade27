// Package historytest opens throwaway history stores for tests.
package historytest

import (
	"testing"
	"time"

	"quizmd/internal/history"
	"quizmd/internal/testutil"
)

const defaultTimeout = 5 * time.Second

// Open opens an in-memory store and closes it when the test ends.
func Open(t testing.TB) *history.Store {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	store, err := history.Open(ctx, history.MemoryPath)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
