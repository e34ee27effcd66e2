package testsupport

import (
	"testing"

	"atelier/internal/config"
	"atelier/internal/store"
)

// MustOpenStore opens the store for cfg and fails the test on error.
// The store is closed automatically when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()
	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
