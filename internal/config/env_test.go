package config

import (
	"os"
	"testing"
)

// unsetForTest removes key for the duration of the test, restoring the
// previous value on cleanup.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	previous, had := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetting %s: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, previous)
		}
	})
}
