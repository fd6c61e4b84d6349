// Package testing flips the runtime into test mode when imported for side
// effects by package tests, so mains skip startup and config defaults stay
// local.
package testing

import (
	"os"
	"sync"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("BACKOFFICE_TEST_MODE", "1")
		if os.Getenv("BLOBSTORE_BUCKET") == "" {
			_ = os.Setenv("BLOBSTORE_BUCKET", "backoffice-test")
		}
	})
}

func init() {
	ensureTestMode()
}
