package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/benchcheck/internal/manifest"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App backed by the HCL manifest loader, returning
// buffers for its plan output and its debug logs.
func SetupAppTest(t *testing.T, config *Config) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	config.LogLevel = "debug"
	testApp := NewApp(out, logs, config, manifest.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("BENCHCHECK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
