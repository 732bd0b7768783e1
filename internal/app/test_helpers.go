package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/flowgraph/internal/config"
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

// SetupAppTest creates an app whose output and error streams are captured.
// A nil cfg selects config.Default().
func SetupAppTest(t *testing.T, cfg *config.Config) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}
	outBuf, errBuf := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(outBuf, errBuf, cfg)

	t.Cleanup(func() {
		if os.Getenv("FLOWGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), errBuf.String())
		}
	})

	return testApp, outBuf, errBuf
}
