package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/schematic/internal/app"
	"github.com/specialistvlad/schematic/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles writes files, keyed by slash-separated relative path, into a
// fresh temporary directory and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// HarnessResult holds the outcomes of an application test run.
type HarnessResult struct {
	LogOutput string
	Output    string
	Err       error
	App       *app.App
}

// LoadApp writes files to a temporary directory and creates an App over
// it with debug logging. Err is set when loading fails; App is nil then.
func LoadApp(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	root := WriteFiles(t, files)

	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: []string{root},
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	a, err := app.NewApp(out, logs, cfg, modules...)
	logOutput(t, logs)
	return &HarnessResult{
		LogOutput: logs.String(),
		Output:    out.String(),
		Err:       err,
		App:       a,
	}
}

// RunApp is LoadApp followed by App.Run.
func RunApp(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	root := WriteFiles(t, files)

	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: []string{root},
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	a, err := app.NewApp(out, logs, cfg, modules...)
	if err == nil {
		err = a.Run(context.Background())
	}
	logOutput(t, logs)
	return &HarnessResult{
		LogOutput: logs.String(),
		Output:    out.String(),
		Err:       err,
		App:       a,
	}
}

func logOutput(t *testing.T, logs *SafeBuffer) {
	t.Helper()
	if os.Getenv("SCHEMATIC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}
}
