package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/seedgen/internal/app"
	"github.com/vk/seedgen/internal/hcl"
	"github.com/vk/seedgen/internal/seed"
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

// HarnessResult holds the outcomes of a generator run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
	Dir       string
}

// RunGenerator runs gen with the given positional values in a fresh temporary
// output directory.
func RunGenerator(t *testing.T, gen *seed.Generator, args ...string) *HarnessResult {
	t.Helper()
	return RunGeneratorInDir(t, t.TempDir(), gen, &app.Config{Args: args})
}

// RunGeneratorWithSeedFile writes content to a seed file and runs gen with it.
func RunGeneratorWithSeedFile(t *testing.T, gen *seed.Generator, name, content string) *HarnessResult {
	t.Helper()

	seedPath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(seedPath, []byte(content), 0600))

	return RunGeneratorInDir(t, t.TempDir(), gen, &app.Config{SeedFile: seedPath})
}

// RunGeneratorInDir runs gen with cfg, writing into dir. Logging is forced to
// debug level so failures can be diagnosed from LogOutput.
func RunGeneratorInDir(t *testing.T, dir string, gen *seed.Generator, cfg *app.Config) *HarnessResult {
	t.Helper()

	cfg.OutputDir = dir
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	stdout := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	testApp := app.NewApp(stdout, logBuffer, cfg, gen, hcl.NewLoader())
	runErr := testApp.Run(context.Background())

	if os.Getenv("SEEDGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Dir:       dir,
	}
}
