// Package testutil runs the application end to end against definition files
// written into a temporary directory.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/sdvars/internal/app"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// WriteFiles writes files, keyed by slash-separated relative path, under a
// fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// RunIntegrationTest writes files and runs the app over the directory with
// cfg. cfg.Path is overwritten. Set SDVARS_TEST_LOGS=true to print the log.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	cfg.Path = WriteFiles(t, files)

	a, out, logs := app.SetupAppTest(t, cfg)
	err := a.Run(context.Background())

	if os.Getenv("SDVARS_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}
	return &HarnessResult{Output: out.String(), LogOutput: logs.String(), Err: err}
}
