// Package tuitest holds helpers for asserting on rendered views.
package tuitest

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update snapshot files")

// Plain strips ANSI sequences so views can be compared as text.
func Plain(view string) string {
	return ansi.Strip(view)
}

// AssertContains checks that the plain-text view contains every want.
func AssertContains(t *testing.T, view string, want ...string) {
	t.Helper()
	plain := Plain(view)
	for _, w := range want {
		assert.Contains(t, plain, w)
	}
}

// AssertNotContains checks that the plain-text view contains none of want.
func AssertNotContains(t *testing.T, view string, want ...string) {
	t.Helper()
	plain := Plain(view)
	for _, w := range want {
		assert.NotContains(t, plain, w)
	}
}

// AssertSnapshot compares the plain-text view against
// testdata/<test name>.snap. A missing snapshot is recorded on first run;
// -update rewrites existing ones.
func AssertSnapshot(t *testing.T, view string) {
	t.Helper()

	output := Plain(view)
	snapshotPath := filepath.Join("testdata", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))+".snap")

	snapshot, err := os.ReadFile(snapshotPath)
	if *update || os.IsNotExist(err) {
		require.NoError(t, os.MkdirAll(filepath.Dir(snapshotPath), 0755))
		require.NoError(t, os.WriteFile(snapshotPath, []byte(output), 0644))
		t.Logf("wrote snapshot: %s", snapshotPath)
		return
	}
	require.NoError(t, err)

	require.Equal(t, string(snapshot), output, "snapshot does not match. run with -update to update it.")
}
