//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWithCountries(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateWorkspace()
	require.NoError(t, err, "Failed to create workspace")

	path, err := tf.WriteOptions("countries.txt", "india\tIndia\nusa\tUSA\nfrance\tFrance\n")
	require.NoError(t, err, "Failed to write options")

	require.NoError(t, tf.StartApp(append([]string{path, "--title", "Countries"}, args...)...))
	require.True(t, tf.Ready(), "app should report ready")
	require.True(t, tf.SeePlain("Countries"), "Should show title")
	require.True(t, tf.SeePlain("Select All"), "Should show select all control")
	return tf
}

func TestUncheckOneClearsSelectAll(t *testing.T) {
	t.Parallel()
	tf := startWithCountries(t, "--all")

	require.True(t, tf.SeePlain("3/3 selected"))
	require.True(t, tf.SeePlain("[x] Select All"))

	tf.Down()
	tf.Down()
	tf.Select()

	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "2/3 selected")
	}, 2*time.Second, "usa should be unchecked"))
	require.True(t, tf.SeePlain("[ ] Select All"))
}

func TestToggleAllThenAccept(t *testing.T) {
	t.Parallel()
	tf := startWithCountries(t)

	tf.ToggleAll()
	require.True(t, tf.SeePlain("Selected all 3 options"))

	tf.Enter()
	require.True(t, tf.SeePlain("india\nusa\nfrance"), "Accepted selection should be printed")
}

func TestQuitPrintsNothing(t *testing.T) {
	t.Parallel()
	tf := startWithCountries(t, "--all")

	tf.Quit()
	time.Sleep(300 * time.Millisecond)

	// labels are capitalised, only the exit report prints bare names
	require.NotContains(t, tf.SnapshotPlain(), "france")
}
