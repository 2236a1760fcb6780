package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// restore puts the globals back after a test mutates them.
func restore(t *testing.T) {
	t.Helper()
	c, menu, debug := *C, Menu, Debug
	menu.Items = append([]string(nil), Menu.Items...)
	t.Cleanup(func() {
		*C, Menu, Debug = c, menu, debug
	})
}

func TestApplyDefaultTOMLMatchesBuiltins(t *testing.T) {
	restore(t)
	before := Menu

	require.NoError(t, Apply([]byte(DefaultTOML)))
	require.Equal(t, before.ItemSize, Menu.ItemSize)
	require.Equal(t, before.DurationMillis, Menu.DurationMillis)
	require.Equal(t, before.Gravity, Menu.Gravity)
	require.Equal(t, before.Items, Menu.Items)
	require.Equal(t, 640, C.Width)
}

func TestApplyOverrides(t *testing.T) {
	restore(t)

	doc := `
[window]
width = 800

[menu]
duration_ms = 0
gravity = "start"
language = "ar"
items = ["close", "like"]

[debug]
start_open = true
`
	require.NoError(t, Apply([]byte(doc)))
	require.Equal(t, 800, C.Width)
	require.Equal(t, 480, C.Height)
	require.Zero(t, Menu.DurationMillis)
	require.Equal(t, "start", Menu.Gravity)
	require.Equal(t, "ar", Menu.Language)
	require.Equal(t, []string{"close", "like"}, Menu.Items)
	require.True(t, Debug.StartOpen)
	require.Equal(t, 56.0, Menu.ItemSize)
}

func TestApplyRejectsBadInput(t *testing.T) {
	restore(t)

	require.ErrorContains(t, Apply([]byte("[menu]\nduration_ms = -1\n")), "must not be negative")
	require.ErrorContains(t, Apply([]byte("[menu]\nspeed = 3\n")), "unknown key")
	require.Error(t, Apply([]byte("[menu\n")))
}

func TestLoadFile(t *testing.T) {
	restore(t)
	dir := t.TempDir()

	require.NoError(t, LoadFile(filepath.Join(dir, "missing.toml")))

	path := filepath.Join(dir, "nested", "foldmenu.toml")
	require.NoError(t, WriteDefault(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultTOML, string(data))

	require.NoError(t, os.WriteFile(path, []byte("[menu]\ncurve = \"linear\"\n"), 0644))
	require.NoError(t, WriteDefault(path), "existing file is left alone")
	require.NoError(t, LoadFile(path))
	require.Equal(t, "linear", Menu.Curve)
}

func TestNextDuration(t *testing.T) {
	tests := []struct {
		current, delta, want int
	}{
		{100, 1, 200},
		{100, -1, 50},
		{800, 1, 0},
		{0, -1, 800},
		{120, 1, 200},
		{120, -1, 100},
		{5000, 1, 0},
		{5000, -1, 800},
		{-3, -1, 800},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NextDuration(tt.current, tt.delta), "from %d by %d", tt.current, tt.delta)
	}
}
