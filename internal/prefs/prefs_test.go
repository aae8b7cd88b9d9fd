package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolSignal(v bool) func() *bool {
	return func() *bool { return &v }
}

func noSignal() *bool { return nil }

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences.yaml")
}

func TestDefaultIsLight(t *testing.T) {
	s := NewStore(testPath(t), WithBackgroundSignal(noSignal))
	assert.False(t, s.IsDark(), "no stored value and no signal defaults to light")
}

func TestTerminalSignalUsedWhenNothingStored(t *testing.T) {
	s := NewStore(testPath(t), WithBackgroundSignal(boolSignal(true)))
	assert.True(t, s.IsDark(), "dark terminal background should select dark mode")

	s2 := NewStore(testPath(t), WithBackgroundSignal(boolSignal(false)))
	assert.False(t, s2.IsDark())
}

func TestStoredValueWinsOverSignal(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte("dark_mode: false\n"), 0644))

	s := NewStore(path, WithBackgroundSignal(boolSignal(true)))
	assert.False(t, s.IsDark(), "stored light preference must beat a dark terminal signal")
}

func TestStoredFalseIsNotTreatedAsAbsent(t *testing.T) {
	path := testPath(t)

	s := NewStore(path, WithBackgroundSignal(boolSignal(true)))
	require.NoError(t, s.Set(false))

	s2 := NewStore(path, WithBackgroundSignal(boolSignal(true)))
	assert.False(t, s2.IsDark())
}

func TestTogglePersistsSynchronously(t *testing.T) {
	path := testPath(t)

	s := NewStore(path, WithBackgroundSignal(noSignal))
	dark, err := s.Toggle()
	require.NoError(t, err)
	assert.True(t, dark, "light toggles to dark")

	// The value is on disk before Toggle returned.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dark_mode: true")

	// A fresh store hydrates the persisted value.
	s2 := NewStore(path, WithBackgroundSignal(noSignal))
	assert.True(t, s2.IsDark())
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	path := testPath(t)

	s := NewStore(path, WithBackgroundSignal(boolSignal(true)))
	initial := s.IsDark()

	_, err := s.Toggle()
	require.NoError(t, err)
	final, err := s.Toggle()
	require.NoError(t, err)

	assert.Equal(t, initial, final, "toggling twice restores the original value")

	s2 := NewStore(path, WithBackgroundSignal(noSignal))
	assert.Equal(t, initial, s2.IsDark(), "the round-tripped value is what persists")
}

func TestHydrateHappensOnce(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte("dark_mode: true\n"), 0644))

	s := NewStore(path, WithBackgroundSignal(noSignal))
	assert.True(t, s.IsDark())

	// Rewriting the file after hydration must not change the
	// in-memory value; hydration is once per process.
	require.NoError(t, os.WriteFile(path, []byte("dark_mode: false\n"), 0644))
	assert.True(t, s.IsDark())
}

func TestCorruptFileFallsBackToSignal(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not yaml::"), 0644))

	s := NewStore(path, WithBackgroundSignal(boolSignal(true)))
	assert.True(t, s.IsDark(), "a broken preference file degrades to the signal, not a crash")
}

func TestFileWithoutKeyFallsBack(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte("some_other_key: 7\n"), 0644))

	s := NewStore(path, WithBackgroundSignal(noSignal))
	assert.False(t, s.IsDark())
}

func TestToggleCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "preferences.yaml")

	s := NewStore(path, WithBackgroundSignal(noSignal))
	_, err := s.Toggle()
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
