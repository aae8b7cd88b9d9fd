// Package prefs persists user preferences that survive restarts.
// Today that is a single durable boolean: whether the UI renders in
// dark mode.
//
// Resolution order on first read: a stored value always wins; with
// nothing stored, the terminal background signal decides; with no
// usable signal, light mode is the default.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// prefsFile is the on-disk shape. DarkMode is a pointer so an absent
// key is distinguishable from a stored "false".
type prefsFile struct {
	DarkMode *bool `yaml:"dark_mode"`
}

// Store reads and writes the preference file. Like the session state,
// reads and toggles are confined to the UI update loop; hydration is
// additionally guarded so it runs at most once per process.
type Store struct {
	path    string
	signal  func() *bool
	hydrate sync.Once
	dark    bool
}

// Option configures a Store.
type Option func(*Store)

// WithBackgroundSignal replaces the terminal background detector.
// Tests use this to script the OS-level signal.
func WithBackgroundSignal(signal func() *bool) Option {
	return func(s *Store) {
		s.signal = signal
	}
}

// DefaultPath returns the standard preference file location,
// ~/.leaseguard/preferences.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".leaseguard", "preferences.yaml"), nil
}

// NewStore creates a Store backed by the file at path. Nothing is read
// until the first IsDark or Toggle call.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		signal: terminalBackgroundSignal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// terminalBackgroundSignal reports whether the terminal background is
// dark, or nil when stdout is not a terminal and no signal exists.
func terminalBackgroundSignal() *bool {
	info, err := os.Stdout.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return nil
	}
	dark := termenv.HasDarkBackground()
	return &dark
}

// IsDark returns the effective dark-mode preference, hydrating from
// disk on first use.
func (s *Store) IsDark() bool {
	s.hydrate.Do(s.load)
	return s.dark
}

// load resolves the preference: stored value, then terminal signal,
// then light.
func (s *Store) load() {
	if stored := s.readStored(); stored != nil {
		s.dark = *stored
		return
	}
	if sig := s.signal(); sig != nil {
		s.dark = *sig
		return
	}
	s.dark = false
}

// readStored returns the persisted value, or nil when the file is
// missing, unreadable, or has no dark_mode key. A broken preference
// file degrades to the defaults instead of failing startup.
func (s *Store) readStored() *bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var pf prefsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil
	}
	return pf.DarkMode
}

// Toggle flips the preference, persists it synchronously, and returns
// the new value. The write happens before Toggle returns so a crash
// immediately after still finds the flipped value on restart.
func (s *Store) Toggle() (bool, error) {
	s.hydrate.Do(s.load)
	s.dark = !s.dark
	if err := s.persist(); err != nil {
		return s.dark, err
	}
	return s.dark, nil
}

// Set stores an explicit value, persisting synchronously.
func (s *Store) Set(dark bool) error {
	s.hydrate.Do(s.load)
	s.dark = dark
	return s.persist()
}

func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(prefsFile{DarkMode: &s.dark})
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
