// Package prefs persists small user preferences as a flat TOML table.
// Preferences are stored in ~/.config/pulse/prefs.toml.
package prefs

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ThemeKey holds the selected color theme.
const ThemeKey = "theme"

// Theme names accepted under ThemeKey.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const defaultPrefsPath = "~/.config/pulse/prefs.toml"

// Store is a string key-value store backed by a TOML file. A store whose
// file is missing or unreadable starts empty.
type Store struct {
	path   string
	values map[string]string
}

// Open reads the store at path, or the default path when empty. It never
// fails: a missing or corrupt file yields an empty store.
func Open(path string) *Store {
	s := &Store{values: map[string]string{}}

	resolved, err := resolvePath(path)
	if err != nil {
		return s
	}
	s.path = resolved

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return s
	}

	raw := map[string]any{}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return s
	}
	for k, v := range raw {
		if str, ok := v.(string); ok {
			s.values[k] = str
		}
	}
	return s
}

// Path is the resolved file backing the store, empty when none could be
// resolved.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and writes the file, creating directories as
// needed. The in-memory value is updated even when the write fails.
func (s *Store) Set(key, value string) error {
	s.values[key] = value
	if s.path == "" {
		return fmt.Errorf("resolve path: no preferences file")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(maps.Clone(s.values))
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(s.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Theme resolves the stored theme: "dark" selects dark, anything else light.
func (s *Store) Theme() string {
	v, _ := s.Get(ThemeKey)
	return ResolveTheme(v)
}

// ResolveTheme maps a stored value to ThemeDark or ThemeLight.
func ResolveTheme(value string) string {
	if strings.TrimSpace(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
