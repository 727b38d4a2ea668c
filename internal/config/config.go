package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pulse/internal/kpi"
)

// Panel names a dashboard pane that can be enabled.
const (
	PanelOverview = "overview"
	PanelContacts = "contacts"
	PanelTasks    = "tasks"
	PanelPipeline = "pipeline"
	PanelActivity = "activity"
)

// Panels returns every pane in display order.
func Panels() []string {
	return []string{PanelOverview, PanelContacts, PanelTasks, PanelPipeline, PanelActivity}
}

// Config holds the dashboard settings.
type Config struct {
	PageSize         int
	ActivityInterval time.Duration
	ActivityCapacity int
	ActivityVisible  int
	CounterSteps     int
	CounterDuration  time.Duration
	LogPath          string
	SeedPath         string
	PrefsPath        string
	Panels           []string
}

const (
	defaultConfigPath       = "~/.config/pulse/config.toml"
	defaultPageSize         = 5
	defaultActivityInterval = 7 * time.Second
	defaultActivityCapacity = 12
	defaultActivityVisible  = 6
)

// Default returns the built-in settings with every pane enabled.
func Default() Config {
	return Config{
		PageSize:         defaultPageSize,
		ActivityInterval: defaultActivityInterval,
		ActivityCapacity: defaultActivityCapacity,
		ActivityVisible:  defaultActivityVisible,
		CounterSteps:     kpi.DefaultSteps,
		CounterDuration:  kpi.DefaultDuration,
		Panels:           Panels(),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PageSize          int      `toml:"page_size"`
		ActivityInterval  int      `toml:"activity_interval_seconds"`
		ActivityCapacity  int      `toml:"activity_capacity"`
		ActivityVisible   int      `toml:"activity_visible"`
		CounterSteps      int      `toml:"counter_steps"`
		CounterDurationMS int      `toml:"counter_duration_ms"`
		LogPath           string   `toml:"log_path"`
		SeedPath          string   `toml:"seed_path"`
		PrefsPath         string   `toml:"prefs_path"`
		Panels            []string `toml:"panels"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.PageSize != 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.ActivityInterval != 0 {
		cfg.ActivityInterval = time.Duration(raw.ActivityInterval) * time.Second
	}
	if raw.ActivityCapacity != 0 {
		cfg.ActivityCapacity = raw.ActivityCapacity
	}
	if raw.ActivityVisible != 0 {
		cfg.ActivityVisible = raw.ActivityVisible
	}
	if raw.CounterSteps != 0 {
		cfg.CounterSteps = raw.CounterSteps
	}
	if raw.CounterDurationMS != 0 {
		cfg.CounterDuration = time.Duration(raw.CounterDurationMS) * time.Millisecond
	}
	for _, p := range []struct {
		key string
		raw string
		dst *string
	}{
		{"log_path", raw.LogPath, &cfg.LogPath},
		{"seed_path", raw.SeedPath, &cfg.SeedPath},
		{"prefs_path", raw.PrefsPath, &cfg.PrefsPath},
	} {
		expanded, err := expandOptional(p.raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %s: %w", resolved, p.key, err)
		}
		*p.dst = expanded
	}
	if raw.Panels != nil {
		cfg.Panels = normalizePanels(raw.Panels)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.ActivityInterval <= 0 {
		errs = append(errs, fmt.Errorf("activity_interval_seconds must be positive"))
	}
	if c.ActivityCapacity < 1 {
		errs = append(errs, fmt.Errorf("activity_capacity must be positive, got %d", c.ActivityCapacity))
	}
	if c.ActivityVisible < 1 || c.ActivityVisible > c.ActivityCapacity {
		errs = append(errs, fmt.Errorf("activity_visible must be between 1 and %d, got %d", c.ActivityCapacity, c.ActivityVisible))
	}
	if c.CounterSteps < 1 {
		errs = append(errs, fmt.Errorf("counter_steps must be positive, got %d", c.CounterSteps))
	}
	if c.CounterDuration <= 0 {
		errs = append(errs, fmt.Errorf("counter_duration_ms must be positive"))
	}
	for _, p := range c.Panels {
		if !slices.Contains(Panels(), p) {
			errs = append(errs, fmt.Errorf("unknown panel %q", p))
		}
	}
	return errors.Join(errs...)
}

// Enabled reports whether the named pane is turned on.
func (c Config) Enabled(panel string) bool {
	return slices.Contains(c.Panels, panel)
}

func normalizePanels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// expandOptional expands path, leaving an empty path empty.
func expandOptional(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	return expandPath(path)
}

// expandPath resolves ~ and relative paths to an absolute path.
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
