package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/config"
	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/logging"
	"github.com/five82/pulse/internal/prefs"
	"github.com/five82/pulse/internal/ui"
)

// Options configure the Pulse application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses prefs_path from config, then ~/.config/pulse/prefs.toml
	SeedPath   string // empty uses seed_path from config, then the built-in sample data
	Verbose    bool
}

// environment is everything loaded before the UI starts.
type environment struct {
	cfg    config.Config
	seed   crm.Seed
	prefs  *prefs.Store
	logger *zap.Logger
}

func load(opts Options) (environment, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return environment{}, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogPath, opts.Verbose)
	if err != nil {
		return environment{}, err
	}

	seedPath := firstNonEmpty(opts.SeedPath, cfg.SeedPath)
	seed, err := crm.LoadSeed(seedPath)
	if err != nil {
		return environment{}, fmt.Errorf("load seed: %w", err)
	}

	store := prefs.Open(firstNonEmpty(opts.PrefsPath, cfg.PrefsPath))

	logger.Debug("environment loaded",
		zap.String("prefs", store.Path()),
		zap.String("seed", seedPath),
		zap.Strings("panels", cfg.Panels),
		zap.Int("contacts", len(seed.Contacts)),
	)
	return environment{cfg: cfg, seed: seed, prefs: store, logger: logger}, nil
}

func (e environment) uiOptions() ui.Options {
	return ui.Options{
		Config: e.cfg,
		Seed:   e.seed,
		Prefs:  e.prefs,
		Logger: e.logger,
	}
}

// Run boots the Pulse TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := load(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	env.logger.Info("starting dashboard", zap.String("theme", env.prefs.Theme()))
	err = ui.Run(env.uiOptions(), tea.WithContext(ctx))
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		env.logger.Info("dashboard stopped", zap.Error(ctx.Err()))
		return nil
	}
	return err
}

// RenderFrame writes one static frame of the named view to w.
func RenderFrame(w io.Writer, opts Options, view string, width, height int) error {
	v, ok := ui.ParseView(view)
	if !ok {
		return fmt.Errorf("unknown view %q (want one of %s)", view, strings.Join(config.Panels(), ", "))
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	env, err := load(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	if !env.cfg.Enabled(v.Panel()) {
		return fmt.Errorf("view %q is not enabled in config", view)
	}

	uiOpts := env.uiOptions()
	uiOpts.StartView = v
	uiOpts.Static = true

	m := ui.New(uiOpts)
	defer m.Close()
	m.Init()
	frame, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})

	if _, err := fmt.Fprintln(w, frame.View()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
