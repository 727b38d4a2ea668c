package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/config"
	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/feed"
	"github.com/five82/pulse/internal/prefs"
)

// View identifies one dashboard pane.
type View int

const (
	ViewOverview View = iota
	ViewContacts
	ViewTasks
	ViewPipeline
	ViewActivity
)

var viewPanels = map[View]string{
	ViewOverview: config.PanelOverview,
	ViewContacts: config.PanelContacts,
	ViewTasks:    config.PanelTasks,
	ViewPipeline: config.PanelPipeline,
	ViewActivity: config.PanelActivity,
}

// Panel is the config name of the pane.
func (v View) Panel() string {
	return viewPanels[v]
}

// Title is the label shown in tabs and the menu.
func (v View) Title() string {
	p := v.Panel()
	if p == "" {
		return ""
	}
	return strings.ToUpper(p[:1]) + p[1:]
}

// ParseView maps a panel name to its view.
func ParseView(name string) (View, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, p := range viewPanels {
		if p == name {
			return v, true
		}
	}
	return 0, false
}

// Storage is the key-value store the theme preference is kept in.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Options configures the UI.
type Options struct {
	Config    config.Config
	Seed      crm.Seed
	Prefs     Storage
	Logger    *zap.Logger
	Random    feed.Source   // nil uses a seeded PCG source
	NewID     func() string // nil uses random UUIDs
	StartView View
	// Static renders finished counters and schedules no timers.
	Static bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	cfg    config.Config
	prefs  Storage
	logger *zap.Logger
	keys   keyMap
	static bool

	// UI state
	theme    Theme
	views    []View
	current  int
	width    int
	height   int
	ready    bool
	showHelp bool
	menu     menuState
	status   string

	// Panes; nil when not enabled
	overview *overviewPane
	contacts *contactsPane
	tasks    *tasksPane
	pipeline *pipelinePane
	activity *activityPane
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		logger.Debug("using default config", zap.Error(err))
		cfg = config.Default()
	}

	themeName := prefs.ThemeLight
	if opts.Prefs != nil {
		if v, ok := opts.Prefs.Get(prefs.ThemeKey); ok {
			themeName = v
		}
	}

	m := Model{
		cfg:    cfg,
		prefs:  opts.Prefs,
		logger: logger,
		keys:   DefaultKeyMap(),
		static: opts.Static,
		theme:  GetTheme(themeName),
	}

	for _, v := range []View{ViewOverview, ViewContacts, ViewTasks, ViewPipeline, ViewActivity} {
		if !cfg.Enabled(v.Panel()) {
			continue
		}
		m.views = append(m.views, v)
		switch v {
		case ViewOverview:
			m.overview = newOverviewPane(opts.Seed.Metrics, opts.Seed.Charts, cfg, logger)
		case ViewContacts:
			m.contacts = newContactsPane(opts.Seed.Contacts, cfg.PageSize)
		case ViewTasks:
			var taskOpts []feed.TaskOption
			if opts.NewID != nil {
				taskOpts = append(taskOpts, feed.WithIDGenerator(opts.NewID))
			}
			m.tasks = newTasksPane(feed.NewTasks(opts.Seed.Tasks, taskOpts...))
		case ViewPipeline:
			m.pipeline = newPipelinePane(opts.Seed.Deals)
		case ViewActivity:
			actOpts := []feed.ActivityOption{
				feed.WithCapacity(cfg.ActivityCapacity),
				feed.WithVisible(cfg.ActivityVisible),
			}
			if opts.Random != nil {
				actOpts = append(actOpts, feed.WithSource(opts.Random))
			}
			m.activity = newActivityPane(
				feed.NewActivity(opts.Seed.Activity, opts.Seed.ActivityTemplates, actOpts...),
				cfg.ActivityInterval,
			)
		}
	}
	m.selectView(opts.StartView)

	logger.Debug("ui model created",
		zap.String("theme", m.theme.Name),
		zap.Int("panes", len(m.views)),
	)
	return m
}

// Init implements tea.Model. It (re)starts every pane's timers; calling it
// again replaces the running timers instead of adding to them.
func (m Model) Init() tea.Cmd {
	if m.static {
		m.overview.settle(m.theme)
		return nil
	}
	return tea.Batch(
		m.overview.init(m.theme),
		m.activity.init(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case counterTickMsg:
		return m, m.overview.handleTick(msg)

	case activityTickMsg:
		cmd := m.activity.handleTick(msg)
		if cmd != nil {
			m.logger.Debug("activity inserted", zap.Int("entries", m.activity.feed.Len()))
		}
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.menu.open {
		return m.renderMenu()
	}

	return m.renderMain()
}

// CurrentView returns the focused pane, false when no pane is enabled.
func (m Model) CurrentView() (View, bool) {
	if len(m.views) == 0 {
		return 0, false
	}
	return m.views[m.current], true
}

// ThemeName is the active theme.
func (m Model) ThemeName() string {
	return m.theme.Name
}

// Close stops every timer and tears down mounted charts.
func (m Model) Close() {
	m.overview.dispose()
	m.activity.dispose()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.menu.open {
		return m.handleMenuKey(msg)
	}

	// Text inputs swallow every key until they are closed
	if view, ok := m.CurrentView(); ok {
		switch {
		case view == ViewContacts && m.contacts.searching:
			return m, m.handleContactsSearchKey(msg)
		case view == ViewTasks && m.tasks.adding:
			return m, m.handleTaskFormKey(msg)
		}
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.menu.openAt(m.current)
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleView(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleView(-1)
		return m, nil
	}

	view, ok := m.CurrentView()
	if !ok {
		return m, nil
	}
	switch view {
	case ViewContacts:
		return m, m.handleContactsKey(msg)
	case ViewTasks:
		return m, m.handleTasksKey(msg)
	case ViewPipeline:
		return m, m.handlePipelineKey(msg)
	}
	return m, nil
}

// toggleTheme flips between light and dark, persists the choice and
// re-creates the charts with the new palette.
func (m *Model) toggleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.logger.Info("theme changed", zap.String("theme", m.theme.Name))

	if m.prefs != nil {
		if err := m.prefs.Set(prefs.ThemeKey, m.theme.Name); err != nil {
			m.logger.Warn("save theme preference", zap.Error(err))
			m.status = "Theme not saved"
		}
	}

	m.overview.mountCharts(m.theme)
}

func (m *Model) cycleView(delta int) {
	if len(m.views) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.views)) % len(m.views)
}

func (m *Model) selectView(v View) bool {
	for i, candidate := range m.views {
		if candidate == v {
			m.current = i
			return true
		}
	}
	return false
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent(m.width, max(m.height-headerHeight, 0)))

	return b.String()
}

// renderContent renders the focused pane.
func (m Model) renderContent(width, height int) string {
	view, ok := m.CurrentView()
	if !ok {
		msg := m.theme.Styles().MutedText.Render("No panels enabled. Add some to the panels list in config.toml.")
		return placeCenter(width, height, msg)
	}
	switch view {
	case ViewOverview:
		return m.renderOverview(width, height)
	case ViewContacts:
		return m.renderContacts(width, height)
	case ViewTasks:
		return m.renderTasks(width, height)
	case ViewPipeline:
		return m.renderPipeline(width, height)
	case ViewActivity:
		return m.renderActivity(width, height)
	default:
		return ""
	}
}

// Messages

// counterTickMsg advances the KPI counters. gen ties it to one animation run.
type counterTickMsg struct{ gen int }

// activityTickMsg inserts one synthetic activity entry. gen ties it to one
// activity timer.
type activityTickMsg struct{ gen int }

// Commands

func counterTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return counterTickMsg{gen: gen}
	})
}

func activityTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return activityTickMsg{gen: gen}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	m := New(opts)
	defer m.Close()
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...)
	_, err := p.Run()
	return err
}
