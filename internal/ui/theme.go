package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pulse/internal/chart"
	"github.com/five82/pulse/internal/crm"
	"github.com/five82/pulse/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Pane body
	FocusBg    string // Focused pane body

	// Table colors
	SelectionBg   string // Selected row background
	SelectionText string // Selected row text

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Pipeline stage colors
	StageColors map[crm.Stage]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		stageColors: t.StageColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	stageColors map[crm.Stage]string
	background  string
	muted       string
}

// StageStyle returns a badge style for a pipeline stage.
func (s Styles) StageStyle(stage crm.Stage) lipgloss.Style {
	color := s.stageColors[stage]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),

		Header:   s.Header.Background(bg),
		Logo:     s.Logo.Background(bg),
		Selected: s.Selected,

		stageColors: s.stageColors,
		background:  s.background,
		muted:       s.muted,
	}
}

// ChartPalette is the subset of colors charts read when they are created.
func (t Theme) ChartPalette() chart.Palette {
	return chart.Palette{Text: t.Text, Muted: t.Muted, Grid: t.Border}
}

// GetTheme returns the theme for a stored preference value. Only "dark"
// selects the dark theme.
func GetTheme(name string) Theme {
	if prefs.ResolveTheme(name) == prefs.ThemeDark {
		return darkTheme()
	}
	return lightTheme()
}

// NextTheme returns the other theme name.
func NextTheme(current string) string {
	if prefs.ResolveTheme(current) == prefs.ThemeDark {
		return prefs.ThemeLight
	}
	return prefs.ThemeDark
}

func lightTheme() Theme {
	// Tailwind CSS Slate/Blue palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f8fafc", // slate-50
		Surface:    "#ffffff", // white
		SurfaceAlt: "#f1f5f9", // slate-100
		FocusBg:    "#e2e8f0", // slate-200

		SelectionBg:   "#2563eb", // blue-600
		SelectionText: "#ffffff",

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#2563eb", // blue-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Accent:  "#2563eb", // blue-600
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600
		Info:    "#0891b2", // cyan-600

		StageColors: map[crm.Stage]string{
			crm.StageProspect:    "#64748b", // slate-500
			crm.StageQualified:   "#0891b2", // cyan-600
			crm.StageDiscovery:   "#7c3aed", // violet-600
			crm.StageProposal:    "#2563eb", // blue-600
			crm.StageNegotiation: "#d97706", // amber-600
			crm.StageClosed:      "#16a34a", // green-600
		},
	}
}

func darkTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548", // between slate-800 and slate-700

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StageColors: map[crm.Stage]string{
			crm.StageProspect:    "#64748b", // slate-500
			crm.StageQualified:   "#22d3ee", // cyan-400
			crm.StageDiscovery:   "#a78bfa", // violet-400
			crm.StageProposal:    "#38bdf8", // sky-400
			crm.StageNegotiation: "#f59e0b", // amber-500
			crm.StageClosed:      "#22c55e", // green-500
		},
	}
}
