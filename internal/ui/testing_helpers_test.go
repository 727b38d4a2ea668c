package ui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulse/internal/config"
	"github.com/five82/pulse/internal/crm"
)

// memStore is an in-memory Storage.
type memStore struct {
	values map[string]string
	err    error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *memStore) Set(key, value string) error {
	s.sets++
	s.values[key] = value
	return s.err
}

// firstSource always picks the first template.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func testSeed(t *testing.T) crm.Seed {
	t.Helper()
	seed, err := crm.LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	return seed
}

func testOptions(t *testing.T) Options {
	t.Helper()
	n := 0
	return Options{
		Config: config.Default(),
		Seed:   testSeed(t),
		Prefs:  newMemStore(),
		Random: firstSource{},
		NewID: func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		},
	}
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends each key in order and returns the final model and command.
func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

// typeText sends text one rune at a time.
func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = press(m, string(r))
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func teaWindow(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}
