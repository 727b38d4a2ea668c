package chart

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func salesSpec() Spec {
	return Spec{
		ID:     "sales",
		Type:   Line,
		Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug"},
		Datasets: []Dataset{{
			Label:  "Revenue ($K)",
			Data:   []float64{72, 84, 79, 95, 104, 113, 126, 139},
			Colors: []string{"#2563eb"},
		}},
		Options: Options{Scales: Scales{Y: Axis{TickFormat: "$%gk"}}},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Spec)
		wantErr string
	}{
		{"ok", func(*Spec) {}, ""},
		{"unknown type", func(s *Spec) { s.Type = "radar" }, "unknown type"},
		{"no datasets", func(s *Spec) { s.Datasets = nil }, "no datasets"},
		{"length mismatch", func(s *Spec) { s.Labels = s.Labels[:3] }, "8 values for 3 labels"},
		{"negative", func(s *Spec) { s.Datasets[0].Data[0] = -1 }, "negative value"},
		{"infinite", func(s *Spec) { s.Datasets[0].Data[0] = math.Inf(1) }, "non-finite value"},
		{"nan", func(s *Spec) { s.Datasets[0].Data[3] = math.NaN() }, "non-finite value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := salesSpec()
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestRenderLine(t *testing.T) {
	c, err := New(salesSpec(), Palette{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := c.Render(40, 6)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("Render produced %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "$139k") {
		t.Fatalf("top row %q missing peak tick", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "Jan") || !strings.Contains(lines[len(lines)-1], "Aug") {
		t.Fatalf("label row %q missing month labels", lines[len(lines)-1])
	}
}

func TestRenderBar(t *testing.T) {
	spec := Spec{
		ID:       "pipeline",
		Type:     Bar,
		Labels:   []string{"Prospect", "Qualified"},
		Datasets: []Dataset{{Data: []float64{50, 100}}},
		Options:  Options{Scales: Scales{Y: Axis{TickFormat: "$%gk"}}},
	}
	c, err := New(spec, Palette{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := c.Render(30, 10)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	half := strings.Count(lines[0], string(barFill))
	full := strings.Count(lines[1], string(barFill))
	if full == 0 || half*2 < full-1 || half*2 > full+1 {
		t.Fatalf("bar lengths %d and %d are not proportional to 50 and 100", half, full)
	}
	if !strings.HasSuffix(lines[1], "$100k") {
		t.Fatalf("line %q should end with its tick", lines[1])
	}
}

func TestRenderDoughnutLegend(t *testing.T) {
	spec := Spec{
		ID:       "lead",
		Type:     Doughnut,
		Labels:   []string{"Inbound", "Outbound", "Partners", "Events"},
		Datasets: []Dataset{{Data: []float64{42, 27, 18, 13}}},
		Options:  Options{Plugins: Plugins{Legend: Legend{Display: true, Position: "bottom"}}},
	}
	c, err := New(spec, Palette{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := c.Render(20, 10)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if got := strings.Count(lines[0], string(barFill)); got != 20 {
		t.Fatalf("band has %d cells, want 20", got)
	}
	for _, want := range []string{"Inbound", "42%", "Events", "13%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("legend missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAfterDestroy(t *testing.T) {
	c, err := New(salesSpec(), Palette{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Destroy()
	c.Destroy()
	if _, err := c.Render(10, 10); !errors.Is(err, ErrDestroyed) {
		t.Fatalf("Render after Destroy = %v, want ErrDestroyed", err)
	}
}

func TestMountDestroysPrevious(t *testing.T) {
	m := NewMounts()
	first, err := m.Mount("sales", salesSpec(), Palette{Text: "#000"})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	second, err := m.Mount("sales", salesSpec(), Palette{Text: "#fff"})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if !first.Destroyed() {
		t.Fatalf("first chart should be destroyed after remount")
	}
	if second.Destroyed() || m.Get("sales") != second {
		t.Fatalf("mount should hold the new live chart")
	}
	if m.Live() != 1 || m.Created() != 2 {
		t.Fatalf("Live=%d Created=%d, want 1 and 2", m.Live(), m.Created())
	}
}

func TestMountInvalidKeepsPrevious(t *testing.T) {
	m := NewMounts()
	first, err := m.Mount("sales", salesSpec(), Palette{})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	bad := salesSpec()
	bad.Type = "radar"
	if _, err := m.Mount("sales", bad, Palette{}); err == nil {
		t.Fatalf("Mount with bad spec returned nil error")
	}
	if first.Destroyed() || m.Get("sales") != first {
		t.Fatalf("failed mount must leave the previous chart live")
	}
}

func TestDestroyAll(t *testing.T) {
	m := NewMounts()
	a, _ := m.Mount("a", salesSpec(), Palette{})
	b, _ := m.Mount("b", salesSpec(), Palette{})
	if got := m.IDs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("IDs = %v, want [a b]", got)
	}
	m.DestroyAll()
	if !a.Destroyed() || !b.Destroyed() || m.Live() != 0 || len(m.IDs()) != 0 {
		t.Fatalf("DestroyAll left charts behind")
	}
}

func TestNew_RejectsInfiniteBar(t *testing.T) {
	spec := Spec{
		ID:       "deals",
		Type:     Bar,
		Labels:   []string{"a", "b"},
		Datasets: []Dataset{{Data: []float64{math.Inf(1), 3}}},
	}
	if c, err := New(spec, Palette{}); err == nil {
		t.Fatalf("New accepted +Inf, rendered %v", c)
	}
}

func TestMountNonFiniteKeepsPrevious(t *testing.T) {
	m := NewMounts()
	first, err := m.Mount("sales", salesSpec(), Palette{})
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	bad := salesSpec()
	bad.Datasets[0].Data[2] = math.NaN()
	if _, err := m.Mount("sales", bad, Palette{}); err == nil {
		t.Fatalf("Mount accepted NaN")
	}
	if first.Destroyed() || m.Live() != 1 || m.Created() != 1 {
		t.Fatalf("rejected remount must not tear down the live chart (Live=%d Created=%d)", m.Live(), m.Created())
	}
}
