package crm

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/pulse/internal/chart"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the full sample dataset the dashboard starts from.
type Seed struct {
	Contacts          []Contact       `yaml:"contacts"`
	Tasks             []Task          `yaml:"tasks"`
	Activity          []ActivityEntry `yaml:"activity"`
	ActivityTemplates []ActivityEntry `yaml:"activity_templates"`
	Metrics           []Metric        `yaml:"metrics"`
	Deals             []Deal          `yaml:"deals"`
	Charts            []chart.Spec    `yaml:"charts"`
}

// LoadSeed reads the seed document at path, or the embedded sample data when
// path is empty.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed: %w", err)
		}
		data = raw
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, fmt.Errorf("invalid seed: %w", err)
	}
	return seed, nil
}

// Validate checks the invariants the dashboard components rely on and
// normalizes stage spelling in place.
func (s *Seed) Validate() error {
	var errs []error

	seen := make(map[int]bool, len(s.Contacts))
	for i := range s.Contacts {
		c := &s.Contacts[i]
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("contact %d: duplicate id", c.ID))
		}
		seen[c.ID] = true
		if c.Value < 0 {
			errs = append(errs, fmt.Errorf("contact %d: negative value %d", c.ID, c.Value))
		}
		stage, err := ParseStage(string(c.Stage))
		if err != nil {
			errs = append(errs, fmt.Errorf("contact %d: %w", c.ID, err))
			continue
		}
		c.Stage = stage
	}

	for i, t := range s.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("task %d: empty title", i))
		}
	}

	if len(s.ActivityTemplates) == 0 {
		errs = append(errs, errors.New("activity_templates: at least one template required"))
	}

	dealIDs := make(map[string]bool, len(s.Deals))
	for i := range s.Deals {
		d := &s.Deals[i]
		if d.ID == "" || dealIDs[d.ID] {
			errs = append(errs, fmt.Errorf("deal %d: missing or duplicate id %q", i, d.ID))
		}
		dealIDs[d.ID] = true
		stage, err := ParseStage(string(d.Stage))
		if err != nil {
			errs = append(errs, fmt.Errorf("deal %q: %w", d.ID, err))
			continue
		}
		d.Stage = stage
	}

	for i, m := range s.Metrics {
		switch m.Format {
		case FormatNumber, FormatCurrency, FormatPercent:
		case "":
			s.Metrics[i].Format = FormatNumber
		default:
			errs = append(errs, fmt.Errorf("metric %q: unknown format %q", m.Key, m.Format))
		}
	}

	for _, c := range s.Charts {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
