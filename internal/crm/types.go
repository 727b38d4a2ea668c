package crm

import (
	"fmt"
	"strings"
)

// Stage is a position in the sales pipeline.
type Stage string

const (
	StageProspect    Stage = "Prospect"
	StageQualified   Stage = "Qualified"
	StageDiscovery   Stage = "Discovery"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageClosed      Stage = "Closed"
)

// Stages returns every stage in pipeline order.
func Stages() []Stage {
	return []Stage{StageProspect, StageQualified, StageDiscovery, StageProposal, StageNegotiation, StageClosed}
}

// ParseStage matches a stage name case-insensitively.
func ParseStage(value string) (Stage, error) {
	value = strings.TrimSpace(value)
	for _, s := range Stages() {
		if strings.EqualFold(string(s), value) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", value)
}

// Contact is one row of the sample contact table.
type Contact struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Company      string `yaml:"company"`
	Email        string `yaml:"email"`
	Stage        Stage  `yaml:"stage"`
	Value        int64  `yaml:"value"` // whole dollars
	LastActivity string `yaml:"last_activity"`
}

// Task is a to-do list entry.
type Task struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Done  bool   `yaml:"done"`
}

// ActivityEntry is one line of the activity feed.
type ActivityEntry struct {
	Actor     string `yaml:"actor"`
	Action    string `yaml:"action"`
	TimeLabel string `yaml:"time"`
}

// Initials returns up to two uppercase initials of the actor's name.
func (a ActivityEntry) Initials() string {
	var initials []rune
	for _, word := range strings.Fields(a.Actor) {
		if len(initials) == 2 {
			break
		}
		initials = append(initials, []rune(strings.ToUpper(word))[0])
	}
	return string(initials)
}

// MetricFormat selects how a KPI value is rendered.
type MetricFormat string

const (
	FormatNumber   MetricFormat = "number"
	FormatCurrency MetricFormat = "currency"
	FormatPercent  MetricFormat = "percent"
)

// Metric is a KPI tile animated from zero to Target.
type Metric struct {
	Key    string       `yaml:"key"`
	Label  string       `yaml:"label"`
	Target float64      `yaml:"target"`
	Format MetricFormat `yaml:"format"`
	Trend  string       `yaml:"trend"`
}

// Deal is a card on the pipeline board.
type Deal struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Company string `yaml:"company"`
	Value   int64  `yaml:"value"`
	Stage   Stage  `yaml:"stage"`
}
