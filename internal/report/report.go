// Package report renders simulation results for the terminal and for
// machine consumption.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vnykmshr/floodgate/pkg/simulation"
)

// Format is an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// Scenario is the human-facing description of a simulation config.
type Scenario struct {
	Hours              float64  `json:"hours" yaml:"hours"`
	Budget             int      `json:"budget" yaml:"budget"`
	ResetHours         float64  `json:"reset_hours" yaml:"reset_hours"`
	ResetSchedule      string   `json:"reset_schedule,omitempty" yaml:"reset_schedule,omitempty"`
	IntervalHours      float64  `json:"interval_hours" yaml:"interval_hours"`
	HearingProbability float64  `json:"hearing_probability" yaml:"hearing_probability"`
	BadActors          int      `json:"bad_actors" yaml:"bad_actors"`
	EscapeCost         int      `json:"escape_cost" yaml:"escape_cost"`
	Repeaters          []string `json:"repeaters" yaml:"repeaters"`
	Seed               uint64   `json:"seed" yaml:"seed"`
}

// Document is everything one invocation produced.
type Document struct {
	Scenario Scenario             `json:"scenario" yaml:"scenario"`
	Runs     []*simulation.Report `json:"runs" yaml:"runs"`
	Summary  simulation.Summary   `json:"summary" yaml:"summary"`
}

// NewDocument collects reports and their summary under the scenario that
// produced them.
func NewDocument(config simulation.Config, reports []*simulation.Report) *Document {
	repeaters := make([]string, len(config.Repeaters))
	for i, a := range config.Repeaters {
		repeaters[i] = fmt.Sprintf("0x%02X", a)
	}

	return &Document{
		Scenario: Scenario{
			Hours:              config.Duration.Hours(),
			Budget:             config.Capacity,
			ResetHours:         config.ResetPeriod.Hours(),
			ResetSchedule:      config.ResetSchedule,
			IntervalHours:      config.StepDuration.Hours(),
			HearingProbability: config.HearingProbability,
			BadActors:          config.BadActors,
			EscapeCost:         config.EscapeCost,
			Repeaters:          repeaters,
			Seed:               config.Seed,
		},
		Runs:    reports,
		Summary: simulation.Summarize(reports),
	}
}

// Formatter renders a document.
type Formatter interface {
	Format(doc *Document) (string, error)
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// Write renders doc in format to w.
func Write(w io.Writer, format Format, doc *Document) error {
	out, err := NewFormatter(format).Format(doc)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// Banner describes the scenario before the runs.
func Banner(s Scenario) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Simulating %s hours...\n", formatHours(s.Hours))
	fmt.Fprintf(&b, "\tBudget  : %d\n", s.Budget)
	if s.ResetSchedule != "" {
		fmt.Fprintf(&b, "\tReset   : %s\n", s.ResetSchedule)
	} else {
		fmt.Fprintf(&b, "\tReset   : %sh\n", formatHours(s.ResetHours))
	}
	fmt.Fprintf(&b, "\tInterval: %sh\n", formatHours(s.IntervalHours))
	fmt.Fprintf(&b, "\tHears   : %s%%\n", formatHours(s.HearingProbability*100))
	if s.BadActors > 0 {
		fmt.Fprintf(&b, "\tBad     : %d\n", s.BadActors)
	}
	return b.String()
}

// formatHours prints h with at most six decimals and no trailing zeros.
func formatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*1e6)/1e6, 'f', -1, 64)
}

func percent(reduction float64) string {
	return fmt.Sprintf("-%.0f%%", reduction*100)
}
