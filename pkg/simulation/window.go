package simulation

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Epoch is the simulated time of loop 0.
var Epoch = time.Unix(0, 0).UTC()

// Window tracks fixed-window boundaries on the simulated clock.
type Window struct {
	schedule cron.Schedule
	next     time.Time
}

// NewWindow builds the reset window for config. A ResetSchedule takes
// precedence; otherwise windows are ResetSteps() steps long.
func NewWindow(config Config) (*Window, error) {
	var schedule cron.Schedule
	if config.ResetSchedule != "" {
		s, err := parseSchedule(config.ResetSchedule)
		if err != nil {
			return nil, err
		}
		schedule = s
	} else {
		schedule = cron.Every(time.Duration(config.ResetSteps()) * config.StepDuration)
	}

	return &Window{
		schedule: schedule,
		next:     schedule.Next(Epoch),
	}, nil
}

// parseSchedule parses a standard cron spec. Specs without an explicit
// time zone are evaluated in UTC, the zone of the simulated clock.
func parseSchedule(spec string) (cron.Schedule, error) {
	if !strings.HasPrefix(spec, "TZ=") && !strings.HasPrefix(spec, "CRON_TZ=") {
		spec = "CRON_TZ=UTC " + spec
	}
	return cron.ParseStandard(spec)
}

// Due reports whether a window boundary has been reached at now, and if so
// advances to the following boundary. A schedule with no further activation
// is never due again.
func (w *Window) Due(now time.Time) bool {
	if w.next.IsZero() || now.Before(w.next) {
		return false
	}
	w.next = w.schedule.Next(now)
	return true
}

// Next returns the next boundary, or the zero time when the schedule has
// none left.
func (w *Window) Next() time.Time {
	return w.next
}

// stepTime converts a loop index to simulated time.
func stepTime(loop int, step time.Duration) time.Time {
	return Epoch.Add(time.Duration(loop) * step)
}
