// Package config resolves floodsim settings from defaults, an optional YAML
// file, FLOODSIM_ environment variables, flags and positional arguments, in
// increasing order of precedence.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vnykmshr/floodgate/pkg/simulation"
)

// EnvPrefix is prepended to every environment variable, e.g. FLOODSIM_BUDGET.
const EnvPrefix = "FLOODSIM"

// Setting keys. Flags, env variables and file keys share these names.
const (
	KeyBudget             = "budget"
	KeyResetHours         = "reset-hours"
	KeyBadActors          = "bad-actors"
	KeyResetSchedule      = "reset-schedule"
	KeyHearingProbability = "hearing-probability"
	KeyDuration           = "duration"
	KeyStep               = "step"
	KeyGoodActorPeriod    = "good-actor-period"
	KeyEscapeCost         = "escape-cost"
	KeyRepeaters          = "repeaters"
	KeyRuns               = "runs"
	KeySeed               = "seed"
	KeyParallelism        = "parallelism"
	KeyFormat             = "format"
	KeyMetrics            = "metrics"
	KeyVerbose            = "verbose"
)

// Settings is everything a floodsim invocation needs.
type Settings struct {
	Simulation simulation.Config
	Format     string
	Metrics    bool
	Verbose    bool
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	d := simulation.DefaultConfig()
	v.SetDefault(KeyBudget, d.Capacity)
	v.SetDefault(KeyResetHours, d.ResetPeriod.Hours())
	v.SetDefault(KeyBadActors, d.BadActors)
	v.SetDefault(KeyResetSchedule, "")
	v.SetDefault(KeyHearingProbability, d.HearingProbability)
	v.SetDefault(KeyDuration, d.Duration)
	v.SetDefault(KeyStep, d.StepDuration)
	v.SetDefault(KeyGoodActorPeriod, d.GoodActorPeriod)
	v.SetDefault(KeyEscapeCost, d.EscapeCost)
	v.SetDefault(KeyRepeaters, formatAddresses(d.Repeaters))
	v.SetDefault(KeyRuns, d.Runs)
	v.SetDefault(KeyParallelism, 0)
	v.SetDefault(KeyFormat, "table")
	v.SetDefault(KeyMetrics, false)
	v.SetDefault(KeyVerbose, false)
}

// RegisterFlags adds every setting to fs. Flag defaults are only shown in
// help; the values themselves come from New's defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := simulation.DefaultConfig()
	fs.Int(KeyBudget, d.Capacity, "tokens per originator per reset window (0-254)")
	fs.Float64(KeyResetHours, d.ResetPeriod.Hours(), "hours between budget resets")
	fs.Int(KeyBadActors, d.BadActors, "number of repeaters that advertise every step")
	fs.String(KeyResetSchedule, "", `cron schedule for resets on the simulated clock, e.g. "@every 6h"`)
	fs.Float64(KeyHearingProbability, d.HearingProbability, "chance a repeater hears an advertisement")
	fs.Duration(KeyDuration, d.Duration, "simulated time per run")
	fs.Duration(KeyStep, d.StepDuration, "simulated time per step")
	fs.Duration(KeyGoodActorPeriod, d.GoodActorPeriod, "advertisement interval of well-behaved repeaters")
	fs.Int(KeyEscapeCost, d.EscapeCost, "extra packets per advertisement that escapes the cluster")
	fs.StringSlice(KeyRepeaters, formatAddresses(d.Repeaters), "repeater addresses (hex)")
	fs.Int(KeyRuns, d.Runs, "number of independent runs")
	fs.Uint64(KeySeed, 0, "base seed; run i uses seed+i (default: time based)")
	fs.Int(KeyParallelism, 0, "concurrent runs (default: min(runs, GOMAXPROCS))")
	fs.StringP(KeyFormat, "o", "table", "output format: table, json or yaml")
	fs.Bool(KeyMetrics, false, "print collected Prometheus metrics after the runs")
}

// ReadFile merges the YAML file at path into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load resolves Settings from v and the positional args
// [budget] [reset-hours] [bad-actors]. Positionals override everything else;
// a non-numeric positional is ignored with a warning.
func Load(v *viper.Viper, args []string, logger *zap.Logger) (*Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repeaters, err := parseAddresses(v.Get(KeyRepeaters))
	if err != nil {
		return nil, err
	}

	sim := simulation.Config{
		Capacity:           v.GetInt(KeyBudget),
		ResetPeriod:        hours(v.GetFloat64(KeyResetHours)),
		ResetSchedule:      v.GetString(KeyResetSchedule),
		BadActors:          v.GetInt(KeyBadActors),
		HearingProbability: v.GetFloat64(KeyHearingProbability),
		Duration:           v.GetDuration(KeyDuration),
		StepDuration:       v.GetDuration(KeyStep),
		GoodActorPeriod:    v.GetDuration(KeyGoodActorPeriod),
		EscapeCost:         v.GetInt(KeyEscapeCost),
		Repeaters:          repeaters,
		Runs:               v.GetInt(KeyRuns),
		Parallelism:        v.GetInt(KeyParallelism),
	}

	if v.IsSet(KeySeed) {
		sim.Seed = v.GetUint64(KeySeed)
	} else {
		sim.Seed = uint64(time.Now().UnixNano())
	}

	applyPositionals(&sim, args, logger)

	if err := sim.Validate(); err != nil {
		return nil, err
	}

	return &Settings{
		Simulation: sim,
		Format:     v.GetString(KeyFormat),
		Metrics:    v.GetBool(KeyMetrics),
		Verbose:    v.GetBool(KeyVerbose),
	}, nil
}

func applyPositionals(sim *simulation.Config, args []string, logger *zap.Logger) {
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			sim.Capacity = n
		} else {
			logger.Warn("Ignoring non-numeric budget", zap.String("value", args[0]), zap.Int("using", sim.Capacity))
		}
	}
	if len(args) > 1 {
		if h, err := strconv.ParseFloat(args[1], 64); err == nil && !math.IsNaN(h) && !math.IsInf(h, 0) {
			sim.ResetPeriod = hours(h)
			if sim.ResetSchedule != "" {
				logger.Warn("Reset schedule takes precedence over reset hours",
					zap.String("value", args[1]), zap.String("schedule", sim.ResetSchedule))
			}
		} else {
			logger.Warn("Ignoring non-numeric reset hours", zap.String("value", args[1]), zap.Duration("using", sim.ResetPeriod))
		}
	}
	if len(args) > 2 {
		if n, err := strconv.Atoi(args[2]); err == nil {
			sim.BadActors = n
		} else {
			logger.Warn("Ignoring non-numeric bad actor count", zap.String("value", args[2]), zap.Int("using", sim.BadActors))
		}
	}
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func formatAddresses(addresses []uint8) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = fmt.Sprintf("0x%02X", a)
	}
	return out
}

// parseAddresses accepts a comma or space separated string, a string slice
// (flags, env) or a YAML list of numbers and strings.
func parseAddresses(raw any) ([]uint8, error) {
	var items []any
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		for _, s := range splitList(val) {
			items = append(items, s)
		}
	case []string:
		for _, entry := range val {
			for _, s := range splitList(entry) {
				items = append(items, s)
			}
		}
	case []any:
		items = val
	default:
		return nil, fmt.Errorf("repeaters: unsupported value %v", raw)
	}

	addresses := make([]uint8, 0, len(items))
	for _, item := range items {
		a, err := parseAddress(item)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseAddress(item any) (uint8, error) {
	switch val := item.(type) {
	case int:
		if val < 0 || val > 255 {
			return 0, fmt.Errorf("repeater address %d out of range", val)
		}
		return uint8(val), nil
	case string:
		s := strings.TrimSpace(val)
		n, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			// Bare hex such as "B1".
			n, err = strconv.ParseUint(s, 16, 8)
		}
		if err != nil {
			return 0, fmt.Errorf("invalid repeater address %q", val)
		}
		return uint8(n), nil
	default:
		return 0, fmt.Errorf("invalid repeater address %v", item)
	}
}
