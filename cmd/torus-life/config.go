package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"torus-life/internal/sim"
)

// options holds the windowed runner's configuration.
type options struct {
	Population int
	Width      float64
	Height     float64
	Seed       int64
	Clustered  bool
	TPS        int
	LogLevel   string
}

// resolver resolves one option from a flag, then an environment variable,
// then a default.
type resolver struct {
	flagName   string
	envVarName string
	defaultVal string
	usage      string
	setter     func(*options, string) error
}

func intSetter(dst *int) func(*options, string) error {
	return func(_ *options, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func floatSetter(dst *float64) func(*options, string) error {
	return func(_ *options, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

// loadOptions loads configuration from CLI flags and environment variables.
func loadOptions() (options, error) {
	opts := options{}

	resolvers := []resolver{
		{"population", "TORUSLIFE_POPULATION", strconv.Itoa(sim.DefaultPopulation),
			"number of particles", intSetter(&opts.Population)},
		{"width", "TORUSLIFE_WIDTH", fmt.Sprintf("%g", sim.DefaultWidth),
			"domain width", floatSetter(&opts.Width)},
		{"height", "TORUSLIFE_HEIGHT", fmt.Sprintf("%g", sim.DefaultHeight),
			"domain height", floatSetter(&opts.Height)},
		{"seed", "TORUSLIFE_SEED", "42",
			"random seed for the initial layout",
			func(o *options, v string) error {
				n, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					return err
				}
				o.Seed = n
				return nil
			}},
		{"clustered", "TORUSLIFE_CLUSTERED", "false",
			"start from a noise-clustered layout instead of uniform",
			func(o *options, v string) error {
				b, err := strconv.ParseBool(v)
				if err != nil {
					return err
				}
				o.Clustered = b
				return nil
			}},
		{"tps", "TORUSLIFE_TPS", "60",
			"simulation ticks per second", intSetter(&opts.TPS)},
		{"log-level", "TORUSLIFE_LOG_LEVEL", "info",
			"log level: debug, info, warn, error",
			func(o *options, v string) error {
				o.LogLevel = v
				return nil
			}},
	}

	flagVars := make(map[string]*string)
	for _, r := range resolvers {
		flagVars[r.flagName] = flag.String(r.flagName, "", r.usage)
	}
	flag.Parse()

	for _, r := range resolvers {
		value := *flagVars[r.flagName]
		if value == "" {
			value = os.Getenv(r.envVarName)
		}
		if value == "" {
			value = r.defaultVal
		}
		if err := r.setter(&opts, value); err != nil {
			return opts, fmt.Errorf("invalid value %q for -%s: %w", value, r.flagName, err)
		}
	}
	return opts, nil
}

// simConfig maps the runner options onto the core config.
func (o options) simConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Population = o.Population
	cfg.Width = o.Width
	cfg.Height = o.Height
	cfg.Seed = o.Seed
	if o.Clustered {
		cfg.Placement = sim.PlacementClustered
	}
	return cfg
}
