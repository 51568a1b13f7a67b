// Package config holds the bot's candidate rosters and tunables. The rosters
// ship as compiled-in defaults and can be overridden with a YAML file; the
// bot itself treats them as immutable.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pulsebot/pulsebot/pkg/types"
)

// Duration wraps time.Duration so YAML overrides can use "2h" / "90m" forms.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is injected into the orchestrator at construction. Nothing in here
// is mutated after load.
type Config struct {
	// Rosters.
	Projects             []types.Project `yaml:"projects"`
	Accounts             []string        `yaml:"accounts"`
	RegenerationAccounts []string        `yaml:"regeneration_accounts"`
	Keywords             []string        `yaml:"keywords"`

	// Per-cycle batch sizes.
	ProjectsPerCycle int `yaml:"projects_per_cycle"`
	AccountsPerCycle int `yaml:"accounts_per_cycle"`

	// Platform limits.
	PostLimit   int `yaml:"post_limit"`   // single-post character limit
	ThreadLimit int `yaml:"thread_limit"` // per-chunk limit when threading

	// Fetch and gating.
	RecencyWindow Duration `yaml:"recency_window"`
	MaxFetched    int      `yaml:"max_fetched"`
	MinItemLength int      `yaml:"min_item_length"`

	// Scheduling.
	CycleInterval Duration `yaml:"cycle_interval"`
}

// Load reads a YAML override file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Projects:             defaultProjects(),
		Accounts:             defaultAccounts(),
		RegenerationAccounts: defaultRegenerationAccounts(),
		Keywords:             defaultKeywords(),

		ProjectsPerCycle: 5,
		AccountsPerCycle: 15,

		PostLimit:   280,
		ThreadLimit: 260,

		RecencyWindow: Duration(2 * time.Hour),
		MaxFetched:    5,
		MinItemLength: 5,

		CycleInterval: Duration(time.Hour),
	}
}
