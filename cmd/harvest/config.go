package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config is the YAML configuration file. Scalar settings act as flag
// defaults. Markers and selectors replace the built-in sets; noise words
// and attach prefixes extend them.
type Config struct {
	SampleSize  int       `yaml:"sample_size"`
	Threshold   float64   `yaml:"threshold"`
	MinCount    int       `yaml:"min_count"`
	Timeout     *Duration `yaml:"timeout"`
	Delay       *Duration `yaml:"delay"`
	MaxDelay    *Duration `yaml:"max_delay"`
	UserAgent   string    `yaml:"user_agent"`
	Concurrency int       `yaml:"concurrency"`
	MaxPages    int       `yaml:"max_pages"`
	Sitemap     bool      `yaml:"sitemap"`
	Out         string    `yaml:"out"`

	// Include and Exclude are combined with the patterns given as flags.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	StartMarkers     []string `yaml:"start_markers"`
	EndMarkers       []string `yaml:"end_markers"`
	NoiseWords       []string `yaml:"noise_words"`
	AttachPrefixes   []string `yaml:"attach_prefixes"`
	ChromeNames      []string `yaml:"chrome_names"`
	ContentSelectors []string `yaml:"content_selectors"`
}

// LoadConfigFile loads the configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolver exposes the scalar settings to kong as flag values.
// Flags given on the command line take precedence.
func (c *Config) Resolver() kong.Resolver {
	values := c.flagValues()
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		return nil, nil
	})
}

func (c *Config) flagValues() map[string]string {
	values := make(map[string]string)
	setInt := func(name string, v int) {
		if v != 0 {
			values[name] = strconv.Itoa(v)
		}
	}
	// Durations are pointers so that an explicit "0s" is still applied.
	setDuration := func(name string, d *Duration) {
		if d != nil {
			values[name] = d.String()
		}
	}

	setInt("sample-size", c.SampleSize)
	setInt("min-count", c.MinCount)
	setInt("concurrency", c.Concurrency)
	setInt("max-pages", c.MaxPages)
	if c.Threshold != 0 {
		values["threshold"] = strconv.FormatFloat(c.Threshold, 'f', -1, 64)
	}
	setDuration("timeout", c.Timeout)
	setDuration("delay", c.Delay)
	setDuration("max-delay", c.MaxDelay)
	if c.UserAgent != "" {
		values["user-agent"] = c.UserAgent
	}
	if c.Out != "" {
		values["out"] = c.Out
	}
	if c.Sitemap {
		values["sitemap"] = "true"
	}
	return values
}

// Duration wraps time.Duration to support human-readable YAML values.
type Duration struct {
	time.Duration
}

// UnmarshalYAML accepts either a string duration or numeric seconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		d.Duration = parsed
	case int:
		d.Duration = time.Duration(v) * time.Second
	case float64:
		d.Duration = time.Duration(v * float64(time.Second))
	default:
		return fmt.Errorf("unsupported duration type %T", raw)
	}
	return nil
}
