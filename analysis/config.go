package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strettolab/contrapunto/algorithms/counterpoint"
	"github.com/strettolab/contrapunto/algorithms/harmony"
	"github.com/strettolab/contrapunto/algorithms/theory"
)

// Config collects everything one analysis run depends on. Meter and
// FourthIsDissonant are the top-level knobs; the embedded parameter sets
// expose the full rule surface for callers that need it.
type Config struct {
	Meter             theory.Meter        `json:"meter" yaml:"meter"`
	FourthIsDissonant bool                `json:"fourth_is_dissonant" yaml:"fourth_is_dissonant"`
	Counterpoint      counterpoint.Params `json:"counterpoint" yaml:"counterpoint"`
	Harmony           harmony.Params      `json:"harmony" yaml:"harmony"`
}

// DefaultConfig returns the strict species-rule configuration for a meter
func DefaultConfig(m theory.Meter) Config {
	return Config{
		Meter:             m,
		FourthIsDissonant: true,
		Counterpoint:      counterpoint.DefaultParams(m),
		Harmony:           harmony.DefaultParams(m),
	}
}

// normalized pushes the top-level meter and fourth toggle down into the
// sub-parameter sets, so a caller setting only Config.Meter gets coherent
// behavior everywhere
func (c Config) normalized() Config {
	c.Counterpoint.Meter = c.Meter
	c.Counterpoint.FourthIsDissonant = c.FourthIsDissonant
	c.Harmony.Meter = c.Meter
	return c
}

// Validate checks the parts of a Config that make analysis impossible
func (c Config) Validate() error {
	if err := c.Meter.Validate(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Sections absent from the file
// keep their defaults for the file's meter, so a minimal file only needs a
// meter line.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var head struct {
		Meter theory.Meter `yaml:"meter"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := head.Meter.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid meter in %s: %w", path, err)
	}

	cfg := DefaultConfig(head.Meter)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
