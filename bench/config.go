package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chromatic/coloring"
)

// ErrNoInstances indicates a suite with an empty instance list.
var ErrNoInstances = errors.New("bench: suite lists no instances")

// Config describes one benchmark suite.
type Config struct {
	// GraphDir, if set, is prepended to relative instance paths.
	GraphDir string `yaml:"graph_dir"`

	// Instances lists the DIMACS edge-list files to benchmark.
	Instances []string `yaml:"instances"`

	// Algorithms lists heuristic names (case-insensitive). Empty runs
	// all of them in canonical order.
	Algorithms []string `yaml:"algorithms"`
}

// LoadConfig reads and decodes a YAML suite file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: read config %s: %w", path, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("bench: decode config %s: %w", path, err)
	}

	return &cfg, nil
}

// algorithms resolves the configured names to tags, defaulting to every
// heuristic when none are listed.
func (c *Config) algorithms() ([]coloring.Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return coloring.Algorithms(), nil
	}

	algos := make([]coloring.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		algo, err := coloring.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, algo)
	}

	return algos, nil
}

// instancePath resolves one instance entry against GraphDir.
func (c *Config) instancePath(name string) string {
	if c.GraphDir == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.GraphDir, name)
}
