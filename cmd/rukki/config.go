package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// thresholdConfig holds the six numeric knobs trio-walk needs: the
// superbubble search bounds and the long-node/low-count/ratio cutoffs
// the haplo-path searcher and marker classifier use. Fields a config file
// leaves out keep their values from defaultConfig.
type thresholdConfig struct {
	LongNodeThreshold int     `yaml:"long_node_threshold"`
	MaxLength         uint64  `yaml:"max_length"`
	MaxDiff           uint64  `yaml:"max_diff"`
	MaxCount          uint64  `yaml:"max_count"`
	LowMarkerCount    int     `yaml:"low_marker_count"`
	MarkerRatio       float64 `yaml:"marker_ratio"`
}

func defaultConfig() thresholdConfig {
	return thresholdConfig{
		LongNodeThreshold: 500_000,
		MaxLength:         50_000,
		MaxDiff:           5_000,
		MaxCount:          50,
		LowMarkerCount:    10,
		MarkerRatio:       0.9,
	}
}

// loadConfig reads path as YAML over the defaults, so a config file only
// needs to name the knobs it wants to override. An empty path returns
// the defaults unchanged.
func loadConfig(path string) (thresholdConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}
