package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BenchmarkPath string // .hcl file or directory

	// DatasetPatterns and SolverPatterns are nil when no filter was given.
	DatasetPatterns []string
	SolverPatterns  []string
	RandomState     string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.BenchmarkPath == "" {
		return nil, errors.New("BenchmarkPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
