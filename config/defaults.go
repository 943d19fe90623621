package config

import "time"

// Default value constants, applied by ApplyDefaults for any zero-value
// field left unset by the config file or environment.
const (
	DefaultModelName   = "distance"
	DefaultAggregation = "sum"

	DefaultWorkerConcurrency = 4
	DefaultQueueDepth        = 64

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultIterationsLimit   = 1_000_000
	DefaultSolutionSizeLimit = 200_000
)

// ApplyDefaults fills every zero-value field in cfg with the corridor
// default. Fields already set by the caller (non-zero values) are left
// unchanged so explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Model.DefaultModelName == "" {
		cfg.Model.DefaultModelName = DefaultModelName
	}
	if cfg.Model.Aggregation == "" {
		cfg.Model.Aggregation = DefaultAggregation
	}

	if cfg.Termination.IterationsLimit == 0 {
		cfg.Termination.IterationsLimit = DefaultIterationsLimit
	}
	if cfg.Termination.SolutionSizeLimit == 0 {
		cfg.Termination.SolutionSizeLimit = DefaultSolutionSizeLimit
	}
	if cfg.Termination.RuntimeCheckEveryN == 0 {
		cfg.Termination.RuntimeCheckEveryN = 64
	}
	if cfg.Termination.QueryRuntimeLimit == 0 {
		cfg.Termination.QueryRuntimeLimit = 30 * time.Second
	}

	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = DefaultWorkerConcurrency
	}
	if cfg.Worker.QueueDepth == 0 {
		cfg.Worker.QueueDepth = DefaultQueueDepth
	}
	if cfg.Worker.JobTimeout == 0 {
		cfg.Worker.JobTimeout = 2 * time.Minute
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
