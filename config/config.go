// Package config defines and loads corridor's runtime configuration: no
// I/O or parsing logic lives in this file, only plain data types and
// validation, mirroring the teacher pack's config/loader split.
package config

import (
	"fmt"
	"time"
)

// GraphConfig points at the road-network input files of spec.md §6: two
// CSVs (optionally gzipped) plus the auxiliary per-edge tables a query's
// model stack may need.
type GraphConfig struct {
	EdgesPath    string `mapstructure:"edges_path"`
	VerticesPath string `mapstructure:"vertices_path"`

	SpeedTablePath      string `mapstructure:"speed_table_path"`
	GradeTablePath      string `mapstructure:"grade_table_path"`
	HeadingTablePath    string `mapstructure:"heading_table_path"`
	RoadClassTablePath  string `mapstructure:"road_class_table_path"`
	RestrictionsPath    string `mapstructure:"restrictions_path"`
	GeometryPath        string `mapstructure:"geometry_path"`
	ChargingStationPath string `mapstructure:"charging_station_path"`
}

// ModelConfig selects and tunes the per-query model stack of spec.md
// §4.1-§4.5: which traversal model to build, the cost weights and
// aggregation, and an allowed road-class list. The CLI builds its
// road-class frontier filter only from each query's own road_classes;
// AllowedRoadClass is loaded but not applied to any query.
type ModelConfig struct {
	DefaultModelName string             `mapstructure:"default_model_name"` // "distance" | "time" | "energy"
	Weights          map[string]float64 `mapstructure:"weights"`
	Aggregation      string             `mapstructure:"aggregation"` // "sum" | "mul"
	AllowedRoadClass []string           `mapstructure:"allowed_road_classes"`
}

// TerminationConfig configures the TerminationModel applied to every
// search in a batch; queries carry no termination settings of their own.
type TerminationConfig struct {
	QueryRuntimeLimit  time.Duration `mapstructure:"query_runtime_limit"`
	RuntimeCheckEveryN int           `mapstructure:"runtime_check_every_n"`
	IterationsLimit    int           `mapstructure:"iterations_limit"`
	SolutionSizeLimit  int           `mapstructure:"solution_size_limit"`
}

// WorkerConfig tunes the batch worker pool of spec.md §5: a single-
// process pool of OS threads, each running one query end-to-end.
type WorkerConfig struct {
	Concurrency int           `mapstructure:"concurrency"`
	QueueDepth  int           `mapstructure:"queue_depth"`
	JobTimeout  time.Duration `mapstructure:"job_timeout"`
}

// LogConfig holds structured-logging parameters for the zap logger built
// at process start.
type LogConfig struct {
	Level        string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format       string `mapstructure:"format"` // "json" | "console"
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// Config is the root configuration structure for the corridor binary.
type Config struct {
	Graph       GraphConfig       `mapstructure:"graph"`
	Model       ModelConfig       `mapstructure:"model"`
	Termination TerminationConfig `mapstructure:"termination"`
	Worker      WorkerConfig      `mapstructure:"worker"`
	Log         LogConfig         `mapstructure:"log"`
}

// Validate performs semantic validation of a fully-populated Config. It
// returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Graph.EdgesPath == "" {
		return fmt.Errorf("config: graph.edges_path is required")
	}
	if c.Graph.VerticesPath == "" {
		return fmt.Errorf("config: graph.vertices_path is required")
	}

	switch c.Model.DefaultModelName {
	case "distance", "time", "energy":
	default:
		return fmt.Errorf("config: model.default_model_name %q is invalid; expected distance|time|energy", c.Model.DefaultModelName)
	}
	switch c.Model.Aggregation {
	case "sum", "mul":
	default:
		return fmt.Errorf("config: model.aggregation %q is invalid; expected sum|mul", c.Model.Aggregation)
	}

	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be >= 1, got %d", c.Worker.Concurrency)
	}
	if c.Worker.QueueDepth < 0 {
		return fmt.Errorf("config: worker.queue_depth must be >= 0, got %d", c.Worker.QueueDepth)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
