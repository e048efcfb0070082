package configs

import "runtime"

// Config holds the immutable snapshot of run parameters. It is assembled
// once from an optional YAML file plus CLI flags before the pipeline starts
// and is read-only thereafter.
type Config struct {
	Input      InputConfig      `mapstructure:"input" validate:"required"`
	Analysis   AnalysisConfig   `mapstructure:"analysis"`
	Extraction ExtractionConfig `mapstructure:"extraction" validate:"required"`
	Report     ReportConfig     `mapstructure:"report"`
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Debug      DebugConfig      `mapstructure:"debug"`
}

// InputConfig holds input file configuration.
type InputConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AnalysisConfig holds the optional analysis thresholds. A nil threshold
// disables the corresponding filter stage entirely.
type AnalysisConfig struct {
	MaxDuration   *int `mapstructure:"max_duration" validate:"omitempty,min=0"`    // seconds
	MinDailyCount *int `mapstructure:"min_daily_count" validate:"omitempty,min=1"` // sessions per user per day
}

// ExtractionConfig holds the parallel extraction stage configuration.
type ExtractionConfig struct {
	Workers int `mapstructure:"workers" validate:"required,min=1"`
}

// ReportConfig holds report output configuration. An empty OutputPath means
// the report is written to stdout.
type ReportConfig struct {
	OutputPath string `mapstructure:"output_path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DebugConfig holds the optional debug/metrics listener configuration.
// An empty ListenAddr disables the debug server.
type DebugConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// DefaultWorkers is the default extraction parallelism.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
