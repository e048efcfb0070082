package configs

import (
	"fmt"
	"strings"

	"flapscan/internal/shared/validators"

	"github.com/spf13/viper"
)

// Overrides carries values supplied on the command line. Non-zero values
// take precedence over the config file; nil/empty means "not set".
type Overrides struct {
	InputPath       string
	MaxDuration     *int
	MinDailyCount   *int
	Workers         int
	OutputPath      string
	LogLevel        string
	DebugListenAddr string
}

// LoadConfig assembles the run configuration from an optional YAML file and
// the CLI overrides, then validates it. configPath may be empty.
var LoadConfig = func(configPath string, overrides Overrides) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("extraction.workers", DefaultWorkers())

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyOverrides(&cfg, overrides)

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.InputPath != "" {
		cfg.Input.Path = o.InputPath
	}
	if o.MaxDuration != nil {
		cfg.Analysis.MaxDuration = o.MaxDuration
	}
	if o.MinDailyCount != nil {
		cfg.Analysis.MinDailyCount = o.MinDailyCount
	}
	if o.Workers > 0 {
		cfg.Extraction.Workers = o.Workers
	}
	if o.OutputPath != "" {
		cfg.Report.OutputPath = o.OutputPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.DebugListenAddr != "" {
		cfg.Debug.ListenAddr = o.DebugListenAddr
	}
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "input.path")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Input.Path" -> "input.path")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
