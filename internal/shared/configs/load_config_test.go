package configs

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagsOnly(t *testing.T) {
	maxDuration := 50
	minDailyCount := 5

	cfg, err := LoadConfig("", Overrides{
		InputPath:     "/var/log/nps/IN2110.log",
		MaxDuration:   &maxDuration,
		MinDailyCount: &minDailyCount,
	})
	require.NoError(t, err)

	assert.Equal(t, "/var/log/nps/IN2110.log", cfg.Input.Path)
	require.NotNil(t, cfg.Analysis.MaxDuration)
	assert.Equal(t, 50, *cfg.Analysis.MaxDuration)
	require.NotNil(t, cfg.Analysis.MinDailyCount)
	assert.Equal(t, 5, *cfg.Analysis.MinDailyCount)

	// Defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, runtime.NumCPU(), cfg.Extraction.Workers)
	assert.Empty(t, cfg.Report.OutputPath)
	assert.Empty(t, cfg.Debug.ListenAddr)
}

func TestLoadConfig_ThresholdsUnsetByDefault(t *testing.T) {
	cfg, err := LoadConfig("", Overrides{InputPath: "events.log"})
	require.NoError(t, err)

	assert.Nil(t, cfg.Analysis.MaxDuration)
	assert.Nil(t, cfg.Analysis.MinDailyCount)
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	validConfig := `input:
  path: ./events.log
analysis:
  max_duration: 30
  min_daily_count: 10
extraction:
  workers: 4
log:
  level: debug
debug:
  listen_addr: ":9091"
`

	_, err = tmpfile.WriteString(validConfig)
	require.NoError(t, err)
	tmpfile.Close()

	cfg, err := LoadConfig(tmpfile.Name(), Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "./events.log", cfg.Input.Path)
	require.NotNil(t, cfg.Analysis.MaxDuration)
	assert.Equal(t, 30, *cfg.Analysis.MaxDuration)
	require.NotNil(t, cfg.Analysis.MinDailyCount)
	assert.Equal(t, 10, *cfg.Analysis.MinDailyCount)
	assert.Equal(t, 4, cfg.Extraction.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9091", cfg.Debug.ListenAddr)
}

func TestLoadConfig_FlagsOverrideConfigFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString(`input:
  path: ./from-file.log
extraction:
  workers: 2
log:
  level: warn
`)
	require.NoError(t, err)
	tmpfile.Close()

	cfg, err := LoadConfig(tmpfile.Name(), Overrides{
		InputPath: "./from-flag.log",
		Workers:   8,
	})
	require.NoError(t, err)
	assert.Equal(t, "./from-flag.log", cfg.Input.Path)
	assert.Equal(t, 8, cfg.Extraction.Workers)
	assert.Equal(t, "warn", cfg.Log.Level, "file value kept when flag unset")
}

func TestLoadConfig_MissingInputPath(t *testing.T) {
	cfg, err := LoadConfig("", Overrides{})
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "input.path")
}

func TestLoadConfig_InvalidThresholds(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		wantField string
	}{
		{
			name: "negative max duration",
			overrides: Overrides{
				InputPath:   "events.log",
				MaxDuration: intPtr(-1),
			},
			wantField: "analysis.maxduration",
		},
		{
			name: "zero min daily count",
			overrides: Overrides{
				InputPath:     "events.log",
				MinDailyCount: intPtr(0),
			},
			wantField: "analysis.mindailycount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig("", tt.overrides)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yml", Overrides{InputPath: "events.log"})
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func intPtr(v int) *int { return &v }
