package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"flapscan/internal/analyzers"
	"flapscan/internal/debugserver"
	"flapscan/internal/extractors"
	"flapscan/internal/filters"
	"flapscan/internal/reports"
	"flapscan/internal/shared/configs"
	"flapscan/internal/shared/filestorages"
	"flapscan/internal/shared/loggers"
	"flapscan/internal/shared/ulid"
	"flapscan/internal/sources"
)

// App holds all application dependencies and runs one analysis.
type App struct {
	config          *configs.Config
	appLogger       loggers.Logger
	analysisService analyzers.AnalysisService
	debugServer     *debugserver.Server
}

// New creates and initializes a new App instance from the run configuration.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "flapscan").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	// Initialize the pipeline: source -> extraction pool -> filters -> renderer
	lineSource := sources.NewFileLineSource(config.Input.Path)
	recordExtractor := extractors.NewRecordExtractor()
	extractionPool := extractors.NewExtractionPool(recordExtractor, config.Extraction.Workers)
	durationFilter := filters.NewDurationFilter(config.Analysis.MaxDuration)
	burstFilter := filters.NewBurstFilter(config.Analysis.MinDailyCount)
	reportRenderer := reports.NewReportRenderer()

	analysisService := analyzers.NewAnalysisService(
		lineSource,
		extractionPool,
		durationFilter,
		burstFilter,
		reportRenderer,
	)

	var debugServer *debugserver.Server
	if config.Debug.ListenAddr != "" {
		debugLogger := appLogger.With().Str(loggers.FieldComponent, "debug_server").Logger()
		debugServer = debugserver.New(config.Debug.ListenAddr, debugLogger)
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		analysisService: analysisService,
		debugServer:     debugServer,
	}, nil
}

// Run executes one analysis over the configured input and returns the
// rendered report. When an output path is configured the report is also
// written there atomically.
func (app *App) Run(ctx context.Context) (string, error) {
	app.appLogger.Info().
		Str(loggers.FieldInputPath, app.config.Input.Path).
		Msgf("starting analysis (workers=%d, max_duration=%s, min_daily_count=%s)",
			app.config.Extraction.Workers,
			formatOptionalInt(app.config.Analysis.MaxDuration),
			formatOptionalInt(app.config.Analysis.MinDailyCount))

	if app.debugServer != nil {
		app.debugServer.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.debugServer.Shutdown(shutdownCtx); err != nil {
				app.appLogger.Error().Err(err).Msg("debug server shutdown failed")
			}
		}()
	}

	ctx = app.appLogger.WithContext(ctx)
	report, err := app.analysisService.Analyze(ctx)
	if err != nil {
		return "", err
	}

	if app.config.Report.OutputPath != "" {
		if err := app.writeReport(ctx, report); err != nil {
			return "", err
		}
	}

	return report, nil
}

// writeReport persists the report at the configured output path, replacing
// any previous report atomically.
func (app *App) writeReport(ctx context.Context, report string) error {
	outputPath := app.config.Report.OutputPath
	dir, file := filepath.Dir(outputPath), filepath.Base(outputPath)
	storage, err := filestorages.NewFileStorage(dir)
	if err != nil {
		return fmt.Errorf("failed to initialize report storage: %w", err)
	}
	if _, err := storage.Put(ctx, file, strings.NewReader(report)); err != nil {
		return fmt.Errorf("failed to write report to %q: %w", app.config.Report.OutputPath, err)
	}
	app.appLogger.Info().Msgf("report written to %s", app.config.Report.OutputPath)
	return nil
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *v)
}
