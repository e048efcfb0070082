package analyzers

import (
	"context"
	"time"

	"flapscan/internal/extractors"
	"flapscan/internal/filters"
	"flapscan/internal/reports"
	"flapscan/internal/shared/loggers"
	"flapscan/internal/shared/metrics"
	"flapscan/internal/shared/svcerrors"
	"flapscan/internal/sources"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze runs the whole pipeline over the configured source and
	// returns the rendered report. A source failure aborts the run with no
	// partial report; per-line extraction failures never surface here.
	Analyze(ctx context.Context) (string, error)
}

type analysisService struct {
	source         sources.LineSource
	extractionPool extractors.ExtractionPool
	durationFilter filters.DurationFilter
	burstFilter    filters.BurstFilter
	renderer       reports.ReportRenderer
}

func NewAnalysisService(
	source sources.LineSource,
	extractionPool extractors.ExtractionPool,
	durationFilter filters.DurationFilter,
	burstFilter filters.BurstFilter,
	renderer reports.ReportRenderer,
) AnalysisService {
	return &analysisService{
		source:         source,
		extractionPool: extractionPool,
		durationFilter: durationFilter,
		burstFilter:    burstFilter,
		renderer:       renderer,
	}
}

func (s *analysisService) Analyze(ctx context.Context) (string, error) {
	logger := loggers.Ctx(ctx)
	started := time.Now()

	records, err := s.extractionPool.ExtractAll(ctx, s.source)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
			return "", svcErr
		}
		svcErr := errInternalExtractionFailed(err)
		metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return "", svcErr
	}
	extracted := len(records)

	records = s.durationFilter.Apply(records)
	records = s.burstFilter.Apply(records)

	report := s.renderer.Render(records)

	elapsed := time.Since(started)
	logger.Info().
		Int(loggers.FieldRecordsExtracted, extracted).
		Int(loggers.FieldRecordsReported, len(records)).
		Dur(loggers.FieldDuration, elapsed).
		Msg("analysis finished")

	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRunDurationSeconds.Observe(elapsed.Seconds())
	return report, nil
}
