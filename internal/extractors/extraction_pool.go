package extractors

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"flapscan/internal/models"
	"flapscan/internal/shared/loggers"
	"flapscan/internal/shared/svcerrors"
	"flapscan/internal/sources"
)

//go:generate mockgen -source=extraction_pool.go -destination=./mocks/extraction_pool_mock.go -package=mocks
type ExtractionPool interface {
	// ExtractAll streams the source through a bounded pool of extraction
	// workers and returns every record that survives extraction. Record
	// order is unspecified; extraction of independent lines has no shared
	// mutable state and downstream stages re-establish ordering by
	// explicit grouping. Any source error aborts the run with no result.
	ExtractAll(ctx context.Context, source sources.LineSource) ([]*models.SessionRecord, error)
}

type extractionPool struct {
	extractor RecordExtractor
	workers   int
}

func NewExtractionPool(extractor RecordExtractor, workers int) ExtractionPool {
	return &extractionPool{extractor: extractor, workers: workers}
}

func (p *extractionPool) ExtractAll(ctx context.Context, source sources.LineSource) ([]*models.SessionRecord, error) {
	batches := make(chan [][]byte, p.workers*2)
	results := make(chan []*models.SessionRecord, p.workers)

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for workerIndex := 0; workerIndex < p.workers; workerIndex++ {
		go func(workerIndex int) {
			defer wg.Done()
			p.runWorker(ctx, workerIndex, batches, results)
		}(workerIndex)
	}

	// Stream blocks until the source is exhausted (or fails) and closes the
	// batches channel on every exit path, so the workers always terminate.
	streamErr := source.Stream(ctx, batches)

	wg.Wait()
	close(results)

	if streamErr != nil {
		return nil, streamErr
	}

	var records []*models.SessionRecord
	for workerRecords := range results {
		records = append(records, workerRecords...)
	}
	return records, nil
}

func (p *extractionPool) runWorker(ctx context.Context, workerIndex int, batches <-chan [][]byte, results chan<- []*models.SessionRecord) {
	var local []*models.SessionRecord

	for batch := range batches {
		// Handle panic recovery to prevent a worker goroutine from crashing
		// the run; the remainder of the batch is dropped and counted.
		func() {
			defer func() {
				if r := recover(); r != nil {
					loggers.Ctx(ctx).Error().
						Int(loggers.FieldWorkerId, workerIndex).
						Bytes(loggers.FieldErrorStack, debug.Stack()).
						Msg("extraction worker panic recovered")

					var panicErr error
					if err, ok := r.(error); ok {
						panicErr = err
					} else {
						panicErr = fmt.Errorf("%v", r)
					}

					svcErr := svcerrors.NewInternalErrorPanic(panicErr)
					metricExtractionPanicsTotal.WithLabelValues(svcErr.Code).Inc()
				}
			}()

			for _, line := range batch {
				if record, ok := p.extractor.Extract(line); ok {
					local = append(local, record)
				}
			}
		}()
	}

	results <- local
}
