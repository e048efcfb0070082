package analyzers

import (
	"fmt"

	"flapscan/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeInternalExtractionFailed = "ANA_9000"
)

// errInternalExtractionFailed returns an error when the extraction stage
// fails for a reason other than a source-level service error.
func errInternalExtractionFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExtractionFailed, fmt.Errorf("extractionFailed: %w", cause))
}
