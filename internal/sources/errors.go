package sources

import (
	"fmt"

	"flapscan/internal/shared/svcerrors"
)

// LineSource errors
const (
	codeSourceUnavailable = "SRC_1000"

	codeInternalSourceReadFailed = "SRC_9000"
)

// errSourceUnavailable returns an error when the input path cannot be opened
// for shared reading. This is fatal for the whole run.
func errSourceUnavailable(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSourceUnavailable, fmt.Sprintf("cannot open input file %q", path), cause)
}

// errSourceReadFailed returns an error when reading an already-open source fails.
func errSourceReadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed for %q: %w", path, cause))
}

// IsSourceUnavailable reports whether err is the fatal cannot-open-input error.
func IsSourceUnavailable(err error) bool {
	svcErr, ok := svcerrors.AsServiceError(err)
	return ok && svcErr.Code == codeSourceUnavailable
}
