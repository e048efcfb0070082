package sources

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"flapscan/internal/shared/loggers"
)

const (
	// maxLineBytes bounds a single log line; event documents are one line
	// each but can carry many attributes. Longer lines cannot be a valid
	// event document and are dropped, not fatal.
	maxLineBytes = 1024 * 1024

	// batchMaxSize is how many lines are handed to an extraction worker at
	// once. Batching amortizes channel traffic on multi-gigabyte inputs.
	batchMaxSize = 4096

	readBufferSize = 64 * 1024
)

//go:generate mockgen -source=line_source.go -destination=./mocks/line_source_mock.go -package=mocks
type LineSource interface {
	// Stream reads the source line by line and publishes bounded batches of
	// raw lines to the batches channel, in file order. Lines longer than the
	// internal bound are dropped and counted, never fatal. Stream closes the
	// channel before returning on every exit path. The underlying file
	// handle is held only for the duration of the call and is always
	// released.
	Stream(ctx context.Context, batches chan<- [][]byte) error
}

type fileLineSource struct {
	path string
}

// NewFileLineSource creates a LineSource over the file at path. The file is
// opened read-only with no exclusive lock, so an external writer may keep
// appending while the scan runs.
func NewFileLineSource(path string) LineSource {
	return &fileLineSource{path: path}
}

func (s *fileLineSource) Stream(ctx context.Context, batches chan<- [][]byte) error {
	defer close(batches)

	file, err := os.Open(s.path)
	if err != nil {
		return errSourceUnavailable(s.path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			loggers.Ctx(ctx).Warn().Err(closeErr).Str(loggers.FieldInputPath, s.path).Msg("failed to close input file")
		}
	}()

	reader := bufio.NewReaderSize(file, readBufferSize)
	batch := make([][]byte, 0, batchMaxSize)
	for {
		line, oversized, readErr := readLine(reader)
		if readErr != nil && readErr != io.EOF {
			return errSourceReadFailed(s.path, readErr)
		}

		switch {
		case oversized:
			metricOversizedLinesDroppedTotal.Inc()
			loggers.Ctx(ctx).Debug().Str(loggers.FieldInputPath, s.path).Msg("dropped line exceeding size bound")
		case line != nil:
			batch = append(batch, line)
			metricLinesReadTotal.Inc()

			if len(batch) >= batchMaxSize {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case batches <- batch:
					batch = make([][]byte, 0, batchMaxSize)
				}
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if len(batch) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batches <- batch:
		}
	}

	return nil
}

// readLine returns the next line with its terminator trimmed. A line longer
// than maxLineBytes is consumed up to its terminator and reported as
// oversized with a nil line, so the caller can drop it and keep reading.
// io.EOF accompanies the final line when the file lacks a trailing newline;
// a clean end of file yields a nil line with io.EOF.
func readLine(reader *bufio.Reader) (line []byte, oversized bool, err error) {
	for {
		chunk, readErr := reader.ReadSlice('\n')
		if !oversized {
			line = append(line, chunk...)
		}

		switch readErr {
		case bufio.ErrBufferFull:
			// Chunks before the terminator carry no newline, so the length
			// check compares line content directly.
			if len(line) > maxLineBytes {
				oversized = true
				line = nil
			}
			continue
		case nil, io.EOF:
			if oversized {
				return nil, true, readErr
			}
			line = trimLineEnding(line)
			if len(line) > maxLineBytes {
				return nil, true, readErr
			}
			return line, false, readErr
		default:
			return nil, false, readErr
		}
	}
}

// trimLineEnding strips a trailing LF or CRLF.
func trimLineEnding(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}
