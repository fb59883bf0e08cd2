package shop

import (
	"encoding/json"
	"io"

	"github.com/petshop/backend/internal/domain/shared"
)

// flusher is implemented by writers that can push buffered bytes to the
// client, such as gin's ResponseWriter
type flusher interface {
	Flush()
}

// streamNDJSON writes every record from the cursor to w as one JSON object
// per line, flushing after each record so the client sees data as it is
// produced. The cursor is always closed, also when encoding or the writer
// fails mid-stream. Records already written stay written; the returned error
// only tells the caller the stream is incomplete.
func streamNDJSON[T any, R any](w io.Writer, cursor shared.Cursor[T], toResponse func(*T) R) (err error) {
	defer func() {
		if closeErr := cursor.Close(); closeErr != nil && err == nil {
			err = shared.WrapDomainError("STREAMING_ERROR", "Failed to close stream", closeErr)
		}
	}()

	encoder := json.NewEncoder(w)
	f, canFlush := w.(flusher)

	for cursor.Next() {
		record, err := cursor.Value()
		if err != nil {
			return shared.WrapDomainError("STREAMING_ERROR", "Failed to read record from stream", err)
		}
		if err := encoder.Encode(toResponse(record)); err != nil {
			return shared.WrapDomainError("STREAMING_ERROR", "Failed to write record to stream", err)
		}
		if canFlush {
			f.Flush()
		}
	}
	if err := cursor.Err(); err != nil {
		return shared.WrapDomainError("STREAMING_ERROR", "Stream interrupted", err)
	}

	return nil
}
