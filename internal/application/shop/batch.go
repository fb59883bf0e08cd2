package shop

import (
	"github.com/google/uuid"
)

// BatchElement pairs a target entity ID with the patch to apply to it
type BatchElement[P any] struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Patch P         `json:"patch"`
}

// BatchFailure reports why one element of a batch could not be applied
type BatchFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// BatchResult reports the outcome of a batch update. Counts are omitted from
// the JSON body when zero.
type BatchResult[R any] struct {
	SuccessCount int            `json:"success_count,omitempty"`
	FailureCount int            `json:"failure_count,omitempty"`
	Successes    []R            `json:"successes"`
	Failures     []BatchFailure `json:"failures"`
}

// emptier lets the batch engine enforce the at-least-one-field rule on any
// patch type
type emptier interface {
	IsEmpty() bool
}

// processBatch reconciles a batch of patches against the store. All target
// entities are fetched with a single query; each element then succeeds or
// fails on its own without aborting its siblings. Successfully patched
// entities are persisted with one bulk save, so a failing save rolls the
// whole batch back and the caller gets the error instead of a result.
func processBatch[T any, P emptier, R any](
	elements []BatchElement[P],
	fetch func(ids []uuid.UUID) ([]T, error),
	idOf func(*T) uuid.UUID,
	apply func(*T, P) error,
	saveAll func([]*T) error,
	toResponse func(*T) R,
	notFoundMessage string,
) (*BatchResult[R], error) {
	ids := make([]uuid.UUID, len(elements))
	for i, el := range elements {
		ids[i] = el.ID
	}

	found, err := fetch(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*T, len(found))
	for i := range found {
		byID[idOf(&found[i])] = &found[i]
	}

	result := &BatchResult[R]{
		Successes: []R{},
		Failures:  []BatchFailure{},
	}
	patched := make([]*T, 0, len(elements))
	queued := make(map[uuid.UUID]bool, len(elements))

	for _, el := range elements {
		entity, ok := byID[el.ID]
		if !ok {
			result.Failures = append(result.Failures, BatchFailure{ID: el.ID, Error: notFoundMessage})
			continue
		}
		if el.Patch.IsEmpty() {
			result.Failures = append(result.Failures, BatchFailure{ID: el.ID, Error: "At least one field must be provided"})
			continue
		}
		if err := apply(entity, el.Patch); err != nil {
			result.Failures = append(result.Failures, BatchFailure{ID: el.ID, Error: err.Error()})
			continue
		}
		// Duplicate IDs patch the same entity, so the last patch wins, but
		// the entity must appear only once in the bulk save. A repeated row
		// would break the single multi-row upsert.
		if !queued[el.ID] {
			queued[el.ID] = true
			patched = append(patched, entity)
		}
	}

	if len(patched) > 0 {
		if err := saveAll(patched); err != nil {
			return nil, err
		}
	}

	for _, entity := range patched {
		result.Successes = append(result.Successes, toResponse(entity))
	}
	result.SuccessCount = len(result.Successes)
	result.FailureCount = len(result.Failures)

	return result, nil
}
