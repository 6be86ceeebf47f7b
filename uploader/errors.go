package uploader

import (
	"errors"
	"fmt"

	"github.com/0xebef/go-rfiddb/protocol"
)

// CapacityError indicates an identifier list too large for the protocol's
// 16-bit count parameter. It is raised before any transport activity.
type CapacityError struct {
	// Count is the offending list length
	Count int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("identifier count %d exceeds the protocol maximum of %d",
		e.Count, protocol.MaxTotalCount)
}

// IsCapacityError returns true if the error is a *CapacityError.
func IsCapacityError(err error) bool {
	var ce *CapacityError
	return errors.As(err, &ce)
}

// UploadError reports which phase of the upload transaction failed.
// The protocol offers no partial-resume primitive: after any failure the
// whole upload must be restarted from the beginning.
type UploadError struct {
	// Phase is the transaction phase that failed
	Phase Phase

	// Chunk is the zero-based index of the failed chunk when Phase is
	// PhaseSending, -1 otherwise
	Chunk int

	// TotalChunks is the number of chunks the plan contained
	TotalChunks int

	// Err is the underlying failure
	Err error
}

func (e *UploadError) Error() string {
	if e.Phase == PhaseSending {
		return fmt.Sprintf("upload failed sending chunk %d/%d: %v", e.Chunk+1, e.TotalChunks, e.Err)
	}
	return fmt.Sprintf("upload failed during %s: %v", e.Phase, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
