package uploader

import "time"

// Phase identifies a stage of the upload transaction.
type Phase string

// Upload transaction phases, in order.
const (
	// PhasePinging checks that the device answers at all
	PhasePinging Phase = "pinging"

	// PhaseDeclaring announces the total identifier count
	PhaseDeclaring Phase = "declaring-count"

	// PhaseSending transfers the planned chunks in order
	PhaseSending Phase = "sending-chunks"

	// PhaseComplete means every chunk was acknowledged
	PhaseComplete Phase = "complete"
)

// Progress contains information about an upload in flight.
// Passed to ProgressCallback as the transaction advances.
type Progress struct {
	// Phase is the current transaction phase
	Phase Phase

	// CurrentChunk is the number of chunks fully acknowledged so far
	CurrentChunk int

	// TotalChunks is the number of chunks the plan contains
	TotalChunks int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// EntriesWritten is the number of identifiers acknowledged so far
	EntriesWritten int

	// ElapsedTime is the time since the upload started
	ElapsedTime time.Duration
}

// ProgressCallback is called as the upload advances. Implementations
// should return quickly to avoid stalling the exchange.
//
// Example:
//
//	up := uploader.New(port,
//	    uploader.WithProgressCallback(func(p uploader.Progress) {
//	        fmt.Printf("[%s] %.0f%% (%d/%d chunks)\n",
//	            p.Phase, p.Percentage, p.CurrentChunk, p.TotalChunks)
//	    }),
//	)
type ProgressCallback func(Progress)
