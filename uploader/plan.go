package uploader

import (
	"github.com/0xebef/go-rfiddb/protocol"
)

// UploadPlan is the chunked form of an identifier list: the count to be
// declared up front and the ordered batches that deliver it.
//
// Invariant: the chunks concatenated in order equal the input list, and
// their sizes sum to TotalCount.
type UploadPlan struct {
	// TotalCount is the value sent as the SetCount parameter
	TotalCount uint16

	// Chunks are ordered sub-slices of the input, each small enough for
	// one SendChunk transaction
	Chunks [][]uint32
}

// PlanUpload partitions an identifier list into transport-legal chunks.
//
// The per-chunk cap is the largest entry count whose header-plus-payload
// fits maxFrameBytes, further bounded by the device's entry queue depth
// (protocol.MaxChunkEntries). All chunks are full except possibly the
// last; an empty input yields a plan with zero chunks (the device is
// still told to expect nothing via SetCount(0)).
//
// Input order is preserved exactly. The protocol is duplicate-agnostic,
// so no deduplication or sorting happens here.
//
// Returns a *CapacityError when the list cannot be represented in the
// protocol's 16-bit count parameter.
func PlanUpload(entries []uint32, maxFrameBytes int) (*UploadPlan, error) {
	if len(entries) > protocol.MaxTotalCount {
		return nil, &CapacityError{Count: len(entries)}
	}

	perChunk := maxEntriesPerChunk(maxFrameBytes)

	plan := &UploadPlan{
		TotalCount: uint16(len(entries)),
		Chunks:     make([][]uint32, 0, (len(entries)+perChunk-1)/perChunk),
	}

	for start := 0; start < len(entries); start += perChunk {
		end := start + perChunk
		if end > len(entries) {
			end = len(entries)
		}
		plan.Chunks = append(plan.Chunks, entries[start:end])
	}

	return plan, nil
}

// maxEntriesPerChunk computes the chunk size cap for a frame budget.
func maxEntriesPerChunk(maxFrameBytes int) int {
	n := (maxFrameBytes - protocol.HeaderSize) / protocol.EntrySize
	if n > protocol.MaxChunkEntries {
		n = protocol.MaxChunkEntries
	}
	if n < 1 {
		n = 1
	}
	return n
}
