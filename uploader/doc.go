// Package uploader orchestrates the full RFID list upload to the
// doorlock controller.
//
// # Overview
//
// An upload is one logical transaction with no partial-resume support:
//
//	ping -> declare count -> send all chunks -> done
//
// PlanUpload partitions the identifier list into chunks that respect the
// device's 255-byte receive buffer and 50-entry queue; Uploader drives
// the transaction over a link.Session, aborting on the first failure and
// reporting which phase (and which chunk) failed.
//
// # Basic Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0", 9600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	up := uploader.New(port)
//	if err := up.Upload(context.Background(), ids); err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
//	up := uploader.New(port,
//	    uploader.WithProgressCallback(func(p uploader.Progress) {
//	        fmt.Printf("[%s] %.0f%% (%d/%d chunks)\n",
//	            p.Phase, p.Percentage, p.CurrentChunk, p.TotalChunks)
//	    }),
//	)
//
// # Retry Policy
//
// The protocol itself never retries: a failed transaction leaves nothing
// pending device-side (the next SetCount discards any incomplete state),
// so the only recovery is to restart from the beginning. WithRetries
// bounds how many times Upload does that on the caller's behalf.
//
// # Error Handling
//
// Upload returns *CapacityError for lists beyond the 16-bit count limit
// (before any transport activity) and *UploadError for transaction
// failures, wrapping the session-level cause (link.ProtocolError,
// link.TimeoutError, or a transport error).
package uploader
