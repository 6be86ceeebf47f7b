package uploader

import (
	"context"
	"fmt"
	"time"

	"github.com/0xebef/go-rfiddb/link"
)

// Uploader drives the full list-upload transaction against the doorlock
// controller: ping, declare count, send every chunk in order.
//
// Uploader is NOT safe for concurrent use; it owns its link session and
// the session's port for the duration of each call.
type Uploader struct {
	session *link.Session
	config  Config
}

// New creates an Uploader over the given port.
//
// Example:
//
//	port, _ := serialport.Open("/dev/ttyUSB0", 9600)
//	up := uploader.New(port,
//	    uploader.WithResponseTimeout(2*time.Second),
//	    uploader.WithProgressCallback(progressFunc),
//	)
func New(port link.Port, opts ...Option) *Uploader {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sess := link.NewSession(port,
		link.WithResponseTimeout(cfg.ResponseTimeout),
		link.WithCommandDelay(cfg.CommandDelay),
		link.WithLogger(cfg.Logger),
	)

	return &Uploader{
		session: sess,
		config:  cfg,
	}
}

// Upload sends the whole identifier list to the device as one
// transaction: ping, SetCount, then every planned chunk strictly in
// order. The first failure aborts the transaction; the device discards an
// incomplete upload when the next transaction opens with a fresh
// SetCount, so a failed upload is simply restarted from the beginning.
//
// With WithRetries(n) the whole transaction is re-attempted up to n more
// times. A *CapacityError is returned before any transport activity when
// the list exceeds the protocol's 16-bit count.
//
// An empty list is a valid upload: the device is told to expect zero
// identifiers and no chunks are sent.
func (u *Uploader) Upload(ctx context.Context, entries []uint32) error {
	plan, err := PlanUpload(entries, u.config.MaxFrameBytes)
	if err != nil {
		return err
	}

	u.logDebug("upload planned",
		"total_count", plan.TotalCount,
		"chunks", len(plan.Chunks),
		"frame_budget", u.config.MaxFrameBytes,
	)

	attempts := u.config.Retries + 1
	for attempt := 1; ; attempt++ {
		err = u.runTransaction(ctx, plan)
		if err == nil {
			return nil
		}
		if attempt >= attempts || ctx.Err() != nil {
			return err
		}

		u.logError("upload attempt failed, retrying",
			"attempt", attempt,
			"of", attempts,
			"error", err.Error(),
		)

		if u.config.RetryDelay > 0 {
			select {
			case <-time.After(u.config.RetryDelay):
			case <-ctx.Done():
				return err
			}
		}
	}
}

// ReadLast asks the device for the most recently scanned identifier.
func (u *Uploader) ReadLast(ctx context.Context) (uint32, error) {
	return u.session.ReadLast(ctx)
}

// Ping checks that the device answers the protocol handshake.
func (u *Uploader) Ping(ctx context.Context) error {
	return u.session.Ping(ctx)
}

// runTransaction executes one complete upload attempt.
func (u *Uploader) runTransaction(ctx context.Context, plan *UploadPlan) error {
	startTime := time.Now()
	totalChunks := len(plan.Chunks)

	// Phase 1: ping
	u.reportProgress(Progress{
		Phase:       PhasePinging,
		TotalChunks: totalChunks,
	})

	if err := u.session.Ping(ctx); err != nil {
		return &UploadError{Phase: PhasePinging, Chunk: -1, TotalChunks: totalChunks, Err: err}
	}

	// Phase 2: declare the count. A mismatched echo here means the
	// device refused the count; nothing has been sent yet.
	u.reportProgress(Progress{
		Phase:       PhaseDeclaring,
		TotalChunks: totalChunks,
		Percentage:  5,
		ElapsedTime: time.Since(startTime),
	})

	if err := u.session.SetCount(ctx, plan.TotalCount); err != nil {
		return &UploadError{Phase: PhaseDeclaring, Chunk: -1, TotalChunks: totalChunks, Err: err}
	}

	// Phase 3: send chunks strictly in order. Cancellation is honored
	// between chunks, never mid-frame.
	entriesWritten := 0
	for i, chunk := range plan.Chunks {
		if err := ctx.Err(); err != nil {
			return &UploadError{Phase: PhaseSending, Chunk: i, TotalChunks: totalChunks,
				Err: fmt.Errorf("cancelled: %w", err)}
		}

		if err := u.session.SendChunk(ctx, chunk); err != nil {
			return &UploadError{Phase: PhaseSending, Chunk: i, TotalChunks: totalChunks, Err: err}
		}

		entriesWritten += len(chunk)

		// 5% to 95% across the chunk sequence
		percentage := 5 + (float64(i+1)/float64(totalChunks))*90
		u.reportProgress(Progress{
			Phase:          PhaseSending,
			CurrentChunk:   i + 1,
			TotalChunks:    totalChunks,
			Percentage:     percentage,
			EntriesWritten: entriesWritten,
			ElapsedTime:    time.Since(startTime),
		})
	}

	u.reportProgress(Progress{
		Phase:          PhaseComplete,
		CurrentChunk:   totalChunks,
		TotalChunks:    totalChunks,
		Percentage:     100,
		EntriesWritten: entriesWritten,
		ElapsedTime:    time.Since(startTime),
	})

	u.logInfo("upload complete",
		"entries", entriesWritten,
		"chunks", totalChunks,
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// reportProgress calls the progress callback if configured.
func (u *Uploader) reportProgress(progress Progress) {
	if u.config.ProgressCallback != nil {
		u.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (u *Uploader) logDebug(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (u *Uploader) logInfo(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (u *Uploader) logError(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Error(msg, keysAndValues...)
	}
}
