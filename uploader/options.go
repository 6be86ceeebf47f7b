package uploader

import (
	"time"

	"github.com/0xebef/go-rfiddb/link"
	"github.com/0xebef/go-rfiddb/protocol"
)

// Config holds the uploader configuration.
type Config struct {
	// MaxFrameBytes is the chunk frame budget; defaults to the device's
	// receive buffer size
	MaxFrameBytes int

	// ResponseTimeout is the per-command response window
	ResponseTimeout time.Duration

	// CommandDelay is an optional pause after each command write
	CommandDelay time.Duration

	// Retries is how many times a failed upload transaction is restarted
	// from scratch. The protocol itself never retries; 0 means a single
	// attempt.
	Retries int

	// RetryDelay is the pause between transaction attempts
	RetryDelay time.Duration

	// Logger is used for logging operations (optional)
	Logger link.Logger

	// ProgressCallback is called as the upload advances (optional)
	ProgressCallback ProgressCallback
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		MaxFrameBytes:   protocol.MaxFrameSize,
		ResponseTimeout: link.DefaultResponseTimeout,
		Retries:         0,
		RetryDelay:      500 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Uploader.
type Option func(*Config)

// WithMaxFrameBytes overrides the chunk frame budget. Values outside the
// range of one entry per frame up to the device buffer size are ignored.
func WithMaxFrameBytes(n int) Option {
	return func(c *Config) {
		if n >= protocol.HeaderSize+protocol.EntrySize && n <= protocol.MaxFrameSize {
			c.MaxFrameBytes = n
		}
	}
}

// WithResponseTimeout sets the per-command response window.
//
// Example:
//
//	up := uploader.New(port, uploader.WithResponseTimeout(5*time.Second))
func WithResponseTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ResponseTimeout = timeout
		}
	}
}

// WithCommandDelay sets a pause after each command write, for devices
// that need settling time between frames.
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithRetries sets how many times a failed upload is restarted from the
// beginning (the protocol has no partial resume). Default is 0.
//
// Example:
//
//	up := uploader.New(port, uploader.WithRetries(2))
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.Retries = retries
		}
	}
}

// WithRetryDelay sets the pause between upload attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.RetryDelay = delay
		}
	}
}

// WithLogger sets a logger for upload operations.
func WithLogger(logger link.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithProgressCallback sets a callback to track upload progress.
//
// Example:
//
//	up := uploader.New(port,
//	    uploader.WithProgressCallback(func(p uploader.Progress) {
//	        fmt.Printf("%.0f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}
