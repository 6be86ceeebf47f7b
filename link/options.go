package link

import "time"

// DefaultResponseTimeout is the default wait for a 4-byte response frame.
// Matches the timeout the device's reference host tool uses at 9600 baud.
const DefaultResponseTimeout = 2 * time.Second

// Config holds the session configuration.
type Config struct {
	// ResponseTimeout is the maximum wait for a 4-byte response frame
	// before the exchange fails with a *TimeoutError
	ResponseTimeout time.Duration

	// CommandDelay is an optional pause between writing a command and
	// reading its acknowledgment, for devices that need settling time
	CommandDelay time.Duration

	// Logger is used for logging exchanges (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ResponseTimeout: DefaultResponseTimeout,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithResponseTimeout sets the maximum wait for a response frame.
//
// Example:
//
//	sess := link.NewSession(port, link.WithResponseTimeout(5*time.Second))
func WithResponseTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ResponseTimeout = timeout
		}
	}
}

// WithCommandDelay sets a pause between writing a command and reading
// its acknowledgment.
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithLogger sets a logger for session exchanges.
//
// Example:
//
//	sess := link.NewSession(port, link.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Logger is an optional logging interface. It allows integration with any
// logging framework without coupling the library to one.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
