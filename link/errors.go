package link

import (
	"errors"
	"fmt"
	"time"

	"github.com/0xebef/go-rfiddb/protocol"
)

// ErrSessionBusy is returned when a command is issued while another
// exchange is still unresolved. The device cannot disambiguate
// overlapping exchanges, so the session refuses to start one.
var ErrSessionBusy = errors.New("session busy: a command is already outstanding")

// ProtocolError indicates a well-formed but semantically wrong
// acknowledgment: the device echoed an unexpected opcode, parameter,
// or role.
type ProtocolError struct {
	// Op is the command that was issued
	Op protocol.Opcode

	// ExpectedParam is the parameter the echo should have carried
	ExpectedParam uint16

	// Got is the header the device actually sent
	Got protocol.Header
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected acknowledgment for %s: got %s %s param=%d, want param=%d",
		e.Op, e.Got.Role, e.Got.Op, e.Got.Param, e.ExpectedParam)
}

// IsProtocolError returns true if the error is a *ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// TimeoutError indicates that no complete response arrived within the
// configured window.
type TimeoutError struct {
	// Op is the command that went unanswered
	Op protocol.Opcode

	// Window is the timeout that elapsed
	Window time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response to %s within %s", e.Op, e.Window)
}

// Timeout reports this as a timeout condition (net.Error convention).
func (e *TimeoutError) Timeout() bool { return true }

// IsTimeout returns true if the error, anywhere in its chain, reports
// itself as a timeout. Port implementations signal read windows elapsing
// this way; os.ErrDeadlineExceeded satisfies it too.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// OversizeError indicates a SendChunk call whose frame would exceed the
// device's receive buffer. This is a caller contract violation, detected
// before any byte is written.
type OversizeError struct {
	// Entries is the requested entry count
	Entries int

	// FrameSize is the header-plus-payload size that count implies
	FrameSize int
}

func (e *OversizeError) Error() string {
	return fmt.Sprintf("chunk of %d entries needs a %d-byte frame, exceeding the %d-byte device buffer",
		e.Entries, e.FrameSize, protocol.MaxFrameSize)
}

// IsOversizeError returns true if the error is an *OversizeError.
func IsOversizeError(err error) bool {
	var oe *OversizeError
	return errors.As(err, &oe)
}
