package link

import (
	"context"
	"fmt"
	"time"

	"github.com/0xebef/go-rfiddb/protocol"
)

// sessionState tracks whether a command/response exchange is in flight.
type sessionState int

const (
	stateIdle sessionState = iota
	stateAwaitingResponse
)

// Session executes one protocol command at a time against a Port and
// validates the device's acknowledgment.
//
// The device has no request identifiers, so overlapping exchanges cannot
// be disambiguated; Session enforces the single-outstanding-command rule
// as a state guard rather than relying on call-site discipline. Session
// is NOT safe for concurrent use.
type Session struct {
	port   Port
	config Config
	state  sessionState
}

// NewSession creates a Session over the given port.
//
// Example:
//
//	port, _ := serialport.Open("/dev/ttyUSB0", 9600)
//	sess := link.NewSession(port, link.WithResponseTimeout(2*time.Second))
func NewSession(port Port, opts ...Option) *Session {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		port:   port,
		config: cfg,
	}
}

// Ping checks that the device speaks the protocol. The device must echo
// the ping opcode with parameter 0.
func (s *Session) Ping(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	return s.roundTrip(ctx, protocol.OpPing, 0, nil)
}

// SetCount declares the total number of identifiers about to be uploaded.
// A mismatched echo means the device did not accept the count and the
// upload must not proceed.
func (s *Session) SetCount(ctx context.Context, n uint16) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	return s.roundTrip(ctx, protocol.OpSetCount, n, nil)
}

// SendChunk transfers one batch of identifiers: a SendChunk header whose
// parameter is the entry count, followed by each entry's 4-byte encoding
// in order, then one echoed acknowledgment.
//
// The header plus payload must fit the device's receive buffer
// (protocol.MaxFrameSize). A caller violating that contract gets an
// *OversizeError before any byte touches the transport.
func (s *Session) SendChunk(ctx context.Context, entries []uint32) error {
	if size := protocol.HeaderSize + protocol.EntrySize*len(entries); size > protocol.MaxFrameSize {
		return &OversizeError{Entries: len(entries), FrameSize: size}
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	payload := make([]byte, 0, protocol.EntrySize*len(entries))
	for _, id := range entries {
		payload = append(payload, protocol.EncodeEntry(id)...)
	}

	return s.roundTrip(ctx, protocol.OpSendChunk, uint16(len(entries)), payload)
}

// ReadLast asks the device for the most recently scanned identifier.
// The acknowledgment header is followed by one raw untagged 4-byte frame
// carrying the identifier; this trailing payload is a protocol-specific
// special case, unique to ReadLast.
func (s *Session) ReadLast(ctx context.Context) (uint32, error) {
	if err := s.begin(); err != nil {
		return 0, err
	}
	defer s.end()

	if err := s.roundTrip(ctx, protocol.OpReadLast, 0, nil); err != nil {
		return 0, err
	}

	buf := make([]byte, protocol.EntrySize)
	if err := s.port.ReadExact(buf, s.config.ResponseTimeout); err != nil {
		if IsTimeout(err) {
			return 0, &TimeoutError{Op: protocol.OpReadLast, Window: s.config.ResponseTimeout}
		}
		return 0, fmt.Errorf("read identifier payload: %w", err)
	}

	id, err := protocol.DecodeEntry(buf)
	if err != nil {
		return 0, err
	}

	s.logDebug("read last identifier", "id", fmt.Sprintf("0x%08X", id))
	return id, nil
}

// begin claims the session for one exchange.
func (s *Session) begin() error {
	if s.state != stateIdle {
		return ErrSessionBusy
	}
	s.state = stateAwaitingResponse
	return nil
}

// end releases the session after the exchange resolved.
func (s *Session) end() {
	s.state = stateIdle
}

// roundTrip writes one command frame (plus optional payload) and validates
// the echoed acknowledgment. The header and payload go out in a single
// write so a frame is never left half-sent on the wire.
func (s *Session) roundTrip(ctx context.Context, op protocol.Opcode, param uint16, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frame := protocol.EncodeCommand(op, param)
	if len(payload) > 0 {
		frame = append(frame, payload...)
	}

	s.logDebug("sending command", "op", op.String(), "param", param, "bytes", len(frame))

	if _, err := s.port.Write(frame); err != nil {
		return fmt.Errorf("write %s command: %w", op, err)
	}

	if s.config.CommandDelay > 0 {
		time.Sleep(s.config.CommandDelay)
	}

	buf := make([]byte, protocol.HeaderSize)
	if err := s.port.ReadExact(buf, s.config.ResponseTimeout); err != nil {
		if IsTimeout(err) {
			return &TimeoutError{Op: op, Window: s.config.ResponseTimeout}
		}
		return fmt.Errorf("read %s acknowledgment: %w", op, err)
	}

	hdr, err := protocol.DecodeHeader(buf)
	if err != nil {
		return err
	}

	if hdr.Role != protocol.RoleResponse || hdr.Op != op || hdr.Param != param {
		return &ProtocolError{Op: op, ExpectedParam: param, Got: hdr}
	}

	s.logDebug("acknowledged", "op", op.String(), "param", hdr.Param)
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}
