package protocol

// Frame tag bytes. Every 4-byte command/response header starts with one
// of these; a data entry carries no tag.
const (
	// RequestTag marks a frame sent from the host to the device (0xCD)
	RequestTag = 0xCD

	// ResponseTag marks a frame sent from the device to the host (0xDC)
	ResponseTag = 0xDC
)

// Opcode identifies a protocol operation. It occupies the second byte of
// a command/response header.
type Opcode byte

// Command opcodes understood by the doorlock controller.
const (
	// OpPing checks that the device speaks the protocol
	OpPing Opcode = 0x00

	// OpSetCount declares the total number of identifiers about to be uploaded
	OpSetCount Opcode = 0x01

	// OpSendChunk transfers one bounded-size batch of identifiers
	OpSendChunk Opcode = 0x02

	// OpReadLast requests the most recently scanned identifier
	OpReadLast Opcode = 0x03
)

// Frame size constants.
const (
	// HeaderSize is the fixed size of a command/response header in bytes:
	// TAG(1) + OPCODE(1) + PARAM(2)
	HeaderSize = 4

	// EntrySize is the size of one identifier entry in bytes
	EntrySize = 4

	// MaxFrameSize is the device's receive buffer size in bytes.
	// A chunk header plus its payload must never exceed this.
	MaxFrameSize = 255
)

// Device capacity limits.
const (
	// MaxChunkEntries is the depth of the device's incoming entry queue.
	// One SendChunk transaction may not carry more entries than this,
	// regardless of the frame budget.
	MaxChunkEntries = 50

	// MaxTotalCount is the largest identifier count representable in the
	// 16-bit SetCount parameter.
	MaxTotalCount = 0xFFFF
)

// String returns a human-readable name for the opcode.
func (op Opcode) String() string {
	switch op {
	case OpPing:
		return "ping"
	case OpSetCount:
		return "set-count"
	case OpSendChunk:
		return "send-chunk"
	case OpReadLast:
		return "read-last"
	default:
		return "unknown"
	}
}
