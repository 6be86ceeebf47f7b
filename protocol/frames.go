package protocol

import (
	"encoding/binary"
	"fmt"
)

// Role indicates the direction of a command/response header.
type Role byte

// Header roles, derived from the frame tag byte.
const (
	// RoleRequest is a host-to-device header (tag 0xCD)
	RoleRequest Role = RequestTag

	// RoleResponse is a device-to-host header (tag 0xDC)
	RoleResponse Role = ResponseTag
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleRequest:
		return "request"
	case RoleResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Header is a decoded 4-byte command or response header.
type Header struct {
	// Role is the frame direction (request or response)
	Role Role

	// Op is the protocol operation
	Op Opcode

	// Param is the 16-bit command-specific parameter:
	// unused (0) for Ping and ReadLast, the total identifier count for
	// SetCount, and the payload entry count for SendChunk.
	Param uint16
}

// EncodeCommand builds a 4-byte request header for the given operation.
//
// Frame structure:
//
//	[TAG=0xCD][OPCODE][PARAM_H][PARAM_L]
//
// The parameter is big-endian. Encoding never fails: every opcode/parameter
// combination is representable.
func EncodeCommand(op Opcode, param uint16) []byte {
	frame := make([]byte, HeaderSize)
	frame[0] = RequestTag
	frame[1] = byte(op)
	binary.BigEndian.PutUint16(frame[2:4], param)
	return frame
}

// EncodeEntry builds the 4-byte wire form of one identifier.
//
// Entries are raw big-endian values with no tag; they are only ever sent
// as SendChunk payload or received as the ReadLast trailing payload.
func EncodeEntry(id uint32) []byte {
	buf := make([]byte, EntrySize)
	binary.BigEndian.PutUint32(buf, id)
	return buf
}

// DecodeHeader parses a 4-byte command/response header.
// Returns a *FramingError if the buffer is not exactly HeaderSize bytes
// or the tag byte is neither RequestTag nor ResponseTag.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) != HeaderSize {
		return Header{}, &FramingError{
			Reason: fmt.Sprintf("header must be exactly %d bytes, got %d", HeaderSize, len(buf)),
		}
	}

	tag := buf[0]
	if tag != RequestTag && tag != ResponseTag {
		return Header{}, &FramingError{
			Reason: fmt.Sprintf("unrecognized frame tag 0x%02X (want 0x%02X or 0x%02X)",
				tag, RequestTag, ResponseTag),
			Tag: tag,
		}
	}

	return Header{
		Role:  Role(tag),
		Op:    Opcode(buf[1]),
		Param: binary.BigEndian.Uint16(buf[2:4]),
	}, nil
}

// DecodeEntry parses a 4-byte identifier entry as a big-endian value.
// Fails only when the buffer is not exactly EntrySize bytes.
func DecodeEntry(buf []byte) (uint32, error) {
	if len(buf) != EntrySize {
		return 0, &FramingError{
			Reason: fmt.Sprintf("entry must be exactly %d bytes, got %d", EntrySize, len(buf)),
		}
	}
	return binary.BigEndian.Uint32(buf), nil
}
