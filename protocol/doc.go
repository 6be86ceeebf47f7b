// Package protocol implements the doorlock controller's binary wire format.
//
// This package provides pure encode/decode functions for the fixed-size
// frames exchanged with the device; it performs no I/O.
//
// # Wire Format
//
// All multi-byte values are big-endian. Two frame shapes exist, both
// 4 bytes long:
//
//	Header: [TAG][OPCODE][PARAM_H][PARAM_L]
//	Entry:  [ID_3][ID_2][ID_1][ID_0]
//
// Where:
//   - TAG = 0xCD for host-to-device requests, 0xDC for device responses
//   - OPCODE = 0x00 Ping, 0x01 SetCount, 0x02 SendChunk, 0x03 ReadLast
//   - PARAM = 16-bit command-specific parameter
//   - ID = a 32-bit RFID identifier, sent without a tag
//
// The device acknowledges every command by echoing the opcode and
// parameter under the response tag. ReadLast is the one asymmetry: its
// acknowledgment is followed by a single raw 4-byte entry carrying the
// last scanned identifier.
//
// # Usage
//
// Build a command frame:
//
//	frame := protocol.EncodeCommand(protocol.OpSetCount, 110)
//	// frame = CD 01 00 6E
//
// Parse a response header:
//
//	hdr, err := protocol.DecodeHeader(buf)
//	if err != nil {
//	    // *FramingError: short buffer or unrecognized tag
//	}
//	if hdr.Role != protocol.RoleResponse || hdr.Op != protocol.OpSetCount {
//	    // unexpected acknowledgment
//	}
package protocol
