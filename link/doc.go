// Package link executes single command/response exchanges against the
// doorlock controller over any ordered, reliable byte channel.
//
// A Session issues exactly one command at a time, awaits the device's
// 4-byte echoed acknowledgment within a configurable window, and
// validates it. The four protocol operations are exposed directly:
//
//	sess := link.NewSession(port)
//	err := sess.Ping(ctx)
//	err = sess.SetCount(ctx, 110)
//	err = sess.SendChunk(ctx, entries)
//	id, err := sess.ReadLast(ctx)
//
// # Error Handling
//
// Failures are reported with typed errors:
//   - *ProtocolError: the echo carried the wrong opcode, parameter, or role
//   - *TimeoutError: no complete response within the configured window
//   - *OversizeError: a SendChunk call exceeding the device buffer budget
//   - ErrSessionBusy: a command was issued while one was outstanding
//
// None of these is retried internally; retry policy belongs to the layer
// above (see the uploader package).
//
// # Transport Independence
//
// The session only needs a Port: Write plus ReadExact with a timeout.
// The transport/serialport package provides the UART implementation; tests
// use in-memory ports.
package link
