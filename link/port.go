package link

import "time"

// Port is the byte channel a Session drives. The protocol engine requires
// ordered, reliable, byte-oriented delivery; serial UART links and
// in-memory test ports both qualify.
//
// Implementations must return an error satisfying IsTimeout from ReadExact
// when the window elapses before the buffer is filled.
type Port interface {
	// Write sends the whole buffer to the device.
	Write(p []byte) (int, error)

	// ReadExact blocks until exactly len(buf) bytes have been received
	// or the timeout window elapses.
	ReadExact(buf []byte, timeout time.Duration) error
}
