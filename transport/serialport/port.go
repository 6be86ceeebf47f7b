package serialport

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the doorlock controller's UART speed.
const DefaultBaudRate = 9600

// serialConn is the slice of go.bug.st/serial.Port this package needs.
// Narrowed so tests can stub the underlying port.
type serialConn interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

// Port is a serial UART implementation of link.Port.
type Port struct {
	conn serialConn
	name string
}

// Open opens the named serial port (e.g. "/dev/ttyUSB0" or "COM3") in
// 8N1 mode at the given baud rate. Pass DefaultBaudRate unless the
// device was built with a different UART configuration.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0", serialport.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
func Open(name string, baud int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	conn, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return &Port{conn: conn, name: name}, nil
}

// List returns the names of the serial ports present on the system.
func List() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}
	return ports, nil
}

// Write sends the whole buffer to the device.
func (p *Port) Write(b []byte) (int, error) {
	n, err := p.conn.Write(b)
	if err != nil {
		return n, fmt.Errorf("serial write on %s: %w", p.name, err)
	}
	return n, nil
}

// ReadExact fills buf completely or fails with a timeout error once the
// window elapses. The UART may deliver bytes in dribbles, so reads are
// accumulated under one shared deadline.
func (p *Port) ReadExact(buf []byte, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	read := 0
	for read < len(buf) {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return &readTimeoutError{want: len(buf), got: read, window: timeout}
		}

		if err := p.conn.SetReadTimeout(remaining); err != nil {
			return fmt.Errorf("set read timeout on %s: %w", p.name, err)
		}

		n, err := p.conn.Read(buf[read:])
		if err != nil {
			return fmt.Errorf("serial read on %s: %w", p.name, err)
		}
		if n == 0 {
			// go.bug.st/serial signals an expired read timeout as (0, nil)
			return &readTimeoutError{want: len(buf), got: read, window: timeout}
		}

		read += n
	}

	return nil
}

// Close releases the serial port.
func (p *Port) Close() error {
	return p.conn.Close()
}

// readTimeoutError reports an expired read window. Timeout() lets the
// link layer classify it without importing this package.
type readTimeoutError struct {
	want   int
	got    int
	window time.Duration
}

func (e *readTimeoutError) Error() string {
	return fmt.Sprintf("serial read timed out after %s: got %d of %d bytes", e.window, e.got, e.want)
}

func (e *readTimeoutError) Timeout() bool { return true }
