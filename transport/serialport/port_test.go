package serialport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xebef/go-rfiddb/link"
)

// stubConn simulates a UART delivering bytes in dribbles. Each call to
// Read hands out at most chunkSize bytes; an empty buffer behaves like an
// expired read timeout (go.bug.st/serial returns 0, nil in that case).
type stubConn struct {
	data      []byte
	chunkSize int
	timeouts  []time.Duration
	closed    bool
}

func (s *stubConn) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, nil
	}
	n := s.chunkSize
	if n <= 0 || n > len(s.data) {
		n = len(s.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, s.data[:n])
	s.data = s.data[n:]
	return n, nil
}

func (s *stubConn) Write(p []byte) (int, error) {
	return len(p), nil
}

func (s *stubConn) SetReadTimeout(t time.Duration) error {
	s.timeouts = append(s.timeouts, t)
	return nil
}

func (s *stubConn) Close() error {
	s.closed = true
	return nil
}

func TestReadExactAccumulatesDribbles(t *testing.T) {
	conn := &stubConn{data: []byte{0xDC, 0x01, 0x00, 0x32}, chunkSize: 1}
	port := &Port{conn: conn, name: "stub"}

	buf := make([]byte, 4)
	err := port.ReadExact(buf, time.Second)

	require.NoError(t, err)
	assert.Equal(t, []byte{0xDC, 0x01, 0x00, 0x32}, buf)
	assert.Len(t, conn.timeouts, 4, "each partial read gets the remaining window")
}

func TestReadExactTimeout(t *testing.T) {
	conn := &stubConn{} // silent device
	port := &Port{conn: conn, name: "stub"}

	buf := make([]byte, 4)
	err := port.ReadExact(buf, 50*time.Millisecond)

	require.Error(t, err)
	assert.True(t, link.IsTimeout(err))
	assert.Contains(t, err.Error(), "got 0 of 4 bytes")
}

func TestReadExactPartialThenTimeout(t *testing.T) {
	conn := &stubConn{data: []byte{0xDC, 0x01}, chunkSize: 2}
	port := &Port{conn: conn, name: "stub"}

	buf := make([]byte, 4)
	err := port.ReadExact(buf, 50*time.Millisecond)

	require.Error(t, err)
	assert.True(t, link.IsTimeout(err))
	assert.Contains(t, err.Error(), "got 2 of 4 bytes")
}

func TestPortImplementsLinkPort(t *testing.T) {
	var _ link.Port = &Port{}
}

func TestClose(t *testing.T) {
	conn := &stubConn{}
	port := &Port{conn: conn, name: "stub"}

	require.NoError(t, port.Close())
	assert.True(t, conn.closed)
}
