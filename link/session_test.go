package link

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xebef/go-rfiddb/protocol"
)

// mockPort simulates the device side of the link: it records everything
// the session writes and serves scripted responses to reads. An empty
// response queue behaves like a silent device (timeout).
type mockPort struct {
	wrote     []byte
	writeErr  error
	responses [][]byte
	respIdx   int
}

type mockTimeout struct{}

func (mockTimeout) Error() string { return "mock read window elapsed" }
func (mockTimeout) Timeout() bool { return true }

func (m *mockPort) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.wrote = append(m.wrote, p...)
	return len(p), nil
}

func (m *mockPort) ReadExact(buf []byte, timeout time.Duration) error {
	if m.respIdx >= len(m.responses) {
		return mockTimeout{}
	}
	resp := m.responses[m.respIdx]
	m.respIdx++
	if len(resp) != len(buf) {
		copy(buf, resp)
		return mockTimeout{}
	}
	copy(buf, resp)
	return nil
}

func (m *mockPort) queue(resp ...[]byte) {
	m.responses = append(m.responses, resp...)
}

func TestPing(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x00, 0x00, 0x00})

	sess := NewSession(port)
	err := sess.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte{0xCD, 0x00, 0x00, 0x00}, port.wrote)
}

func TestPingWrongParameter(t *testing.T) {
	// A device echoing parameter 1 to a ping is a protocol violation,
	// not a success.
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x00, 0x00, 0x01})

	sess := NewSession(port)
	err := sess.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, IsProtocolError(err))
	assert.Contains(t, err.Error(), "unexpected acknowledgment")
}

func TestPingRequestTagEcho(t *testing.T) {
	// A well-framed header with the request tag is still the wrong role
	// for an acknowledgment.
	port := &mockPort{}
	port.queue([]byte{0xCD, 0x00, 0x00, 0x00})

	sess := NewSession(port)
	err := sess.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, IsProtocolError(err))
}

func TestPingUnrecognizedTag(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xAB, 0x00, 0x00, 0x00})

	sess := NewSession(port)
	err := sess.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, protocol.IsFramingError(err))
}

func TestPingTimeout(t *testing.T) {
	port := &mockPort{} // silent device

	sess := NewSession(port, WithResponseTimeout(50*time.Millisecond))
	err := sess.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, IsTimeout(err))

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, protocol.OpPing, te.Op)
	assert.Equal(t, 50*time.Millisecond, te.Window)
}

func TestSetCount(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x01, 0x00, 0x32})

	sess := NewSession(port)
	err := sess.SetCount(context.Background(), 50)

	require.NoError(t, err)
	assert.Equal(t, []byte{0xCD, 0x01, 0x00, 0x32}, port.wrote)
}

func TestSetCountMismatchedEcho(t *testing.T) {
	// The device accepting a different count than declared must abort
	// the upload.
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x01, 0x00, 0x31})

	sess := NewSession(port)
	err := sess.SetCount(context.Background(), 50)

	require.Error(t, err)
	assert.True(t, IsProtocolError(err))
}

func TestSendChunk(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x02, 0x00, 0x32})

	entries := make([]uint32, 50)
	for i := range entries {
		entries[i] = uint32(i)
	}

	sess := NewSession(port)
	err := sess.SendChunk(context.Background(), entries)
	require.NoError(t, err)

	// Documented trace: CD020032 followed by 50 big-endian entries.
	want := []byte{0xCD, 0x02, 0x00, 0x32}
	for i := 0; i < 50; i++ {
		want = append(want, 0x00, 0x00, 0x00, byte(i))
	}
	assert.Equal(t, want, port.wrote)
}

func TestSendChunkOversize(t *testing.T) {
	port := &mockPort{}
	sess := NewSession(port)

	// 63 entries need 4 + 252 = 256 bytes, one over the device buffer.
	entries := make([]uint32, 63)
	err := sess.SendChunk(context.Background(), entries)

	require.Error(t, err)
	assert.True(t, IsOversizeError(err))
	assert.Empty(t, port.wrote, "oversize chunk must not touch the transport")
}

func TestSendChunkLargestLegalFrame(t *testing.T) {
	// 62 entries fill 252 of the 255-byte budget; still legal.
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x02, 0x00, 0x3E})

	sess := NewSession(port)
	err := sess.SendChunk(context.Background(), make([]uint32, 62))

	require.NoError(t, err)
	assert.Len(t, port.wrote, 4+62*4)
}

func TestReadLast(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x03, 0x00, 0x00}, []byte{0x12, 0x34, 0x56, 0x78})

	sess := NewSession(port)
	id, err := sess.ReadLast(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), id)
	assert.Equal(t, []byte{0xCD, 0x03, 0x00, 0x00}, port.wrote)
}

func TestReadLastMissingPayload(t *testing.T) {
	// Acknowledgment arrives but the trailing identifier frame never does.
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x03, 0x00, 0x00})

	sess := NewSession(port)
	_, err := sess.ReadLast(context.Background())

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestReadLastWrongAck(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x01, 0x00, 0x00}, []byte{0x12, 0x34, 0x56, 0x78})

	sess := NewSession(port)
	_, err := sess.ReadLast(context.Background())

	require.Error(t, err)
	assert.True(t, IsProtocolError(err))
}

// reentrantPort issues a second command from inside a read, simulating a
// caller that tries to pipeline.
type reentrantPort struct {
	mockPort
	sess    *Session
	nested  error
	entered bool
}

func (r *reentrantPort) ReadExact(buf []byte, timeout time.Duration) error {
	if !r.entered {
		r.entered = true
		r.nested = r.sess.Ping(context.Background())
	}
	return r.mockPort.ReadExact(buf, timeout)
}

func TestSessionRejectsOverlappingCommands(t *testing.T) {
	port := &reentrantPort{}
	port.queue([]byte{0xDC, 0x00, 0x00, 0x00})

	sess := NewSession(port)
	port.sess = sess

	err := sess.Ping(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, port.nested, ErrSessionBusy)
}

func TestSessionIdleAfterFailure(t *testing.T) {
	port := &mockPort{}
	sess := NewSession(port, WithResponseTimeout(10*time.Millisecond))

	require.Error(t, sess.Ping(context.Background()))

	// A failed exchange must release the session for the next command.
	port.queue([]byte{0xDC, 0x00, 0x00, 0x00})
	assert.NoError(t, sess.Ping(context.Background()))
}

func TestCancelledContext(t *testing.T) {
	port := &mockPort{}
	port.queue([]byte{0xDC, 0x00, 0x00, 0x00})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sess := NewSession(port)
	err := sess.Ping(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, port.wrote, "cancelled command must not be written")
}

func TestNewSessionNilPort(t *testing.T) {
	assert.Panics(t, func() { NewSession(nil) })
}
