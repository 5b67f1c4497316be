package debug

import (
	"encoding/hex"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sendPacket and recvPacket drive the client side of the RSP wire protocol
// directly (rather than through a Conn) so the test exercises the exact
// bytes a real GDB client would see.
func sendPacket(t *testing.T, c net.Conn, data string) {
	t.Helper()
	sum := byte(0)
	for _, b := range []byte(data) {
		sum += b
	}
	_, err := c.Write([]byte("$" + data + "#"))
	require.NoError(t, err)
	_, err = c.Write([]byte(hex.EncodeToString([]byte{sum})))
	require.NoError(t, err)

	ack := make([]byte, 1)
	_, err = c.Read(ack)
	require.NoError(t, err)
	require.Equal(t, byte('+'), ack[0])
}

func recvPacket(t *testing.T, c net.Conn) string {
	t.Helper()
	buf := make([]byte, 4096)
	n, err := c.Read(buf)
	require.NoError(t, err)
	data := buf[:n]
	require.Equal(t, byte('$'), data[0])
	hashIdx := -1
	for i, b := range data {
		if b == '#' {
			hashIdx = i
			break
		}
	}
	require.NotEqual(t, -1, hashIdx)
	return string(data[1:hashIdx])
}

func TestSessionReadWriteMemory(t *testing.T) {
	target := newTestTarget(0x4E71)
	client, server := net.Pipe()
	defer client.Close()

	go func() {
		NewSession(target, NewConn(server)).Serve()
	}()

	sendPacket(t, client, "M10010,3:aabbcc")
	assert.Equal(t, "OK", recvPacket(t, client))

	sendPacket(t, client, "m10010,3")
	assert.Equal(t, "aabbcc", recvPacket(t, client))

	sendPacket(t, client, "D")
	assert.Equal(t, "OK", recvPacket(t, client))
}

func TestSessionBreakpointLifecycle(t *testing.T) {
	target := newTestTarget(0x4E71)
	client, server := net.Pipe()
	defer client.Close()

	go func() {
		NewSession(target, NewConn(server)).Serve()
	}()

	sendPacket(t, client, "Z0,402,2")
	assert.Equal(t, "OK", recvPacket(t, client))
	assert.Contains(t, target.breakpoints, uint32(0x402))

	sendPacket(t, client, "z0,402,2")
	assert.Equal(t, "OK", recvPacket(t, client))
	assert.NotContains(t, target.breakpoints, uint32(0x402))

	sendPacket(t, client, "D")
	assert.Equal(t, "OK", recvPacket(t, client))
}
