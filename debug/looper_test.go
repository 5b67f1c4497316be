package debug

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLoopStopsOnTargetHalt(t *testing.T) {
	// No STOP instruction is executed by this core, so the loop is halted
	// by an execution fault instead: JMP is classified but not executed,
	// so the first step returns a NotImplemented error.
	target := newTestTarget(0x4EF8, 0x0404, 0xFFFF) // JMP ($0404).W; ($0404) = 0xFFFF
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	reason := RunLoop(target, NewConn(server))
	assert.Equal(t, StopTerminated, reason.Kind)
	assert.Error(t, reason.Err)
}

func TestRunLoopStopsOnBreakpoint(t *testing.T) {
	target := newTestTarget(0x7000, 0x7000) // MOVEQ #0,D0 twice
	target.AddBreakpoint(0x402)
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	reason := RunLoop(target, NewConn(server))
	assert.Equal(t, StopBreakpoint, reason.Kind)
}

func TestRunLoopReportsIncomingInterrupt(t *testing.T) {
	target := newTestTarget(0x7000) // MOVEQ #0,D0
	client, server := net.Pipe()
	defer client.Close()

	done := make(chan StopReason, 1)
	go func() {
		done <- RunLoop(target, NewConn(server))
	}()

	_, err := client.Write([]byte{0x03})
	require.NoError(t, err)

	reason := <-done
	server.Close()
	assert.Equal(t, StopInterrupted, reason.Kind)
}
