package debug

import (
	"testing"

	"github.com/68k-sys/sys68k/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func romWithVectors(ssp, pc uint32, program ...uint16) []byte {
	rom := make([]byte, 0x10000)
	put32 := func(addr, v uint32) {
		rom[addr] = byte(v >> 24)
		rom[addr+1] = byte(v >> 16)
		rom[addr+2] = byte(v >> 8)
		rom[addr+3] = byte(v)
	}
	put32(0, ssp)
	put32(4, pc)
	for i, w := range program {
		off := pc + uint32(i*2)
		rom[off] = byte(w >> 8)
		rom[off+1] = byte(w)
	}
	return rom
}

func newTestTarget(program ...uint16) *Target {
	m := system.New(romWithVectors(0x020000, 0x000400, program...))
	m.Reset()
	return NewTarget(m)
}

func TestReadWriteRegisters(t *testing.T) {
	target := newTestTarget(0x4E71)
	regs := target.ReadRegisters()
	assert.Equal(t, uint32(0x000400), regs.PC)
	assert.Equal(t, uint32(0x020000), regs.Addr[7])

	regs.Data[0] = 0xDEADBEEF
	target.WriteRegisters(regs)
	assert.Equal(t, uint32(0xDEADBEEF), target.Machine.CPU.Registers().D[0])
}

func TestCoreRegsSerializeRoundTrip(t *testing.T) {
	var in CoreRegs
	in.Data[3] = 0x11223344
	in.Addr[5] = 0xAABBCCDD
	in.SR = 0x2700
	in.PC = 0x1000

	buf := make([]byte, 72)
	in.Serialize(buf)
	// little-endian: low byte of D3 first
	assert.Equal(t, byte(0x44), buf[3*4])

	var out CoreRegs
	out.Deserialize(buf)
	assert.Equal(t, in, out)
}

func TestReadWriteSingleRegister(t *testing.T) {
	target := newTestTarget(0x4E71)
	target.WriteRegister(RegA2, [4]byte{0x01, 0x00, 0x00, 0x00})
	assert.Equal(t, uint32(1), target.Machine.CPU.Registers().A[2])

	got := target.ReadRegister(RegPC)
	assert.Equal(t, [4]byte{0x00, 0x04, 0x00, 0x00}, got)
}

func TestWriteRegisterA7RoutesThroughActiveStackPointer(t *testing.T) {
	target := newTestTarget(0x4E71) // reset leaves the CPU in supervisor mode

	target.WriteRegister(RegA7, [4]byte{0x00, 0x10, 0x00, 0x00})
	regs := target.Machine.CPU.Registers()
	assert.Equal(t, uint32(0x001000), regs.A[7])
	assert.Equal(t, uint32(0x001000), regs.SSP)
}

func TestWriteRegistersA7RoutesToUserStackInUserMode(t *testing.T) {
	target := newTestTarget(0x4E71)

	regs := target.ReadRegisters()
	regs.SR &^= 0x2000 // drop supervisor bit: now in user mode
	regs.Addr[7] = 0x00004000
	target.WriteRegisters(regs)

	got := target.Machine.CPU.Registers()
	assert.Equal(t, uint32(0x00004000), got.USP)
	assert.Equal(t, uint32(0x00004000), got.A[7])
}

func TestReadAddrsFixesOffByOneAtNonzeroStart(t *testing.T) {
	target := newTestTarget(0x4E71)

	dst := make([]byte, 3)
	require.NoError(t, target.ReadAddrs(0x000400, dst))
	// Program bytes at 0x400 are the NOP opcode 0x4E71, 0x00 from the
	// following reset vector padding.
	assert.Equal(t, []byte{0x4E, 0x71, 0x00}, dst)
}

func TestWriteAddrsThenReadBack(t *testing.T) {
	target := newTestTarget(0x4E71)

	data := []byte{0x11, 0x22, 0x33}
	require.NoError(t, target.WriteAddrs(0x010010, data))

	got := make([]byte, 3)
	require.NoError(t, target.ReadAddrs(0x010010, got))
	assert.Equal(t, data, got)
}

func TestBreakpointAddRemove(t *testing.T) {
	target := newTestTarget(0x4E71)
	assert.True(t, target.AddBreakpoint(0x500))
	assert.False(t, target.AddBreakpoint(0x500))
	assert.True(t, target.RemoveBreakpoint(0x500))
	assert.False(t, target.RemoveBreakpoint(0x500))
}

func TestStepReportsBreakpointHit(t *testing.T) {
	target := newTestTarget(0x7000, 0x7000) // MOVEQ #0,D0 twice
	target.AddBreakpoint(0x402)

	hit, err := target.Step()
	require.NoError(t, err)
	assert.True(t, hit)
}
