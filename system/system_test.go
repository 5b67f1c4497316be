package system

import (
	"testing"

	"github.com/68k-sys/sys68k/m68k"
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

func TestReadRomAndRam(t *testing.T) {
	m := New(romWithVectors(0x020000, 0x000400))

	val, err := m.Read(m68k.Byte, 0x000000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), val) // high byte of SSP 0x00020000

	// RAM starts right after the 64KB ROM window.
	require.NoError(t, m.Write(m68k.Long, 0x010000, 0xCAFEBABE))
	val, err = m.Read(m68k.Long, 0x010000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), val)
}

func TestWriteToRomIsBusError(t *testing.T) {
	m := New(romWithVectors(0x020000, 0x000400))

	err := m.Write(m68k.Word, 0x100, 0x1234)
	var busErr *m68k.BusError
	assert.ErrorAs(t, err, &busErr)
	assert.True(t, busErr.Write)
}

func TestResetLoadsVectorsAndSteps(t *testing.T) {
	// MOVEQ #0,D0 at 0x400
	m := New(romWithVectors(0x020000, 0x000400, 0x7000))
	m.Reset()

	cycles, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, 4, cycles)

	reg := m.CPU.Registers()
	assert.Equal(t, uint32(0x000402), reg.PC)
	assert.Equal(t, uint32(0x020000), reg.A[7])
}
