// Package system wires a ROM image and RAM backing store together behind
// the m68k.Bus interface, giving a CPU core something to execute against.
package system

import (
	"fmt"

	"github.com/68k-sys/sys68k/m68k"
)

const (
	romEnd = 0x00010000
	ramEnd = 0x01000000
)

// Machine is the memory map a sys68k ROM image runs in: a read-only ROM
// region at the bottom of the address space, backed by RAM up to the
// 24-bit address limit. It implements m68k.Bus.
type Machine struct {
	CPU *m68k.CPU

	rom []byte
	ram [ramEnd - romEnd]byte
}

// New loads rom (padded/truncated to a 64KB ROM window) and wires a CPU
// against the resulting memory map.
func New(rom []byte) *Machine {
	m := &Machine{rom: make([]byte, romEnd)}
	copy(m.rom, rom)
	m.CPU = m68k.New(m)
	return m
}

// Reset re-runs the CPU's hardware reset against this memory map (reloads
// SSP/PC from the ROM's vector table at addresses 0 and 4).
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Step executes one instruction via the wired CPU.
func (m *Machine) Step() (int, error) {
	return m.CPU.Step()
}

func (m *Machine) Read(sz m68k.Size, addr uint32) (uint32, error) {
	if addr < romEnd {
		return readAt(m.rom, addr, sz), nil
	}
	if addr < ramEnd {
		return readAt(m.ram[:], addr-romEnd, sz), nil
	}
	return 0, &m68k.BusError{Addr: addr, Size: sz, Write: false}
}

func (m *Machine) Write(sz m68k.Size, addr uint32, val uint32) error {
	if addr < romEnd {
		return &m68k.BusError{Addr: addr, Size: sz, Write: true}
	}
	if addr < ramEnd {
		writeAt(m.ram[:], addr-romEnd, sz, val)
		return nil
	}
	return &m68k.BusError{Addr: addr, Size: sz, Write: true}
}

func readAt(mem []byte, addr uint32, sz m68k.Size) uint32 {
	switch sz {
	case m68k.Byte:
		return uint32(mem[addr])
	case m68k.Word:
		return uint32(mem[addr])<<8 | uint32(mem[addr+1])
	case m68k.Long:
		return uint32(mem[addr])<<24 | uint32(mem[addr+1])<<16 |
			uint32(mem[addr+2])<<8 | uint32(mem[addr+3])
	}
	panic(fmt.Sprintf("system: unknown size %v", sz))
}

func writeAt(mem []byte, addr uint32, sz m68k.Size, val uint32) {
	switch sz {
	case m68k.Byte:
		mem[addr] = byte(val)
	case m68k.Word:
		mem[addr] = byte(val >> 8)
		mem[addr+1] = byte(val)
	case m68k.Long:
		mem[addr] = byte(val >> 24)
		mem[addr+1] = byte(val >> 16)
		mem[addr+2] = byte(val >> 8)
		mem[addr+3] = byte(val)
	}
}
