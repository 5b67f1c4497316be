// Package debug adapts a system.Machine to a GDB remote-serial-protocol
// session: register and memory access, software breakpoints, and the
// cooperative step/poll loop a debug session runs under.
package debug

import (
	"github.com/68k-sys/sys68k/m68k"
	"github.com/68k-sys/sys68k/system"
)

// RegID identifies a single register in GDB's target-description order:
// D0-D7, A0-A7, SR, PC. GDB addresses registers by a flat index; RawRegID
// turns that index into one of these.
type RegID int

const (
	RegD0 RegID = iota
	RegD1
	RegD2
	RegD3
	RegD4
	RegD5
	RegD6
	RegD7
	RegA0
	RegA1
	RegA2
	RegA3
	RegA4
	RegA5
	RegA6
	RegA7
	RegSR
	RegPC
	numRegs
)

// RawRegID maps a raw GDB register number (0-17) to a RegID. GDB numbers
// registers 0-7 as the data registers, 8-15 as the address registers, 16 as
// SR, and 17 as PC.
func RawRegID(raw int) (RegID, bool) {
	if raw < 0 || raw >= int(numRegs) {
		return 0, false
	}
	return RegID(raw), true
}

// CoreRegs is the wire-order register file GDB's 'g'/'G' packets exchange:
// D0-D7, A0-A7, SR, PC, each a 32-bit little-endian word on the wire (GDB's
// m68k target description is little-endian despite the CPU itself being
// big-endian internally).
type CoreRegs struct {
	Data [8]uint32
	Addr [8]uint32
	SR   uint32
	PC   uint32
}

func coreRegsFromCPU(r m68k.Registers) CoreRegs {
	return CoreRegs{Data: r.D, Addr: r.A, SR: uint32(r.SR), PC: r.PC}
}

// Serialize writes the register file in GDB's little-endian wire format.
func (c CoreRegs) Serialize(dst []byte) {
	put := func(off int, v uint32) {
		dst[off] = byte(v)
		dst[off+1] = byte(v >> 8)
		dst[off+2] = byte(v >> 16)
		dst[off+3] = byte(v >> 24)
	}
	for i, v := range c.Data {
		put(i*4, v)
	}
	for i, v := range c.Addr {
		put(32+i*4, v)
	}
	put(64, c.SR)
	put(68, c.PC)
}

// Deserialize reads the register file from GDB's little-endian wire format.
func (c *CoreRegs) Deserialize(src []byte) {
	get := func(off int) uint32 {
		return uint32(src[off]) | uint32(src[off+1])<<8 |
			uint32(src[off+2])<<16 | uint32(src[off+3])<<24
	}
	for i := range c.Data {
		c.Data[i] = get(i * 4)
	}
	for i := range c.Addr {
		c.Addr[i] = get(32 + i*4)
	}
	c.SR = get(64)
	c.PC = get(68)
}

// Target is the attachment point a GDB session drives: a machine plus the
// breakpoint set and register/memory access GDB's remote serial protocol
// needs on top of it.
type Target struct {
	Machine *system.Machine

	breakpoints map[uint32]struct{}
}

// NewTarget wraps m for debugging.
func NewTarget(m *system.Machine) *Target {
	return &Target{Machine: m, breakpoints: make(map[uint32]struct{})}
}

// ReadRegisters returns the full register file in GDB wire order.
func (t *Target) ReadRegisters() CoreRegs {
	return coreRegsFromCPU(t.Machine.CPU.Registers())
}

// WriteRegisters replaces the full register file. A7 has no storage of its
// own in the CPU (see m68k.Registers.Supervisor), so the incoming Addr[7]
// is routed into whichever of SSP/USP the new SR makes active rather than
// dropped.
func (t *Target) WriteRegisters(regs CoreRegs) {
	cur := t.Machine.CPU.Registers()
	cur.D = regs.Data
	cur.A = regs.Addr
	cur.SR = uint16(regs.SR)
	cur.PC = regs.PC
	if cur.Supervisor() {
		cur.SSP = regs.Addr[7]
	} else {
		cur.USP = regs.Addr[7]
	}
	t.Machine.CPU.SetState(cur)
}

// ReadRegister returns the 4-byte little-endian value of a single register.
func (t *Target) ReadRegister(id RegID) [4]byte {
	regs := t.Machine.CPU.Registers()
	var v uint32
	switch {
	case id >= RegD0 && id <= RegD7:
		v = regs.D[id-RegD0]
	case id >= RegA0 && id <= RegA7:
		v = regs.A[id-RegA0]
	case id == RegSR:
		v = uint32(regs.SR)
	case id == RegPC:
		v = regs.PC
	}
	return [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// WriteRegister sets a single register from a 4-byte little-endian value.
// A7 routes through the active shadow stack pointer rather than regs.A[7],
// same as WriteRegisters.
func (t *Target) WriteRegister(id RegID, raw [4]byte) {
	v := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	regs := t.Machine.CPU.Registers()
	switch {
	case id == RegA7:
		if regs.Supervisor() {
			regs.SSP = v
		} else {
			regs.USP = v
		}
	case id >= RegD0 && id <= RegD7:
		regs.D[id-RegD0] = v
	case id >= RegA0 && id <= RegA7:
		regs.A[id-RegA0] = v
	case id == RegSR:
		regs.SR = uint16(v)
	case id == RegPC:
		regs.PC = v
	default:
		return
	}
	t.Machine.CPU.SetState(regs)
}

// ReadAddrs fills dst starting at addr, byte by byte. Each byte is read
// individually through the bus rather than in bulk so a read spanning a
// bus-error boundary still returns every byte up to the fault.
func (t *Target) ReadAddrs(addr uint32, dst []byte) error {
	for i := range dst {
		v, err := t.Machine.Read(m68k.Byte, addr+uint32(i))
		if err != nil {
			return err
		}
		dst[i] = byte(v)
	}
	return nil
}

// WriteAddrs writes data starting at addr, byte by byte.
func (t *Target) WriteAddrs(addr uint32, data []byte) error {
	for i, b := range data {
		if err := t.Machine.Write(m68k.Byte, addr+uint32(i), uint32(b)); err != nil {
			return err
		}
	}
	return nil
}

// AddBreakpoint installs a software breakpoint at addr, reporting whether
// it was newly added.
func (t *Target) AddBreakpoint(addr uint32) bool {
	if _, ok := t.breakpoints[addr]; ok {
		return false
	}
	t.breakpoints[addr] = struct{}{}
	return true
}

// RemoveBreakpoint removes a software breakpoint, reporting whether one was
// present.
func (t *Target) RemoveBreakpoint(addr uint32) bool {
	if _, ok := t.breakpoints[addr]; !ok {
		return false
	}
	delete(t.breakpoints, addr)
	return true
}

// Step executes one instruction and reports whether the program counter
// now sits on an installed breakpoint.
func (t *Target) Step() (hitBreakpoint bool, err error) {
	if _, err := t.Machine.Step(); err != nil {
		return false, err
	}
	_, hit := t.breakpoints[t.Machine.CPU.Registers().PC]
	return hit, nil
}
