// Package m68k implements a Motorola 68000 CPU core.
//
// The MC68000 is a 32-bit internal / 16-bit external CISC processor with:
//   - Eight 32-bit data registers (D0-D7)
//   - Eight 32-bit address registers (A0-A7), where A7 is the stack pointer
//   - A 32-bit program counter (24-bit external address bus)
//   - A 16-bit status register (system byte + condition code register)
//   - Dual stack pointers (USP for user mode, SSP for supervisor mode)
//
// A7 has no storage of its own: every read, write, push, pop, and
// effective-address side effect routes live through the active stack
// pointer (SSP in supervisor mode, USP in user mode) via getA/setA.
package m68k

// Registers is a snapshot of the programmer-visible state of the MC68000.
// A[7] reports the currently active stack pointer; USP and SSP report both
// shadow values regardless of which one is live.
type Registers struct {
	D   [8]uint32
	A   [8]uint32
	PC  uint32
	SR  uint16
	USP uint32
	SSP uint32
	IR  uint16
}

// Supervisor reports whether this snapshot's SR has the supervisor bit
// set, the same test CPU.supervisor uses live. Callers that need to route
// a write to A[7] through the correct shadow stack pointer (USP or SSP)
// without a live CPU, such as a debug session replacing the register
// file, use this to pick which one.
func (r Registers) Supervisor() bool {
	return r.SR&flagS != 0
}

// CPU is the MC68000 processor. It owns no A7 storage; A7 is always
// resolved live from SR's supervisor bit against USP/SSP.
type CPU struct {
	d   [8]uint32
	a   [7]uint32 // A0-A6 only
	pc  uint32
	sr  uint16
	usp uint32
	ssp uint32

	bus     Bus
	decoder *Decoder

	ir      uint16
	prevPC  uint32
	cycles  uint64
	stopped bool

	// fault holds the exception raised by the instruction currently
	// executing, if any. Step() returns it to the caller and the step's
	// side effects up to the failing access stand as-is.
	fault error
}

// New creates a CPU wired to the given bus, using the shared decode table,
// and performs a hardware reset.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus, decoder: SharedDecoder()}
	c.Reset()
	return c
}

// Reset performs a hardware reset: loads SSP from address 0x000000 and PC
// from address 0x000004, enters supervisor mode with interrupts masked and
// all condition flags clear.
func (c *CPU) Reset() {
	c.d = [8]uint32{}
	c.a = [7]uint32{}
	c.sr = 0x2700
	c.usp = 0
	c.cycles = 0
	c.stopped = false
	c.fault = nil

	ssp, err := c.bus.Read(Long, 0)
	if err != nil {
		c.fault = err
		return
	}
	c.ssp = ssp
	pc, err := c.bus.Read(Long, 4)
	if err != nil {
		c.fault = err
		return
	}
	c.pc = pc
}

// Stopped reports whether the CPU executed a STOP instruction. This core
// does not execute STOP (see ops_ctrl.go); the flag exists for the
// programmer-visible model named in the data model and for
// implementations that extend coverage.
func (c *CPU) Stopped() bool { return c.stopped }

// Step decodes and executes one instruction, returning the cycles consumed
// and any exception raised. A non-nil error means the instruction's side
// effects up to the faulting access already landed; the caller must stop
// driving the CPU on error (there is no vector-table dispatch in this
// minimal core — see DESIGN.md).
func (c *CPU) Step() (int, error) {
	c.fault = nil
	before := c.cycles

	if c.pc&1 != 0 {
		c.fault = &AddressError{Addr: c.pc}
		return 0, c.fault
	}

	c.prevPC = c.pc
	c.ir = c.fetchPC()
	if c.fault != nil {
		return int(c.cycles - before), c.fault
	}

	inst := c.decoder.Decode(c.ir)
	c.execute(inst)

	if c.fault == nil && c.pc&1 != 0 {
		c.fault = &AddressError{Addr: c.pc}
	}

	return int(c.cycles - before), c.fault
}

// Cycles returns the total cycle count since the last reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Registers returns a snapshot of the current register state.
func (c *CPU) Registers() Registers {
	r := Registers{D: c.d, PC: c.pc, SR: c.sr, USP: c.usp, SSP: c.ssp, IR: c.ir}
	copy(r.A[:7], c.a[:])
	r.A[7] = c.activeSP()
	return r
}

// SetState sets all programmer-visible registers directly without
// performing a hardware reset, for establishing exact state in tests.
func (c *CPU) SetState(regs Registers) {
	c.d = regs.D
	copy(c.a[:], regs.A[:7])
	c.pc = regs.PC
	c.sr = regs.SR
	c.usp = regs.USP
	c.ssp = regs.SSP
	c.stopped = false
	c.fault = nil
	c.cycles = 0
}

// raise records the first exception encountered during the current step.
// Later calls within the same step are no-ops: the first fault is what
// terminates the step.
func (c *CPU) raise(err error) {
	if c.fault == nil {
		c.fault = err
	}
}

// supervisor reports whether the CPU is in supervisor mode.
func (c *CPU) supervisor() bool {
	return c.sr&flagS != 0
}

// activeSP returns the currently live stack pointer value (SSP in
// supervisor mode, USP in user mode) without touching any A7 storage,
// since none exists.
func (c *CPU) activeSP() uint32 {
	if c.supervisor() {
		return c.ssp
	}
	return c.usp
}

// setActiveSP writes to whichever of SSP/USP is currently live.
func (c *CPU) setActiveSP(v uint32) {
	if c.supervisor() {
		c.ssp = v
	} else {
		c.usp = v
	}
}

// getA reads address register n (0-6 from storage, 7 routed live through
// the active stack pointer).
func (c *CPU) getA(n uint8) uint32 {
	if n == 7 {
		return c.activeSP()
	}
	return c.a[n]
}

// setA writes address register n, routing n==7 through the active stack
// pointer.
func (c *CPU) setA(n uint8, v uint32) {
	if n == 7 {
		c.setActiveSP(v)
		return
	}
	c.a[n] = v
}

// setSR writes the status register, masked to the legal MC68000 bit set
// (0xA71F: T_S__III___XNZVC). No stack-pointer swap happens here: A7 is
// always routed live off the (now possibly changed) supervisor bit, so
// there is nothing to synchronize.
func (c *CPU) setSR(sr uint16) {
	c.sr = sr & 0xA71F
}

// setCCR writes only the condition-code byte (low byte of SR); bits 5-7 of
// that byte are always zero on the 68000.
func (c *CPU) setCCR(ccr uint8) {
	c.sr = (c.sr & 0xFF00) | uint16(ccr&0x1F)
}

// readBus performs a 24-bit-masked bus read, raising AddressError for
// unaligned word/long accesses and propagating a BusError from the bus
// itself. On fault, returns 0 — the caller must check c.fault (or rely on
// Step's post-dispatch check) rather than trust the return value.
func (c *CPU) readBus(sz Size, addr uint32) uint32 {
	if c.fault != nil {
		return 0
	}
	if sz != Byte && addr&1 != 0 {
		c.raise(&AddressError{Addr: addr & 0xFFFFFF})
		return 0
	}
	addr &= 0xFFFFFF
	val, err := c.bus.Read(sz, addr)
	if err != nil {
		c.raise(err)
		return 0
	}
	return val
}

// writeBus performs a 24-bit-masked bus write, with the same fault
// handling as readBus.
func (c *CPU) writeBus(sz Size, addr uint32, val uint32) {
	if c.fault != nil {
		return
	}
	if sz != Byte && addr&1 != 0 {
		c.raise(&AddressError{Addr: addr & 0xFFFFFF})
		return
	}
	addr &= 0xFFFFFF
	val &= sz.Mask()
	if err := c.bus.Write(sz, addr, val); err != nil {
		c.raise(err)
	}
}

// fetchPC reads a 16-bit word at the current PC and advances PC by 2.
func (c *CPU) fetchPC() uint16 {
	val := c.readBus(Word, c.pc)
	c.pc += 2
	return uint16(val)
}

// fetchPCLong reads a 32-bit long at the current PC and advances PC by 4.
func (c *CPU) fetchPCLong() uint32 {
	hi := c.fetchPC()
	lo := c.fetchPC()
	return uint32(hi)<<16 | uint32(lo)
}

// pushWord pushes a 16-bit word onto the active stack.
func (c *CPU) pushWord(val uint16) {
	sp := c.getA(7) - 2
	c.setA(7, sp)
	c.writeBus(Word, sp, uint32(val))
}

// pushLong pushes a 32-bit long onto the active stack.
func (c *CPU) pushLong(val uint32) {
	sp := c.getA(7) - 4
	c.setA(7, sp)
	c.writeBus(Long, sp, val)
}

// popWord pops a 16-bit word from the active stack.
func (c *CPU) popWord() uint16 {
	sp := c.getA(7)
	val := c.readBus(Word, sp)
	c.setA(7, sp+2)
	return uint16(val)
}

// popLong pops a 32-bit long from the active stack.
func (c *CPU) popLong() uint32 {
	sp := c.getA(7)
	val := c.readBus(Long, sp)
	c.setA(7, sp+4)
	return val
}
