package m68k

// EAKind names one of the twelve effective-address forms the MC68000
// addressing-mode field can select.
type EAKind uint8

const (
	EANone EAKind = iota
	EADataRegister
	EAAddressRegister
	EAAddress
	EAAddressPostInc
	EAAddressPreDec
	EAAddressDisp
	EAAddressIndex
	EAPcDisp
	EAPcIndex
	EAAbsShort
	EAAbsLong
	EAImmediate
)

func (k EAKind) String() string {
	switch k {
	case EADataRegister:
		return "Dn"
	case EAAddressRegister:
		return "An"
	case EAAddress:
		return "(An)"
	case EAAddressPostInc:
		return "(An)+"
	case EAAddressPreDec:
		return "-(An)"
	case EAAddressDisp:
		return "d(An)"
	case EAAddressIndex:
		return "d(An,Xi)"
	case EAPcDisp:
		return "d(PC)"
	case EAPcIndex:
		return "d(PC,Xi)"
	case EAAbsShort:
		return "abs.W"
	case EAAbsLong:
		return "abs.L"
	case EAImmediate:
		return "#imm"
	default:
		return "none"
	}
}

// EADescriptor is the decoder's pre-resolution addressing-mode record: the
// raw 3-bit mode and register/submode fields straight from the opcode word,
// exactly as the MC68000 encodes them. Kind() classifies them into the
// twelve-case variant the decoder output names.
type EADescriptor struct {
	Mode uint8
	Reg  uint8
}

// Kind classifies the descriptor into one of the EAKind values.
func (d EADescriptor) Kind() EAKind {
	switch d.Mode {
	case 0:
		return EADataRegister
	case 1:
		return EAAddressRegister
	case 2:
		return EAAddress
	case 3:
		return EAAddressPostInc
	case 4:
		return EAAddressPreDec
	case 5:
		return EAAddressDisp
	case 6:
		return EAAddressIndex
	case 7:
		switch d.Reg {
		case 0:
			return EAAbsShort
		case 1:
			return EAAbsLong
		case 2:
			return EAPcDisp
		case 3:
			return EAPcIndex
		case 4:
			return EAImmediate
		}
	}
	return EANone
}

// resolved-EA storage classes, mirroring the narrower "Resolved effective
// address" variant: a register index, a memory address, or an immediate
// already fetched from the instruction stream.
const (
	resDataReg = iota
	resAddrReg
	resMemory
	resImmediate
)

// resolvedEA is a concrete operand location produced by resolveEA: either a
// register, a bus address, or an immediate value already read from the
// instruction stream.
type resolvedEA struct {
	class uint8
	reg   uint8
	addr  uint32
	imm   uint32
}

// read returns the value at this effective address.
func (e resolvedEA) read(c *CPU, sz Size) uint32 {
	switch e.class {
	case resDataReg:
		return c.d[e.reg] & sz.Mask()
	case resAddrReg:
		return c.getA(e.reg) & sz.Mask()
	case resMemory:
		return c.readBus(sz, e.addr)
	case resImmediate:
		return e.imm & sz.Mask()
	}
	return 0
}

// write stores a value at this effective address. Data-register writes
// preserve the untouched high bits for byte/word operations; address
// registers always take the full 32-bit value.
func (e resolvedEA) write(c *CPU, sz Size, val uint32) {
	switch e.class {
	case resDataReg:
		mask := sz.Mask()
		c.d[e.reg] = (c.d[e.reg] & ^mask) | (val & mask)
	case resAddrReg:
		c.setA(e.reg, val)
	case resMemory:
		c.writeBus(sz, e.addr, val)
	}
}

// address returns the memory address; only meaningful for class resMemory
// (used by Pea, which needs the address rather than its contents).
func (e resolvedEA) address() uint32 {
	return e.addr
}

// resolveEA resolves a decoded EADescriptor against live CPU state at the
// given operand size, consuming extension words from the instruction
// stream and applying pre-decrement/post-increment side effects exactly
// once. Byte-sized access to A7 steps by 2 instead of 1 (the 68000 keeps
// the stack pointer word-aligned).
func (c *CPU) resolveEA(d EADescriptor, sz Size) resolvedEA {
	mode, reg := d.Mode, d.Reg
	switch mode {
	case 0: // Dn
		return resolvedEA{class: resDataReg, reg: reg}

	case 1: // An
		return resolvedEA{class: resAddrReg, reg: reg}

	case 2: // (An)
		return resolvedEA{class: resMemory, addr: c.getA(reg)}

	case 3: // (An)+
		addr := c.getA(reg)
		inc := uint32(sz)
		if reg == 7 && sz == Byte {
			inc = 2
		}
		c.setA(reg, addr+inc)
		return resolvedEA{class: resMemory, addr: addr}

	case 4: // -(An)
		dec := uint32(sz)
		if reg == 7 && sz == Byte {
			dec = 2
		}
		addr := c.getA(reg) - dec
		c.setA(reg, addr)
		return resolvedEA{class: resMemory, addr: addr}

	case 5: // d16(An)
		disp := int16(c.fetchPC())
		return resolvedEA{class: resMemory, addr: uint32(int32(c.getA(reg)) + int32(disp))}

	case 6: // d8(An,Xn)
		ext := c.fetchPC()
		return resolvedEA{class: resMemory, addr: c.calcIndex(c.getA(reg), ext)}

	case 7:
		switch reg {
		case 0: // abs.W
			addr := int16(c.fetchPC())
			return resolvedEA{class: resMemory, addr: uint32(int32(addr))}

		case 1: // abs.L
			return resolvedEA{class: resMemory, addr: c.fetchPCLong()}

		case 2: // d16(PC)
			pc := c.pc
			disp := int16(c.fetchPC())
			return resolvedEA{class: resMemory, addr: uint32(int32(pc) + int32(disp))}

		case 3: // d8(PC,Xn)
			pc := c.pc
			ext := c.fetchPC()
			return resolvedEA{class: resMemory, addr: c.calcIndex(pc, ext)}

		case 4: // #imm
			switch sz {
			case Byte:
				val := c.fetchPC()
				return resolvedEA{class: resImmediate, imm: uint32(val & 0xFF)}
			case Word:
				val := c.fetchPC()
				return resolvedEA{class: resImmediate, imm: uint32(val)}
			case Long:
				return resolvedEA{class: resImmediate, imm: c.fetchPCLong()}
			}
		}
	}

	c.raise(&IllegalInstruction{Opcode: c.ir})
	return resolvedEA{}
}

// calcIndex computes a base + d8(Xn) indexed address from a brief-format
// extension word: D/A | Reg(3) | W/L | 0(3) | Disp(8).
func (c *CPU) calcIndex(base uint32, ext uint16) uint32 {
	disp := int8(ext & 0xFF)
	xn := (ext >> 12) & 7

	var idx int32
	if ext&0x8000 != 0 {
		idx = int32(c.getA(uint8(xn)))
	} else {
		idx = int32(c.d[xn])
	}

	if ext&0x0800 == 0 {
		idx = int32(int16(idx))
	}

	return uint32(int32(base) + idx + int32(disp))
}
