package m68k

func init() {
	registerNOP()
	registerSTOP()
	registerRESET()
	registerTRAP()
	registerTRAPV()
	registerLINK()
	registerUNLK()
	registerMoveToFromSR()
	registerAndiOriEoriSRCCR()
}

// --- NOP ---

func registerNOP() {
	instTable[0x4E71] = Instruction{Mnemonic: Nop}
}

// --- STOP ---

func registerSTOP() {
	instTable[0x4E72] = Instruction{Mnemonic: Stop}
}

// --- RESET ---

func registerRESET() {
	instTable[0x4E70] = Instruction{Mnemonic: Reset}
}

// --- TRAP ---

func registerTRAP() {
	// Encoding: 0100 1110 0100 VVVV (vector 0-15)
	for v := uint16(0); v < 16; v++ {
		instTable[0x4E40|v] = Instruction{Mnemonic: Trap, Data: int32(v)}
	}
}

// --- TRAPV ---

func registerTRAPV() {
	instTable[0x4E76] = Instruction{Mnemonic: Trapv}
}

// --- LINK ---

func registerLINK() {
	// Encoding: 0100 1110 0101 0AAA
	for an := uint16(0); an < 8; an++ {
		instTable[0x4E50|an] = Instruction{Mnemonic: Link, Reg: uint8(an)}
	}
}

// --- UNLK ---

func registerUNLK() {
	// Encoding: 0100 1110 0101 1AAA
	for an := uint16(0); an < 8; an++ {
		instTable[0x4E58|an] = Instruction{Mnemonic: Unlk, Reg: uint8(an)}
	}
}

// --- MOVE to/from SR, MOVE to/from CCR, MOVE to/from USP ---

func registerMoveToFromSR() {
	// MOVE SR,<ea> (data-alterable destination)
	// Encoding: 0100 0000 11mm mrrr
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT0(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x40C0|mode<<3|reg] = Instruction{
				Mnemonic: MoveFromSr, Size: Word,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}

	// MOVE <ea>,CCR
	// Encoding: 0100 0100 11mm mrrr
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT1(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x44C0|mode<<3|reg] = Instruction{
				Mnemonic: MoveToCcr, Size: Word,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}

	// MOVE <ea>,SR (privileged)
	// Encoding: 0100 0110 11mm mrrr
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT1(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x46C0|mode<<3|reg] = Instruction{
				Mnemonic: MoveToSr, Size: Word,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}

	// MOVE USP,An and MOVE An,USP (privileged)
	// Encoding: 0100 1110 0110 DAAA (D=0: An->USP, D=1: USP->An)
	for an := uint16(0); an < 8; an++ {
		instTable[0x4E60|an] = Instruction{Mnemonic: MoveUsp, Reg: uint8(an), Dir: 0}
		instTable[0x4E68|an] = Instruction{Mnemonic: MoveUsp, Reg: uint8(an), Dir: 1}
	}
}

func (c *CPU) execMoveFromSr(inst Instruction) {
	if !c.supervisor() {
		c.raise(&PrivilegeViolation{Opcode: inst.Opcode})
		return
	}
	dst := c.resolveEA(inst.EA, Word)
	dst.write(c, Word, uint32(c.sr))
	c.cycles += 8
}

func (c *CPU) execMoveToCcr(inst Instruction) {
	src := c.resolveEA(inst.EA, Word)
	c.setCCR(uint8(src.read(c, Word)))
	c.cycles += 12
}

func (c *CPU) execMoveToSr(inst Instruction) {
	if !c.supervisor() {
		c.raise(&PrivilegeViolation{Opcode: inst.Opcode})
		return
	}
	src := c.resolveEA(inst.EA, Word)
	c.setSR(uint16(src.read(c, Word)))
	c.cycles += 12
}

// --- ANDI/ORI/EORI to CCR and SR ---

func registerAndiOriEoriSRCCR() {
	instTable[0x023C] = Instruction{Mnemonic: AndiToCcr}
	instTable[0x027C] = Instruction{Mnemonic: AndiToSr}
	instTable[0x003C] = Instruction{Mnemonic: OriToCcr}
	instTable[0x007C] = Instruction{Mnemonic: OriToSr}
	instTable[0x0A3C] = Instruction{Mnemonic: EoriToCcr}
	instTable[0x0A7C] = Instruction{Mnemonic: EoriToSr}
}

func (c *CPU) execOriToCcr(inst Instruction) {
	imm := c.fetchPC()
	c.setCCR(uint8(c.sr) | uint8(imm))
	c.cycles += 20
}

func (c *CPU) execOriToSr(inst Instruction) {
	if !c.supervisor() {
		c.raise(&PrivilegeViolation{Opcode: inst.Opcode})
		return
	}
	imm := c.fetchPC()
	c.setSR(c.sr | imm)
	c.cycles += 20
}

func (c *CPU) execAndiToCcr(inst Instruction) {
	imm := c.fetchPC()
	c.setCCR(uint8(c.sr) & uint8(imm))
	c.cycles += 20
}

func (c *CPU) execAndiToSr(inst Instruction) {
	if !c.supervisor() {
		c.raise(&PrivilegeViolation{Opcode: inst.Opcode})
		return
	}
	imm := c.fetchPC()
	c.setSR(c.sr & imm)
	c.cycles += 20
}

func (c *CPU) execEoriToCcr(inst Instruction) {
	imm := c.fetchPC()
	c.setCCR(uint8(c.sr) ^ uint8(imm))
	c.cycles += 20
}

func (c *CPU) execEoriToSr(inst Instruction) {
	if !c.supervisor() {
		c.raise(&PrivilegeViolation{Opcode: inst.Opcode})
		return
	}
	imm := c.fetchPC()
	c.setSR(c.sr ^ imm)
	c.cycles += 20
}
