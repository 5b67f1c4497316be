package m68k

func init() {
	registerADD()
	registerADDA()
	registerADDI()
	registerADDQ()
	registerADDX()
	registerSUB()
	registerSUBA()
	registerSUBI()
	registerSUBQ()
	registerSUBX()
	registerCMP()
	registerCMPA()
	registerCMPI()
	registerCMPM()
	registerMULU()
	registerMULS()
	registerDIVU()
	registerDIVS()
	registerNEG()
	registerNEGX()
	registerCLR()
	registerEXT()
	registerCHK()
}

// --- ADD ---

// registerADD classifies ADD <ea>,Dn and ADD Dn,<ea>.
// Encoding: 1101 DDD O SS eee eee
//
//	O=0: <ea>+Dn->Dn (all source EAs)  O=1: Dn+<ea>-><ea> (memory alterable)
func registerADD() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) || (mode == 1 && szBits == 0) {
						continue
					}
					instTable[0xD000|dn<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: Add, Size: opSize2(szBits), Reg: uint8(dn), Dir: 0,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalMemAlterable(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xD000|dn<<9|(szBits+4)<<6|mode<<3|reg] = Instruction{
						Mnemonic: Add, Size: opSize2(szBits), Reg: uint8(dn), Dir: 1,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- ADDA ---

func registerADDA() {
	for an := uint16(0); an < 8; an++ {
		for _, szBit := range []uint16{3, 7} { // 3=Word, 7=Long
			sz := Word
			if szBit == 7 {
				sz = Long
			}
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xD000|an<<9|szBit<<6|mode<<3|reg] = Instruction{
						Mnemonic: Adda, Size: sz, Reg: uint8(an),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- ADDI ---

func registerADDI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0600|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Addi, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execAddi(inst Instruction) {
	sz := inst.Size
	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(inst.EA, sz)
	d := dst.read(c, sz)
	result := imm + d
	c.setFlagsAdd(imm, d, result, sz)
	dst.write(c, sz, result)

	if sz == Long {
		c.cycles += 20
	} else {
		c.cycles += 12
	}
}

// --- ADDQ ---

func registerADDQ() {
	for data := uint16(0); data < 8; data++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) || (mode == 1 && szBits == 0) {
						continue
					}
					instTable[0x5000|data<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: Addq, Size: opSize2(szBits), Data: int32(data),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- ADDX ---

func registerADDX() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				instTable[0xD100|rx<<9|szBits<<6|ry] = Instruction{
					Mnemonic: Addx, Size: opSize2(szBits), Reg: uint8(rx), Reg2: uint8(ry), Mode: 0,
				}
				instTable[0xD108|rx<<9|szBits<<6|ry] = Instruction{
					Mnemonic: Addx, Size: opSize2(szBits), Reg: uint8(rx), Reg2: uint8(ry), Mode: 1,
				}
			}
		}
	}
}

// --- SUB ---

func registerSUB() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) || (mode == 1 && szBits == 0) {
						continue
					}
					instTable[0x9000|dn<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: Sub, Size: opSize2(szBits), Reg: uint8(dn), Dir: 0,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalMemAlterable(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0x9000|dn<<9|(szBits+4)<<6|mode<<3|reg] = Instruction{
						Mnemonic: Sub, Size: opSize2(szBits), Reg: uint8(dn), Dir: 1,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- SUBA ---

func registerSUBA() {
	for an := uint16(0); an < 8; an++ {
		for _, szBit := range []uint16{3, 7} {
			sz := Word
			if szBit == 7 {
				sz = Long
			}
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0x9000|an<<9|szBit<<6|mode<<3|reg] = Instruction{
						Mnemonic: Suba, Size: sz, Reg: uint8(an),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- SUBI ---

func registerSUBI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0400|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Subi, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execSubi(inst Instruction) {
	sz := inst.Size
	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(inst.EA, sz)
	d := dst.read(c, sz)
	result := d - imm
	c.setFlagsSub(imm, d, result, sz)
	dst.write(c, sz, result)

	if sz == Long {
		c.cycles += 20
	} else {
		c.cycles += 12
	}
}

// --- SUBQ ---

func registerSUBQ() {
	for data := uint16(0); data < 8; data++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) || (mode == 1 && szBits == 0) {
						continue
					}
					instTable[0x5100|data<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: Subq, Size: opSize2(szBits), Data: int32(data),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- SUBX ---

func registerSUBX() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				instTable[0x9100|rx<<9|szBits<<6|ry] = Instruction{
					Mnemonic: Subx, Size: opSize2(szBits), Reg: uint8(rx), Reg2: uint8(ry), Mode: 0,
				}
				instTable[0x9108|rx<<9|szBits<<6|ry] = Instruction{
					Mnemonic: Subx, Size: opSize2(szBits), Reg: uint8(rx), Reg2: uint8(ry), Mode: 1,
				}
			}
		}
	}
}

// --- CMP ---

func registerCMP() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) || (mode == 1 && szBits == 0) {
						continue
					}
					instTable[0xB000|dn<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: Cmp, Size: opSize2(szBits), Reg: uint8(dn),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- CMPA ---

func registerCMPA() {
	for an := uint16(0); an < 8; an++ {
		for _, szBit := range []uint16{3, 7} {
			sz := Word
			if szBit == 7 {
				sz = Long
			}
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT3(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xB000|an<<9|szBit<<6|mode<<3|reg] = Instruction{
						Mnemonic: Cmpa, Size: sz, Reg: uint8(an),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- CMPI ---

func registerCMPI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0C00|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Cmpi, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execCmpi(inst Instruction) {
	sz := inst.Size
	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(inst.EA, sz)
	d := dst.read(c, sz)
	result := d - imm
	c.setFlagsCmp(imm, d, result, sz)

	if sz == Long {
		c.cycles += 14
	} else {
		c.cycles += 8
	}
}

// --- CMPM ---

func registerCMPM() {
	for ax := uint16(0); ax < 8; ax++ {
		for ay := uint16(0); ay < 8; ay++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				instTable[0xB108|ax<<9|szBits<<6|ay] = Instruction{
					Mnemonic: Cmpm, Size: opSize2(szBits), Reg: uint8(ax), Reg2: uint8(ay),
				}
			}
		}
	}
}

// --- MULU / MULS ---

func registerMULU() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT1(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0xC0C0|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Mulu, Size: Word, Reg: uint8(dn),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func registerMULS() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT1(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0xC1C0|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Muls, Size: Word, Reg: uint8(dn),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

// --- DIVU / DIVS ---

func registerDIVU() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT1(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x80C0|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Divu, Size: Word, Reg: uint8(dn),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func registerDIVS() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT1(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x81C0|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Divs, Size: Word, Reg: uint8(dn),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

// --- NEG ---

func registerNEG() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x4400|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Neg, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execNeg(inst Instruction) {
	sz := inst.Size
	dst := c.resolveEA(inst.EA, sz)
	d := dst.read(c, sz)
	result := uint32(0) - d
	c.setFlagsSub(d, 0, result, sz)
	dst.write(c, sz, result)
	c.cycles += 8
}

// --- NEGX ---

func registerNEGX() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x4000|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Negx, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

// execNegx implements NEGX: result = 0 - dst - X. Unlike NEG, the Z flag is
// only ever cleared by a nonzero result, never set by a zero one, so a
// multi-precision negate chain correctly reports nonzero if any limb was
// nonzero.
func (c *CPU) execNegx(inst Instruction) {
	sz := inst.Size
	dst := c.resolveEA(inst.EA, sz)
	d := dst.read(c, sz)
	x := uint32(0)
	if c.sr&flagX != 0 {
		x = 1
	}
	result := uint32(0) - d - x

	oldZ := c.sr & flagZ
	c.setFlagsSub(d, 0, result, sz)
	if result&sz.Mask() == 0 {
		c.sr = (c.sr &^ flagZ) | oldZ
	}
	dst.write(c, sz, result)
	c.cycles += 8
}

// --- CLR ---

func registerCLR() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x4200|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Clr, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execClr(inst Instruction) {
	sz := inst.Size
	dst := c.resolveEA(inst.EA, sz)
	dst.write(c, sz, 0)
	c.sr &^= flagN | flagV | flagC
	c.sr |= flagZ
	c.cycles += 8
}

// --- EXT ---

func registerEXT() {
	for dn := uint16(0); dn < 8; dn++ {
		instTable[0x4880|dn] = Instruction{Mnemonic: Ext, Size: Word, Reg: uint8(dn)}
		instTable[0x48C0|dn] = Instruction{Mnemonic: Ext, Size: Long, Reg: uint8(dn)}
	}
}

func (c *CPU) execExt(inst Instruction) {
	dn := inst.Reg
	if inst.Size == Word {
		val := uint32(int16(int8(c.d[dn])))
		c.d[dn] = (c.d[dn] & 0xFFFF0000) | (val & 0xFFFF)
		c.setFlagsLogical(val, Word)
	} else {
		val := uint32(int32(int16(c.d[dn])))
		c.d[dn] = val
		c.setFlagsLogical(val, Long)
	}
	c.cycles += 4
}

// --- CHK ---

// registerCHK classifies CHK <ea>,Dn (word only on the 68000).
// Encoding: 0100 DDD 110 MMM RRR
func registerCHK() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT1(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x4180|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Chk, Size: Word, Reg: uint8(dn),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}
