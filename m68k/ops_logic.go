package m68k

func init() {
	registerAND()
	registerANDI()
	registerOR()
	registerORI()
	registerEOR()
	registerEORI()
	registerNOT()
	registerTST()
	registerTAS()
	registerShifts()
}

// --- AND ---

func registerAND() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT1(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xC000|dn<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: And, Size: opSize2(szBits), Reg: uint8(dn), Dir: 0,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalMemAlterable(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xC000|dn<<9|(szBits+4)<<6|mode<<3|reg] = Instruction{
						Mnemonic: And, Size: opSize2(szBits), Reg: uint8(dn), Dir: 1,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- ANDI ---

func registerANDI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0200|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Andi, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execAndi(inst Instruction) {
	sz := inst.Size
	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(inst.EA, sz)
	result := dst.read(c, sz) & imm
	c.setFlagsLogical(result, sz)
	dst.write(c, sz, result)

	c.cycles += 8
}

// --- OR ---

func registerOR() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT1(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0x8000|dn<<9|szBits<<6|mode<<3|reg] = Instruction{
						Mnemonic: Or, Size: opSize2(szBits), Reg: uint8(dn), Dir: 0,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalMemAlterable(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0x8000|dn<<9|(szBits+4)<<6|mode<<3|reg] = Instruction{
						Mnemonic: Or, Size: opSize2(szBits), Reg: uint8(dn), Dir: 1,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- ORI ---

func registerORI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0000|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Ori, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execOri(inst Instruction) {
	sz := inst.Size
	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(inst.EA, sz)
	result := dst.read(c, sz) | imm
	c.setFlagsLogical(result, sz)
	dst.write(c, sz, result)

	c.cycles += 8
}

// --- EOR ---

func registerEOR() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalT0(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xB000|dn<<9|(szBits+4)<<6|mode<<3|reg] = Instruction{
						Mnemonic: Eor, Size: opSize2(szBits), Reg: uint8(dn),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// --- EORI ---

func registerEORI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0A00|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Eori, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execEori(inst Instruction) {
	sz := inst.Size
	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(inst.EA, sz)
	result := dst.read(c, sz) ^ imm
	c.setFlagsLogical(result, sz)
	dst.write(c, sz, result)

	c.cycles += 8
}

// --- NOT ---

func registerNOT() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x4600|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Not, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execNot(inst Instruction) {
	sz := inst.Size
	dst := c.resolveEA(inst.EA, sz)
	result := ^dst.read(c, sz) & sz.Mask()
	c.setFlagsLogical(result, sz)
	dst.write(c, sz, result)
	c.cycles += 4
}

// --- TST ---

func registerTST() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x4A00|szBits<<6|mode<<3|reg] = Instruction{
					Mnemonic: Tst, Size: opSize2(szBits),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}

func (c *CPU) execTst(inst Instruction) {
	sz := inst.Size
	src := c.resolveEA(inst.EA, sz)
	val := src.read(c, sz)
	c.setFlagsLogical(val, sz)
	c.cycles += 4
}

// --- TAS ---

// registerTAS classifies TAS <ea>.
// Encoding: 0100 1010 11 MMM RRR
func registerTAS() {
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT0(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x4AC0|mode<<3|reg] = Instruction{
				Mnemonic: Tas,
				EA:       EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

func (c *CPU) execTas(inst Instruction) {
	dst := c.resolveEA(inst.EA, Byte)
	val := dst.read(c, Byte)
	c.setFlagsLogical(val, Byte)
	dst.write(c, Byte, val|0x80)
	c.cycles += 4
}

// --- Shifts and Rotates ---
// ASL, ASR, LSL, LSR, ROL, ROR, ROXL, ROXR
// Register form: 1110 CCC D SS i TT RRR
//
//	CCC = count/register, D = direction (0=right, 1=left)
//	SS = size, i = 0:immediate count 1:register count
//	TT = type (00=AS, 01=LS, 10=ROX, 11=RO)
//	RRR = data register
//
// Memory form: 1110 0TT D 11 eee eee (always word, count=1)

var shiftMnemonic = [2][4]Mnemonic{
	{Asr, Lsr, Roxr, Ror}, // dir=0 (right)
	{Asl, Lsl, Roxl, Rol}, // dir=1 (left)
}

func registerShifts() {
	for cnt := uint16(0); cnt < 8; cnt++ {
		for dir := uint16(0); dir < 2; dir++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				for ir := uint16(0); ir < 2; ir++ { // 0=immediate count, 1=register count
					for typ := uint16(0); typ < 4; typ++ {
						for dreg := uint16(0); dreg < 8; dreg++ {
							opcode := 0xE000 | cnt<<9 | dir<<8 | szBits<<6 | ir<<5 | typ<<3 | dreg
							instTable[opcode] = Instruction{
								Mnemonic: shiftMnemonic[dir][typ], Size: opSize2(szBits),
								Reg: uint8(dreg), Data: int32(cnt), Mode: uint8(ir),
							}
						}
					}
				}
			}
		}
	}

	// Memory form (word only, shift count always 1)
	for typ := uint16(0); typ < 4; typ++ {
		for dir := uint16(0); dir < 2; dir++ {
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if !legalMemAlterable(uint8(mode), uint8(reg)) {
						continue
					}
					instTable[0xE0C0|typ<<9|dir<<8|mode<<3|reg] = Instruction{
						Mnemonic: shiftMnemonic[dir][typ], Size: Word, Data: 1,
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}
