package m68k

func init() {
	registerMOVE()
	registerMOVEA()
	registerMOVEQ()
	registerMOVEP()
	registerLEA()
	registerPEA()
	registerMOVEM()
	registerEXG()
	registerSWAP()
}

// registerMOVE classifies all MOVE.B/W/L opcodes.
// Encoding: 00SS DDDd ddss ssss
//
//	SS = size (01=B, 11=W, 10=L)
//	DDD/ddd = destination reg/mode (note: reversed from source)
//	sss/ssssss = source mode/reg
func registerMOVE() {
	for _, szBits := range []uint16{0x1000, 0x2000, 0x3000} {
		sz := moveSize(szBits >> 12)
		for dstMode := uint16(0); dstMode < 8; dstMode++ {
			for dstReg := uint16(0); dstReg < 8; dstReg++ {
				if !legalT0(uint8(dstMode), uint8(dstReg)) {
					continue
				}
				for srcMode := uint16(0); srcMode < 8; srcMode++ {
					for srcReg := uint16(0); srcReg < 8; srcReg++ {
						if !legalT3(uint8(srcMode), uint8(srcReg)) {
							continue
						}
						instTable[szBits|dstReg<<9|dstMode<<6|srcMode<<3|srcReg] = Instruction{
							Mnemonic: Move, Size: sz,
							EA:  EADescriptor{Mode: uint8(srcMode), Reg: uint8(srcReg)},
							EA2: EADescriptor{Mode: uint8(dstMode), Reg: uint8(dstReg)},
						}
					}
				}
			}
		}
	}
}

func (c *CPU) execMove(inst Instruction) {
	sz := inst.Size
	src := c.resolveEA(inst.EA, sz)
	val := src.read(c, sz)
	dst := c.resolveEA(inst.EA2, sz)
	dst.write(c, sz, val)
	c.setFlagsLogical(val, sz)
	c.cycles += 4
}

// registerMOVEA classifies MOVEA.W and MOVEA.L opcodes.
// Encoding: 00SS DDD0 01ss ssss (destination mode = 001 = An)
func registerMOVEA() {
	for _, szBits := range []uint16{0x2000, 0x3000} {
		sz := moveSize(szBits >> 12)
		for dstReg := uint16(0); dstReg < 8; dstReg++ {
			for srcMode := uint16(0); srcMode < 8; srcMode++ {
				for srcReg := uint16(0); srcReg < 8; srcReg++ {
					if !legalT3(uint8(srcMode), uint8(srcReg)) {
						continue
					}
					instTable[szBits|dstReg<<9|1<<6|srcMode<<3|srcReg] = Instruction{
						Mnemonic: Movea, Size: sz, Reg: uint8(dstReg),
						EA: EADescriptor{Mode: uint8(srcMode), Reg: uint8(srcReg)},
					}
				}
			}
		}
	}
}

func (c *CPU) execMovea(inst Instruction) {
	sz := inst.Size
	src := c.resolveEA(inst.EA, sz)
	val := src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	c.setA(inst.Reg, val)
	// MOVEA does not affect condition codes.
	c.cycles += 4
}

// registerMOVEQ classifies MOVEQ #imm8,Dn.
// Encoding: 0111 DDD0 dddddddd
func registerMOVEQ() {
	for dn := uint16(0); dn < 8; dn++ {
		for data := uint16(0); data < 256; data++ {
			instTable[0x7000|dn<<9|data] = Instruction{
				Mnemonic: Moveq, Reg: uint8(dn), Data: int32(int8(data)),
			}
		}
	}
}

func (c *CPU) execMoveq(inst Instruction) {
	c.d[inst.Reg] = uint32(inst.Data)
	c.setFlagsLogical(c.d[inst.Reg], Long)
	c.cycles += 4
}

// registerLEA classifies LEA <ea>,An.
// Encoding: 0100 AAA1 11ss ssss (only control addressing modes)
func registerLEA() {
	for an := uint16(0); an < 8; an++ {
		for srcMode := uint16(0); srcMode < 8; srcMode++ {
			for srcReg := uint16(0); srcReg < 8; srcReg++ {
				if !legalT4(uint8(srcMode), uint8(srcReg)) {
					continue
				}
				instTable[0x41C0|an<<9|srcMode<<3|srcReg] = Instruction{
					Mnemonic: Lea, Size: Long, Reg: uint8(an),
					EA: EADescriptor{Mode: uint8(srcMode), Reg: uint8(srcReg)},
				}
			}
		}
	}
}

// registerPEA classifies PEA <ea>.
// Encoding: 0100 1000 01ss ssss (only control addressing modes)
func registerPEA() {
	for srcMode := uint16(0); srcMode < 8; srcMode++ {
		for srcReg := uint16(0); srcReg < 8; srcReg++ {
			if !legalT4(uint8(srcMode), uint8(srcReg)) {
				continue
			}
			instTable[0x4840|srcMode<<3|srcReg] = Instruction{
				Mnemonic: Pea, Size: Long,
				EA: EADescriptor{Mode: uint8(srcMode), Reg: uint8(srcReg)},
			}
		}
	}
}

func (c *CPU) execPea(inst Instruction) {
	src := c.resolveEA(inst.EA, Long)
	c.pushLong(src.address())
	c.cycles += 12
}

// registerMOVEM classifies MOVEM.W and MOVEM.L (register<->memory, bulk
// transfer gated by a 16-bit register-list mask fetched at execute time).
// Encoding: 0100 1D00 1Sss ssss  D=direction(0=reg-to-mem,1=mem-to-reg), S=size(0=W,1=L)
func registerMOVEM() {
	for dir := uint16(0); dir < 2; dir++ {
		for szBit := uint16(0); szBit < 2; szBit++ {
			sz := Word
			if szBit != 0 {
				sz = Long
			}
			for mode := uint16(2); mode < 8; mode++ {
				if dir == 0 && mode == 3 {
					continue // (An)+ not valid for reg-to-mem
				}
				if dir == 1 && mode == 4 {
					continue // -(An) not valid for mem-to-reg
				}
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 {
						if dir == 0 && reg > 1 {
							continue
						}
						if dir == 1 && reg > 3 {
							continue
						}
					}
					instTable[0x4880|dir<<10|szBit<<6|mode<<3|reg] = Instruction{
						Mnemonic: Movem, Size: sz, Dir: uint8(dir),
						EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
					}
				}
			}
		}
	}
}

// registerEXG classifies EXG Dx,Dy / EXG Ax,Ay / EXG Dx,Ay.
// Encoding: 1100 XXX1 MMMM MYYY
func registerEXG() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			instTable[0xC100|rx<<9|0x40|ry] = Instruction{Mnemonic: Exg, Reg: uint8(rx), Reg2: uint8(ry), Mode: 0}
			instTable[0xC100|rx<<9|0x48|ry] = Instruction{Mnemonic: Exg, Reg: uint8(rx), Reg2: uint8(ry), Mode: 1}
			instTable[0xC100|rx<<9|0x88|ry] = Instruction{Mnemonic: Exg, Reg: uint8(rx), Reg2: uint8(ry), Mode: 2}
		}
	}
}

// registerSWAP classifies SWAP Dn.
// Encoding: 0100 1000 0100 0DDD
func registerSWAP() {
	for dn := uint16(0); dn < 8; dn++ {
		instTable[0x4840|dn] = Instruction{Mnemonic: Swap, Reg: uint8(dn)}
	}
}

func (c *CPU) execSwap(inst Instruction) {
	dn := inst.Reg
	val := c.d[dn]
	c.d[dn] = (val>>16)&0xFFFF | (val&0xFFFF)<<16
	c.setFlagsLogical(c.d[dn], Long)
	c.cycles += 4
}

// registerMOVEP classifies MOVEP.W and MOVEP.L opcodes.
// Encoding: 0000 DDD OOO 001 AAA + 16-bit displacement
//
//	OOO=100: MOVEP.W (An),Dn   101: MOVEP.L (An),Dn
//	OOO=110: MOVEP.W Dn,(An)   111: MOVEP.L Dn,(An)
func registerMOVEP() {
	for dn := uint16(0); dn < 8; dn++ {
		for an := uint16(0); an < 8; an++ {
			instTable[0x0108|dn<<9|an] = Instruction{Mnemonic: Movep, Size: Word, Reg: uint8(dn), Reg2: uint8(an), Dir: 0}
			instTable[0x0148|dn<<9|an] = Instruction{Mnemonic: Movep, Size: Long, Reg: uint8(dn), Reg2: uint8(an), Dir: 0}
			instTable[0x0188|dn<<9|an] = Instruction{Mnemonic: Movep, Size: Word, Reg: uint8(dn), Reg2: uint8(an), Dir: 1}
			instTable[0x01C8|dn<<9|an] = Instruction{Mnemonic: Movep, Size: Long, Reg: uint8(dn), Reg2: uint8(an), Dir: 1}
		}
	}
}
