package m68k

func init() {
	registerBTST()
	registerBCHG()
	registerBCLR()
	registerBSET()
}

// Bit operations have two forms:
// Dynamic: 0000 DDD1 ttmm mrrr (Dn specifies bit number)
// Static:  0000 1000 ttmm mrrr + immediate word (bit number in extension)
// tt = 00:BTST, 01:BCHG, 10:BCLR, 11:BSET
// For Dn destination: operates on long (bit mod 32)
// For memory: operates on byte (bit mod 8)
//
// Instruction.Mode carries the form: 0=dynamic (bit number in Reg2), 1=static
// (bit number fetched from the extension word at execute time).

// --- BTST ---

func registerBTST() {
	// Dynamic form: BTST Dn,<ea> (includes immediate as source)
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT1(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0100|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Btst, Reg2: uint8(dn), Mode: 0,
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
	// Static form: BTST #imm,<ea>
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			instTable[0x0800|mode<<3|reg] = Instruction{
				Mnemonic: Btst, Mode: 1,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

// bitNumber returns the bit number for a bit instruction, reading the
// extension word for the static form, and the value of the data register
// named by Reg2 for the dynamic form.
func (c *CPU) bitNumber(inst Instruction) uint32 {
	if inst.Mode == 1 {
		return uint32(c.fetchPC() & 0xFF)
	}
	return c.d[inst.Reg2]
}

func (c *CPU) execBtst(inst Instruction) {
	bitNum := c.bitNumber(inst)
	if inst.EA.Mode == 0 {
		bitNum &= 31
		val := c.d[inst.EA.Reg]
		c.setZFromBit(val, bitNum)
	} else {
		bitNum &= 7
		dst := c.resolveEA(inst.EA, Byte)
		val := dst.read(c, Byte)
		c.setZFromBit(val, bitNum)
	}
	c.cycles += 8
}

func (c *CPU) setZFromBit(val, bitNum uint32) {
	if val&(1<<bitNum) == 0 {
		c.sr |= flagZ
	} else {
		c.sr &^= flagZ
	}
}

// --- BCHG ---

func registerBCHG() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0140|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Bchg, Reg2: uint8(dn), Mode: 0,
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT0(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x0840|mode<<3|reg] = Instruction{
				Mnemonic: Bchg, Mode: 1,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

func (c *CPU) execBchg(inst Instruction) {
	bitNum := c.bitNumber(inst)
	if inst.EA.Mode == 0 {
		bitNum &= 31
		mask := uint32(1) << bitNum
		c.setZFromBit(c.d[inst.EA.Reg], bitNum)
		c.d[inst.EA.Reg] ^= mask
	} else {
		bitNum &= 7
		mask := uint32(1) << bitNum
		dst := c.resolveEA(inst.EA, Byte)
		val := dst.read(c, Byte)
		c.setZFromBit(val, bitNum)
		dst.write(c, Byte, val^mask)
	}
	c.cycles += 8
}

// --- BCLR ---

func registerBCLR() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x0180|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Bclr, Reg2: uint8(dn), Mode: 0,
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT0(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x0880|mode<<3|reg] = Instruction{
				Mnemonic: Bclr, Mode: 1,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

func (c *CPU) execBclr(inst Instruction) {
	bitNum := c.bitNumber(inst)
	if inst.EA.Mode == 0 {
		bitNum &= 31
		mask := uint32(1) << bitNum
		c.setZFromBit(c.d[inst.EA.Reg], bitNum)
		c.d[inst.EA.Reg] &^= mask
	} else {
		bitNum &= 7
		mask := uint32(1) << bitNum
		dst := c.resolveEA(inst.EA, Byte)
		val := dst.read(c, Byte)
		c.setZFromBit(val, bitNum)
		dst.write(c, Byte, val&^mask)
	}
	c.cycles += 10
}

// --- BSET ---

func registerBSET() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x01C0|dn<<9|mode<<3|reg] = Instruction{
					Mnemonic: Bset, Reg2: uint8(dn), Mode: 0,
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT0(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x08C0|mode<<3|reg] = Instruction{
				Mnemonic: Bset, Mode: 1,
				EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

func (c *CPU) execBset(inst Instruction) {
	bitNum := c.bitNumber(inst)
	if inst.EA.Mode == 0 {
		bitNum &= 31
		mask := uint32(1) << bitNum
		c.setZFromBit(c.d[inst.EA.Reg], bitNum)
		c.d[inst.EA.Reg] |= mask
	} else {
		bitNum &= 7
		mask := uint32(1) << bitNum
		dst := c.resolveEA(inst.EA, Byte)
		val := dst.read(c, Byte)
		c.setZFromBit(val, bitNum)
		dst.write(c, Byte, val|mask)
	}
	c.cycles += 8
}
