package m68k

func init() {
	registerABCD()
	registerSBCD()
	registerNBCD()
}

// --- ABCD ---

// registerABCD classifies ABCD Dy,Dx and ABCD -(Ay),-(Ax).
// Encoding: 1100 XXX1 0000 RYYY  R=0: Dy,Dx  R=1: -(Ay),-(Ax)
func registerABCD() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			instTable[0xC100|rx<<9|ry] = Instruction{Mnemonic: Abcd, Reg: uint8(rx), Reg2: uint8(ry), Mode: 0}
			instTable[0xC108|rx<<9|ry] = Instruction{Mnemonic: Abcd, Reg: uint8(rx), Reg2: uint8(ry), Mode: 1}
		}
	}
}

// --- SBCD ---

// registerSBCD classifies SBCD Dy,Dx and SBCD -(Ay),-(Ax).
func registerSBCD() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			instTable[0x8100|rx<<9|ry] = Instruction{Mnemonic: Sbcd, Reg: uint8(rx), Reg2: uint8(ry), Mode: 0}
			instTable[0x8108|rx<<9|ry] = Instruction{Mnemonic: Sbcd, Reg: uint8(rx), Reg2: uint8(ry), Mode: 1}
		}
	}
}

// --- NBCD ---

// registerNBCD classifies NBCD <ea>.
// Encoding: 0100 1000 00ss ssss
func registerNBCD() {
	for mode := uint16(0); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT0(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x4800|mode<<3|reg] = Instruction{
				Mnemonic: Nbcd,
				EA:       EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}
