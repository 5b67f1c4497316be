package m68k

func init() {
	registerBcc()
	registerBRA()
	registerBSR()
	registerDBcc()
	registerJMP()
	registerJSR()
	registerRTS()
	registerRTE()
	registerRTR()
	registerScc()
}

// --- Bcc ---

// registerBcc classifies the 14 true conditional branches (cc 2-15; 0=BRA
// and 1=BSR are their own opcodes, handled separately).
// Encoding: 0110 CCCC DDDDDDDD (DD=0 selects a 16-bit extension displacement)
func registerBcc() {
	for cc := uint16(2); cc < 16; cc++ {
		for disp := uint16(0); disp < 256; disp++ {
			instTable[0x6000|cc<<8|disp] = Instruction{Mnemonic: Bcc, Cond: uint8(cc), Data: int32(int8(disp))}
		}
	}
}

// --- BRA ---

func registerBRA() {
	for disp := uint16(0); disp < 256; disp++ {
		instTable[0x6000|disp] = Instruction{Mnemonic: Bra, Data: int32(int8(disp))}
	}
}

// --- BSR ---

func registerBSR() {
	for disp := uint16(0); disp < 256; disp++ {
		instTable[0x6100|disp] = Instruction{Mnemonic: Bsr, Data: int32(int8(disp))}
	}
}

// --- DBcc ---

// registerDBcc classifies DBcc Dn,<label>.
// Encoding: 0101 CCCC 1100 1DDD
func registerDBcc() {
	for cc := uint16(0); cc < 16; cc++ {
		for dn := uint16(0); dn < 8; dn++ {
			instTable[0x50C8|cc<<8|dn] = Instruction{Mnemonic: Dbcc, Cond: uint8(cc), Reg: uint8(dn)}
		}
	}
}

// --- JMP ---

// registerJMP classifies JMP <ea> (control addressing modes only).
func registerJMP() {
	for mode := uint16(2); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT4(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x4EC0|mode<<3|reg] = Instruction{
				Mnemonic: Jmp,
				EA:       EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

// --- JSR ---

func registerJSR() {
	for mode := uint16(2); mode < 8; mode++ {
		for reg := uint16(0); reg < 8; reg++ {
			if !legalT4(uint8(mode), uint8(reg)) {
				continue
			}
			instTable[0x4E80|mode<<3|reg] = Instruction{
				Mnemonic: Jsr,
				EA:       EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
			}
		}
	}
}

// --- RTS ---

func registerRTS() {
	instTable[0x4E75] = Instruction{Mnemonic: Rts}
}

// --- RTE ---

func registerRTE() {
	instTable[0x4E73] = Instruction{Mnemonic: Rte}
}

// --- RTR ---

func registerRTR() {
	instTable[0x4E77] = Instruction{Mnemonic: Rtr}
}

// --- Scc ---

// registerScc classifies Scc <ea>.
// Encoding: 0101 CCCC 11ss ssss
func registerScc() {
	for cc := uint16(0); cc < 16; cc++ {
		for mode := uint16(0); mode < 8; mode++ {
			for reg := uint16(0); reg < 8; reg++ {
				if !legalT0(uint8(mode), uint8(reg)) {
					continue
				}
				instTable[0x50C0|cc<<8|mode<<3|reg] = Instruction{
					Mnemonic: Scc, Cond: uint8(cc),
					EA: EADescriptor{Mode: uint8(mode), Reg: uint8(reg)},
				}
			}
		}
	}
}
