package m68k

// execute dispatches a decoded Instruction to its executor. Mnemonics
// outside the executed subset raise NotImplemented without otherwise
// touching CPU state; the decoder has already classified them correctly,
// only execution is withheld.
func (c *CPU) execute(inst Instruction) {
	switch inst.Mnemonic {
	case Illegal:
		c.raise(&IllegalInstruction{Opcode: inst.Opcode})

	case OriToCcr:
		c.execOriToCcr(inst)
	case OriToSr:
		c.execOriToSr(inst)
	case Ori:
		c.execOri(inst)
	case AndiToCcr:
		c.execAndiToCcr(inst)
	case AndiToSr:
		c.execAndiToSr(inst)
	case Andi:
		c.execAndi(inst)
	case EoriToCcr:
		c.execEoriToCcr(inst)
	case EoriToSr:
		c.execEoriToSr(inst)
	case Eori:
		c.execEori(inst)

	case Subi:
		c.execSubi(inst)
	case Addi:
		c.execAddi(inst)
	case Cmpi:
		c.execCmpi(inst)

	case Btst:
		c.execBtst(inst)
	case Bchg:
		c.execBchg(inst)
	case Bclr:
		c.execBclr(inst)
	case Bset:
		c.execBset(inst)

	case Move:
		c.execMove(inst)
	case Movea:
		c.execMovea(inst)

	case MoveFromSr:
		c.execMoveFromSr(inst)
	case MoveToSr:
		c.execMoveToSr(inst)
	case MoveToCcr:
		c.execMoveToCcr(inst)

	case Clr:
		c.execClr(inst)
	case Neg:
		c.execNeg(inst)
	case Negx:
		c.execNegx(inst)
	case Not:
		c.execNot(inst)

	case Ext:
		c.execExt(inst)
	case Swap:
		c.execSwap(inst)
	case Pea:
		c.execPea(inst)
	case Tas:
		c.execTas(inst)
	case Tst:
		c.execTst(inst)
	case Moveq:
		c.execMoveq(inst)

	default:
		c.raise(&NotImplemented{Mnemonic: inst.Mnemonic, Opcode: inst.Opcode})
	}
}
