package m68k

import "testing"

// testBus is a flat 16MB byte-array bus for tests. Addresses are masked to
// 24 bits; out-of-range sizes never occur since Size only takes 1/2/4.
type testBus struct {
	mem [16 * 1024 * 1024]byte
}

func (b *testBus) Read(sz Size, addr uint32) (uint32, error) {
	addr &= 0xFFFFFF
	switch sz {
	case Byte:
		return uint32(b.mem[addr]), nil
	case Word:
		return uint32(b.mem[addr])<<8 | uint32(b.mem[addr+1]), nil
	case Long:
		return uint32(b.mem[addr])<<24 | uint32(b.mem[addr+1])<<16 |
			uint32(b.mem[addr+2])<<8 | uint32(b.mem[addr+3]), nil
	}
	return 0, nil
}

func (b *testBus) Write(sz Size, addr uint32, val uint32) error {
	addr &= 0xFFFFFF
	switch sz {
	case Byte:
		b.mem[addr] = byte(val)
	case Word:
		b.mem[addr] = byte(val >> 8)
		b.mem[addr+1] = byte(val)
	case Long:
		b.mem[addr] = byte(val >> 24)
		b.mem[addr+1] = byte(val >> 16)
		b.mem[addr+2] = byte(val >> 8)
		b.mem[addr+3] = byte(val)
	}
	return nil
}

func (b *testBus) writeWord(addr uint32, val uint16) {
	b.mem[addr] = byte(val >> 8)
	b.mem[addr+1] = byte(val)
}

// newTestCPU builds a CPU over a fresh testBus with the given program
// loaded at 0x1000, PC pointed at it, and a stack pointer at 0x10000.
func newTestCPU(program ...uint16) (*CPU, *testBus) {
	bus := &testBus{}
	for i, w := range program {
		bus.writeWord(0x1000+uint32(i*2), w)
	}
	cpu := &CPU{bus: bus, decoder: SharedDecoder()}
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})
	return cpu, bus
}

func TestOriToCcr(t *testing.T) {
	// ORI #$07,CCR: merges the low 3 condition bits into SR without
	// touching the system byte.
	cpu, _ := newTestCPU(0x003C, 0x0007)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	reg := cpu.Registers()
	if reg.SR != 0x2707 {
		t.Errorf("SR = 0x%04X, want 0x2707", reg.SR)
	}
	if reg.PC != 0x1004 {
		t.Errorf("PC = 0x%04X, want 0x1004", reg.PC)
	}
}

func TestSubiSetsFlags(t *testing.T) {
	// SUBI.B #$01,D0 with D0=0 underflows to 0xFF, setting N, C and X.
	cpu, _ := newTestCPU(0x0400, 0x0001) // SUBI.B #1,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	reg := cpu.Registers()
	if reg.D[0]&0xFF != 0xFF {
		t.Errorf("D0 low byte = 0x%02X, want 0xFF", reg.D[0]&0xFF)
	}
	want := flagN | flagC | flagX
	if reg.SR&0x1F != want {
		t.Errorf("CCR = 0x%02X, want 0x%02X", reg.SR&0x1F, want)
	}
}

func TestBchgTogglesBitAndReflectsZ(t *testing.T) {
	// BCHG #1,D0 on D0=0: bit was clear (Z set), then toggled on.
	cpu, _ := newTestCPU(0x0840, 0x0001) // BCHG #1,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0] != 0x2 {
		t.Errorf("D0 = 0x%X, want 0x2", reg.D[0])
	}
	if reg.SR&flagZ == 0 {
		t.Errorf("Z flag not set after toggling a previously-clear bit")
	}

	// Run it again: bit is now set, so Z clears and the bit goes back to 0.
	cpu.SetState(Registers{PC: 0x1000, SR: reg.SR, SSP: 0x10000, D: reg.D})
	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg = cpu.Registers()
	if reg.D[0] != 0 {
		t.Errorf("D0 = 0x%X, want 0 after second BCHG", reg.D[0])
	}
	if reg.SR&flagZ != 0 {
		t.Errorf("Z flag set after toggling a previously-set bit")
	}
}

func TestSwap(t *testing.T) {
	cpu, _ := newTestCPU(0x4840) // SWAP D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0x1234ABCD}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0] != 0xABCD1234 {
		t.Errorf("D0 = 0x%08X, want 0xABCD1234", reg.D[0])
	}
}

func TestPeaAbsoluteShort(t *testing.T) {
	// PEA ($0400).W pushes the absolute address, not its contents.
	cpu, _ := newTestCPU(0x4878, 0x0400) // PEA ($0400).W
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.A[7] != 0x10000-4 {
		t.Errorf("A7 = 0x%X, want 0x%X", reg.A[7], 0x10000-4)
	}
}

func TestMoveaDoesNotAffectFlags(t *testing.T) {
	// MOVEA.W D0,A0 with D0=0 would set Z under MOVE, but MOVEA never
	// touches condition codes.
	cpu, _ := newTestCPU(0x3040) // MOVEA.W D0,A0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700 | flagN, SSP: 0x10000, D: [8]uint32{0}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.A[0] != 0 {
		t.Errorf("A0 = 0x%X, want 0", reg.A[0])
	}
	if reg.SR&flagN == 0 {
		t.Errorf("MOVEA altered N flag; CCR should be untouched")
	}
}

func TestNegxClearsZOnlyWhenResultNonzero(t *testing.T) {
	// NEGX.L D0 with D0=0 and X already set: 0 - 0 - X = -1, non-zero
	// result, so Z must clear even though D0 started at zero.
	cpu, _ := newTestCPU(0x4080) // NEGX.L D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700 | flagX | flagZ, SSP: 0x10000, D: [8]uint32{0}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0] != 0xFFFFFFFF {
		t.Errorf("D0 = 0x%X, want 0xFFFFFFFF", reg.D[0])
	}
	if reg.SR&flagZ != 0 {
		t.Errorf("Z flag set, want clear after nonzero NEGX result")
	}
}

func TestMoveqSignExtendsAndSetsFlags(t *testing.T) {
	cpu, _ := newTestCPU(0x70FF) // MOVEQ #-1,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0] != 0xFFFFFFFF {
		t.Errorf("D0 = 0x%X, want 0xFFFFFFFF", reg.D[0])
	}
	if reg.SR&flagN == 0 {
		t.Errorf("N flag not set for negative MOVEQ immediate")
	}
}

func TestTasSetsBit7AndFlags(t *testing.T) {
	cpu, _ := newTestCPU(0x4AC0) // TAS D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0x42}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0]&0xFF != 0xC2 {
		t.Errorf("D0 low byte = 0x%02X, want 0xC2", reg.D[0]&0xFF)
	}
	if reg.SR&flagZ != 0 {
		t.Errorf("Z flag set, want clear for nonzero TAS operand")
	}
}

func TestTstSetsFlagsWithoutWriting(t *testing.T) {
	cpu, _ := newTestCPU(0x4A00) // TST.B D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0] != 0 {
		t.Errorf("D0 = 0x%X, want unchanged 0", reg.D[0])
	}
	if reg.SR&flagZ == 0 {
		t.Errorf("Z flag not set for zero TST operand")
	}
}

func TestNotComplementsOperand(t *testing.T) {
	cpu, _ := newTestCPU(0x4600) // NOT.B D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0x0F}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0]&0xFF != 0xF0 {
		t.Errorf("D0 low byte = 0x%02X, want 0xF0", reg.D[0]&0xFF)
	}
}

func TestOriMergesImmediateIntoDestination(t *testing.T) {
	cpu, _ := newTestCPU(0x0000, 0x00F0) // ORI.B #$F0,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0x0F}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0]&0xFF != 0xFF {
		t.Errorf("D0 low byte = 0x%02X, want 0xFF", reg.D[0]&0xFF)
	}
}

func TestAndiMasksImmediateIntoDestination(t *testing.T) {
	cpu, _ := newTestCPU(0x0200, 0x000F) // ANDI.B #$0F,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0xFF}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0]&0xFF != 0x0F {
		t.Errorf("D0 low byte = 0x%02X, want 0x0F", reg.D[0]&0xFF)
	}
}

func TestEoriFlipsBitsOfDestination(t *testing.T) {
	cpu, _ := newTestCPU(0x0A00, 0x000F) // EORI.B #$0F,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{0xFF}})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	reg := cpu.Registers()
	if reg.D[0]&0xFF != 0xF0 {
		t.Errorf("D0 low byte = 0x%02X, want 0xF0", reg.D[0]&0xFF)
	}
}

func TestAndiToCcrClearsConditionBitsWithoutPrivilege(t *testing.T) {
	// ANDI #$00,CCR is legal from user mode since it only touches the
	// condition codes, not the full SR.
	cpu, _ := newTestCPU(0x023C, 0x0000) // ANDI #$00,CCR
	cpu.SetState(Registers{PC: 0x1000, SR: 0x0007, SSP: 0x10000})

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if cpu.sr&0x001F != 0 {
		t.Errorf("CCR = 0x%02X, want 0", cpu.sr&0x001F)
	}
}

func TestA7HasNoPhysicalStorage(t *testing.T) {
	// Switching supervisor state must retarget A[7] without disturbing
	// the shadow pointer, since there is no physical A7 register.
	cpu, _ := newTestCPU()
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, USP: 0x2000, SSP: 0x3000})

	reg := cpu.Registers()
	if reg.A[7] != 0x3000 {
		t.Errorf("A7 in supervisor mode = 0x%X, want SSP 0x3000", reg.A[7])
	}

	cpu.setSR(cpu.sr &^ flagS) // drop to user mode
	reg = cpu.Registers()
	if reg.A[7] != 0x2000 {
		t.Errorf("A7 in user mode = 0x%X, want USP 0x2000", reg.A[7])
	}
}

func TestOddAddressRaisesAddressError(t *testing.T) {
	cpu, _ := newTestCPU(0x3010) // MOVE.W (A0),D0
	regs := Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000}
	regs.A[0] = 0x2001
	cpu.SetState(regs)

	_, err := cpu.Step()
	if err == nil {
		t.Fatal("expected AddressError for word read from odd address")
	}
	if _, ok := err.(*AddressError); !ok {
		t.Errorf("error = %T, want *AddressError", err)
	}
}

func TestIllegalOpcodeRaisesIllegalInstruction(t *testing.T) {
	cpu, _ := newTestCPU(0x4AFC) // ILLEGAL
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	_, err := cpu.Step()
	if err == nil {
		t.Fatal("expected IllegalInstruction")
	}
	if _, ok := err.(*IllegalInstruction); !ok {
		t.Errorf("error = %T, want *IllegalInstruction", err)
	}
}

func TestPrivilegedMoveToSrViolatesInUserMode(t *testing.T) {
	cpu, _ := newTestCPU(0x46C0) // MOVE D0,SR
	cpu.SetState(Registers{PC: 0x1000, SR: 0x0000, SSP: 0x10000}) // user mode (flagS clear)

	_, err := cpu.Step()
	if _, ok := err.(*PrivilegeViolation); !ok {
		t.Errorf("error = %T, want *PrivilegeViolation", err)
	}
}

func TestPrivilegedMoveFromSrViolatesInUserMode(t *testing.T) {
	cpu, _ := newTestCPU(0x40C0) // MOVE SR,D0
	cpu.SetState(Registers{PC: 0x1000, SR: 0x0000, SSP: 0x10000}) // user mode (flagS clear)

	_, err := cpu.Step()
	if _, ok := err.(*PrivilegeViolation); !ok {
		t.Errorf("error = %T, want *PrivilegeViolation", err)
	}
}

func TestNotImplementedMnemonicLeavesStateUntouched(t *testing.T) {
	// ADD.B D1,D0 is classified but not executed by this core.
	cpu, _ := newTestCPU(0xD001)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000, D: [8]uint32{5, 7}})

	_, err := cpu.Step()
	ni, ok := err.(*NotImplemented)
	if !ok {
		t.Fatalf("error = %T, want *NotImplemented", err)
	}
	if ni.Mnemonic != Add {
		t.Errorf("Mnemonic = %v, want Add", ni.Mnemonic)
	}

	reg := cpu.Registers()
	if reg.D[0] != 5 || reg.D[1] != 7 {
		t.Errorf("D0/D1 = %d/%d, want unchanged 5/7", reg.D[0], reg.D[1])
	}
}
