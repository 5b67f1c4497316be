package m68k

import "fmt"

// MC68000 exception vector numbers. This minimal core never pushes an
// exception frame or dispatches through a vector table (full exception
// delivery is out of scope); the constants are kept only as documentation
// for which vector a richer implementation would take, and are referenced
// from the corresponding error type's doc comment.
const (
	vecAddressError       = 3
	vecIllegalInstruction = 4
	vecDivideByZero       = 5
	vecPrivilegeViolation = 8
	vecLineA              = 10
	vecLineF              = 11
)

// AddressError is raised when PC, or a word/long memory access, lands on an
// odd address (vector 3).
type AddressError struct {
	Addr uint32
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address error: odd address 0x%06X", e.Addr)
}

// IllegalInstruction is raised when the decoder classifies an opcode as
// Illegal, including the reserved 0x4AFC pattern and the line-A/line-F
// ranges (vector 4).
type IllegalInstruction struct {
	Opcode uint16
}

func (e *IllegalInstruction) Error() string {
	return fmt.Sprintf("illegal instruction: opcode 0x%04X", e.Opcode)
}

// PrivilegeViolation is raised when a supervisor-only instruction executes
// outside supervisor mode (vector 8).
type PrivilegeViolation struct {
	Opcode uint16
}

func (e *PrivilegeViolation) Error() string {
	return fmt.Sprintf("privilege violation: opcode 0x%04X", e.Opcode)
}

// IntegerDivideByZero documents vector 5. DIVU/DIVS are classified by the
// decoder but not executed by this core (see NotImplemented), so nothing
// currently raises this; it is kept for implementations that extend
// coverage.
type IntegerDivideByZero struct{}

func (e *IntegerDivideByZero) Error() string { return "integer divide by zero" }

// NotImplemented is returned by the execution engine for any decoded
// mnemonic outside the subset this core executes. The decoder still
// classifies these opcodes correctly; only execution is withheld.
type NotImplemented struct {
	Mnemonic Mnemonic
	Opcode   uint16
}

func (e *NotImplemented) Error() string {
	return fmt.Sprintf("not implemented: %s (opcode 0x%04X)", e.Mnemonic, e.Opcode)
}
