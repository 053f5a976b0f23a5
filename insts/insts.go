// Package insts provides instruction definitions and decoding for the
// 16-bit pipelined processor model.
//
// An instruction word packs four 4-bit fields:
//
//	[15:12] opcode
//	[11:8]  Rd      destination register
//	[7:4]   Rs1     first source register
//	[3:0]   Rs2Imm  second source register, or a data-memory address for LOAD
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x0312) // ADD R3, R1, R2
//	fmt.Printf("Op: %v, Rd: %d, Rs1: %d, Rs2Imm: %d\n", inst.Op, inst.Rd, inst.Rs1, inst.Rs2Imm)
package insts

import "fmt"

// Op represents a 4-bit opcode.
type Op uint8

// Opcodes. The remaining 13 encodings are representable but compute a zero
// result and never write the register file.
const (
	OpADD  Op = 0b0000
	OpSUB  Op = 0b0001
	OpLOAD Op = 0b0010
)

// Known returns true if the opcode is one of the three implemented
// operations. Unknown opcodes flow through the pipeline as no-ops.
func (op Op) Known() bool {
	return op == OpADD || op == OpSUB || op == OpLOAD
}

// String returns the mnemonic for the opcode.
func (op Op) String() string {
	switch op {
	case OpADD:
		return "ADD"
	case OpSUB:
		return "SUB"
	case OpLOAD:
		return "LOAD"
	default:
		return fmt.Sprintf("OP(%04b)", uint8(op))
	}
}

// Instruction represents a decoded instruction.
type Instruction struct {
	// Word is the raw 16-bit instruction word.
	Word uint16

	// Op is the 4-bit opcode.
	Op Op

	// Rd is the destination register index.
	Rd uint8

	// Rs1 is the first source register index.
	Rs1 uint8

	// Rs2Imm is the second source register index for ADD/SUB, or the
	// literal data-memory address for LOAD.
	Rs2Imm uint8
}

// String returns an assembly rendering of the instruction.
// Unknown encodings render as a raw .word directive.
func (i *Instruction) String() string {
	switch i.Op {
	case OpADD, OpSUB:
		return fmt.Sprintf("%v R%d, R%d, R%d", i.Op, i.Rd, i.Rs1, i.Rs2Imm)
	case OpLOAD:
		return fmt.Sprintf("%v R%d, [%d]", i.Op, i.Rd, i.Rs2Imm)
	default:
		return fmt.Sprintf(".word 0x%04X", i.Word)
	}
}

// Encode packs the four fields into an instruction word.
// Each field is truncated to its 4-bit width.
func Encode(op Op, rd, rs1, rs2imm uint8) uint16 {
	return uint16(op&0xF)<<12 |
		uint16(rd&0xF)<<8 |
		uint16(rs1&0xF)<<4 |
		uint16(rs2imm&0xF)
}
