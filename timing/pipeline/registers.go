// Package pipeline provides the 4-stage pipeline implementation for
// cycle-level timing simulation.
package pipeline

import "github.com/sarchlab/pipesim/insts"

// IFIDRegister holds state between the Fetch and Decode stages.
//
// The modeled datapath carries no valid bit: before real instructions
// propagate through, the latches hold the zero word, which decodes as
// ADD R0, R0, R0 and writes R0 when it reaches writeback.
type IFIDRegister struct {
	// Word is the raw 16-bit instruction word.
	Word uint16
}

// Clear resets the IF/ID register to the zero instruction.
func (r *IFIDRegister) Clear() {
	r.Word = 0
}

// IDEXRegister holds state between the Decode and Execute stages.
type IDEXRegister struct {
	// Word is the instruction word, kept for tracing.
	Word uint16

	// Op is the opcode extracted by decode.
	Op insts.Op

	// Rd is the destination register index.
	Rd uint8

	// Op1 is the value read from the register file at Rs1.
	Op1 uint8

	// Op2 is the value read from the register file at Rs2Imm, or the raw
	// Rs2Imm field itself for LOAD (a literal data-memory address).
	Op2 uint8
}

// Clear resets the ID/EX register to its power-up state.
func (r *IDEXRegister) Clear() {
	r.Word = 0
	r.Op = 0
	r.Rd = 0
	r.Op1 = 0
	r.Op2 = 0
}

// EXWBRegister holds state between the Execute and Writeback stages.
type EXWBRegister struct {
	// Word is the instruction word, kept for tracing.
	Word uint16

	// Op is the opcode, propagated from ID/EX.
	Op insts.Op

	// Rd is the destination register index.
	Rd uint8

	// Result is the ALU result or the byte loaded from data memory.
	// Unknown opcodes carry a zero result.
	Result uint8
}

// Clear resets the EX/WB register to its power-up state.
func (r *EXWBRegister) Clear() {
	r.Word = 0
	r.Op = 0
	r.Rd = 0
	r.Result = 0
}
