package emu

import (
	"github.com/sarchlab/pipesim/insts"
)

// Emulator executes instructions functionally, one whole instruction per
// step, with no pipelining. It serves as the architectural reference for
// the timing model: for programs without read-after-write dependencies
// between instructions less than four apart, the pipeline must reach the
// same final register state.
type Emulator struct {
	regFile *RegFile
	imem    *InstMemory
	dmem    *DataMemory
	decoder *insts.Decoder

	pc               uint8
	instructionCount uint64
}

// NewEmulator creates a functional emulator over the given architectural
// state.
func NewEmulator(regFile *RegFile, imem *InstMemory, dmem *DataMemory) *Emulator {
	return &Emulator{
		regFile: regFile,
		imem:    imem,
		dmem:    dmem,
		decoder: insts.NewDecoder(),
	}
}

// PC returns the current program counter.
func (e *Emulator) PC() uint8 {
	return e.pc
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Reset sets the program counter back to 0. The instruction count keeps
// accumulating across resets, matching the pipeline's statistics, which a
// reset does not clear either.
func (e *Emulator) Reset() {
	e.pc = 0
}

// Step fetches, decodes, executes, and retires one instruction.
// The program counter advances by 1 and wraps modulo 16.
func (e *Emulator) Step() {
	inst := e.decoder.Decode(e.imem.Read(e.pc))
	e.pc = (e.pc + 1) & 0xF
	e.instructionCount++

	op1 := e.regFile.Read(inst.Rs1)

	switch inst.Op {
	case insts.OpADD:
		e.regFile.Write(inst.Rd, op1+e.regFile.Read(inst.Rs2Imm))
	case insts.OpSUB:
		e.regFile.Write(inst.Rd, op1-e.regFile.Read(inst.Rs2Imm))
	case insts.OpLOAD:
		e.regFile.Write(inst.Rd, e.dmem.Read(inst.Rs2Imm))
	default:
		// Unknown opcodes retire silently without writing the
		// register file.
	}
}

// Run executes n instructions.
func (e *Emulator) Run(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}
