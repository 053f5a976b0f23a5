package pipeline

import (
	"github.com/sarchlab/pipesim/emu"
	"github.com/sarchlab/pipesim/insts"
)

// FetchStage reads instruction words from instruction memory.
type FetchStage struct {
	imem *emu.InstMemory
}

// NewFetchStage creates a new fetch stage.
func NewFetchStage(imem *emu.InstMemory) *FetchStage {
	return &FetchStage{
		imem: imem,
	}
}

// Fetch reads the instruction word at the given PC.
func (s *FetchStage) Fetch(pc uint8) uint16 {
	return s.imem.Read(pc)
}

// DecodeStage splits instruction fields and reads source operands.
type DecodeStage struct {
	regFile *emu.RegFile
	decoder *insts.Decoder
}

// NewDecodeStage creates a new decode stage.
func NewDecodeStage(regFile *emu.RegFile) *DecodeStage {
	return &DecodeStage{
		regFile: regFile,
		decoder: insts.NewDecoder(),
	}
}

// DecodeResult holds the result of the decode stage.
type DecodeResult struct {
	Word uint16
	Op   insts.Op
	Rd   uint8

	// Operand values for the execute stage.
	Op1 uint8
	Op2 uint8
}

// Decode extracts the instruction fields from the IF/ID latch and reads the
// register file. Rs1 is read unconditionally. Rs2Imm is read as a register
// index, except for LOAD where the raw field value is the data-memory
// address. Reads are non-forwarding: they return whatever currently sits in
// the register file, even if an in-flight instruction will overwrite it.
func (s *DecodeStage) Decode(ifid *IFIDRegister) DecodeResult {
	inst := s.decoder.Decode(ifid.Word)
	result := DecodeResult{
		Word: inst.Word,
		Op:   inst.Op,
		Rd:   inst.Rd,
		Op1:  s.regFile.Read(inst.Rs1),
	}

	if inst.Op == insts.OpLOAD {
		result.Op2 = inst.Rs2Imm
	} else {
		result.Op2 = s.regFile.Read(inst.Rs2Imm)
	}

	return result
}

// ExecuteStage performs ALU operations and data memory reads.
type ExecuteStage struct {
	dmem *emu.DataMemory
}

// NewExecuteStage creates a new execute stage.
func NewExecuteStage(dmem *emu.DataMemory) *ExecuteStage {
	return &ExecuteStage{
		dmem: dmem,
	}
}

// Execute dispatches on the ID/EX opcode. ADD and SUB wrap at 8 bits with
// no flags. LOAD reads data memory at the literal address captured by
// decode. Any other opcode yields zero; that is the defined default, not an
// error.
func (s *ExecuteStage) Execute(idex *IDEXRegister) uint8 {
	switch idex.Op {
	case insts.OpADD:
		return idex.Op1 + idex.Op2
	case insts.OpSUB:
		return idex.Op1 - idex.Op2
	case insts.OpLOAD:
		return s.dmem.Read(idex.Op2)
	default:
		return 0
	}
}

// WritebackStage commits results to the register file. It is the only
// stage permitted to write it.
type WritebackStage struct {
	regFile *emu.RegFile
}

// NewWritebackStage creates a new writeback stage.
func NewWritebackStage(regFile *emu.RegFile) *WritebackStage {
	return &WritebackStage{
		regFile: regFile,
	}
}

// Writeback writes the EX/WB result to the register file if the opcode is
// one of the three implemented operations. It reports whether a write was
// committed; unknown opcodes commit nothing, silently.
func (s *WritebackStage) Writeback(exwb *EXWBRegister) bool {
	if !exwb.Op.Known() {
		return false
	}

	s.regFile.Write(exwb.Rd, exwb.Result)
	return true
}
