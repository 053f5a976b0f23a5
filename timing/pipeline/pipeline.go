package pipeline

import (
	"fmt"
	"io"

	"github.com/sarchlab/pipesim/emu"
	"github.com/sarchlab/pipesim/insts"
)

// Depth is the number of pipeline stages. An instruction fetched at cycle T
// writes its register result, if any, at cycle T+3.
const Depth = 4

// pcMask truncates the program counter to its 4-bit width.
const pcMask = 0xF

// Statistics holds pipeline performance statistics.
type Statistics struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Writebacks is the number of register-file writes committed.
	Writebacks uint64
	// Suppressed is the number of writeback slots holding an unknown
	// opcode, for which no write was committed.
	Suppressed uint64
}

// PipelineOption is a functional option for configuring the Pipeline.
type PipelineOption func(*Pipeline)

// WithTrace makes the pipeline write a one-line state snapshot to w after
// every cycle.
func WithTrace(w io.Writer) PipelineOption {
	return func(p *Pipeline) {
		p.trace = w
	}
}

// Pipeline implements a 4-stage pipelined processor model.
// Stages: Fetch (IF) -> Decode (ID) -> Execute (EX) -> Writeback (WB).
//
// The model is deliberately unhazarded: no forwarding, no stalls, no
// flushes, no branches, no stores. Every cycle each stage advances exactly
// one slot, and the decode stage reads whatever value currently sits in the
// register file.
type Pipeline struct {
	// Pipeline registers
	ifid IFIDRegister
	idex IDEXRegister
	exwb EXWBRegister

	// Pipeline stages
	fetchStage     *FetchStage
	decodeStage    *DecodeStage
	executeStage   *ExecuteStage
	writebackStage *WritebackStage

	// Shared resources
	regFile *emu.RegFile
	imem    *emu.InstMemory
	dmem    *emu.DataMemory

	// Program counter, 4 bits wide.
	pc uint8

	// Statistics
	stats Statistics

	trace   io.Writer
	decoder *insts.Decoder
}

// NewPipeline creates a new 4-stage pipeline over the given architectural
// state. All latches start at their power-up zero values.
func NewPipeline(regFile *emu.RegFile, imem *emu.InstMemory, dmem *emu.DataMemory, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		fetchStage:     NewFetchStage(imem),
		decodeStage:    NewDecodeStage(regFile),
		executeStage:   NewExecuteStage(dmem),
		writebackStage: NewWritebackStage(regFile),
		regFile:        regFile,
		imem:           imem,
		dmem:           dmem,
		decoder:        insts.NewDecoder(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PC returns the current program counter.
func (p *Pipeline) PC() uint8 {
	return p.pc
}

// SetPC sets the program counter, truncated to 4 bits.
func (p *Pipeline) SetPC(pc uint8) {
	p.pc = pc & pcMask
}

// GetIFID returns the IF/ID pipeline register.
func (p *Pipeline) GetIFID() *IFIDRegister {
	return &p.ifid
}

// GetIDEX returns the ID/EX pipeline register.
func (p *Pipeline) GetIDEX() *IDEXRegister {
	return &p.idex
}

// GetEXWB returns the EX/WB pipeline register.
func (p *Pipeline) GetEXWB() *EXWBRegister {
	return &p.exwb
}

// Stats returns pipeline statistics.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

// Reset models one synchronous reset cycle: the program counter returns to
// 0 and the IF/ID latch is cleared to the zero instruction. The ID/EX and
// EX/WB latches are left untouched, exactly as in the modeled design, so
// instructions already past decode keep draining through writeback.
func (p *Pipeline) Reset() {
	p.pc = 0
	p.ifid.Clear()
}

// Tick executes one clock edge.
//
// All four stages advance as a single atomic step. Next-state values are
// computed from the previous cycle's latches before anything commits, and
// the register-file write happens after the decode-stage read, so a decode
// in the same cycle as a writeback observes the pre-write value. That stale
// read is the modeled design's non-forwarding register file, not a bug.
func (p *Pipeline) Tick() {
	p.stats.Cycles++

	decoded := p.decodeStage.Decode(&p.ifid)
	result := p.executeStage.Execute(&p.idex)
	word := p.fetchStage.Fetch(p.pc)

	if p.writebackStage.Writeback(&p.exwb) {
		p.stats.Writebacks++
	} else {
		p.stats.Suppressed++
	}

	p.exwb = EXWBRegister{
		Word:   p.idex.Word,
		Op:     p.idex.Op,
		Rd:     p.idex.Rd,
		Result: result,
	}
	p.idex = IDEXRegister{
		Word: decoded.Word,
		Op:   decoded.Op,
		Rd:   decoded.Rd,
		Op1:  decoded.Op1,
		Op2:  decoded.Op2,
	}
	p.ifid.Word = word
	p.pc = (p.pc + 1) & pcMask

	if p.trace != nil {
		p.printTrace()
	}
}

// RunCycles executes the pipeline for the specified number of cycles.
func (p *Pipeline) RunCycles(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
		p.Tick()
	}
}

// DrainCycles returns the number of cycles needed to fetch and fully
// retire a program of instCount instructions started right after reset.
func DrainCycles(instCount int) uint64 {
	return uint64(instCount + Depth - 1)
}

func (p *Pipeline) printTrace() {
	fmt.Fprintf(p.trace, "cycle %4d  pc=%2d  if/id=[%v]  id/ex=[%v]  ex/wb=[%v r=%d]\n",
		p.stats.Cycles, p.pc,
		p.decoder.Decode(p.ifid.Word),
		p.decoder.Decode(p.idex.Word),
		p.decoder.Decode(p.exwb.Word), p.exwb.Result)
}
