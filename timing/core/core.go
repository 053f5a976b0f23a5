// Package core provides the cycle-level processor core model.
// It bundles the architectural state with the pipeline and exposes a
// high-level interface for simulation drivers.
package core

import (
	"github.com/sarchlab/pipesim/emu"
	"github.com/sarchlab/pipesim/timing/pipeline"
)

// Core represents a cycle-level processor core.
// It wraps the 4-stage pipeline together with the register file and the
// instruction and data memories it operates on.
type Core struct {
	// Pipeline is the underlying 4-stage pipeline.
	Pipeline *pipeline.Pipeline

	// Shared resources
	regFile *emu.RegFile
	imem    *emu.InstMemory
	dmem    *emu.DataMemory
}

// NewCore creates a new Core over the given architectural state.
func NewCore(regFile *emu.RegFile, imem *emu.InstMemory, dmem *emu.DataMemory, opts ...pipeline.PipelineOption) *Core {
	return &Core{
		Pipeline: pipeline.NewPipeline(regFile, imem, dmem, opts...),
		regFile:  regFile,
		imem:     imem,
		dmem:     dmem,
	}
}

// Tick executes one clock edge.
func (c *Core) Tick() {
	c.Pipeline.Tick()
}

// Reset asserts the synchronous reset: PC returns to 0 and the IF/ID latch
// clears, while instructions already past decode drain normally.
func (c *Core) Reset() {
	c.Pipeline.Reset()
}

// PC returns the current program counter.
func (c *Core) PC() uint8 {
	return c.Pipeline.PC()
}

// RegFile returns the register file for inspection at cycle boundaries.
func (c *Core) RegFile() *emu.RegFile {
	return c.regFile
}

// Stats returns pipeline statistics.
func (c *Core) Stats() pipeline.Statistics {
	return c.Pipeline.Stats()
}

// RunCycles executes the core for the specified number of cycles.
func (c *Core) RunCycles(cycles uint64) {
	c.Pipeline.RunCycles(cycles)
}
