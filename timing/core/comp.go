package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Comp drives a Core under an Akita event-driven simulation engine. Each
// engine tick is one clock edge, so the external clock of the modeled
// design is the engine's tick schedule. The component stops requesting
// ticks once its cycle budget is exhausted.
type Comp struct {
	*sim.TickingComponent

	core      *Core
	remaining uint64
}

// NewComp creates a ticking component that advances the given core for at
// most cycles clock edges.
func NewComp(name string, engine sim.Engine, freq sim.Freq, core *Core, cycles uint64) *Comp {
	c := &Comp{
		core:      core,
		remaining: cycles,
	}
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)
	return c
}

// Tick advances the core one cycle. It returns true while more cycles
// remain in the budget, which keeps the engine scheduling further ticks.
func (c *Comp) Tick() bool {
	if c.remaining == 0 {
		return false
	}

	c.core.Tick()
	c.remaining--

	return c.remaining > 0
}

// Remaining returns the number of cycles left in the budget.
func (c *Comp) Remaining() uint64 {
	return c.remaining
}
