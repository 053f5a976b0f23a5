// Package emu provides the architectural state and a functional reference
// model for the 16-bit pipelined processor.
package emu

// NumRegs is the number of general-purpose registers.
const NumRegs = 16

// RegFile represents the register file: 16 general-purpose 8-bit registers.
// The pipeline's decode stage reads it and the writeback stage writes it;
// there is no forwarding path, so reads may observe values an in-flight
// instruction has not yet committed.
type RegFile struct {
	// R holds general-purpose registers R0-R15.
	R [NumRegs]uint8
}

// Read returns the value of a register. Register indices come from 4-bit
// instruction fields, so every index is in range after masking.
func (r *RegFile) Read(reg uint8) uint8 {
	return r.R[reg&0xF]
}

// Write sets the value of a register.
func (r *RegFile) Write(reg uint8, value uint8) {
	r.R[reg&0xF] = value
}

// Load copies initial register values, starting at R0. Values beyond R15
// are ignored.
func (r *RegFile) Load(values []uint8) {
	copy(r.R[:], values)
}
