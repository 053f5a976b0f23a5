package emu

// InstMemWords is the number of instruction memory cells.
const InstMemWords = 16

// DataMemBytes is the number of data memory cells.
const DataMemBytes = 16

// InstMemory represents the instruction memory: 16 cells of 16-bit words.
// It is preloaded before the first cycle and read-only from the pipeline.
type InstMemory struct {
	Cells [InstMemWords]uint16
}

// Read returns the instruction word at the given address. Addresses come
// from the 4-bit program counter, so every address is in range after masking.
func (m *InstMemory) Read(addr uint8) uint16 {
	return m.Cells[addr&0xF]
}

// LoadProgram copies instruction words starting at address 0. Words beyond
// the memory size are ignored; remaining cells keep their zero contents.
func (m *InstMemory) LoadProgram(words []uint16) {
	copy(m.Cells[:], words)
}

// DataMemory represents the data memory: 16 cells of 8 bits. It is
// preloaded before the first cycle; the pipeline only reads it (there is
// no store instruction).
type DataMemory struct {
	Cells [DataMemBytes]uint8
}

// Read returns the byte at the given address.
func (m *DataMemory) Read(addr uint8) uint8 {
	return m.Cells[addr&0xF]
}

// Load copies initial data values starting at address 0.
func (m *DataMemory) Load(values []uint8) {
	copy(m.Cells[:], values)
}
