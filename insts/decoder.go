package insts

// Decoder decodes 16-bit machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode splits a 16-bit instruction word into its fixed-position fields.
// Every word decodes; unknown opcodes are carried through so the pipeline
// can treat them as no-ops at writeback.
func (d *Decoder) Decode(word uint16) *Instruction {
	return &Instruction{
		Word:   word,
		Op:     Op(word >> 12),
		Rd:     uint8((word >> 8) & 0xF),
		Rs1:    uint8((word >> 4) & 0xF),
		Rs2Imm: uint8(word & 0xF),
	}
}
