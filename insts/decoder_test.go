package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pipesim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	// ADD R3, R1, R2 -> 0x0312
	// Encoding: opcode=0000, rd=3, rs1=1, rs2=2
	It("should decode ADD R3, R1, R2", func() {
		inst := decoder.Decode(0x0312)

		Expect(inst.Op).To(Equal(insts.OpADD))
		Expect(inst.Rd).To(Equal(uint8(3)))
		Expect(inst.Rs1).To(Equal(uint8(1)))
		Expect(inst.Rs2Imm).To(Equal(uint8(2)))
		Expect(inst.Word).To(Equal(uint16(0x0312)))
	})

	// SUB R4, R2, R1 -> 0x1421
	// Encoding: opcode=0001, rd=4, rs1=2, rs2=1
	It("should decode SUB R4, R2, R1", func() {
		inst := decoder.Decode(0x1421)

		Expect(inst.Op).To(Equal(insts.OpSUB))
		Expect(inst.Rd).To(Equal(uint8(4)))
		Expect(inst.Rs1).To(Equal(uint8(2)))
		Expect(inst.Rs2Imm).To(Equal(uint8(1)))
	})

	// LOAD R5, [5] -> 0x2505
	// Encoding: opcode=0010, rd=5, rs1=0, addr=5
	It("should decode LOAD R5, [5]", func() {
		inst := decoder.Decode(0x2505)

		Expect(inst.Op).To(Equal(insts.OpLOAD))
		Expect(inst.Rd).To(Equal(uint8(5)))
		Expect(inst.Rs1).To(Equal(uint8(0)))
		Expect(inst.Rs2Imm).To(Equal(uint8(5)))
	})

	It("should decode the zero word as ADD R0, R0, R0", func() {
		inst := decoder.Decode(0x0000)

		Expect(inst.Op).To(Equal(insts.OpADD))
		Expect(inst.Rd).To(Equal(uint8(0)))
		Expect(inst.Rs1).To(Equal(uint8(0)))
		Expect(inst.Rs2Imm).To(Equal(uint8(0)))
	})

	It("should carry unknown opcodes through", func() {
		inst := decoder.Decode(0xF123)

		Expect(inst.Op.Known()).To(BeFalse())
		Expect(inst.Rd).To(Equal(uint8(1)))
		Expect(inst.Rs1).To(Equal(uint8(2)))
		Expect(inst.Rs2Imm).To(Equal(uint8(3)))
	})
})

var _ = Describe("Encode", func() {
	It("should pack the four fields", func() {
		Expect(insts.Encode(insts.OpADD, 3, 1, 2)).To(Equal(uint16(0x0312)))
		Expect(insts.Encode(insts.OpSUB, 4, 2, 1)).To(Equal(uint16(0x1421)))
		Expect(insts.Encode(insts.OpLOAD, 5, 0, 5)).To(Equal(uint16(0x2505)))
	})

	It("should truncate out-of-range fields to 4 bits", func() {
		Expect(insts.Encode(insts.OpADD, 0x13, 0x21, 0x32)).To(Equal(uint16(0x0312)))
	})

	It("should round-trip through the decoder", func() {
		decoder := insts.NewDecoder()
		word := insts.Encode(insts.OpLOAD, 9, 0, 13)
		inst := decoder.Decode(word)

		Expect(inst.Op).To(Equal(insts.OpLOAD))
		Expect(inst.Rd).To(Equal(uint8(9)))
		Expect(inst.Rs2Imm).To(Equal(uint8(13)))
	})
})

var _ = Describe("Instruction String", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	It("should render arithmetic instructions", func() {
		Expect(decoder.Decode(0x0312).String()).To(Equal("ADD R3, R1, R2"))
		Expect(decoder.Decode(0x1421).String()).To(Equal("SUB R4, R2, R1"))
	})

	It("should render loads with a bracketed address", func() {
		Expect(decoder.Decode(0x2505).String()).To(Equal("LOAD R5, [5]"))
	})

	It("should render unknown encodings as raw words", func() {
		Expect(decoder.Decode(0xF123).String()).To(Equal(".word 0xF123"))
	})
})
