package pipeline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pipesim/emu"
	"github.com/sarchlab/pipesim/insts"
	"github.com/sarchlab/pipesim/timing/pipeline"
)

var _ = Describe("FetchStage", func() {
	It("should read the word addressed by the PC", func() {
		imem := &emu.InstMemory{}
		imem.LoadProgram([]uint16{0x0312, 0x1421})
		stage := pipeline.NewFetchStage(imem)

		Expect(stage.Fetch(0)).To(Equal(uint16(0x0312)))
		Expect(stage.Fetch(1)).To(Equal(uint16(0x1421)))
		Expect(stage.Fetch(2)).To(Equal(uint16(0)))
	})
})

var _ = Describe("DecodeStage", func() {
	var (
		regFile *emu.RegFile
		stage   *pipeline.DecodeStage
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		regFile.Write(1, 10)
		regFile.Write(2, 20)
		stage = pipeline.NewDecodeStage(regFile)
	})

	It("should read both source registers for ADD", func() {
		ifid := pipeline.IFIDRegister{Word: insts.Encode(insts.OpADD, 3, 1, 2)}
		result := stage.Decode(&ifid)

		Expect(result.Op).To(Equal(insts.OpADD))
		Expect(result.Rd).To(Equal(uint8(3)))
		Expect(result.Op1).To(Equal(uint8(10)))
		Expect(result.Op2).To(Equal(uint8(20)))
	})

	It("should take the raw field as address for LOAD", func() {
		ifid := pipeline.IFIDRegister{Word: insts.Encode(insts.OpLOAD, 5, 1, 2)}
		result := stage.Decode(&ifid)

		Expect(result.Op).To(Equal(insts.OpLOAD))
		Expect(result.Op1).To(Equal(uint8(10)))
		// Rs2Imm is the literal address 2, not R2's value 20.
		Expect(result.Op2).To(Equal(uint8(2)))
	})

	It("should decode unknown opcodes without gating", func() {
		ifid := pipeline.IFIDRegister{Word: 0xF312}
		result := stage.Decode(&ifid)

		Expect(result.Op.Known()).To(BeFalse())
		Expect(result.Op1).To(Equal(uint8(10)))
		Expect(result.Op2).To(Equal(uint8(20)))
	})
})

var _ = Describe("ExecuteStage", func() {
	var (
		dmem  *emu.DataMemory
		stage *pipeline.ExecuteStage
	)

	BeforeEach(func() {
		dmem = &emu.DataMemory{}
		dmem.Load([]uint8{0, 0, 0, 0, 0, 99})
		stage = pipeline.NewExecuteStage(dmem)
	})

	It("should add with 8-bit wraparound", func() {
		idex := pipeline.IDEXRegister{Op: insts.OpADD, Op1: 200, Op2: 100}
		Expect(stage.Execute(&idex)).To(Equal(uint8(44)))
	})

	It("should subtract with 8-bit wraparound", func() {
		idex := pipeline.IDEXRegister{Op: insts.OpSUB, Op1: 10, Op2: 20}
		Expect(stage.Execute(&idex)).To(Equal(uint8(246)))
	})

	It("should read data memory for LOAD", func() {
		idex := pipeline.IDEXRegister{Op: insts.OpLOAD, Op2: 5}
		Expect(stage.Execute(&idex)).To(Equal(uint8(99)))
	})

	It("should default unknown opcodes to zero", func() {
		idex := pipeline.IDEXRegister{Op: 0xF, Op1: 10, Op2: 20}
		Expect(stage.Execute(&idex)).To(Equal(uint8(0)))
	})
})

var _ = Describe("WritebackStage", func() {
	var (
		regFile *emu.RegFile
		stage   *pipeline.WritebackStage
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		stage = pipeline.NewWritebackStage(regFile)
	})

	It("should commit ADD, SUB, and LOAD results", func() {
		for _, op := range []insts.Op{insts.OpADD, insts.OpSUB, insts.OpLOAD} {
			exwb := pipeline.EXWBRegister{Op: op, Rd: 6, Result: 123}
			Expect(stage.Writeback(&exwb)).To(BeTrue())
			Expect(regFile.Read(6)).To(Equal(uint8(123)))
			regFile.Write(6, 0)
		}
	})

	It("should suppress writes for unknown opcodes", func() {
		exwb := pipeline.EXWBRegister{Op: 0xA, Rd: 6, Result: 123}
		Expect(stage.Writeback(&exwb)).To(BeFalse())
		Expect(regFile.Read(6)).To(Equal(uint8(0)))
	})
})
