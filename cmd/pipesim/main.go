// Package main provides the entry point for pipesim.
// Pipesim is a cycle-level model of a 4-stage pipelined processor.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/pipesim/asm"
	"github.com/sarchlab/pipesim/emu"
	"github.com/sarchlab/pipesim/loader"
	"github.com/sarchlab/pipesim/timing/core"
	"github.com/sarchlab/pipesim/timing/pipeline"
)

var (
	cycles   = flag.Uint64("cycles", 0, "Number of cycles to simulate (0 = enough to drain the program)")
	regsPath = flag.String("regs", "", "Path to a hex image preloading the register file")
	dataPath = flag.String("data", "", "Path to a hex image preloading data memory")
	trace    = flag.Bool("trace", false, "Print per-cycle pipeline state")
	verbose  = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: pipesim [options] <program.s|program.hex>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	program, err := loadProgram(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s (%d instructions)\n", programPath, len(program))
	}

	regFile := &emu.RegFile{}
	imem := &emu.InstMemory{}
	dmem := &emu.DataMemory{}
	imem.LoadProgram(program)

	if *regsPath != "" {
		values, err := loader.ReadHex8File(*regsPath, emu.NumRegs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading register image: %v\n", err)
			os.Exit(1)
		}
		regFile.Load(values)
	}
	if *dataPath != "" {
		values, err := loader.ReadHex8File(*dataPath, emu.DataMemBytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading data image: %v\n", err)
			os.Exit(1)
		}
		dmem.Load(values)
	}

	var opts []pipeline.PipelineOption
	if *trace {
		opts = append(opts, pipeline.WithTrace(os.Stdout))
	}

	cpu := core.NewCore(regFile, imem, dmem, opts...)
	cpu.Reset()

	budget := *cycles
	if budget == 0 {
		budget = pipeline.DrainCycles(len(program))
	}

	engine := sim.NewSerialEngine()
	comp := core.NewComp("Core", engine, 1*sim.GHz, cpu, budget)
	comp.TickLater()
	if err := engine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}

	printReport(cpu, budget)
}

// loadProgram assembles .s/.asm sources and parses anything else as a hex
// image of instruction words.
func loadProgram(path string) ([]uint16, error) {
	if strings.HasSuffix(path, ".s") || strings.HasSuffix(path, ".asm") {
		return asm.AssembleFile(path)
	}
	return loader.ReadHex16File(path, emu.InstMemWords)
}

func printReport(cpu *core.Core, budget uint64) {
	stats := cpu.Stats()

	fmt.Printf("\n")
	fmt.Printf("Cycles simulated: %d\n", budget)
	fmt.Printf("PC: %d\n", cpu.PC())
	fmt.Printf("Register writes committed: %d\n", stats.Writebacks)
	fmt.Printf("Writebacks suppressed: %d\n", stats.Suppressed)
	fmt.Printf("\n")
	fmt.Printf("Registers:\n")
	for reg := uint8(0); reg < emu.NumRegs; reg++ {
		fmt.Printf("  R%-2d = %3d (0x%02X)\n", reg, cpu.RegFile().Read(reg), cpu.RegFile().Read(reg))
	}
}
