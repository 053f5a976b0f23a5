// Package asm implements a line assembler which turns program text into
// 16-bit instruction words ready for preloading into instruction memory.
//
// The syntax covers the three implemented operations plus a raw-word escape:
//
//	ADD R3, R1, R2    ; R3 = R1 + R2
//	SUB R4, R2, R1    ; R4 = R2 - R1
//	LOAD R5, [5]      ; R5 = data memory at address 5
//	.word 0xF123      ; raw instruction word
//
// Mnemonics and register names are case-insensitive. Comments start with
// ';' or "//" and run to end of line.
package asm

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/pipesim/emu"
	"github.com/sarchlab/pipesim/insts"
)

// Assemble reads program text and returns the assembled instruction words.
// Programs longer than the 16-word instruction memory are rejected.
func Assemble(r io.Reader) ([]uint16, error) {
	var words []uint16

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, err := assembleLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading source")
	}

	if len(words) > emu.InstMemWords {
		return nil, errors.Errorf("program has %d instructions; instruction memory holds %d",
			len(words), emu.InstMemWords)
	}

	return words, nil
}

// AssembleString assembles program text held in a string.
func AssembleString(src string) ([]uint16, error) {
	return Assemble(strings.NewReader(src))
}

// AssembleFile assembles the program in the named file.
func AssembleFile(path string) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer func() { _ = f.Close() }()

	return Assemble(f)
}

func stripComment(line string) string {
	if i := strings.Index(line, ";"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return line
}

func assembleLine(line string) (uint16, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	mnemonic := strings.ToUpper(fields[0])

	switch mnemonic {
	case "ADD", "SUB":
		if len(fields) != 4 {
			return 0, errors.Errorf("%s expects 3 register operands", mnemonic)
		}
		rd, err := parseReg(fields[1])
		if err != nil {
			return 0, err
		}
		rs1, err := parseReg(fields[2])
		if err != nil {
			return 0, err
		}
		rs2, err := parseReg(fields[3])
		if err != nil {
			return 0, err
		}
		op := insts.OpADD
		if mnemonic == "SUB" {
			op = insts.OpSUB
		}
		return insts.Encode(op, rd, rs1, rs2), nil

	case "LOAD":
		if len(fields) != 3 {
			return 0, errors.New("LOAD expects a register and an address")
		}
		rd, err := parseReg(fields[1])
		if err != nil {
			return 0, err
		}
		addr, err := parseAddr(fields[2])
		if err != nil {
			return 0, err
		}
		return insts.Encode(insts.OpLOAD, rd, 0, addr), nil

	case ".WORD":
		if len(fields) != 2 {
			return 0, errors.New(".word expects one value")
		}
		v, err := strconv.ParseUint(fields[1], 0, 16)
		if err != nil {
			return 0, errors.Wrapf(err, "parsing word %q", fields[1])
		}
		return uint16(v), nil

	default:
		return 0, errors.Errorf("unknown mnemonic %q", fields[0])
	}
}

func parseReg(tok string) (uint8, error) {
	t := strings.ToUpper(tok)
	if !strings.HasPrefix(t, "R") {
		return 0, errors.Errorf("expected register, got %q", tok)
	}
	n, err := strconv.ParseUint(t[1:], 10, 8)
	if err != nil || n >= emu.NumRegs {
		return 0, errors.Errorf("invalid register %q", tok)
	}
	return uint8(n), nil
}

func parseAddr(tok string) (uint8, error) {
	t := strings.TrimSuffix(strings.TrimPrefix(tok, "["), "]")
	n, err := strconv.ParseUint(t, 0, 8)
	if err != nil || n >= emu.DataMemBytes {
		return 0, errors.Errorf("invalid data memory address %q", tok)
	}
	return uint8(n), nil
}
