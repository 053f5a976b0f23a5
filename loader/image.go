// Package loader reads hex memory images for preloading the processor's
// instruction memory, data memory, and register file.
//
// The format follows Verilog's $readmemh: one hex token per line, optional
// "//" comments, and optional "@addr" lines that set the address of the
// next token. Unlisted cells keep their zero contents.
package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadHex16 parses a hex image of 16-bit words into a slice of the given
// size. Used for instruction memory images.
func ReadHex16(r io.Reader, size int) ([]uint16, error) {
	cells := make([]uint16, size)
	err := readImage(r, size, 16, func(addr int, value uint64) {
		cells[addr] = uint16(value)
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// ReadHex8 parses a hex image of 8-bit values into a slice of the given
// size. Used for data memory and register file images.
func ReadHex8(r io.Reader, size int) ([]uint8, error) {
	cells := make([]uint8, size)
	err := readImage(r, size, 8, func(addr int, value uint64) {
		cells[addr] = uint8(value)
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// ReadHex16File reads a 16-bit hex image from the named file.
func ReadHex16File(path string, size int) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer func() { _ = f.Close() }()

	return ReadHex16(f, size)
}

// ReadHex8File reads an 8-bit hex image from the named file.
func ReadHex8File(path string, size int) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer func() { _ = f.Close() }()

	return ReadHex8(f, size)
}

func readImage(r io.Reader, size, bits int, store func(addr int, value uint64)) error {
	addr := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}

		for _, tok := range strings.Fields(line) {
			if strings.HasPrefix(tok, "@") {
				a, err := strconv.ParseUint(tok[1:], 16, 32)
				if err != nil {
					return errors.Wrapf(err, "line %d: bad origin %q", lineNo, tok)
				}
				if int(a) >= size {
					return errors.Errorf("line %d: origin %q past end of memory (%d cells)",
						lineNo, tok, size)
				}
				addr = int(a)
				continue
			}

			v, err := strconv.ParseUint(tok, 16, bits)
			if err != nil {
				return errors.Wrapf(err, "line %d: bad value %q", lineNo, tok)
			}
			if addr >= size {
				return errors.Errorf("line %d: image overflows memory (%d cells)",
					lineNo, size)
			}
			store(addr, v)
			addr++
		}
	}

	return errors.Wrap(scanner.Err(), "reading image")
}
