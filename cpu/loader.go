package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseBinary parses an LS-8 program listing into a Program.
//
// Each non-blank line holds one byte as eight binary digits. Everything
// after a '#' is a comment.
//
//	10000010 # LDI R0,8
//	00000000
//	00001000
func ParseBinary(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	address := ADDR_PROGRAM

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, "#", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		if len(line) != 8 {
			err = ErrBinarySyntax
			return
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrBinarySyntax
			return
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   []string{line},
			Bytes:   []uint8{uint8(value)},
		})
		address++
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	line = ""
	if len(prog.Lines) == 0 {
		err = ErrNoProgram
		return
	}

	return
}
