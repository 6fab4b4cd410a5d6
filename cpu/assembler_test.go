package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, asm *Assembler, program ...string) (prog *Program) {
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%#v", ADDR_PROGRAM), asm.Equate["ADDR_PROGRAM"])
	assert.Equal(fmt.Sprintf("%#v", SP_INIT), asm.Equate["SP_INIT"])
}

func TestAssemblerSum(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"; sum two numbers",
		"	LDI R0,8",
		"	LDI R1, 9 ; spaces are fine",
		"	add r0,r1",
		"	PRN R0",
		"	HLT",
	)

	assert.Equal([]uint8{
		0x82, 0x00, 0x08,
		0x82, 0x01, 0x09,
		0xa0, 0x00, 0x01,
		0x47, 0x00,
		0x01,
	}, prog.Binary())

	expected := []Line{
		{LineNo: 2, Address: 0, Words: []string{"LDI", "R0", "8"}, Bytes: []uint8{0x82, 0x00, 0x08}},
		{LineNo: 3, Address: 3, Words: []string{"LDI", "R1", "9"}, Bytes: []uint8{0x82, 0x01, 0x09}},
		{LineNo: 4, Address: 6, Words: []string{"add", "r0", "r1"}, Bytes: []uint8{0xa0, 0x00, 0x01}},
		{LineNo: 5, Address: 9, Words: []string{"PRN", "R0"}, Bytes: []uint8{0x47, 0x00}},
		{LineNo: 6, Address: 11, Words: []string{"HLT"}, Bytes: []uint8{0x01}},
	}
	assert.Equal(expected, prog.Lines)
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"Main:	LDI R1,Func",
		"	CALL R1",
		"	HLT",
		"Func:",
		"Also:	PRN R0",
		"	RET",
	)

	assert.Equal(0, asm.Label["Main"])
	assert.Equal(6, asm.Label["Func"])
	assert.Equal(6, asm.Label["Also"])
	assert.Equal([]uint8{
		0x82, 0x01, 0x06,
		0x50, 0x01,
		0x01,
		0x47, 0x00,
		0x11,
	}, prog.Binary())
	assert.Equal([]Link{{Index: 2, Label: "Func"}}, prog.Lines[0].Links)
}

func TestAssemblerValues(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		".equ COUNT 3",
		"	LDI R0,COUNT",
		"	LDI R1,$(COUNT*2+1)",
		"	LDI R2,'A'",
		"	LDI R3,-1",
		"	LDI R4,~0x0f",
		"	LDI R5,$(SP_INIT - 4)",
		"	LDI R6,LINENO",
		"	DB 0b101, 'z', '\\n'",
	)

	assert.Equal([]uint8{
		0x82, 0x00, 3,
		0x82, 0x01, 7,
		0x82, 0x02, 'A',
		0x82, 0x03, 0xff,
		0x82, 0x04, 0xf0,
		0x82, 0x05, 0xf0,
		0x82, 0x06, 8,
		5, 'z', '\n',
	}, prog.Binary())
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("RAM_SIZE", "256")
	asm.PredefineAll(func(yield func(string, string) bool) {
		_ = yield("OP_HLT", "0x01") && yield("OP_PRN", "0x47")
	})

	prog := assemble(t, asm,
		"	DB OP_PRN,0,OP_HLT",
		"	LDI R0,$(RAM_SIZE - 1)",
	)
	assert.Equal([]uint8{0x47, 0x00, 0x01, 0x82, 0x00, 0xff}, prog.Binary())

	// Predefines survive a second parse.
	prog = assemble(t, asm, "DB OP_HLT")
	assert.Equal([]uint8{0x01}, prog.Binary())
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		".macro PRINT V",
		"	LDI R0,V",
		"	PRN R0",
		".endm",
		"	PRINT 5",
		"	PRINT 'a'",
		"	HLT",
	)

	assert.Equal([]uint8{
		0x82, 0x00, 5,
		0x47, 0x00,
		0x82, 0x00, 'a',
		0x47, 0x00,
		0x01,
	}, prog.Binary())

	assert.Equal(2, prog.Lines[0].LineNo)
	assert.Equal(3, prog.Lines[1].LineNo)
	assert.Equal(7, prog.Lines[4].LineNo)

	// The macro argument does not leak out of the expansion.
	_, ok := asm.Equate["V"]
	assert.False(ok)
}

func TestAssemblerMacroLocalLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		".macro SPIN",
		"@top:	LDI R0,@top",
		"	JMP R0",
		".endm",
		"	SPIN",
		"	SPIN",
	)

	assert.Equal([]uint8{
		0x82, 0x00, 0,
		0x54, 0x00,
		0x82, 0x00, 5,
		0x54, 0x00,
	}, prog.Binary())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"DUP:\nDUP:\n", 2, ErrLabelDuplicate},
		{"LDI R0,nothing", 1, ErrLabelMissing("nothing")},
		{"LDI R0,$(\"aaa\")", 1, ErrParseExpression("\"aaa\"")},
		{"LDI R0,$(more(1))", 1, nil},
		{"LDI R0,300", 1, ErrValueRange},
		{"LDI R0,-129", 1, ErrValueRange},
		{"LDI R0,R1", 1, ErrLabelMissing("R1")},
		{"LDI R9,1", 1, ErrRegisterInvalid},
		{"ADD R0", 1, ErrOpcodeValueMissing},
		{"ADD R0,R1,R2", 1, ErrOpcodeExtraArgs},
		{"HLT R0", 1, ErrOpcodeExtraArgs},
		{"PUSH 3", 1, ErrRegisterInvalid},
		{"NOP\nFOO R0", 2, ErrInstructionInvalid},
		{"DB", 1, ErrOpcodeValueMissing},
		{"DB 1,x+", 1, ErrParseValue("x+")},
		{".equ", 1, ErrEquateSyntax},
		{".equ A", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{".macro A B C\n.endm\nA 1\n", 3, ErrMacroSyntax},
		{".macro\n", 1, ErrMacroSyntax},
		{".macro A B\n.macro C\n.endm\n.endm", 2, ErrMacroNesting},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3, ErrMacroDuplicate},
		{".macro A B\n.endm\n.endm\n", 3, ErrMacroLonelyEndm},
		{".macro A\nHLT\n", 2, ErrMacroLonely},
		{".macro M X\nLDI R9,X\n.endm\nM 1\n", 4, ErrRegisterInvalid},
		{".macro LOOP\nLOOP\n.endm\nLOOP\n", 4, ErrMacroRecursion},
		{".macro A\nB\n.endm\n.macro B\nA\n.endm\nNOP\nA\n", 8, ErrMacroRecursion},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		if !assert.Error(err, entry.prog) {
			continue
		}

		var se ErrSyntax
		if assert.True(errors.As(err, &se), entry.prog) {
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.prog)
		}
	}
}

func TestAssemblerErrMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(".macro M X\n\tNOP\n\tLDI R9,X\n.endm\n\tM 1\n"))

	var me ErrMacro
	if assert.True(errors.As(err, &me)) {
		assert.Equal("M", me.Macro)
		assert.Equal(3, me.Line)
	}
	assert.ErrorIs(err, ErrRegisterInvalid)
}

func TestAssemblerLabelRange(t *testing.T) {
	assert := assert.New(t)

	program := []string{"	LDI R0,Far"}
	for range 256 {
		program = append(program, "	NOP")
	}
	program = append(program, "Far:	HLT")

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.ErrorIs(err, ErrValueRange)

	var se ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.Equal(1, se.LineNo)
	}

	// The assembler is reusable after a failed parse.
	prog := assemble(t, asm,
		".macro TWICE",
		"	NOP",
		"	NOP",
		".endm",
		"	TWICE",
		"	TWICE",
	)
	assert.Equal(4, prog.Size())
}
