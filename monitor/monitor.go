// Package monitor is an interactive single-step debugger for the emulator.
package monitor

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/ls8/config"
	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/internal"
)

const PROMPT = "ls8> "

var helpText = `step [n]         execute n instructions (default 1)
run              run until halt or breakpoint
break [addr]     toggle a breakpoint, or list breakpoints
regs             show registers
mem addr [n]     dump n bytes of memory (default 16)
dis [addr] [n]   disassemble n instructions (default 8) from addr (default PC)
defines          list assembler defines
reset            reload the program and reset the CPU
quit             leave the monitor
`

// Monitor drives an emulator from typed commands.
type Monitor struct {
	Emu   *emulator.Emulator
	Out   io.Writer
	Limit int // Maximum instructions per 'run'; 0 is unlimited.

	breakpoints map[int]bool
}

// NewMonitor creates a monitor for emu writing to out.
func NewMonitor(emu *emulator.Emulator, out io.Writer) *Monitor {
	return &Monitor{
		Emu:         emu,
		Out:         out,
		breakpoints: map[int]bool{},
	}
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.Out, format, args...)
}

func (mon *Monitor) number(word string) (value int, err error) {
	n, err := strconv.ParseInt(word, 0, 0)
	if err != nil || n < 0 {
		err = errors.Join(ErrArgument, fmt.Errorf("%q", word))
		return
	}
	value = int(n)
	return
}

// args parses up to len(defaults) numeric arguments over the defaults.
func (mon *Monitor) args(words []string, defaults ...int) (values []int, err error) {
	if len(words) > len(defaults) {
		err = errors.Join(ErrArgument, fmt.Errorf("%v", words[len(defaults):]))
		return
	}

	values = slices.Clone(defaults)
	for n, word := range words {
		values[n], err = mon.number(word)
		if err != nil {
			return
		}
	}

	return
}

// Breakpoints returns the breakpoint addresses in ascending order.
func (mon *Monitor) Breakpoints() (addrs []int) {
	for addr := range mon.breakpoints {
		addrs = append(addrs, addr)
	}
	slices.Sort(addrs)
	return
}

func (mon *Monitor) where() {
	text, _ := cpu.Disassemble(mon.Emu.Ram, mon.Emu.Pc())
	mon.printf("%02X: %s\n", mon.Emu.Pc(), text)
}

func (mon *Monitor) step(count int) (err error) {
	for range count {
		var done bool
		done, err = mon.Emu.Tick()
		if err != nil {
			return
		}
		if done {
			mon.printf("halted after %d instructions\n", mon.Emu.Ticks())
			return
		}
	}
	mon.where()
	return
}

func (mon *Monitor) run() (err error) {
	for n := 0; mon.Limit == 0 || n < mon.Limit; n++ {
		var done bool
		done, err = mon.Emu.Tick()
		if err != nil {
			return
		}
		if done {
			mon.printf("halted after %d instructions\n", mon.Emu.Ticks())
			return
		}
		if mon.breakpoints[mon.Emu.Pc()] {
			mon.printf("breakpoint\n")
			mon.where()
			return
		}
	}

	err = ErrLimit
	return
}

func (mon *Monitor) dump(address, count int) {
	for n := range count {
		if n%8 == 0 {
			if n != 0 {
				mon.printf("\n")
			}
			mon.printf("%02X:", (address+n)&(mon.Emu.Ram.Capacity()-1))
		}
		mon.printf(" %02X", mon.Emu.Ram.Read(address+n))
	}
	mon.printf("\n")
}

func (mon *Monitor) disassemble(address, count int) {
	for range count {
		address &= mon.Emu.Ram.Capacity() - 1
		text, size := cpu.Disassemble(mon.Emu.Ram, address)
		mon.printf("%02X: %s\n", address, text)
		address += size
	}
}

// Exec executes a single monitor command line.
// quit is set when the command asks the monitor to exit.
func (mon *Monitor) Exec(line string) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	cmd, words := words[0], words[1:]

	var values []int
	switch cmd {
	case "s", "step":
		values, err = mon.args(words, 1)
		if err != nil {
			return
		}
		err = mon.step(values[0])
	case "c", "run":
		values, err = mon.args(words)
		if err != nil {
			return
		}
		err = mon.run()
	case "b", "break":
		if len(words) == 0 {
			for _, addr := range mon.Breakpoints() {
				mon.printf("%02X\n", addr)
			}
			return
		}
		values, err = mon.args(words, 0)
		if err != nil {
			return
		}
		addr := values[0] & (mon.Emu.Ram.Capacity() - 1)
		if mon.breakpoints == nil {
			mon.breakpoints = map[int]bool{}
		}
		if mon.breakpoints[addr] {
			delete(mon.breakpoints, addr)
		} else {
			mon.breakpoints[addr] = true
		}
	case "r", "regs":
		mon.printf("%v", mon.Emu.Cpu)
	case "m", "mem":
		if len(words) == 0 {
			err = errors.Join(ErrArgument, fmt.Errorf("mem: missing address"))
			return
		}
		values, err = mon.args(words, 0, 16)
		if err != nil {
			return
		}
		mon.dump(values[0], values[1])
	case "d", "dis":
		values, err = mon.args(words, mon.Emu.Pc(), 8)
		if err != nil {
			return
		}
		mon.disassemble(values[0], values[1])
	case "defines":
		for name, value := range internal.SortedDefines(mon.Emu.Defines()) {
			mon.printf("%s = %s\n", name, value)
		}
	case "reset":
		err = mon.Emu.Reset()
		if err != nil {
			return
		}
		mon.where()
	case "h", "help", "?":
		mon.printf("%s", helpText)
	case "q", "quit", "exit":
		quit = true
	default:
		err = errors.Join(ErrCommand, fmt.Errorf("%q", cmd))
	}

	return
}

// HistoryPath returns the readline history file, creating its folder, or
// an empty string if no cache folder is available.
func HistoryPath() string {
	cacheDir := config.Dirs().QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

// Run reads commands from the terminal until quit or end of input.
// Command errors are reported and do not stop the monitor.
func (mon *Monitor) Run() (err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          PROMPT,
		InterruptPrompt: "\n",
		HistoryFile:     HistoryPath(),
	})
	if err != nil {
		return
	}
	defer rl.Close()

	if mon.Out == nil {
		mon.Out = rl.Stdout()
	}

	mon.where()

	for {
		var line string
		line, err = rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		quit, cmdErr := mon.Exec(line)
		if cmdErr != nil {
			mon.printf("%v\n", cmdErr)
		}
		if quit {
			return
		}
	}
}
