// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ezrec/ls8/config"
	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/monitor"
	"github.com/ezrec/ls8/trace"
)

func main() {
	var configPath string
	var output string
	var color string
	var verbose bool
	var tracing bool
	var interactive bool
	var hz int
	var capacity int
	var sp uint

	flag.StringVar(&configPath, "config", "", "config.toml to use (default: search the user config folders)")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.StringVar(&color, "color", config.COLOR_AUTO, "Trace colour: auto, always or never")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&tracing, "t", false, "Trace each instruction to stderr")
	flag.BoolVar(&interactive, "m", false, "Enter the interactive monitor")
	flag.IntVar(&hz, "hz", 0, "Instructions per second (0 is unpaced)")
	flag.IntVar(&capacity, "capacity", 256, "Memory size in bytes")
	flag.UintVar(&sp, "sp", cpu.SP_INIT, "Initial stack pointer")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [options] program.ls8|program.asm", os.Args[0])
	}
	source := flag.Arg(0)

	var cfg *config.Config
	var err error
	if len(configPath) != 0 {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Explicit flags override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			cfg.Verbose = verbose
		case "t":
			cfg.Trace = tracing
		case "hz":
			cfg.Hz = hz
		case "capacity":
			cfg.Capacity = capacity
		case "sp":
			cfg.StackPointer = uint8(sp)
		case "color":
			cfg.Color = color
		}
	})
	if sp > 0xff {
		log.Fatalf("-sp: %#x out of range", sp)
	}
	err = cfg.Validate()
	if err != nil {
		log.Fatalf("%v", err)
	}

	emu, err := emulator.NewEmulator(cfg.Capacity)
	if err != nil {
		log.Fatalf("%v", err)
	}
	emu.Verbose = cfg.Verbose
	emu.StackInit = cfg.StackPointer

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	if filepath.Ext(source) == ".asm" {
		asm := &cpu.Assembler{Verbose: cfg.Verbose}
		asm.PredefineAll(emu.Defines())
		emu.Program, err = asm.Parse(inf)
	} else {
		emu.Program, err = cpu.ParseBinary(inf)
	}
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if cfg.Trace {
		emu.Trace = &trace.Trace{
			Output: os.Stderr,
			Color:  cfg.UseColor(isatty.IsTerminal(os.Stderr.Fd())),
		}
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if interactive {
		mon := monitor.NewMonitor(emu, nil)
		err = mon.Run()
		if err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	clock, stop := emulator.Clock(cfg.Hz)
	defer stop()

	err = emu.Run(ctx, clock)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
}
