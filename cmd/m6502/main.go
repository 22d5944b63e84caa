// m6502 loads a raw program image (first byte at $8000), executes it to
// completion, and prints the final machine state. With -debug it opens an
// interactive single-step TUI instead; with -list it disassembles the image
// without executing anything.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"m6502/cpu"
	"m6502/debugger"
	"m6502/disassemble"
	"m6502/mem"
)

var (
	debug = flag.Bool("debug", false, "single-step the program in an interactive TUI")
	list  = flag.Bool("list", false, "disassemble the program instead of running it")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-debug|-list] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]
	program, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	bus := &mem.Bus{}
	c := cpu.New(bus)
	if err := c.Load(program); err != nil {
		log.Fatal(err)
	}
	c.Reset()

	switch {
	case *list:
		end := c.PC + uint16(len(program))
		for pc := c.PC; pc < end; {
			line, n := disassemble.Step(pc, bus)
			fmt.Println(line)
			pc += uint16(n)
		}
	case *debug:
		if err := debugger.Run(c); err != nil {
			log.Fatal(err)
		}
	default:
		if err := c.Run(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf(" A: %02X\n X: %02X\n Y: %02X\nSP: %02X\nPC: %04X\n P: %08b (NV-BDIZC)\ncycles: %d\n",
			c.A, c.X, c.Y, c.SP, c.PC, c.P, c.Cycles)
	}
}
