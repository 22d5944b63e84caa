// Package debugger provides an interactive single-step terminal UI over a
// CPU: a memory page table with the current PC highlighted, a register and
// flag panel, and a disassembly of the instruction about to execute. It is
// built entirely against the cpu package's public surface and never reaches
// into engine internals.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"m6502/cpu"
	"m6502/disassemble"
)

type model struct {
	cpu *cpu.CPU

	prevPC uint16
	halted bool
	err    error
}

// memory adapts the CPU's inspection accessor to disassemble.Reader.
type memory struct {
	c *cpu.CPU
}

func (m memory) Read(addr uint16) byte { return m.c.ReadMemory(addr) }

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			if m.halted {
				return m, nil
			}
			m.prevPC = m.cpu.PC
			halted, err := m.cpu.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.halted = halted
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory. The cell at the current PC
// is bracketed.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.ReadMemory(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Negative(),
		m.cpu.Overflow(),
		true, // U never drifts from 1
		false,
		m.cpu.Decimal(),
		m.cpu.InterruptDisable(),
		m.cpu.Zero(),
		m.cpu.Carry(),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
	) + flags
}

// pageTable shows the top of zero page, the top of the stack page, and the
// rows of the program region surrounding PC.
func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	row := m.cpu.PC &^ 0x000F
	offsets := []uint16{
		0x0000, 0x0010, 0x0020, 0x0030, 0x0040,
		0x0100, 0x01F0,
		row, row + 16, row + 32,
	}
	for _, off := range offsets {
		pages = append(pages, m.renderPage(off))
	}
	return strings.Join(pages, "\n")
}

func (m model) footer() string {
	if m.err != nil {
		return "error: " + m.err.Error()
	}
	if m.halted {
		return "halted" + spew.Sdump(snapshot(m.cpu))
	}
	next, _ := disassemble.Step(m.cpu.PC, memory{m.cpu})
	return "next: " + next
}

// snapshot is the register file in one dumpable value.
func snapshot(c *cpu.CPU) any {
	return struct {
		A, X, Y, SP, P byte
		PC             uint16
		Cycles         uint64
	}{c.A, c.X, c.Y, c.SP, c.P, c.PC, c.Cycles}
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.footer(),
		"(space/j: step, q: quit)",
	)
}

// Run starts an interactive single-step session over c, which should
// already be loaded and reset. It returns when the user quits (with a nil
// error) or when a decode failure aborts the guest (with that error). A BRK
// halt does not end the session: it stays open, showing the final state,
// until the user quits.
func Run(c *cpu.CPU) error {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	return m.(model).err
}
