// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package monitor implements an interactive, single-step command line front
// end for a cpu.CPU: every keystroke steps the processor once and redraws
// its register and flag state in place, the way an in-circuit emulator's
// front panel would.
package monitor

import (
	"os"

	"github.com/sharkeymike/emu816go/hardware/cpu"
	"github.com/sharkeymike/emu816go/logger"
)

// Monitor drives a CPU one instruction at a time from the keyboard.
type Monitor struct {
	mc   *cpu.CPU
	term *terminal
	log  *logger.Logger

	cycles int
}

// NewMonitor prepares a Monitor against mc, reading single keystrokes from
// in and drawing the display to out. Callers typically pass os.Stdin and
// os.Stdout.
func NewMonitor(mc *cpu.CPU, in, out *os.File, log *logger.Logger) (*Monitor, error) {
	t, err := newTerminal(in, out)
	if err != nil {
		return nil, err
	}
	return &Monitor{mc: mc, term: t, log: log}, nil
}

// Run puts the terminal into cbreak mode and drives the step loop until the
// 'q' key is pressed or reading a key fails. Once the CPU has stopped, the
// step keys do nothing until 'r' resets it. It always
// restores the terminal's original mode before returning, even on error.
//
// Recognised keys:
//
//	space, enter  step one instruction
//	r             reset
//	q             quit
func (m *Monitor) Run() error {
	if err := m.term.cbreakMode(); err != nil {
		return err
	}
	defer m.term.canonicalMode()

	m.term.print(cursorHome + eraseDown)
	m.dump()

	for {
		key, err := m.term.readKey()
		if err != nil {
			return err
		}

		switch key {
		case 'q', 'Q':
			return nil

		case 'r', 'R':
			if err := m.mc.Reset(); err != nil {
				m.logf("reset failed: %v", err)
			}
			m.cycles = 0

		case ' ', '\r', '\n':
			if m.mc.Stopped {
				continue
			}
			if err := m.mc.Step(); err != nil {
				m.logf("step failed: %v", err)
			}
			m.cycles += m.mc.LastResult.Cycles
		}

		m.term.print(cursorHome + eraseDown)
		m.dump()
	}
}

func (m *Monitor) logf(pattern string, args ...interface{}) {
	if m.log != nil {
		m.log.Logf(logger.Allow, "monitor", pattern, args...)
	}
}

// dump draws the register and flag display, in the spirit of a hardware
// debugger's front panel: cumulative cycle count, the flag letters, the
// address and mnemonic of the instruction most recently executed, and the
// full register file.
func (m *Monitor) dump() {
	mc := m.mc

	defn := mc.LastResult.Defn
	mnemonic := "???"
	if defn != nil {
		mnemonic = defn.Mnemonic
	}

	m.term.print("cycles:%-10d  %s\n\n", m.cycles, mc.Status)
	m.term.print("PC:%02x:%04x  OP:%02x %s\n", mc.PBR.Value(), mc.PC.Address(), mc.LastResult.Address, mnemonic)
	m.term.print("A:%s\n", mc.A)
	m.term.print("X:%s\n", mc.X)
	m.term.print("Y:%s\n", mc.Y)
	m.term.print("DP:%04x  DBR:%02x  SP:%s\n", mc.DP, mc.DBR.Value(), mc.SP)

	if mc.Stopped {
		m.term.print("\nstopped\n")
	} else if mc.Waiting {
		m.term.print("\nwaiting for interrupt\n")
	}

	if mc.LastResult.Error != "" {
		m.term.print("\n%s\n", mc.LastResult.Error)
	}
}
