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

// Package cpu emulates the WDC 65C816, the 16 bit successor to the 6502
// found at the heart of machines like the Apple IIGS and the SNES. Reset
// brings the processor up in emulation mode, where it behaves like a
// 65C02 with an eight bit accumulator and index registers; software can
// then switch to native mode with XCE and independently widen the
// accumulator and index registers to sixteen bits with REP/SEP.
//
// A CPU needs a cpubus.Memory implementation to talk to:
//
//	mc := cpu.NewCPU(mem)
//	if err := mc.Reset(); err != nil {
//		return err
//	}
//	for !mc.Stopped {
//		if err := mc.Step(); err != nil {
//			return err
//		}
//	}
//
// Step executes exactly one instruction and updates LastResult with the
// address it started at, the instructions.Definition it decoded, how many
// bytes and cycles it took, and whether a conditional branch was taken or
// a page boundary was crossed. LastResult.IsValid can be used by tests and
// tooling to sanity check that an instruction behaved plausibly.
//
// IRQ and NMI push the return context and status and jump to the
// corresponding vector immediately; a caller drives them between calls to
// Step, the same way a host system asserts an interrupt line between
// instructions rather than mid-instruction. WDMHook, if set, is invoked
// for the WDM instruction and gives an embedder a way to route host
// services into the emulated processor without occupying a real opcode.
package cpu
