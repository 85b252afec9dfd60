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

// Package cpu implements the WDC 65C816 instruction interpreter: register
// state, the 256 entry opcode dispatch, and the addressing mode resolution
// that turns a decoded operand into a 24 bit bus address.
package cpu

import (
	"fmt"

	"github.com/sharkeymike/emu816go/curated"
	"github.com/sharkeymike/emu816go/hardware/cpu/execution"
	"github.com/sharkeymike/emu816go/hardware/cpu/instructions"
	"github.com/sharkeymike/emu816go/hardware/cpu/registers"
	"github.com/sharkeymike/emu816go/hardware/memory/cpubus"
)

// CPU implements the WDC 65C816. A and X/Y are dual-width registers, one
// each for the M (accumulator) and X (index) status flags; PBR and DBR
// extend the classic 16 bit register set to a full 24 bit address space.
type CPU struct {
	PC     *registers.ProgramCounter
	PBR    *registers.BankRegister
	DBR    *registers.BankRegister
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     *registers.StackPointer
	DP     uint16
	Status registers.StatusRegister

	// accWide, idxWide and nativeMode mirror Status.AccumulatorWidth,
	// Status.IndexWidth and Status.Emulation inverted into the sense the
	// Register and StackPointer types expect (true meaning sixteen bits).
	// They exist because Register is constructed against a stable pointer;
	// every place that changes the corresponding status flag must call
	// syncWidths afterwards.
	accWide, idxWide, nativeMode bool

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// WDMHook, when set, is invoked whenever a WDM (0x42) instruction is
	// executed, before the reserved argument 0xff is checked for the
	// conventional "stop the processor" signal. It gives an embedder a way
	// to route host services (console I/O, tracing, snapshotting) through
	// running 65C816 code without occupying a real opcode.
	WDMHook func(mc *CPU, arg uint8) error

	// Stopped is set by STP and by WDM #$ff. The CPU does not clear it on
	// its own; a caller must Reset before stepping again.
	Stopped bool

	// Waiting is set by WAI. IRQ and NMI clear it when they deliver an
	// interrupt.
	Waiting bool

	// LastResult describes the most recently executed instruction.
	LastResult execution.Result

	err error
}

// NewCPU is the preferred method of initialisation for the CPU. The
// processor starts in whatever state Reset leaves it in: emulation mode,
// eight bit registers, interrupts disabled.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}
	mc.PC = registers.NewProgramCounter(0)
	mc.PBR = registers.NewBankRegister("PBR", 0)
	mc.DBR = registers.NewBankRegister("DBR", 0)
	mc.SP = registers.NewStackPointer(&mc.nativeMode)
	mc.A = *registers.NewRegister("A", &mc.accWide)
	mc.X = *registers.NewRegister("X", &mc.idxWide)
	mc.Y = *registers.NewRegister("Y", &mc.idxWide)
	mc.Status = registers.NewStatusRegister()
	mc.syncWidths()
	return mc
}

// Plumb replaces the CPU's memory bus.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s DP=%04x %s %s",
		mc.PC.Label(), mc.PC, mc.PBR, mc.DBR,
		mc.A, mc.X, mc.DP, mc.SP, mc.Status)
}

// syncWidths brings the width mirrors used by Register and StackPointer in
// line with the status register. It must be called after anything that
// changes AccumulatorWidth, IndexWidth or Emulation.
func (mc *CPU) syncWidths() {
	mc.accWide = !mc.Status.AccumulatorWidth
	mc.idxWide = !mc.Status.IndexWidth
	mc.nativeMode = !mc.Status.Emulation
}

// Reset reinitialises the processor to its post-reset state and loads PC
// from the reset vector. The 65C816 always starts up in emulation mode.
func (mc *CPU) Reset() error {
	mc.err = nil
	mc.Status.Reset()
	mc.syncWidths()
	mc.PBR.Load(0)
	mc.DBR.Load(0)
	mc.DP = 0
	mc.SP.Load(0x0100)
	mc.A.LoadRaw(0)
	mc.X.LoadRaw(0)
	mc.Y.LoadRaw(0)
	mc.Stopped = false
	mc.Waiting = false
	mc.LastResult.Reset()

	pc, err := mc.readVector(cpubus.VectorReset)
	if err != nil {
		return err
	}
	mc.PC.Load(pc)
	return nil
}

func (mc *CPU) readVector(addr uint16) (uint16, error) {
	lo, err := mc.mem.Read(cpubus.Address(0, addr))
	if err != nil {
		return 0, curated.Errorf("cpu: reading vector: %v", err)
	}
	hi, err := mc.mem.Read(cpubus.Address(0, addr+1))
	if err != nil {
		return 0, curated.Errorf("cpu: reading vector: %v", err)
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// bus helpers. Every access goes through read/write so that LastResult.Cycles
// grows one bus cycle at a time, the way the real processor's clock does,
// rather than being charged in a single lump at the end of the instruction.
// Once a bus error occurs it is latched in mc.err and further accesses
// during the same instruction become no-ops, unwinding back up to Step.

func (mc *CPU) read(addr uint32) uint8 {
	if mc.err != nil {
		return 0
	}
	v, err := mc.mem.Read(addr)
	if err != nil {
		mc.err = err
		return 0
	}
	mc.LastResult.Cycles++
	return v
}

func (mc *CPU) write(addr uint32, v uint8) {
	if mc.err != nil {
		return
	}
	if err := mc.mem.Write(addr, v); err != nil {
		mc.err = err
		return
	}
	mc.LastResult.Cycles++
}

func (mc *CPU) readWordAt(addr uint32) uint16 {
	lo := mc.read(addr)
	hi := mc.read(cpubus.Address(cpubus.Bank(addr), cpubus.Offset(addr)+1))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) writeWordAt(addr uint32, v uint16) {
	mc.write(addr, uint8(v))
	mc.write(cpubus.Address(cpubus.Bank(addr), cpubus.Offset(addr)+1), uint8(v>>8))
}

func (mc *CPU) fetchByte() uint8 {
	addr := cpubus.Address(mc.PBR.Value(), mc.PC.Address())
	v := mc.read(addr)
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) fetchWord() uint16 {
	lo := mc.fetchByte()
	hi := mc.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push8(v uint8) {
	mc.write(cpubus.Address(0, mc.SP.Address()), v)
	mc.SP.Push(1)
}

func (mc *CPU) pull8() uint8 {
	mc.SP.Pull(1)
	return mc.read(cpubus.Address(0, mc.SP.Address()))
}

func (mc *CPU) push16(v uint16) {
	mc.push8(uint8(v >> 8))
	mc.push8(uint8(v))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull8()
	hi := mc.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) setNZ(value uint16, wide bool) {
	if wide {
		mc.Status.Sign = value&0x8000 != 0
		mc.Status.Zero = value == 0
		return
	}
	mc.Status.Sign = value&0x0080 != 0
	mc.Status.Zero = uint8(value) == 0
}

// Step fetches, decodes and executes a single instruction, driving
// LastResult as it goes.
func (mc *CPU) Step() error {
	mc.err = nil
	mc.LastResult.Reset()
	mc.LastResult.Address = cpubus.Address(mc.PBR.Value(), mc.PC.Address())

	opcode := mc.fetchByte()
	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn

	if mc.err == nil {
		if defn == nil || defn.Mnemonic == "" {
			mc.err = curated.Errorf("cpu: undefined opcode %#02x", opcode)
		} else {
			mc.execute(defn)
		}
	}

	if mc.err != nil {
		mc.LastResult.Error = mc.err.Error()
		return mc.err
	}
	mc.LastResult.Final = true
	return nil
}

// IRQ requests a maskable interrupt. It has no effect if the I flag is set;
// otherwise it ends any WAI and delivers the interrupt.
func (mc *CPU) IRQ() error {
	if mc.Status.InterruptDisable {
		return nil
	}
	mc.Waiting = false
	mc.err = nil
	err := mc.interrupt(cpubus.VectorIRQEmulation, cpubus.VectorIRQNative, false)
	return err
}

// NMI requests a non-maskable interrupt.
func (mc *CPU) NMI() error {
	mc.Waiting = false
	mc.err = nil
	return mc.interrupt(cpubus.VectorNMIEmulation, cpubus.VectorNMINative, false)
}

// interrupt pushes the return context and status, sets I, clears D, and
// loads PC from the appropriate vector. Called directly (without resetting
// mc.err) by BRK and COP from within an instruction already in progress,
// and by IRQ/NMI for asynchronous interrupts.
func (mc *CPU) interrupt(emulationVector, nativeVector uint16, brk bool) error {
	if mc.Status.Emulation {
		mc.push16(mc.PC.Address())
		b := mc.Status.Value()
		if brk {
			b |= 0x10
		}
		mc.push8(b)
	} else {
		mc.push8(mc.PBR.Value())
		mc.push16(mc.PC.Address())
		mc.push8(mc.Status.Value())
	}
	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false
	mc.PBR.Load(0)

	vector := nativeVector
	if mc.Status.Emulation {
		vector = emulationVector
	}
	pc, err := mc.readVector(vector)
	if err != nil {
		mc.err = err
		return err
	}
	mc.PC.Load(pc)
	return mc.err
}
