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

package cpu

import (
	"github.com/sharkeymike/emu816go/hardware/cpu/instructions"
	"github.com/sharkeymike/emu816go/hardware/cpu/registers"
	"github.com/sharkeymike/emu816go/hardware/memory/cpubus"
)

// execute carries out the instruction defn decodes to. The opcode byte
// itself has already been fetched by Step; execute is responsible for
// consuming any remaining operand bytes (usually via resolveAddress) and
// updating registers, memory and flags accordingly. Bus errors are
// reported through mc.err rather than a return value, since an addressing
// mode may need several bus accesses before the operation it's serving
// even begins.
func (mc *CPU) execute(defn *instructions.Definition) {
	switch defn.Mnemonic {

	// Interrupts.
	case "BRK":
		mc.resolveAddress(defn.AddressingMode)
		mc.interrupt(cpubus.VectorBRKEmulation, cpubus.VectorBRKNative, true)
	case "COP":
		mc.resolveAddress(defn.AddressingMode)
		mc.interrupt(cpubus.VectorCOPEmulation, cpubus.VectorCOPNative, false)
	case "RTI":
		mc.execRTI()

	// Subroutines and jumps.
	case "JMP", "JML":
		addr := mc.resolveAddress(defn.AddressingMode)
		if defn.AddressingMode == instructions.AbsoluteLong || defn.AddressingMode == instructions.AbsoluteIndirectLong {
			mc.PBR.Load(cpubus.Bank(addr))
		}
		mc.PC.Load(cpubus.Offset(addr))
	case "JSR":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(cpubus.Offset(addr))
	case "JSL":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.push8(mc.PBR.Value())
		mc.push16(mc.PC.Address() - 1)
		mc.PBR.Load(cpubus.Bank(addr))
		mc.PC.Load(cpubus.Offset(addr))
	case "RTS":
		mc.PC.Load(mc.pull16() + 1)
	case "RTL":
		pc := mc.pull16() + 1
		mc.PBR.Load(mc.pull8())
		mc.PC.Load(pc)

	// Branches. BRA/BRL are unconditional; the rest gate on a status flag.
	case "BRA":
		mc.branch(true)
	case "BRL":
		target := mc.longBranchTarget()
		mc.LastResult.BranchSuccess = true
		mc.PC.Load(target)
	case "BPL":
		mc.branch(!mc.Status.Sign)
	case "BMI":
		mc.branch(mc.Status.Sign)
	case "BVC":
		mc.branch(!mc.Status.Overflow)
	case "BVS":
		mc.branch(mc.Status.Overflow)
	case "BCC":
		mc.branch(!mc.Status.Carry)
	case "BCS":
		mc.branch(mc.Status.Carry)
	case "BNE":
		mc.branch(!mc.Status.Zero)
	case "BEQ":
		mc.branch(mc.Status.Zero)

	// Stack instructions.
	case "PHA":
		mc.pushAccumWidth(mc.A.Raw())
	case "PLA":
		mc.A.Load(mc.pullAccumWidth())
		mc.setNZ(mc.A.Value(), mc.accWide)
	case "PHX":
		mc.pushIndexWidth(mc.X.Raw())
	case "PLX":
		mc.X.Load(mc.pullIndexWidth())
		mc.setNZ(mc.X.Value(), mc.idxWide)
	case "PHY":
		mc.pushIndexWidth(mc.Y.Raw())
	case "PLY":
		mc.Y.Load(mc.pullIndexWidth())
		mc.setNZ(mc.Y.Value(), mc.idxWide)
	case "PHB":
		mc.push8(mc.DBR.Value())
	case "PLB":
		v := mc.pull8()
		mc.DBR.Load(v)
		mc.setNZ(uint16(v), false)
	case "PHD":
		mc.push16(mc.DP)
	case "PLD":
		mc.DP = mc.pull16()
		mc.setNZ(mc.DP, true)
	case "PHK":
		mc.push8(mc.PBR.Value())
	case "PHP":
		mc.push8(mc.Status.Value())
	case "PLP":
		v := mc.pull8()
		mc.Status.FromValue(v)
		mc.syncWidths()
		if mc.Status.IndexWidth {
			mc.X.ZeroHigh()
			mc.Y.ZeroHigh()
		}
	case "PEA":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.push16(mc.readWordAt(addr))
	case "PEI":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.push16(mc.readWordAt(addr))
	case "PER":
		target := mc.longBranchTarget()
		mc.push16(target)

	// Block move.
	case "MVN":
		mc.blockMove(true)
	case "MVP":
		mc.blockMove(false)

	// Loads and stores.
	case "LDA":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.A.Load(mc.readOperand(addr, mc.accWide))
		mc.setNZ(mc.A.Value(), mc.accWide)
	case "LDX":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.X.Load(mc.readOperand(addr, mc.idxWide))
		mc.setNZ(mc.X.Value(), mc.idxWide)
	case "LDY":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.Y.Load(mc.readOperand(addr, mc.idxWide))
		mc.setNZ(mc.Y.Value(), mc.idxWide)
	case "STA":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.writeOperand(addr, mc.A.Value(), mc.accWide)
	case "STX":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.writeOperand(addr, mc.X.Value(), mc.idxWide)
	case "STY":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.writeOperand(addr, mc.Y.Value(), mc.idxWide)
	case "STZ":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.writeOperand(addr, 0, mc.accWide)

	// Arithmetic and logic against the accumulator.
	case "ADC":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.adcSbc(&mc.A, mc.readOperand(addr, mc.accWide), false)
	case "SBC":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.adcSbc(&mc.A, mc.readOperand(addr, mc.accWide), true)
	case "AND":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.A.AND(mc.readOperand(addr, mc.accWide))
		mc.setNZ(mc.A.Value(), mc.accWide)
	case "ORA":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.A.ORA(mc.readOperand(addr, mc.accWide))
		mc.setNZ(mc.A.Value(), mc.accWide)
	case "EOR":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.A.EOR(mc.readOperand(addr, mc.accWide))
		mc.setNZ(mc.A.Value(), mc.accWide)
	case "BIT":
		addr := mc.resolveAddress(defn.AddressingMode)
		data := mc.readOperand(addr, mc.accWide)
		mc.Status.Zero = mc.A.Value()&data == 0
		if defn.AddressingMode != instructions.ImmediateAccumWidth {
			if mc.accWide {
				mc.Status.Sign = data&0x8000 != 0
				mc.Status.Overflow = data&0x4000 != 0
			} else {
				mc.Status.Sign = data&0x0080 != 0
				mc.Status.Overflow = data&0x0040 != 0
			}
		}

	// Compares.
	case "CMP":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.compare(mc.A, mc.readOperand(addr, mc.accWide), mc.accWide)
	case "CPX":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.compare(mc.X, mc.readOperand(addr, mc.idxWide), mc.idxWide)
	case "CPY":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.compare(mc.Y, mc.readOperand(addr, mc.idxWide), mc.idxWide)

	// Shift/rotate group, memory and accumulator forms.
	case "ASL":
		mc.shiftOrRotate(defn.AddressingMode, aslFn)
	case "LSR":
		mc.shiftOrRotate(defn.AddressingMode, lsrFn)
	case "ROL":
		mc.shiftOrRotate(defn.AddressingMode, rolFn)
	case "ROR":
		mc.shiftOrRotate(defn.AddressingMode, rorFn)

	// Increment/decrement group, memory and accumulator forms.
	case "INC":
		mc.incDecOrMemory(defn.AddressingMode, &mc.A, 1)
	case "DEC":
		mc.incDecOrMemory(defn.AddressingMode, &mc.A, ^uint32(0))
	case "INX":
		mc.bumpIndex(&mc.X, 1)
	case "DEX":
		mc.bumpIndex(&mc.X, ^uint32(0))
	case "INY":
		mc.bumpIndex(&mc.Y, 1)
	case "DEY":
		mc.bumpIndex(&mc.Y, ^uint32(0))

	case "TRB":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.trbTsb(addr, false)
	case "TSB":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.trbTsb(addr, true)

	// Register transfers.
	case "TAX":
		mc.transferInto(&mc.X, mc.idxWide, mc.A.Raw(), mc.A.Value8())
	case "TAY":
		mc.transferInto(&mc.Y, mc.idxWide, mc.A.Raw(), mc.A.Value8())
	case "TXA":
		mc.transferInto(&mc.A, mc.accWide, mc.X.Raw(), mc.X.Value8())
	case "TYA":
		mc.transferInto(&mc.A, mc.accWide, mc.Y.Raw(), mc.Y.Value8())
	case "TXY":
		mc.transferInto(&mc.Y, mc.idxWide, mc.X.Raw(), mc.X.Value8())
	case "TYX":
		mc.transferInto(&mc.X, mc.idxWide, mc.Y.Raw(), mc.Y.Value8())

	// TCD/TDC/TCS/TSC always move the full sixteen bits regardless of M -
	// a documented exception to the width-gated transfers above.
	case "TCD":
		mc.DP = mc.A.Raw()
	case "TDC":
		mc.A.LoadRaw(mc.DP)
		mc.setNZ(mc.A.Value(), mc.accWide)
	case "TCS":
		mc.SP.Load(mc.A.Raw())
	case "TSC":
		mc.A.LoadRaw(mc.SP.Address())
		mc.setNZ(mc.A.Value(), mc.accWide)

	// TSX is sized by the X flag like any other transfer into X. TXS
	// always copies all sixteen bits of X; in emulation mode the stack
	// pointer's own Load keeps it in page one.
	case "TSX":
		mc.transferInto(&mc.X, mc.idxWide, mc.SP.Address(), uint8(mc.SP.Address()))
	case "TXS":
		mc.SP.Load(mc.X.Raw())

	// Flag instructions.
	case "CLC":
		mc.Status.Carry = false
	case "SEC":
		mc.Status.Carry = true
	case "CLD":
		mc.Status.DecimalMode = false
	case "SED":
		mc.Status.DecimalMode = true
	case "CLI":
		mc.Status.InterruptDisable = false
	case "SEI":
		mc.Status.InterruptDisable = true
	case "CLV":
		mc.Status.Overflow = false
	case "REP":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.applyFlagMask(mc.read(addr), false)
	case "SEP":
		addr := mc.resolveAddress(defn.AddressingMode)
		mc.applyFlagMask(mc.read(addr), true)
	case "XCE":
		wasEmulation := mc.Status.Emulation
		mc.Status.Emulation = mc.Status.Carry
		mc.Status.Carry = wasEmulation
		mc.syncWidths()
		if mc.Status.Emulation {
			mc.Status.AccumulatorWidth = true
			mc.Status.IndexWidth = true
			mc.syncWidths()
			mc.X.ZeroHigh()
			mc.Y.ZeroHigh()
			mc.SP.Load(mc.SP.Address())
		}
	case "XBA":
		v := mc.A.Raw()
		mc.A.LoadRaw(v>>8 | v<<8)
		mc.setNZ(uint16(mc.A.Value8()), false)

	// Miscellaneous.
	case "NOP":
	case "WDM":
		addr := mc.resolveAddress(defn.AddressingMode)
		arg := mc.read(addr)
		if mc.WDMHook != nil {
			if err := mc.WDMHook(mc, arg); err != nil {
				mc.err = err
				return
			}
		}
		if arg == 0xff {
			mc.Stopped = true
		}
	case "STP":
		mc.Stopped = true
		mc.PC.Load(mc.PC.Address() - 1)
	case "WAI":
		mc.Waiting = true
		mc.PC.Load(mc.PC.Address() - 1)

	default:
		mc.resolveAddress(defn.AddressingMode)
	}
}

func (mc *CPU) execRTI() {
	v := mc.pull8()
	mc.Status.FromValue(v)
	pc := mc.pull16()
	if !mc.Status.Emulation {
		mc.PBR.Load(mc.pull8())
	}
	mc.PC.Load(pc)
	mc.Status.InterruptDisable = false
	mc.syncWidths()
}

// pushAccumWidth and pullAccumWidth push/pull one or two bytes according
// to the current accumulator width, matching PHA/PLA.
func (mc *CPU) pushAccumWidth(v uint16) {
	if mc.accWide {
		mc.push16(v)
		return
	}
	mc.push8(uint8(v))
}

func (mc *CPU) pullAccumWidth() uint16 {
	if mc.accWide {
		return mc.pull16()
	}
	return uint16(mc.pull8())
}

func (mc *CPU) pushIndexWidth(v uint16) {
	if mc.idxWide {
		mc.push16(v)
		return
	}
	mc.push8(uint8(v))
}

func (mc *CPU) pullIndexWidth() uint16 {
	if mc.idxWide {
		return mc.pull16()
	}
	return uint16(mc.pull8())
}

// readOperand and writeOperand read or write memory at addr, one or two
// bytes depending on wide, the way every load/store/ALU instruction that
// isn't a pure register operation does.
func (mc *CPU) readOperand(addr uint32, wide bool) uint16 {
	if wide {
		return mc.readWordAt(addr)
	}
	return uint16(mc.read(addr))
}

func (mc *CPU) writeOperand(addr uint32, v uint16, wide bool) {
	if wide {
		mc.writeWordAt(addr, v)
		return
	}
	mc.write(addr, uint8(v))
}

// shiftOrRotate dispatches ASL/LSR/ROL/ROR to either the accumulator or a
// memory operand depending on the addressing mode.
func (mc *CPU) shiftOrRotate(mode instructions.AddressingMode, fn func(v uint32, wide bool, carry bool) (uint32, bool)) {
	if mode == instructions.Accumulator {
		wide := mc.accWide
		carry := mc.Status.Carry
		result, rcarry := fn(uint32(mc.A.Raw()), wide, carry)
		mc.Status.Carry = rcarry
		mc.A.Load(uint16(result))
		mc.setNZ(mc.A.Value(), wide)
		return
	}
	addr := mc.resolveAddress(mode)
	mc.rmwMemory(addr, fn)
}

// incDecOrMemory dispatches INC/DEC to either the accumulator or a memory
// operand depending on the addressing mode. delta is 1 or, expressed as
// twos-complement uint32, -1.
func (mc *CPU) incDecOrMemory(mode instructions.AddressingMode, acc *registers.Register, delta uint32) {
	if mode == instructions.Accumulator {
		wide := mc.accWide
		mask := uint32(0xff)
		if wide {
			mask = 0xffff
		}
		v := (uint32(acc.Raw()) + delta) & mask
		acc.Load(uint16(v))
		mc.setNZ(acc.Value(), wide)
		return
	}
	addr := mc.resolveAddress(mode)
	mc.rmwIncDec(addr, delta)
}

func (mc *CPU) bumpIndex(reg *registers.Register, delta uint32) {
	wide := mc.idxWide
	mask := uint32(0xff)
	if wide {
		mask = 0xffff
	}
	v := (uint32(reg.Raw()) + delta) & mask
	reg.Load(uint16(v))
	mc.setNZ(reg.Value(), wide)
}

// transferInto implements the inter-register transfers (TAX, TAY, TXA,
// TYA, TXY, TYX, TSX): the destination's own width decides whether the full
// sixteen bits or just the low byte moves, regardless of the source
// register's width.
func (mc *CPU) transferInto(dst *registers.Register, dstWide bool, srcRaw uint16, srcLow uint8) {
	if dstWide {
		dst.LoadRaw(srcRaw)
		mc.setNZ(dst.Value(), true)
		return
	}
	dst.Load(uint16(srcLow))
	mc.setNZ(dst.Value(), false)
}

// applyFlagMask implements SEP (set=true) and REP (set=false). Whenever the
// index width flag ends up narrow, X and Y are zero-extended immediately,
// matching real hardware: unlike A, they don't retain a hidden high byte
// across a width change.
func (mc *CPU) applyFlagMask(mask uint8, set bool) {
	v := mc.Status.Value()
	if set {
		v |= mask
	} else {
		v &^= mask
	}
	mc.Status.FromValue(v)
	mc.syncWidths()
	if mc.Status.IndexWidth {
		mc.X.ZeroHigh()
		mc.Y.ZeroHigh()
	}
}

// blockMove implements MVN (forward, up=true) and MVP (backward, up=false).
// Both move exactly one byte per execution and rewind PC to re-execute the
// same instruction until the transfer count in A underflows from zero,
// which is how a single 65C816 instruction can move an arbitrarily large
// block without a dedicated loop counter. X and Y are used for addressing
// at their old value and only then incremented (MVN) or decremented (MVP);
// the two mnemonics differ only in that direction, not in ordering.
func (mc *CPU) blockMove(up bool) {
	addr := mc.resolveAddress(instructions.BlockMove)
	dstBank := mc.read(addr)
	srcBank := mc.read(cpubus.Address(cpubus.Bank(addr), cpubus.Offset(addr)+1))
	mc.DBR.Load(dstBank)

	src := cpubus.Address(srcBank, mc.X.Raw())
	dst := cpubus.Address(dstBank, mc.Y.Raw())
	v := mc.read(src)
	mc.write(dst, v)

	delta := uint16(1)
	if !up {
		delta = 0xffff
	}
	mc.X.LoadRaw(mc.X.Raw() + delta)
	mc.Y.LoadRaw(mc.Y.Raw() + delta)

	mc.A.LoadRaw(mc.A.Raw() - 1)
	if mc.A.Raw() != 0xffff {
		mc.PC.Load(mc.PC.Address() - 3)
	}

	// the opcode fetch and the four bus accesses above already charged one
	// cycle apiece; the real opcode costs a flat seven cycles per byte moved
	// regardless of addressing, so make up the difference rather than double
	// count.
	mc.LastResult.Cycles += 2
}
