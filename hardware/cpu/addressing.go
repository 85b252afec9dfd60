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
	"github.com/sharkeymike/emu816go/hardware/memory/cpubus"
)

// resolveAddress consumes whatever operand bytes an addressing mode needs
// and returns the effective 24 bit bus address the instruction should act
// on. Implied and Accumulator resolve to zero. The immediate forms resolve
// to the address of the operand bytes, which the instruction then reads.
// The branch relative forms are not handled here; the branch instructions
// compute their own targets.
func (mc *CPU) resolveAddress(mode instructions.AddressingMode) uint32 {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 0

	case instructions.ImmediateByte:
		addr := cpubus.Address(mc.PBR.Value(), mc.PC.Address())
		mc.PC.Add(1)
		mc.LastResult.ByteCount++
		return addr

	case instructions.ImmediateAccumWidth:
		addr := cpubus.Address(mc.PBR.Value(), mc.PC.Address())
		n := uint16(1)
		if mc.accWide {
			n = 2
		}
		mc.PC.Add(n)
		mc.LastResult.ByteCount += int(n)
		return addr

	case instructions.ImmediateIndexWidth:
		addr := cpubus.Address(mc.PBR.Value(), mc.PC.Address())
		n := uint16(1)
		if mc.idxWide {
			n = 2
		}
		mc.PC.Add(n)
		mc.LastResult.ByteCount += int(n)
		return addr

	case instructions.Absolute:
		offset := mc.fetchWord()
		return cpubus.Address(mc.DBR.Value(), offset)

	case instructions.AbsoluteIndexedX:
		offset := mc.fetchWord()
		return cpubus.Address(mc.DBR.Value(), offset) + uint32(mc.X.Value())

	case instructions.AbsoluteIndexedY:
		offset := mc.fetchWord()
		return cpubus.Address(mc.DBR.Value(), offset) + uint32(mc.Y.Value())

	case instructions.AbsoluteIndirect:
		ia := mc.fetchWord()
		return uint32(mc.readWordAt(cpubus.Address(0, ia)))

	case instructions.AbsoluteIndexedIndirect:
		ia := mc.fetchWord() + mc.X.Value()
		return cpubus.Address(mc.PBR.Value(), mc.readWordAt(cpubus.Address(mc.PBR.Value(), ia)))

	case instructions.AbsoluteLong:
		return mc.fetchLongAddress()

	case instructions.AbsoluteLongIndexedX:
		return mc.fetchLongAddress() + uint32(mc.X.Value())

	case instructions.AbsoluteIndirectLong:
		ia := mc.fetchWord()
		return mc.readLongAt(cpubus.Address(0, ia))

	case instructions.DirectPage:
		disp := mc.fetchByte()
		return cpubus.Address(0, mc.DP+uint16(disp))

	case instructions.DirectPageIndexedX:
		disp := mc.fetchByte()
		return cpubus.Address(0, mc.DP+uint16(disp)+mc.X.Value())

	case instructions.DirectPageIndexedY:
		disp := mc.fetchByte()
		return cpubus.Address(0, mc.DP+uint16(disp)+mc.Y.Value())

	case instructions.DirectPageIndirect:
		disp := mc.fetchByte()
		ia := mc.readWordAt(cpubus.Address(0, mc.DP+uint16(disp)))
		return cpubus.Address(mc.DBR.Value(), ia)

	case instructions.DirectPageIndexedIndirectX:
		disp := mc.fetchByte()
		ia := mc.readWordAt(cpubus.Address(0, mc.DP+uint16(disp)+mc.X.Value()))
		return cpubus.Address(mc.DBR.Value(), ia)

	case instructions.DirectPageIndirectIndexedY:
		disp := mc.fetchByte()
		ia := mc.readWordAt(cpubus.Address(0, mc.DP+uint16(disp)))
		return cpubus.Address(mc.DBR.Value(), ia) + uint32(mc.Y.Value())

	case instructions.DirectPageIndirectLong:
		disp := mc.fetchByte()
		return mc.readLongAt(cpubus.Address(0, mc.DP+uint16(disp)))

	case instructions.DirectPageIndirectLongIndexedY:
		disp := mc.fetchByte()
		return mc.readLongAt(cpubus.Address(0, mc.DP+uint16(disp))) + uint32(mc.Y.Value())

	case instructions.StackRelative:
		disp := mc.fetchByte()
		if mc.Status.Emulation {
			return cpubus.Address(0, uint16(uint8(mc.SP.Address())+disp)|(mc.SP.Address()&0xff00))
		}
		return cpubus.Address(0, mc.SP.Address()+uint16(disp))

	case instructions.StackRelativeIndirectIndexedY:
		disp := mc.fetchByte()
		var ia uint16
		if mc.Status.Emulation {
			ia = mc.readWordAt(cpubus.Address(0, uint16(uint8(mc.SP.Address())+disp)|(mc.SP.Address()&0xff00)))
		} else {
			ia = mc.readWordAt(cpubus.Address(0, mc.SP.Address()+uint16(disp)))
		}
		return cpubus.Address(mc.DBR.Value(), ia+mc.Y.Value())

	case instructions.BlockMove:
		// MVN/MVP and PEA all take a fixed two byte operand that isn't
		// itself masked by M or X: a pair of bank bytes for the block move
		// instructions, a literal word for PEA. The address returned is
		// the location of the first of those two bytes; the caller reads
		// or interprets them according to its own instruction.
		addr := cpubus.Address(mc.PBR.Value(), mc.PC.Address())
		mc.PC.Add(2)
		mc.LastResult.ByteCount += 2
		return addr

	default:
		return 0
	}
}

// fetchLongAddress reads a three byte bank:offset address from the
// instruction stream.
func (mc *CPU) fetchLongAddress() uint32 {
	lo := mc.fetchByte()
	hi := mc.fetchByte()
	bank := mc.fetchByte()
	return cpubus.Address(bank, uint16(hi)<<8|uint16(lo))
}

// readLongAt reads a three byte bank:offset address out of memory, used by
// the two indirect-long addressing modes.
func (mc *CPU) readLongAt(addr uint32) uint32 {
	lo := mc.read(addr)
	hi := mc.read(cpubus.Address(cpubus.Bank(addr), cpubus.Offset(addr)+1))
	bank := mc.read(cpubus.Address(cpubus.Bank(addr), cpubus.Offset(addr)+2))
	return cpubus.Address(bank, uint16(hi)<<8|uint16(lo))
}

// branchTarget resolves an eight bit signed displacement relative to the
// address of the instruction following the branch.
func (mc *CPU) branchTarget() uint16 {
	disp := mc.fetchByte()
	return mc.PC.Address() + uint16(int8(disp))
}

// longBranchTarget resolves the sixteen bit signed displacement used by BRL
// and PER.
func (mc *CPU) longBranchTarget() uint16 {
	disp := mc.fetchWord()
	return mc.PC.Address() + disp
}

// branch takes a conditional branch if taken is true, charging the extra
// cycles a real 65C816 would: one for taking the branch, and, in emulation
// mode only, a further one if the branch crosses a page boundary. Native
// mode never pays the page cross penalty.
func (mc *CPU) branch(taken bool) {
	target := mc.branchTarget()
	if !taken {
		return
	}
	mc.LastResult.BranchSuccess = true
	oldPage := mc.PC.Address() & 0xff00
	mc.LastResult.Cycles++
	if mc.Status.Emulation && target&0xff00 != oldPage {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	mc.PC.Load(target)
}
