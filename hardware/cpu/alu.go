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

import "github.com/sharkeymike/emu816go/hardware/cpu/registers"

// adcSbc implements ADC and SBC together, since SBC is ADC against the
// ones' complement of the operand. Decimal mode correction is applied
// nibble by nibble directly to the running sum. Carry, N and Z are taken
// from the corrected sum, but Overflow is taken from the pre-correction
// binary sum: the V flag always reflects signed binary overflow of the
// operands as fetched, never the BCD-corrected result.
func (mc *CPU) adcSbc(acc *registers.Register, operand uint16, subtract bool) {
	wide := mc.accWide
	carryIn := uint32(0)
	if mc.Status.Carry {
		carryIn = 1
	}

	if subtract {
		if wide {
			operand = ^operand
		} else {
			operand = uint16(^uint8(operand))
		}
	}

	if wide {
		before := acc.Raw()
		preCorrection := uint32(before) + uint32(operand) + carryIn
		sum := preCorrection

		if mc.Status.DecimalMode {
			if sum&0x000f > 0x0009 {
				sum += 0x0006
			}
			if sum&0x00f0 > 0x0090 {
				sum += 0x0060
			}
			if sum&0x0f00 > 0x0900 {
				sum += 0x0600
			}
			if sum&0xf000 > 0x9000 {
				sum += 0x6000
			}
		}

		result := uint16(sum)
		mc.Status.Carry = sum&0x10000 != 0
		mc.Status.Overflow = (^(before ^ operand) & (before ^ uint16(preCorrection)) & 0x8000) != 0
		acc.LoadRaw(result)
		mc.setNZ(result, true)
		return
	}

	before := acc.Value8()
	b := uint8(operand)
	preCorrection := uint16(before) + uint16(b) + uint16(carryIn)
	sum := preCorrection

	if mc.Status.DecimalMode {
		if sum&0x000f > 0x0009 {
			sum += 0x0006
		}
		if sum&0x00f0 > 0x0090 {
			sum += 0x0060
		}
	}

	result := uint8(sum)
	mc.Status.Carry = sum&0x100 != 0
	mc.Status.Overflow = (^(before ^ b) & (before ^ uint8(preCorrection)) & 0x80) != 0
	acc.Load(uint16(result))
	mc.setNZ(uint16(result), false)
}

// compare implements CMP/CPX/CPY. carry is set when register >= operand at
// the current width - the well established, hardware correct sense - not
// by literally transcribing the host language's signed/unsigned promotion
// of a narrowing subtraction, which would invert it.
func (mc *CPU) compare(reg registers.Register, operand uint16, wide bool) {
	if wide {
		a := reg.Value()
		mc.Status.Carry = a >= operand
		mc.setNZ(a-operand, true)
		return
	}
	a := reg.Value8()
	b := uint8(operand)
	mc.Status.Carry = a >= b
	mc.setNZ(uint16(a-b), false)
}

// rmwMemory performs a read-modify-write memory operation at the current
// accumulator width, dispatching to fn for the actual bit manipulation.
// fn receives the loaded value, the width and the current carry flag and
// returns the
// new value and the new carry flag.
func (mc *CPU) rmwMemory(addr uint32, fn func(v uint32, wide bool, carry bool) (uint32, bool)) {
	wide := mc.accWide
	carry := mc.Status.Carry

	if wide {
		v := uint32(mc.readWordAt(addr))
		result, rcarry := fn(v, true, carry)
		mc.Status.Carry = rcarry
		mc.setNZ(uint16(result), true)
		mc.writeWordAt(addr, uint16(result))
		return
	}

	v := uint32(mc.read(addr))
	result, rcarry := fn(v, false, carry)
	mc.Status.Carry = rcarry
	mc.setNZ(uint16(result), false)
	mc.write(addr, uint8(result))
}

func aslFn(v uint32, wide bool, _ bool) (uint32, bool) {
	if wide {
		return (v << 1) & 0xffff, v&0x8000 != 0
	}
	return (v << 1) & 0xff, v&0x80 != 0
}

func lsrFn(v uint32, wide bool, _ bool) (uint32, bool) {
	return v >> 1, v&0x0001 != 0
}

func rolFn(v uint32, wide bool, carry bool) (uint32, bool) {
	rcarry := v&0x8000 != 0
	if !wide {
		rcarry = v&0x80 != 0
	}
	result := v << 1
	if carry {
		result |= 0x0001
	}
	if wide {
		return result & 0xffff, rcarry
	}
	return result & 0xff, rcarry
}

func rorFn(v uint32, wide bool, carry bool) (uint32, bool) {
	rcarry := v&0x0001 != 0
	result := v >> 1
	if carry {
		if wide {
			result |= 0x8000
		} else {
			result |= 0x80
		}
	}
	return result, rcarry
}

// rmwIncDec performs INC/DEC against memory: unlike the shift group these
// don't touch the carry flag.
func (mc *CPU) rmwIncDec(addr uint32, delta uint32) {
	wide := mc.accWide
	mask := uint32(0xff)
	if wide {
		mask = 0xffff
	}

	if wide {
		v := (uint32(mc.readWordAt(addr)) + delta) & mask
		mc.setNZ(uint16(v), true)
		mc.writeWordAt(addr, uint16(v))
		return
	}

	v := (uint32(mc.read(addr)) + delta) & mask
	mc.setNZ(uint16(v), false)
	mc.write(addr, uint8(v))
}

// trbTsb implements TRB and TSB: both AND the operand against the
// accumulator to derive the Z flag, then either clear (TRB) or set (TSB)
// those bits in memory - the accumulator itself is untouched.
func (mc *CPU) trbTsb(addr uint32, set bool) {
	wide := mc.accWide

	if wide {
		data := mc.readWordAt(addr)
		mc.Status.Zero = mc.A.Value()&data == 0
		if set {
			data |= mc.A.Value()
		} else {
			data &^= mc.A.Value()
		}
		mc.writeWordAt(addr, data)
		return
	}

	data := mc.read(addr)
	a := mc.A.Value8()
	mc.Status.Zero = a&data == 0
	if set {
		data |= a
	} else {
		data &^= a
	}
	mc.write(addr, data)
}
