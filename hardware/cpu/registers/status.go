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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the
// processor flags of the 65C816 (P). Unlike the 6502, two of its bits -
// M and X - are operating mode flags rather than simple condition codes:
// they select whether the accumulator and the index registers behave as
// 8 or 16 bit registers. Register values are not constructed against M
// and X themselves: the CPU keeps inverted copies of them (true meaning
// sixteen bits) and refreshes those copies whenever M or X changes.
//
// The emulation mode bit, E, is tracked separately from the flag byte: on
// real hardware it isn't part of P at all, it is the CPU's native/emulation
// mode latch, set only by XCE. While E is set, M and X are pinned to true
// regardless of SEP/REP.
type StatusRegister struct {
	Sign             bool // N
	Overflow         bool // V
	AccumulatorWidth bool // M - true means 8 bit accumulator
	IndexWidth       bool // X - true means 8 bit index registers
	DecimalMode      bool // D
	InterruptDisable bool // I
	Zero             bool // Z
	Carry            bool // C

	// Emulation is the E flag. It is not part of the pushed/pulled P byte
	// in native mode, but emulation mode's P byte is still eight bits wide
	// with M and X forced on.
	Emulation bool
}

// NewStatusRegister is the preferred method of initialisation for the
// status register. The 65C816 resets into emulation mode with 8 bit
// accumulator and index registers.
func NewStatusRegister() StatusRegister {
	return StatusRegister{
		AccumulatorWidth: true,
		IndexWidth:       true,
		InterruptDisable: true,
		Emulation:        true,
	}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, c byte) {
		if set {
			s.WriteByte(c)
		} else {
			s.WriteByte(c - 'A' + 'a')
		}
	}

	flag(sr.Sign, 'N')
	flag(sr.Overflow, 'V')
	if sr.Emulation {
		flag(true, 'E')
	} else {
		flag(sr.AccumulatorWidth, 'M')
		flag(sr.IndexWidth, 'X')
	}
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset restores the status register to its post-reset state: emulation
// mode, 8 bit accumulator and index registers, interrupts disabled.
func (sr *StatusRegister) Reset() {
	*sr = NewStatusRegister()
}

// Value converts the StatusRegister into the eight bit P value used by
// PHP, BRK and COP. While the CPU is in emulation mode, M and X read back
// as set regardless of their stored value, matching real hardware.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Emulation || sr.AccumulatorWidth {
		v |= 0x20
	}
	if sr.Emulation || sr.IndexWidth {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue unpacks an eight bit P value (pulled from the stack by PLP or
// RTI) into the receiver. It does not touch Emulation: XCE is the only
// instruction that changes mode, and FromValue is used to restore flags
// within whatever mode the CPU is already in. In emulation mode M and X
// are pinned true regardless of the bits read back, per the 65C816
// programming model.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01

	if sr.Emulation {
		sr.AccumulatorWidth = true
		sr.IndexWidth = true
	} else {
		sr.AccumulatorWidth = v&0x20 == 0x20
		sr.IndexWidth = v&0x10 == 0x10
	}
}
