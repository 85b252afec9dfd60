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

package registers_test

import (
	"testing"

	"github.com/sharkeymike/emu816go/hardware/cpu/registers"
	"github.com/sharkeymike/emu816go/test"
)

func TestRegisterNarrowPreservesHiddenByte(t *testing.T) {
	wide := true
	r := registers.NewRegister("A", &wide)
	r.LoadRaw(0x1234)
	test.Equate(t, r.Value(), uint16(0x1234))

	wide = false
	r.Load(0x0056)
	test.Equate(t, r.Value(), uint16(0x0056))
	test.Equate(t, r.Raw(), uint16(0x1256))
}

func TestRegisterZeroHigh(t *testing.T) {
	wide := true
	r := registers.NewRegister("X", &wide)
	r.LoadRaw(0x1234)
	r.ZeroHigh()
	test.Equate(t, r.Raw(), uint16(0x0034))
}

func TestRegisterIsNegativeRespectsWidth(t *testing.T) {
	wide := true
	r := registers.NewRegister("A", &wide)
	r.LoadRaw(0x8000)
	test.ExpectEquality(t, r.IsNegative(), true)

	wide = false
	r.LoadRaw(0x0080)
	test.ExpectEquality(t, r.IsNegative(), true)
	r.LoadRaw(0x0180)
	test.ExpectEquality(t, r.IsNegative(), true)
	r.LoadRaw(0x0001)
	test.ExpectEquality(t, r.IsNegative(), false)
}

func TestRegisterLogicOpsMaskToWidth(t *testing.T) {
	wide := false
	r := registers.NewRegister("A", &wide)
	r.LoadRaw(0xff34)

	r.AND(0x0f0f)
	test.Equate(t, r.Raw(), uint16(0xff04))

	r.ORA(0x00f0)
	test.Equate(t, r.Raw(), uint16(0xfff4))

	r.EOR(0x00ff)
	test.Equate(t, r.Raw(), uint16(0xff0b))
}

func TestBankRegisterLoadAndAddress(t *testing.T) {
	b := registers.NewBankRegister("DBR", 0x7e)
	test.Equate(t, b.Value(), uint8(0x7e))
	b.Load(0x00)
	test.Equate(t, b.Value(), uint8(0x00))
	test.Equate(t, b.Address(), uint32(0x000000))
}

func TestStatusRegisterResetState(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Emulation, true)
	test.ExpectEquality(t, sr.AccumulatorWidth, true)
	test.ExpectEquality(t, sr.IndexWidth, true)
	test.ExpectEquality(t, sr.InterruptDisable, true)
}

func TestStatusRegisterValuePinsWidthBitsInEmulation(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.AccumulatorWidth = false
	sr.IndexWidth = false

	test.Equate(t, sr.Value()&0x30, uint8(0x30))
}

func TestStatusRegisterFromValuePreservesEmulationWidths(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.FromValue(0x00)

	test.ExpectEquality(t, sr.AccumulatorWidth, true)
	test.ExpectEquality(t, sr.IndexWidth, true)
	test.ExpectEquality(t, sr.Carry, false)
}

func TestStatusRegisterFromValueNative(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Emulation = false

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.AccumulatorWidth, true)
	test.ExpectEquality(t, sr.IndexWidth, true)

	sr.FromValue(0x00)
	test.ExpectEquality(t, sr.AccumulatorWidth, false)
	test.ExpectEquality(t, sr.IndexWidth, false)
}

func TestStatusRegisterStringLowercasesClearFlags(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Emulation = false
	sr.Carry = true

	// Sign/Overflow/Decimal/Zero are clear (lowercase); Accumulator/Index
	// width default to wide-is-false i.e. 8 bit (uppercase M/X) straight
	// out of NewStatusRegister, InterruptDisable defaults set (uppercase
	// I), and Carry was just set (uppercase C).
	test.Equate(t, sr.String(), "nvMXdIzC")
}
