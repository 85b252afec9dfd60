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

package cpubus_test

import (
	"testing"

	"github.com/sharkeymike/emu816go/hardware/memory/cpubus"
	"github.com/sharkeymike/emu816go/test"
)

func TestFlatBusRAMReadWrite(t *testing.T) {
	bus := cpubus.NewFlatBus(0xffff, 0x100, nil)

	test.ExpectedSuccess(t, bus.Write(0x10, 0x42))
	v, err := bus.Read(0x10)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x42)
}

func TestFlatBusROMIsReadOnly(t *testing.T) {
	rom := []uint8{0xaa, 0xbb, 0xcc}
	bus := cpubus.NewFlatBus(0xffff, 0x10, rom)

	v, err := bus.Read(0x10)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xaa)

	test.ExpectedSuccess(t, bus.Write(0x10, 0xff))
	v, err = bus.Read(0x10)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xaa)
}

func TestFlatBusUnmappedROMReadsZero(t *testing.T) {
	bus := cpubus.NewFlatBus(0xffff, 0x10, nil)

	v, err := bus.Read(0x20)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
}

func TestFlatBusAddressMaskWraps(t *testing.T) {
	bus := cpubus.NewFlatBus(0x0f, 0x10, nil)

	test.ExpectedSuccess(t, bus.Write(0x1003, 0x55))
	v, err := bus.Read(0x03)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x55)
}

func TestAddressBankOffset(t *testing.T) {
	a := cpubus.Address(0x7e, 0x1234)
	test.Equate(t, a, uint32(0x7e1234))
	test.Equate(t, cpubus.Bank(a), uint8(0x7e))
	test.Equate(t, cpubus.Offset(a), uint16(0x1234))
}
