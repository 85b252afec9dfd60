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

package cpubus

// FlatBus is the reference Memory implementation: a masked, flat 24 bit
// address space split into a mutable RAM region starting at address zero
// and an optional read-only ROM region immediately above it. It never
// returns an error - every address is legal once masked - matching the
// real bus, which has no concept of a faulting access.
type FlatBus struct {
	addrMask uint32
	ramSize  uint32
	ram      []uint8
	rom      []uint8
}

// NewFlatBus allocates a zero-initialised RAM region of ramSize bytes and
// pairs it with rom, which may be nil. addrMask is applied to every address
// before it is classified as RAM or ROM, so addresses wider than the mask
// alias onto lower ones. Masked addresses beyond the RAM and ROM regions
// read as zero and ignore writes.
func NewFlatBus(addrMask, ramSize uint32, rom []uint8) *FlatBus {
	return NewFlatBusWithRAM(addrMask, make([]uint8, ramSize), rom)
}

// NewFlatBusWithRAM is like NewFlatBus but takes ownership of a
// caller-supplied RAM buffer instead of allocating a fresh one, letting a
// caller reuse or pre-populate memory across CPU instances.
func NewFlatBusWithRAM(addrMask uint32, ram []uint8, rom []uint8) *FlatBus {
	return &FlatBus{
		addrMask: addrMask,
		ramSize:  uint32(len(ram)),
		ram:      ram,
		rom:      rom,
	}
}

// Read returns the byte at address, RAM if it falls below the RAM/ROM
// boundary, ROM otherwise. Reading unmapped ROM (no ROM configured, or an
// address beyond it) returns zero rather than faulting.
func (b *FlatBus) Read(address uint32) (uint8, error) {
	ea := address & b.addrMask
	if ea < b.ramSize {
		return b.ram[ea], nil
	}
	romOffset := ea - b.ramSize
	if b.rom == nil || romOffset >= uint32(len(b.rom)) {
		return 0, nil
	}
	return b.rom[romOffset], nil
}

// Write stores to RAM. Writes that land in the ROM region, or beyond the
// configured memory entirely, are silently dropped: this is the documented
// behaviour of a read-only region, not an error condition.
func (b *FlatBus) Write(address uint32, data uint8) error {
	ea := address & b.addrMask
	if ea < b.ramSize {
		b.ram[ea] = data
	}
	return nil
}

// LoadROM installs or replaces the ROM image visible above the RAM region.
func (b *FlatBus) LoadROM(rom []uint8) {
	b.rom = rom
}

// RAM exposes the underlying RAM buffer directly, for loaders that want to
// place a program image without going through Write one byte at a time.
func (b *FlatBus) RAM() []uint8 {
	return b.ram
}
