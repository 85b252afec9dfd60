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

// The 65C816 keeps two sets of interrupt/reset vectors in the top of bank
// zero: a native mode set and, for compatibility, an emulation mode set
// that overlaps the 6502's original vector locations. RESET only has one
// vector, since the processor always starts in emulation mode.
const (
	VectorCOPNative   uint16 = 0xffe4
	VectorBRKNative   uint16 = 0xffe6
	VectorABORTNative uint16 = 0xffe8
	VectorNMINative   uint16 = 0xffea
	VectorIRQNative   uint16 = 0xffee

	VectorCOPEmulation   uint16 = 0xfff4
	VectorABORTEmulation uint16 = 0xfff8
	VectorNMIEmulation   uint16 = 0xfffa
	VectorReset          uint16 = 0xfffc
	VectorIRQEmulation   uint16 = 0xfffe

	// VectorBRKEmulation and VectorIRQEmulation are the same location: in
	// emulation mode BRK and IRQ share a vector and are distinguished, if
	// at all, by the B flag in the pushed status byte.
	VectorBRKEmulation uint16 = 0xfffe
)
