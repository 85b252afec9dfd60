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

package execution

import (
	"github.com/sharkeymike/emu816go/curated"
	"github.com/sharkeymike/emu816go/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition it was decoded against.
//
// Unlike the 6502, the 65C816's instruction timing isn't just a function of
// page crossing: register width (M/X) and the low byte of the direct page
// register both add cycles that the base Definition.Cycles doesn't capture.
// IsValid therefore only checks that the instruction didn't run in fewer
// cycles than its cheapest form, and caps the number of width/page/alignment
// penalties that can plausibly stack on a single instruction, rather than
// checking for an exact figure.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no instruction definition recorded")
	}

	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("cpu: unexpected page fault")
	}

	if r.ByteCount < r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of at least %d)", r.ByteCount, r.Defn.Bytes)
	}

	// MVN/MVP cost a flat seven cycles per byte moved regardless of
	// addressing, well above the nominal BlockMove shape, so they get
	// their own ceiling rather than stretching maxPenalty for everyone
	// else.
	maxPenalty := 3
	if r.Defn.Effect == instructions.Block {
		maxPenalty = 4
	}
	if r.Cycles < r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d is fewer than the minimum %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
	}
	if r.Cycles > r.Defn.Cycles+maxPenalty {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d exceeds the maximum plausible %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles+maxPenalty)
	}

	return nil
}
