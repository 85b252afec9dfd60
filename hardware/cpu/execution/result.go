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

import "github.com/sharkeymike/emu816go/hardware/cpu/instructions"

// Result is built up by the CPU as it fetches, decodes and executes a
// single instruction. It is reset at the start of every instruction and is
// only considered complete once Final is true.
type Result struct {
	// Address the instruction was read from. Combined with the program
	// bank register at the time of the fetch, this is a full 24 bit
	// location.
	Address uint32

	// Defn is nil until the opcode has been decoded.
	Defn *instructions.Definition

	// InstructionData is a slot for the decoded operand. The CPU's Step
	// does not fill it in, so after Step it is always zero.
	InstructionData uint32

	// ByteCount is the number of bytes read during decode, including the
	// opcode byte itself.
	ByteCount int

	// Cycles is the number of bus cycles the instruction consumed.
	Cycles int

	// BranchSuccess is true if a conditional branch was taken, or if an
	// unconditional branch/jump/call executed. Meaningless for instructions
	// that don't affect flow.
	BranchSuccess bool

	// PageFault is true if indexing (or, for branches, the destination)
	// crossed a page or bank boundary, in which case an extra cycle may
	// have been charged for the addressing mode used.
	PageFault bool

	// Final is true once the instruction has been completely decoded and
	// executed. A partially filled out Result with Final false indicates
	// the CPU stopped mid-instruction, which normally only happens when an
	// unimplemented or undecoded opcode is encountered.
	Final bool

	// Error is set if Decode/Execute failed partway through the
	// instruction. The Result should not otherwise be trusted if Error is
	// non-empty.
	Error string
}

// Reset prepares the Result for a new instruction by clearing every field,
// Address included; the CPU sets Address immediately afterwards.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a short disassembly-like representation of the Result,
// mostly useful for logging and debugging.
func (r Result) String() string {
	if r.Defn == nil {
		return "undecoded"
	}
	return r.Defn.String()
}
