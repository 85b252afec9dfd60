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

package execution_test

import (
	"testing"

	"github.com/sharkeymike/emu816go/hardware/cpu/execution"
	"github.com/sharkeymike/emu816go/hardware/cpu/instructions"
	"github.com/sharkeymike/emu816go/test"
)

func TestResultResetClearsEverything(t *testing.T) {
	r := execution.Result{
		Address: 0x0400,
		Cycles:  4,
		Final:   true,
		Error:   "boom",
	}
	r.Reset()

	test.Equate(t, int(r.Address), 0)
	test.Equate(t, r.Cycles, 0)
	test.ExpectEquality(t, r.Final, false)
	test.Equate(t, r.Error, "")
}

func TestResultStringUndecoded(t *testing.T) {
	var r execution.Result
	test.Equate(t, r.String(), "undecoded")
}

func TestIsValidRejectsUnfinalised(t *testing.T) {
	r := execution.Result{}
	test.ExpectedFailure(t, r.IsValid())
}

func TestIsValidRejectsTooFewCycles(t *testing.T) {
	defn := &instructions.Definition{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2}
	r := execution.Result{Defn: defn, Final: true, ByteCount: 2, Cycles: 1}
	test.ExpectedFailure(t, r.IsValid())
}

func TestIsValidAcceptsWithinNormalPenalty(t *testing.T) {
	defn := &instructions.Definition{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2}
	r := execution.Result{Defn: defn, Final: true, ByteCount: 2, Cycles: 5}
	test.ExpectedSuccess(t, r.IsValid())
}

func TestIsValidRejectsExcessivePenaltyForOrdinaryInstruction(t *testing.T) {
	defn := &instructions.Definition{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2}
	r := execution.Result{Defn: defn, Final: true, ByteCount: 2, Cycles: 6}
	test.ExpectedFailure(t, r.IsValid())
}

// MVN/MVP charge a flat seven cycles per byte moved, which is four cycles
// above the BlockMove shape's nominal cost of 3 - outside the +3 ceiling
// that applies to every other instruction.
func TestIsValidAllowsBlockMovesWiderPenalty(t *testing.T) {
	defn := &instructions.Definition{OpCode: 0x54, Mnemonic: "MVN", Bytes: 3, Cycles: 3, Effect: instructions.Block}
	r := execution.Result{Defn: defn, Final: true, ByteCount: 3, Cycles: 7}
	test.ExpectedSuccess(t, r.IsValid())
}

func TestIsValidRejectsUnexpectedPageFault(t *testing.T) {
	defn := &instructions.Definition{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, PageSensitive: false}
	r := execution.Result{Defn: defn, Final: true, ByteCount: 2, Cycles: 2, PageFault: true}
	test.ExpectedFailure(t, r.IsValid())
}
