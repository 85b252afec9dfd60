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

package instructions_test

import (
	"strings"
	"testing"

	"github.com/sharkeymike/emu816go/hardware/cpu/instructions"
	"github.com/sharkeymike/emu816go/test"
)

func TestGetDefinitionsHasAllOpcodes(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, len(defs), 256)

	for i, d := range defs {
		if d == nil {
			t.Fatalf("opcode %#02x has no definition", i)
		}
		test.Equate(t, int(d.OpCode), i)
		if d.Mnemonic == "" {
			t.Fatalf("opcode %#02x has an empty mnemonic", i)
		}
	}
}

func TestBRKDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0x00]

	test.Equate(t, defn.Mnemonic, "BRK")
	test.ExpectEquality(t, defn.Effect, instructions.Interrupt)
}

func TestCLCDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0x18]

	test.Equate(t, defn.Mnemonic, "CLC")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Implied)
	test.ExpectEquality(t, defn.Effect, instructions.Mode)
}

func TestJSRAbsoluteDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0x20]

	test.Equate(t, defn.Mnemonic, "JSR")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defn.Effect, instructions.Subroutine)
	test.Equate(t, defn.Bytes, 3)
}

func TestMVNMVPAreBlockMove(t *testing.T) {
	defs := instructions.GetDefinitions()

	mvp := defs[0x44]
	test.Equate(t, mvp.Mnemonic, "MVP")
	test.ExpectEquality(t, mvp.AddressingMode, instructions.BlockMove)
	test.ExpectEquality(t, mvp.Effect, instructions.Block)

	mvn := defs[0x54]
	test.Equate(t, mvn.Mnemonic, "MVN")
	test.ExpectEquality(t, mvn.AddressingMode, instructions.BlockMove)
	test.ExpectEquality(t, mvn.Effect, instructions.Block)
}

func TestRTSDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0x60]

	test.Equate(t, defn.Mnemonic, "RTS")
	test.ExpectEquality(t, defn.Effect, instructions.Subroutine)
}

func TestSTADefinitionIsWrite(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0x8d]

	test.Equate(t, defn.Mnemonic, "STA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defn.Effect, instructions.Write)
}

func TestLDAImmediateDefaultsToReadEffect(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0xa9]

	test.Equate(t, defn.Mnemonic, "LDA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.ImmediateAccumWidth)
	test.ExpectEquality(t, defn.Effect, instructions.Read)
}

func TestREPDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0xc2]

	test.Equate(t, defn.Mnemonic, "REP")
	test.ExpectEquality(t, defn.AddressingMode, instructions.ImmediateByte)
}

func TestSTPDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0xdb]

	test.Equate(t, defn.Mnemonic, "STP")
	test.ExpectEquality(t, defn.Effect, instructions.Mode)
}

func TestXCEDefinition(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0xfb]

	test.Equate(t, defn.Mnemonic, "XCE")
	test.ExpectEquality(t, defn.Effect, instructions.Mode)
}

func TestIsBranchOnlyMatchesShortBranches(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0x90].IsBranch(), true) // BCC, relative
	test.ExpectEquality(t, defs[0x80].IsBranch(), true) // BRA, relative
	test.ExpectEquality(t, defs[0x82].IsBranch(), false) // BRL, long relative
	test.ExpectEquality(t, defs[0x4c].IsBranch(), false) // JMP absolute
}

func TestDefinitionStringIncludesMnemonicAndOpcode(t *testing.T) {
	defn := instructions.Definition{
		OpCode:   0xa9,
		Mnemonic: "LDA",
		Bytes:    2,
		Cycles:   2,
	}
	s := defn.String()
	if s == "" {
		t.Fatal("expected a non-empty string")
	}
	test.ExpectEquality(t, s != "undecoded instruction", true)
	test.ExpectEquality(t, strings.HasPrefix(s, "a9 LDA"), true)
}

func TestDefinitionStringReportsUndecodedWhenMnemonicEmpty(t *testing.T) {
	defn := instructions.Definition{}
	test.Equate(t, defn.String(), "undecoded instruction")
}
