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

package cpu_test

import (
	"testing"

	"github.com/sharkeymike/emu816go/hardware/cpu"
	"github.com/sharkeymike/emu816go/hardware/memory/cpubus"
	"github.com/sharkeymike/emu816go/test"
)

// newMachine builds a CPU over a fresh 64KB flat bus with the reset vector
// pointed at 0x0400 and the given program loaded there.
func newMachine(t *testing.T, program []byte) (*cpu.CPU, *cpubus.FlatBus) {
	t.Helper()
	bus := cpubus.NewFlatBus(0xffffff, 0x10000, nil)
	for i, b := range program {
		test.ExpectedSuccess(t, bus.Write(uint32(0x0400+i), b))
	}
	test.ExpectedSuccess(t, bus.Write(0xfffc, 0x00))
	test.ExpectedSuccess(t, bus.Write(0xfffd, 0x04))

	mc := cpu.NewCPU(bus)
	test.ExpectedSuccess(t, mc.Reset())
	return mc, bus
}

func runToStop(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles := 0
	for i := 0; i < 10000 && !mc.Stopped; i++ {
		test.ExpectedSuccess(t, mc.Step())
		cycles += mc.LastResult.Cycles
	}
	if !mc.Stopped {
		t.Fatalf("program did not reach STP within 10000 steps")
	}
	return cycles
}

func TestResetState(t *testing.T) {
	mc, _ := newMachine(t, nil)

	test.ExpectEquality(t, mc.Status.Emulation, true)
	test.ExpectEquality(t, mc.Status.AccumulatorWidth, true)
	test.ExpectEquality(t, mc.Status.IndexWidth, true)
	test.Equate(t, mc.PC.Address(), 0x0400)
	test.Equate(t, mc.SP.Address(), 0x0100)
}

// Scenario 1: LDA #$05; ADC #$03; STA $2000; STP
func TestAddAndStore8Bit(t *testing.T) {
	mc, bus := newMachine(t, []byte{0xa9, 0x05, 0x69, 0x03, 0x8d, 0x00, 0x20, 0xdb})
	cycles := runToStop(t, mc)

	test.Equate(t, mc.A.Value8(), 0x08)
	v, err := bus.Read(0x2000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x08)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, false)
	if cycles <= 0 {
		t.Errorf("expected a positive cycle count, got %d", cycles)
	}
}

// Scenario 2: CLC; XCE; REP #$30; LDA #$1234; STA $2000; STP
func TestNative16BitMode(t *testing.T) {
	mc, bus := newMachine(t, []byte{
		0x18, 0xfb,
		0xc2, 0x30,
		0xa9, 0x34, 0x12,
		0x8d, 0x00, 0x20,
		0xdb,
	})
	runToStop(t, mc)

	test.ExpectEquality(t, mc.Status.Emulation, false)
	test.ExpectEquality(t, mc.Status.AccumulatorWidth, false)
	test.ExpectEquality(t, mc.Status.IndexWidth, false)
	test.Equate(t, mc.A.Value(), 0x1234)

	lo, err := bus.Read(0x2000)
	test.ExpectedSuccess(t, err)
	hi, err := bus.Read(0x2001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, lo, 0x34)
	test.Equate(t, hi, 0x12)
}

// Scenario 3: block move MVN copying three bytes from bank0:$1000 to
// bank0:$2000, widened A/X/Y, then STP.
func TestBlockMoveMVN(t *testing.T) {
	mc, bus := newMachine(t, []byte{
		0x18, 0xfb, // CLC; XCE
		0xc2, 0x30, // REP #$30 (native, 16 bit A/X/Y)
		0xa2, 0x00, 0x10, // LDX #$1000
		0xa0, 0x00, 0x20, // LDY #$2000
		0xa9, 0x02, 0x00, // LDA #$0002
		0x54, 0x00, 0x00, // MVN dst=0, src=0
		0xdb, // STP
	})
	test.ExpectedSuccess(t, bus.Write(0x1000, 0xde))
	test.ExpectedSuccess(t, bus.Write(0x1001, 0xad))
	test.ExpectedSuccess(t, bus.Write(0x1002, 0xbe))

	runToStop(t, mc)

	for i, want := range []uint8{0xde, 0xad, 0xbe} {
		v, err := bus.Read(uint32(0x2000 + i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, want)
	}
	test.Equate(t, mc.X.Value(), 0x1003)
	test.Equate(t, mc.Y.Value(), 0x2003)
	test.Equate(t, mc.A.Value(), 0xffff)
	test.Equate(t, mc.DBR.Value(), 0x00)
}

// Scenario 4: JSR/RTS round trip, verifying SP is restored.
func TestJSRRTS(t *testing.T) {
	program := make([]byte, 0x0b)
	program[0x00] = 0x20 // JSR $040a
	program[0x01] = 0x0a
	program[0x02] = 0x04
	program[0x03] = 0xdb // STP
	program[0x0a] = 0x60 // RTS

	mc, _ := newMachine(t, program)
	spBefore := mc.SP.Address()

	runToStop(t, mc)

	test.Equate(t, mc.SP.Address(), spBefore)
}

// Scenario 5: BRK in emulation mode vectors through 0xFFFE.
func TestBRKVector(t *testing.T) {
	mc, bus := newMachine(t, []byte{0x00, 0x00})
	test.ExpectedSuccess(t, bus.Write(0x0500, 0xdb)) // STP
	test.ExpectedSuccess(t, bus.Write(0xfffe, 0x00))
	test.ExpectedSuccess(t, bus.Write(0xffff, 0x05))

	runToStop(t, mc)

	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.Status.DecimalMode, false)
	test.Equate(t, mc.PBR.Value(), 0x00)

	pushedStatus, err := bus.Read(uint32(mc.SP.Address() + 1))
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, pushedStatus&0x10 != 0, true)
}

// Scenario 6: decimal ADC, E=1, A=$25, C=0, ADC #$48 -> A=$73.
func TestDecimalADC(t *testing.T) {
	mc, _ := newMachine(t, []byte{0xf8, 0xa9, 0x25, 0x69, 0x48, 0xdb}) // SED; LDA #$25; ADC #$48; STP
	runToStop(t, mc)

	test.Equate(t, mc.A.Value8(), 0x73)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, false)
}

// E=1, D=1, C=0, A=$75, ADC #$75: the pre-correction binary sum is
// 0x75+0x75 = 0xea, whose sign-bit-based binary overflow rule makes V
// true; BCD-correcting that same sum yields 0x50 with carry out. V must
// reflect the binary sum, not the corrected one.
func TestDecimalADCOverflowUsesPreCorrectionSum(t *testing.T) {
	mc, _ := newMachine(t, []byte{0xf8, 0xa9, 0x75, 0x69, 0x75, 0xdb}) // SED; LDA #$75; ADC #$75; STP
	runToStop(t, mc)

	test.Equate(t, mc.A.Value8(), 0x50)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Overflow, true)
}

func TestBranchPageCrossPenaltyOnlyInEmulation(t *testing.T) {
	// BRA sits at 0x04fd with its displacement byte at 0x04fe, so the
	// fallthrough address is 0x04ff and a +1 displacement lands exactly on
	// 0x0500: a different page to the fallthrough. Everything before the
	// BRA is NOP. The same program is run once in emulation mode and once
	// after switching to native mode with CLC; XCE.
	for _, native := range []bool{false, true} {
		program := make([]byte, 0x100)
		for i := range program {
			program[i] = 0xea // NOP
		}
		if native {
			program[0] = 0x18 // CLC
			program[1] = 0xfb // XCE
		}
		program[0xfd] = 0x80 // BRA +1
		program[0xfe] = 0x01
		mc, bus := newMachine(t, program)
		test.ExpectedSuccess(t, bus.Write(0x0500, 0xdb))

		for i := 0; i < 0x100 && mc.PC.Address() != 0x04fd; i++ {
			test.ExpectedSuccess(t, mc.Step())
		}
		test.ExpectedSuccess(t, mc.Step()) // the BRA itself
		test.ExpectEquality(t, mc.LastResult.PageFault, !native)
		runToStop(t, mc)
	}
}

func TestXCERoundTrip(t *testing.T) {
	mc, _ := newMachine(t, []byte{0x18, 0xfb, 0x38, 0xfb, 0xdb}) // CLC;XCE;SEC;XCE;STP
	runToStop(t, mc)

	test.ExpectEquality(t, mc.Status.Emulation, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestIndexWidthZeroesHighByteOnNarrow(t *testing.T) {
	mc, _ := newMachine(t, []byte{
		0x18, 0xfb, // CLC; XCE (native)
		0xc2, 0x10, // REP #$10 (widen X/Y)
		0xa2, 0x34, 0x12, // LDX #$1234
		0xe2, 0x10, // SEP #$10 (narrow X/Y again)
		0xdb,
	})
	runToStop(t, mc)

	test.ExpectEquality(t, mc.Status.IndexWidth, true)
	test.Equate(t, mc.X.Raw(), uint16(0x0034))
}
