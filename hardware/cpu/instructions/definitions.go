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

package instructions

// modeShape describes the nominal byte count and cycle cost that goes with
// an addressing mode. Several modes - the immediate modes governed by the
// M/X width flags in particular - actually consume a variable number of
// bytes at runtime; the values here are the 8 bit/short-form nominal shape
// used for documentation and for the IsValid() sanity check, not the
// authoritative cost, which the CPU accumulates bus access by bus access.
type modeShape struct {
	bytes         int
	cycles        int
	pageSensitive bool
}

var modeShapes = map[AddressingMode]modeShape{
	Implied:                        {1, 2, false},
	Accumulator:                    {1, 2, false},
	ImmediateByte:                  {2, 2, false},
	ImmediateAccumWidth:            {2, 2, false},
	ImmediateIndexWidth:            {2, 2, false},
	Relative:                       {2, 2, true},
	LongRelative:                   {3, 4, false},
	Absolute:                       {3, 4, false},
	AbsoluteIndexedX:               {3, 4, true},
	AbsoluteIndexedY:               {3, 4, true},
	AbsoluteIndirect:               {3, 5, false},
	AbsoluteIndexedIndirect:        {3, 6, false},
	AbsoluteLong:                   {4, 5, false},
	AbsoluteLongIndexedX:           {4, 5, false},
	AbsoluteIndirectLong:           {3, 6, false},
	DirectPage:                     {2, 3, true},
	DirectPageIndexedX:             {2, 4, true},
	DirectPageIndexedY:             {2, 4, true},
	DirectPageIndirect:             {2, 5, true},
	DirectPageIndexedIndirectX:     {2, 6, true},
	DirectPageIndirectIndexedY:     {2, 5, true},
	DirectPageIndirectLong:         {2, 6, true},
	DirectPageIndirectLongIndexedY: {2, 6, true},
	StackRelative:                  {2, 4, false},
	StackRelativeIndirectIndexedY:  {2, 7, false},
	BlockMove:                      {3, 3, false},
}

// mnemonicEffect classifies each mnemonic by the effect category it falls
// under. Mnemonics not listed default to Read.
var mnemonicEffect = map[string]EffectCategory{
	"STA": Write, "STX": Write, "STY": Write, "STZ": Write,

	"ASL": RMW, "LSR": RMW, "ROL": RMW, "ROR": RMW,
	"INC": RMW, "DEC": RMW, "TRB": RMW, "TSB": RMW,

	"BPL": Flow, "BMI": Flow, "BVC": Flow, "BVS": Flow,
	"BCC": Flow, "BCS": Flow, "BNE": Flow, "BEQ": Flow, "BRA": Flow,
	"JMP": Flow, "JML": Flow, "BRL": Flow,

	"JSR": Subroutine, "JSL": Subroutine, "RTS": Subroutine, "RTL": Subroutine,

	"BRK": Interrupt, "COP": Interrupt, "RTI": Interrupt,

	"PHA": Stack, "PHX": Stack, "PHY": Stack, "PHB": Stack, "PHD": Stack,
	"PHK": Stack, "PHP": Stack, "PLA": Stack, "PLX": Stack, "PLY": Stack,
	"PLB": Stack, "PLD": Stack, "PLP": Stack, "PEA": Stack, "PEI": Stack, "PER": Stack,

	"MVN": Block, "MVP": Block,

	"CLC": Mode, "SEC": Mode, "CLI": Mode, "SEI": Mode, "CLD": Mode, "SED": Mode,
	"CLV": Mode, "SEP": Mode, "REP": Mode, "XCE": Mode, "XBA": Mode,
	"NOP": Mode, "WDM": Mode, "STP": Mode, "WAI": Mode,
	"TAX": Mode, "TAY": Mode, "TXA": Mode, "TYA": Mode, "TSX": Mode, "TXS": Mode,
	"TCD": Mode, "TDC": Mode, "TCS": Mode, "TSC": Mode, "TXY": Mode, "TYX": Mode,
	"INX": Mode, "INY": Mode, "DEX": Mode, "DEY": Mode,
}

type opcodeEntry struct {
	opcode   uint8
	mnemonic string
	mode     AddressingMode
}

// opcodeTable enumerates, for every one of the 256 opcodes, the mnemonic
// and addressing mode the 65C816 dispatches it to. This is a direct
// transcription of the processor's instruction decode table: each row is
// (almost always) identical in shape, varying only in which operation is
// invoked with the decoded effective address.
var opcodeTable = [256]opcodeEntry{
	{0x00, "BRK", ImmediateByte}, {0x01, "ORA", DirectPageIndexedIndirectX}, {0x02, "COP", ImmediateByte}, {0x03, "ORA", StackRelative},
	{0x04, "TSB", DirectPage}, {0x05, "ORA", DirectPage}, {0x06, "ASL", DirectPage}, {0x07, "ORA", DirectPageIndirectLong},
	{0x08, "PHP", Implied}, {0x09, "ORA", ImmediateAccumWidth}, {0x0a, "ASL", Accumulator}, {0x0b, "PHD", Implied},
	{0x0c, "TSB", Absolute}, {0x0d, "ORA", Absolute}, {0x0e, "ASL", Absolute}, {0x0f, "ORA", AbsoluteLong},

	{0x10, "BPL", Relative}, {0x11, "ORA", DirectPageIndirectIndexedY}, {0x12, "ORA", DirectPageIndirect}, {0x13, "ORA", StackRelativeIndirectIndexedY},
	{0x14, "TRB", DirectPage}, {0x15, "ORA", DirectPageIndexedX}, {0x16, "ASL", DirectPageIndexedX}, {0x17, "ORA", DirectPageIndirectLongIndexedY},
	{0x18, "CLC", Implied}, {0x19, "ORA", AbsoluteIndexedY}, {0x1a, "INC", Accumulator}, {0x1b, "TCS", Implied},
	{0x1c, "TRB", Absolute}, {0x1d, "ORA", AbsoluteIndexedX}, {0x1e, "ASL", AbsoluteIndexedX}, {0x1f, "ORA", AbsoluteLongIndexedX},

	{0x20, "JSR", Absolute}, {0x21, "AND", DirectPageIndexedIndirectX}, {0x22, "JSL", AbsoluteLong}, {0x23, "AND", StackRelative},
	{0x24, "BIT", DirectPage}, {0x25, "AND", DirectPage}, {0x26, "ROL", DirectPage}, {0x27, "AND", DirectPageIndirectLong},
	{0x28, "PLP", Implied}, {0x29, "AND", ImmediateAccumWidth}, {0x2a, "ROL", Accumulator}, {0x2b, "PLD", Implied},
	{0x2c, "BIT", Absolute}, {0x2d, "AND", Absolute}, {0x2e, "ROL", Absolute}, {0x2f, "AND", AbsoluteLong},

	{0x30, "BMI", Relative}, {0x31, "AND", DirectPageIndirectIndexedY}, {0x32, "AND", DirectPageIndirect}, {0x33, "AND", StackRelativeIndirectIndexedY},
	{0x34, "BIT", DirectPageIndexedX}, {0x35, "AND", DirectPageIndexedX}, {0x36, "ROL", DirectPageIndexedX}, {0x37, "AND", DirectPageIndirectLongIndexedY},
	{0x38, "SEC", Implied}, {0x39, "AND", AbsoluteIndexedY}, {0x3a, "DEC", Accumulator}, {0x3b, "TSC", Implied},
	{0x3c, "BIT", AbsoluteIndexedX}, {0x3d, "AND", AbsoluteIndexedX}, {0x3e, "ROL", AbsoluteIndexedX}, {0x3f, "AND", AbsoluteLongIndexedX},

	{0x40, "RTI", Implied}, {0x41, "EOR", DirectPageIndexedIndirectX}, {0x42, "WDM", ImmediateByte}, {0x43, "EOR", StackRelative},
	{0x44, "MVP", BlockMove}, {0x45, "EOR", DirectPage}, {0x46, "LSR", DirectPage}, {0x47, "EOR", DirectPageIndirectLong},
	{0x48, "PHA", Implied}, {0x49, "EOR", ImmediateAccumWidth}, {0x4a, "LSR", Accumulator}, {0x4b, "PHK", Implied},
	{0x4c, "JMP", Absolute}, {0x4d, "EOR", Absolute}, {0x4e, "LSR", Absolute}, {0x4f, "EOR", AbsoluteLong},

	{0x50, "BVC", Relative}, {0x51, "EOR", DirectPageIndirectIndexedY}, {0x52, "EOR", DirectPageIndirect}, {0x53, "EOR", StackRelativeIndirectIndexedY},
	{0x54, "MVN", BlockMove}, {0x55, "EOR", DirectPageIndexedX}, {0x56, "LSR", DirectPageIndexedX}, {0x57, "EOR", DirectPageIndirectLongIndexedY},
	{0x58, "CLI", Implied}, {0x59, "EOR", AbsoluteIndexedY}, {0x5a, "PHY", Implied}, {0x5b, "TCD", Implied},
	{0x5c, "JML", AbsoluteLong}, {0x5d, "EOR", AbsoluteIndexedX}, {0x5e, "LSR", AbsoluteIndexedX}, {0x5f, "EOR", AbsoluteLongIndexedX},

	{0x60, "RTS", Implied}, {0x61, "ADC", DirectPageIndexedIndirectX}, {0x62, "PER", LongRelative}, {0x63, "ADC", StackRelative},
	{0x64, "STZ", DirectPage}, {0x65, "ADC", DirectPage}, {0x66, "ROR", DirectPage}, {0x67, "ADC", DirectPageIndirectLong},
	{0x68, "PLA", Implied}, {0x69, "ADC", ImmediateAccumWidth}, {0x6a, "ROR", Accumulator}, {0x6b, "RTL", Implied},
	{0x6c, "JMP", AbsoluteIndirect}, {0x6d, "ADC", Absolute}, {0x6e, "ROR", Absolute}, {0x6f, "ADC", AbsoluteLong},

	{0x70, "BVS", Relative}, {0x71, "ADC", DirectPageIndirectIndexedY}, {0x72, "ADC", DirectPageIndirect}, {0x73, "ADC", StackRelativeIndirectIndexedY},
	{0x74, "STZ", DirectPageIndexedX}, {0x75, "ADC", DirectPageIndexedX}, {0x76, "ROR", DirectPageIndexedX}, {0x77, "ADC", DirectPageIndirectLongIndexedY},
	{0x78, "SEI", Implied}, {0x79, "ADC", AbsoluteIndexedY}, {0x7a, "PLY", Implied}, {0x7b, "TDC", Implied},
	{0x7c, "JMP", AbsoluteIndexedIndirect}, {0x7d, "ADC", AbsoluteIndexedX}, {0x7e, "ROR", AbsoluteIndexedX}, {0x7f, "ADC", AbsoluteLongIndexedX},

	{0x80, "BRA", Relative}, {0x81, "STA", DirectPageIndexedIndirectX}, {0x82, "BRL", LongRelative}, {0x83, "STA", StackRelative},
	{0x84, "STY", DirectPage}, {0x85, "STA", DirectPage}, {0x86, "STX", DirectPage}, {0x87, "STA", DirectPageIndirectLong},
	{0x88, "DEY", Implied}, {0x89, "BIT", ImmediateAccumWidth}, {0x8a, "TXA", Implied}, {0x8b, "PHB", Implied},
	{0x8c, "STY", Absolute}, {0x8d, "STA", Absolute}, {0x8e, "STX", Absolute}, {0x8f, "STA", AbsoluteLong},

	{0x90, "BCC", Relative}, {0x91, "STA", DirectPageIndirectIndexedY}, {0x92, "STA", DirectPageIndirect}, {0x93, "STA", StackRelativeIndirectIndexedY},
	{0x94, "STY", DirectPageIndexedX}, {0x95, "STA", DirectPageIndexedX}, {0x96, "STX", DirectPageIndexedY}, {0x97, "STA", DirectPageIndirectLongIndexedY},
	{0x98, "TYA", Implied}, {0x99, "STA", AbsoluteIndexedY}, {0x9a, "TXS", Implied}, {0x9b, "TXY", Implied},
	{0x9c, "STZ", Absolute}, {0x9d, "STA", AbsoluteIndexedX}, {0x9e, "STZ", AbsoluteIndexedX}, {0x9f, "STA", AbsoluteLongIndexedX},

	{0xa0, "LDY", ImmediateIndexWidth}, {0xa1, "LDA", DirectPageIndexedIndirectX}, {0xa2, "LDX", ImmediateIndexWidth}, {0xa3, "LDA", StackRelative},
	{0xa4, "LDY", DirectPage}, {0xa5, "LDA", DirectPage}, {0xa6, "LDX", DirectPage}, {0xa7, "LDA", DirectPageIndirectLong},
	{0xa8, "TAY", Implied}, {0xa9, "LDA", ImmediateAccumWidth}, {0xaa, "TAX", Implied}, {0xab, "PLB", Implied},
	{0xac, "LDY", Absolute}, {0xad, "LDA", Absolute}, {0xae, "LDX", Absolute}, {0xaf, "LDA", AbsoluteLong},

	{0xb0, "BCS", Relative}, {0xb1, "LDA", DirectPageIndirectIndexedY}, {0xb2, "LDA", DirectPageIndirect}, {0xb3, "LDA", StackRelativeIndirectIndexedY},
	{0xb4, "LDY", DirectPageIndexedX}, {0xb5, "LDA", DirectPageIndexedX}, {0xb6, "LDX", DirectPageIndexedY}, {0xb7, "LDA", DirectPageIndirectLongIndexedY},
	{0xb8, "CLV", Implied}, {0xb9, "LDA", AbsoluteIndexedY}, {0xba, "TSX", Implied}, {0xbb, "TYX", Implied},
	{0xbc, "LDY", AbsoluteIndexedX}, {0xbd, "LDA", AbsoluteIndexedX}, {0xbe, "LDX", AbsoluteIndexedY}, {0xbf, "LDA", AbsoluteLongIndexedX},

	{0xc0, "CPY", ImmediateIndexWidth}, {0xc1, "CMP", DirectPageIndexedIndirectX}, {0xc2, "REP", ImmediateByte}, {0xc3, "CMP", StackRelative},
	{0xc4, "CPY", DirectPage}, {0xc5, "CMP", DirectPage}, {0xc6, "DEC", DirectPage}, {0xc7, "CMP", DirectPageIndirectLong},
	{0xc8, "INY", Implied}, {0xc9, "CMP", ImmediateAccumWidth}, {0xca, "DEX", Implied}, {0xcb, "WAI", Implied},
	{0xcc, "CPY", Absolute}, {0xcd, "CMP", Absolute}, {0xce, "DEC", Absolute}, {0xcf, "CMP", AbsoluteLong},

	{0xd0, "BNE", Relative}, {0xd1, "CMP", DirectPageIndirectIndexedY}, {0xd2, "CMP", DirectPageIndirect}, {0xd3, "CMP", StackRelativeIndirectIndexedY},
	{0xd4, "PEI", DirectPage}, {0xd5, "CMP", DirectPageIndexedX}, {0xd6, "DEC", DirectPageIndexedX}, {0xd7, "CMP", DirectPageIndirectLongIndexedY},
	{0xd8, "CLD", Implied}, {0xd9, "CMP", AbsoluteIndexedY}, {0xda, "PHX", Implied}, {0xdb, "STP", Implied},
	{0xdc, "JMP", AbsoluteIndirectLong}, {0xdd, "CMP", AbsoluteIndexedX}, {0xde, "DEC", AbsoluteIndexedX}, {0xdf, "CMP", AbsoluteLongIndexedX},

	{0xe0, "CPX", ImmediateIndexWidth}, {0xe1, "SBC", DirectPageIndexedIndirectX}, {0xe2, "SEP", ImmediateByte}, {0xe3, "SBC", StackRelative},
	{0xe4, "CPX", DirectPage}, {0xe5, "SBC", DirectPage}, {0xe6, "INC", DirectPage}, {0xe7, "SBC", DirectPageIndirectLong},
	{0xe8, "INX", Implied}, {0xe9, "SBC", ImmediateAccumWidth}, {0xea, "NOP", Implied}, {0xeb, "XBA", Implied},
	{0xec, "CPX", Absolute}, {0xed, "SBC", Absolute}, {0xee, "INC", Absolute}, {0xef, "SBC", AbsoluteLong},

	{0xf0, "BEQ", Relative}, {0xf1, "SBC", DirectPageIndirectIndexedY}, {0xf2, "SBC", DirectPageIndirect}, {0xf3, "SBC", StackRelativeIndirectIndexedY},
	{0xf4, "PEA", BlockMove}, {0xf5, "SBC", DirectPageIndexedX}, {0xf6, "INC", DirectPageIndexedX}, {0xf7, "SBC", DirectPageIndirectLongIndexedY},
	{0xf8, "SED", Implied}, {0xf9, "SBC", AbsoluteIndexedY}, {0xfa, "PLX", Implied}, {0xfb, "XCE", Implied},
	{0xfc, "JSR", AbsoluteIndexedIndirect}, {0xfd, "SBC", AbsoluteIndexedX}, {0xfe, "INC", AbsoluteIndexedX}, {0xff, "SBC", AbsoluteLongIndexedX},
}

// GetDefinitions builds the table of instruction definitions for the
// 65C816, one entry per opcode, indexed by opcode value.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)
	for _, e := range opcodeTable {
		shape := modeShapes[e.mode]
		effect, ok := mnemonicEffect[e.mnemonic]
		if !ok {
			effect = Read
		}
		defs[e.opcode] = &Definition{
			OpCode:         e.opcode,
			Mnemonic:       e.mnemonic,
			Bytes:          shape.bytes,
			Cycles:         shape.cycles,
			AddressingMode: e.mode,
			PageSensitive:  shape.pageSensitive,
			Effect:         effect,
		}
	}
	return defs
}
