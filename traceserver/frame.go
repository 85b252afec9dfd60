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

package traceserver

import "github.com/sharkeymike/emu816go/hardware/cpu"

// FrameSize is the fixed length in bytes of an encoded trace frame.
const FrameSize = 20

// encodeFrame packs the CPU's last executed instruction and the register
// state it left behind into a fixed size binary message. Multi-byte fields
// are big endian (most significant byte first), the opposite of the
// 65C816's own little endian order in memory.
//
// Layout:
//
//	0      opcode
//	1:4    address the opcode was fetched from (24 bit, bank first)
//	4      byte count
//	5      cycle count
//	6      status flags (P, as PHP would push it)
//	7:9    A
//	9:11   X
//	11:13  Y
//	13     DBR
//	14     PBR
//	15:17  PC
//	17:19  SP
//	19     flags: bit0 stopped, bit1 waiting, bit2 branch taken, bit3 page fault
func encodeFrame(mc *cpu.CPU) []byte {
	f := make([]byte, FrameSize)

	res := mc.LastResult
	opcode := byte(0)
	if res.Defn != nil {
		opcode = res.Defn.OpCode
	}

	f[0] = opcode
	f[1] = byte(res.Address >> 16)
	f[2] = byte(res.Address >> 8)
	f[3] = byte(res.Address)
	f[4] = byte(res.ByteCount)
	f[5] = byte(res.Cycles)
	f[6] = mc.Status.Value()

	putWord(f[7:9], mc.A.Raw())
	putWord(f[9:11], mc.X.Raw())
	putWord(f[11:13], mc.Y.Raw())

	f[13] = mc.DBR.Value()
	f[14] = mc.PBR.Value()

	putWord(f[15:17], mc.PC.Address())
	putWord(f[17:19], mc.SP.Address())

	var flags byte
	if mc.Stopped {
		flags |= 0x01
	}
	if mc.Waiting {
		flags |= 0x02
	}
	if res.BranchSuccess {
		flags |= 0x04
	}
	if res.PageFault {
		flags |= 0x08
	}
	f[19] = flags

	return f
}

func putWord(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}
