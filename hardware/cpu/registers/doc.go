// Package registers implements the register set of the 65C816: the
// dual-width accumulator and index registers (A, X, Y), the program
// counter, the program and data bank registers (PBR, DBR) and the status
// register (P) together with its emulation mode latch (E).
//
// The Register type, used for A, X and Y, is constructed against a pointer
// to a bool that is true while the register is sixteen bits wide (the
// inverse of the M or X flag that governs it), so the same type
// serves both the 8 and 16 bit operating modes without a caller needing to
// track width itself.
//
// The status register is implemented as a series of flags rather than a
// bitfield, in keeping with the rest of the package. Setting of flags is
// done directly. For instance, in the CPU we might have this sequence of
// calls:
//
//	a.Load(10)
//	a.EOR(11)
//	sr.Zero = a.IsZero()
//
// In this case the zero flag in the status register will be false.
package registers
