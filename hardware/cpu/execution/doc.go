// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about each instruction
// encountered during a program's execution, fetched, decoded and executed
// one at a time by the cpu package.
//
// Result.IsValid() can be used to check whether a Result is consistent with
// the instruction definition it was built against. The CPU doesn't call this
// function itself, since doing so on every instruction would introduce an
// unwanted performance penalty, but it's useful in a debugging or test
// context.
package execution
