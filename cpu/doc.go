// Package cpu implements the processor, assembler and disassembler for the
// 8080 instruction set.
//
// The processor consists of seven 8-bit registers (A, B, C, D, E, H, L), where
// B/C, D/E and H/L also act as 16-bit register pairs, five condition flags, a
// 16-bit program counter and a 16-bit stack pointer. Memory and port I/O are
// delegated to a Memory implementation supplied by the host.
//
// Opcodes exist in two forms: Raw, a tag whose value is the opcode byte, and
// Code, which also carries the immediate or address bytes that follow the
// opcode in the instruction stream. The assembler produces Codes from source
// text, Codegen turns them into bytes, and Disassemble / DisassembleRaw turn
// bytes back into either form.
package cpu
