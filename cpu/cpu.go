package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Memory is the memory and I/O port capability the CPU executes against.
// The implementation decides the behavior of out of range addresses.
type Memory interface {
	Load(addr uint16) byte               // Read a byte.
	LoadWord(addr uint16) uint16         // Read a little endian word.
	Store(addr uint16, value byte)       // Write a byte.
	StoreWord(addr uint16, value uint16) // Write a little endian word.
	In(port byte) byte                   // Read from an I/O port.
	Out(port byte, value byte)           // Write to an I/O port.
}

// ADDRESS_SPACE is the size of the 16-bit address space.
const ADDRESS_SPACE = 1 << 16

// Flag bits in the processor status byte.
const (
	FLAG_CARRY     = byte(1 << 0)
	FLAG_ONE       = byte(1 << 1) // Always set.
	FLAG_PARITY    = byte(1 << 2)
	FLAG_AUX_CARRY = byte(1 << 4)
	FLAG_ZERO      = byte(1 << 6)
	FLAG_SIGN      = byte(1 << 7)
)

var _cpu_defines = map[string]string{
	"RST_0": "0x0000",
	"RST_1": "0x0008",
	"RST_2": "0x0010",
	"RST_3": "0x0018",
	"RST_4": "0x0020",
	"RST_5": "0x0028",
	"RST_6": "0x0030",
	"RST_7": "0x0038",
}

// parityTable is true for bytes with an even number of set bits.
var parityTable [256]bool

func init() {
	for n := range parityTable {
		even := true
		for v := n; v != 0; v &= v - 1 {
			even = !even
		}
		parityTable[n] = even
	}
}

// Cpu is the execution state of an 8080 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Memory and I/O ports.

	A, B, C, D, E, H, L byte // Registers.

	Sign     bool // Result bit 7 was set.
	Zero     bool // Result was zero.
	AuxCarry bool // Carry out of bit 3.
	Parity   bool // Result had even parity.
	Carry    bool // Carry out of bit 7, or borrow.

	Pc uint16 // Program counter.
	Sp uint16 // Stack pointer.

	InterruptEnable bool // Interrupt enable latch.

	Cycles int  // Clock cycles executed.
	Halted bool // Set by HLT.

	interruptDelay   int  // Instructions before EI takes effect.
	interruptPending bool // Interrupt requested.
	interruptVector  byte // Opcode to execute on interrupt.
}

// NewCpu creates a new CPU attached to a memory.
func NewCpu(mem Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
	}

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state. The memory is not modified.
func (cpu *Cpu) Reset() {
	mem := cpu.Memory
	verbose := cpu.Verbose
	*cpu = Cpu{
		Verbose: verbose,
		Memory:  mem,
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	flags := []byte("szapc")
	for n, set := range []bool{cpu.Sign, cpu.Zero, cpu.AuxCarry, cpu.Parity, cpu.Carry} {
		if set {
			flags[n] -= 'a' - 'A'
		}
	}

	text += fmt.Sprintf("   a: %02x  flags: %s\n", cpu.A, flags)
	text += fmt.Sprintf("  bc: %04x\n", cpu.BC())
	text += fmt.Sprintf("  de: %04x\n", cpu.DE())
	text += fmt.Sprintf("  hl: %04x\n", cpu.HL())
	text += fmt.Sprintf("  sp: %04x\n", cpu.Sp)
	text += fmt.Sprintf("  pc: %04x\n", cpu.Pc)
	text += fmt.Sprintf("  ei: %v  halt: %v  cycles: %d\n", cpu.InterruptEnable, cpu.Halted, cpu.Cycles)

	return
}

// BC returns the BC register pair.
func (cpu *Cpu) BC() uint16 { return uint16(cpu.B)<<8 | uint16(cpu.C) }

// DE returns the DE register pair.
func (cpu *Cpu) DE() uint16 { return uint16(cpu.D)<<8 | uint16(cpu.E) }

// HL returns the HL register pair.
func (cpu *Cpu) HL() uint16 { return uint16(cpu.H)<<8 | uint16(cpu.L) }

// SetBC sets the BC register pair.
func (cpu *Cpu) SetBC(value uint16) { cpu.B, cpu.C = byte(value>>8), byte(value) }

// SetDE sets the DE register pair.
func (cpu *Cpu) SetDE(value uint16) { cpu.D, cpu.E = byte(value>>8), byte(value) }

// SetHL sets the HL register pair.
func (cpu *Cpu) SetHL(value uint16) { cpu.H, cpu.L = byte(value>>8), byte(value) }

// Flags returns the processor status byte.
func (cpu *Cpu) Flags() (flags byte) {
	flags = FLAG_ONE
	if cpu.Sign {
		flags |= FLAG_SIGN
	}
	if cpu.Zero {
		flags |= FLAG_ZERO
	}
	if cpu.AuxCarry {
		flags |= FLAG_AUX_CARRY
	}
	if cpu.Parity {
		flags |= FLAG_PARITY
	}
	if cpu.Carry {
		flags |= FLAG_CARRY
	}
	return
}

// SetFlags sets the condition flags from a processor status byte.
func (cpu *Cpu) SetFlags(flags byte) {
	cpu.Sign = flags&FLAG_SIGN != 0
	cpu.Zero = flags&FLAG_ZERO != 0
	cpu.AuxCarry = flags&FLAG_AUX_CARRY != 0
	cpu.Parity = flags&FLAG_PARITY != 0
	cpu.Carry = flags&FLAG_CARRY != 0
}

// PSW returns the accumulator and processor status word.
func (cpu *Cpu) PSW() uint16 { return uint16(cpu.A)<<8 | uint16(cpu.Flags()) }

// SetPSW sets the accumulator and processor status word.
func (cpu *Cpu) SetPSW(value uint16) {
	cpu.A = byte(value >> 8)
	cpu.SetFlags(byte(value))
}

// reg returns the register selected by an opcode's 3-bit register field,
// where 6 selects the memory at HL.
func (cpu *Cpu) reg(index byte) byte {
	switch index & 7 {
	case 0:
		return cpu.B
	case 1:
		return cpu.C
	case 2:
		return cpu.D
	case 3:
		return cpu.E
	case 4:
		return cpu.H
	case 5:
		return cpu.L
	case 6:
		return cpu.Memory.Load(cpu.HL())
	default:
		return cpu.A
	}
}

// setReg sets the register selected by an opcode's 3-bit register field.
func (cpu *Cpu) setReg(index byte, value byte) {
	switch index & 7 {
	case 0:
		cpu.B = value
	case 1:
		cpu.C = value
	case 2:
		cpu.D = value
	case 3:
		cpu.E = value
	case 4:
		cpu.H = value
	case 5:
		cpu.L = value
	case 6:
		cpu.Memory.Store(cpu.HL(), value)
	default:
		cpu.A = value
	}
}

// pair returns the register pair selected by an opcode's 2-bit pair field,
// where 3 selects SP.
func (cpu *Cpu) pair(index byte) uint16 {
	switch index & 3 {
	case 0:
		return cpu.BC()
	case 1:
		return cpu.DE()
	case 2:
		return cpu.HL()
	default:
		return cpu.Sp
	}
}

// setPair sets the register pair selected by an opcode's 2-bit pair field.
func (cpu *Cpu) setPair(index byte, value uint16) {
	switch index & 3 {
	case 0:
		cpu.SetBC(value)
	case 1:
		cpu.SetDE(value)
	case 2:
		cpu.SetHL(value)
	default:
		cpu.Sp = value
	}
}

// condition evaluates an opcode's 3-bit condition field:
// NZ, Z, NC, C, PO, PE, P, M.
func (cpu *Cpu) condition(index byte) (ok bool) {
	switch index>>1&3 {
	case 0:
		ok = cpu.Zero
	case 1:
		ok = cpu.Carry
	case 2:
		ok = cpu.Parity
	default:
		ok = cpu.Sign
	}
	if index&1 == 0 {
		ok = !ok
	}
	return
}

func (cpu *Cpu) fetch() (value byte) {
	value = cpu.Memory.Load(cpu.Pc)
	cpu.Pc++
	return
}

func (cpu *Cpu) fetchWord() (value uint16) {
	value = cpu.Memory.LoadWord(cpu.Pc)
	cpu.Pc += 2
	return
}

func (cpu *Cpu) setSZP(value byte) {
	cpu.Sign = value&0x80 != 0
	cpu.Zero = value == 0
	cpu.Parity = parityTable[value]
}

// add returns A + value + carry, setting all flags.
func (cpu *Cpu) add(value byte, carry bool) byte {
	sum := uint16(cpu.A) + uint16(value)
	if carry {
		sum++
	}
	carries := sum ^ uint16(cpu.A) ^ uint16(value)

	cpu.Carry = carries&0x100 != 0
	cpu.AuxCarry = carries&0x10 != 0
	cpu.setSZP(byte(sum))

	return byte(sum)
}

// sub returns A - value - borrow, setting all flags. Carry is the borrow.
func (cpu *Cpu) sub(value byte, borrow bool) byte {
	diff := cpu.add(^value, !borrow)
	cpu.Carry = !cpu.Carry
	return diff
}

func (cpu *Cpu) inr(value byte) byte {
	value++
	cpu.AuxCarry = value&0x0f == 0
	cpu.setSZP(value)
	return value
}

func (cpu *Cpu) dcr(value byte) byte {
	value--
	cpu.AuxCarry = value&0x0f != 0x0f
	cpu.setSZP(value)
	return value
}

// alu performs the accumulator operation selected by an opcode's 3-bit
// operation field: ADD, ADC, SUB, SBB, ANA, XRA, ORA, CMP.
func (cpu *Cpu) alu(op byte, value byte) {
	switch op & 7 {
	case 0:
		cpu.A = cpu.add(value, false)
	case 1:
		cpu.A = cpu.add(value, cpu.Carry)
	case 2:
		cpu.A = cpu.sub(value, false)
	case 3:
		cpu.A = cpu.sub(value, cpu.Carry)
	case 4:
		cpu.AuxCarry = (cpu.A|value)&0x08 != 0
		cpu.A &= value
		cpu.Carry = false
		cpu.setSZP(cpu.A)
	case 5:
		cpu.A ^= value
		cpu.AuxCarry = false
		cpu.Carry = false
		cpu.setSZP(cpu.A)
	case 6:
		cpu.A |= value
		cpu.AuxCarry = false
		cpu.Carry = false
		cpu.setSZP(cpu.A)
	default:
		cpu.sub(value, false)
	}
}

// daa adjusts A to packed BCD after an addition.
func (cpu *Cpu) daa() {
	carry := cpu.Carry
	lsb := cpu.A & 0x0f
	msb := cpu.A >> 4

	var correction byte
	if cpu.AuxCarry || lsb > 9 {
		correction |= 0x06
	}
	if cpu.Carry || msb > 9 || (msb >= 9 && lsb > 9) {
		correction |= 0x60
		carry = true
	}

	cpu.A = cpu.add(correction, false)
	cpu.Carry = carry
}

func (cpu *Cpu) dad(value uint16) {
	sum := uint32(cpu.HL()) + uint32(value)
	cpu.Carry = sum > 0xffff
	cpu.SetHL(uint16(sum))
}

func (cpu *Cpu) jump(ok bool) {
	addr := cpu.fetchWord()
	if ok {
		cpu.Pc = addr
	}
}

func (cpu *Cpu) call(ok bool) {
	addr := cpu.fetchWord()
	if ok {
		cpu.Cycles += 6
		cpu.push(cpu.Pc)
		cpu.Pc = addr
	}
}

func (cpu *Cpu) ret(ok bool) {
	if ok {
		cpu.Cycles += 6
		cpu.Pc = cpu.pop()
	}
}

// Interrupt requests an interrupt. The vector is executed as an opcode,
// normally an RST, once interrupts are enabled.
func (cpu *Cpu) Interrupt(vector byte) {
	cpu.interruptPending = true
	cpu.interruptVector = vector
}

// Step services a pending interrupt, or fetches and executes one opcode.
// A halted CPU only steps to service an interrupt.
func (cpu *Cpu) Step() {
	if cpu.interruptPending && cpu.InterruptEnable && cpu.interruptDelay == 0 {
		if cpu.Verbose {
			log.Printf("%04x: interrupt %v", cpu.Pc, Raw(cpu.interruptVector))
		}
		cpu.interruptPending = false
		cpu.InterruptEnable = false
		cpu.Halted = false
		cpu.Exec(cpu.interruptVector)
		return
	}

	if cpu.Halted {
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Pc, Raw(cpu.Memory.Load(cpu.Pc)))
	}

	cpu.Exec(cpu.fetch())
}

// Run executes until halted.
func (cpu *Cpu) Run() {
	for !cpu.Halted {
		cpu.Step()
	}
}

// Exec executes a single opcode. Any operand bytes are fetched from the
// program counter.
func (cpu *Cpu) Exec(op byte) {
	cpu.Cycles += opcodeTable[op].cycles

	if cpu.interruptDelay > 0 {
		cpu.interruptDelay--
	}

	switch Raw(op) {
	case NOP, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
	case HLT:
		cpu.Halted = true

	case LXI_B, LXI_D, LXI_H, LXI_SP:
		cpu.setPair(op>>4, cpu.fetchWord())
	case INX_B, INX_D, INX_H, INX_SP:
		cpu.setPair(op>>4, cpu.pair(op>>4)+1)
	case DCX_B, DCX_D, DCX_H, DCX_SP:
		cpu.setPair(op>>4, cpu.pair(op>>4)-1)
	case DAD_B, DAD_D, DAD_H, DAD_SP:
		cpu.dad(cpu.pair(op >> 4))
	case STAX_B, STAX_D:
		cpu.Memory.Store(cpu.pair(op>>4), cpu.A)
	case LDAX_B, LDAX_D:
		cpu.A = cpu.Memory.Load(cpu.pair(op >> 4))
	case SHLD:
		cpu.Memory.StoreWord(cpu.fetchWord(), cpu.HL())
	case LHLD:
		cpu.SetHL(cpu.Memory.LoadWord(cpu.fetchWord()))
	case STA:
		cpu.Memory.Store(cpu.fetchWord(), cpu.A)
	case LDA:
		cpu.A = cpu.Memory.Load(cpu.fetchWord())

	case INR_B, INR_C, INR_D, INR_E, INR_H, INR_L, INR_M, INR_A:
		cpu.setReg(op>>3, cpu.inr(cpu.reg(op>>3)))
	case DCR_B, DCR_C, DCR_D, DCR_E, DCR_H, DCR_L, DCR_M, DCR_A:
		cpu.setReg(op>>3, cpu.dcr(cpu.reg(op>>3)))
	case MVI_B, MVI_C, MVI_D, MVI_E, MVI_H, MVI_L, MVI_M, MVI_A:
		cpu.setReg(op>>3, cpu.fetch())

	case RLC:
		cpu.Carry = cpu.A&0x80 != 0
		cpu.A = cpu.A<<1 | cpu.A>>7
	case RRC:
		cpu.Carry = cpu.A&0x01 != 0
		cpu.A = cpu.A>>1 | cpu.A<<7
	case RAL:
		carry := cpu.Carry
		cpu.Carry = cpu.A&0x80 != 0
		cpu.A <<= 1
		if carry {
			cpu.A |= 0x01
		}
	case RAR:
		carry := cpu.Carry
		cpu.Carry = cpu.A&0x01 != 0
		cpu.A >>= 1
		if carry {
			cpu.A |= 0x80
		}
	case DAA:
		cpu.daa()
	case CMA:
		cpu.A = ^cpu.A
	case STC:
		cpu.Carry = true
	case CMC:
		cpu.Carry = !cpu.Carry

	case MOV_B_B, MOV_B_C, MOV_B_D, MOV_B_E, MOV_B_H, MOV_B_L, MOV_B_M, MOV_B_A,
		MOV_C_B, MOV_C_C, MOV_C_D, MOV_C_E, MOV_C_H, MOV_C_L, MOV_C_M, MOV_C_A,
		MOV_D_B, MOV_D_C, MOV_D_D, MOV_D_E, MOV_D_H, MOV_D_L, MOV_D_M, MOV_D_A,
		MOV_E_B, MOV_E_C, MOV_E_D, MOV_E_E, MOV_E_H, MOV_E_L, MOV_E_M, MOV_E_A,
		MOV_H_B, MOV_H_C, MOV_H_D, MOV_H_E, MOV_H_H, MOV_H_L, MOV_H_M, MOV_H_A,
		MOV_L_B, MOV_L_C, MOV_L_D, MOV_L_E, MOV_L_H, MOV_L_L, MOV_L_M, MOV_L_A,
		MOV_M_B, MOV_M_C, MOV_M_D, MOV_M_E, MOV_M_H, MOV_M_L, MOV_M_A,
		MOV_A_B, MOV_A_C, MOV_A_D, MOV_A_E, MOV_A_H, MOV_A_L, MOV_A_M, MOV_A_A:
		cpu.setReg(op>>3, cpu.reg(op))

	case ADD_B, ADD_C, ADD_D, ADD_E, ADD_H, ADD_L, ADD_M, ADD_A,
		ADC_B, ADC_C, ADC_D, ADC_E, ADC_H, ADC_L, ADC_M, ADC_A,
		SUB_B, SUB_C, SUB_D, SUB_E, SUB_H, SUB_L, SUB_M, SUB_A,
		SBB_B, SBB_C, SBB_D, SBB_E, SBB_H, SBB_L, SBB_M, SBB_A,
		ANA_B, ANA_C, ANA_D, ANA_E, ANA_H, ANA_L, ANA_M, ANA_A,
		XRA_B, XRA_C, XRA_D, XRA_E, XRA_H, XRA_L, XRA_M, XRA_A,
		ORA_B, ORA_C, ORA_D, ORA_E, ORA_H, ORA_L, ORA_M, ORA_A,
		CMP_B, CMP_C, CMP_D, CMP_E, CMP_H, CMP_L, CMP_M, CMP_A:
		cpu.alu(op>>3, cpu.reg(op))
	case ADI, ACI, SUI, SBI, ANI, XRI, ORI, CPI:
		cpu.alu(op>>3, cpu.fetch())

	case RNZ, RZ, RNC, RC, RPO, RPE, RP, RM:
		cpu.ret(cpu.condition(op >> 3))
	case JNZ, JZ, JNC, JC, JPO, JPE, JP, JM:
		cpu.jump(cpu.condition(op >> 3))
	case CNZ, CZ, CNC, CC, CPO, CPE, CP, CM:
		cpu.call(cpu.condition(op >> 3))
	case RET, 0xd9:
		cpu.Pc = cpu.pop()
	case JMP, 0xcb:
		cpu.jump(true)
	case CALL, 0xdd, 0xed, 0xfd:
		addr := cpu.fetchWord()
		cpu.push(cpu.Pc)
		cpu.Pc = addr
	case RST_0, RST_1, RST_2, RST_3, RST_4, RST_5, RST_6, RST_7:
		cpu.push(cpu.Pc)
		cpu.Pc = uint16(op & 0x38)

	case PUSH_B, PUSH_D, PUSH_H:
		cpu.push(cpu.pair(op >> 4))
	case PUSH_PSW:
		cpu.push(cpu.PSW())
	case POP_B, POP_D, POP_H:
		cpu.setPair(op>>4, cpu.pop())
	case POP_PSW:
		cpu.SetPSW(cpu.pop())
	case XTHL:
		hl := cpu.HL()
		cpu.SetHL(cpu.Memory.LoadWord(cpu.Sp))
		cpu.Memory.StoreWord(cpu.Sp, hl)
	case SPHL:
		cpu.Sp = cpu.HL()
	case PCHL:
		cpu.Pc = cpu.HL()
	case XCHG:
		cpu.D, cpu.E, cpu.H, cpu.L = cpu.H, cpu.L, cpu.D, cpu.E

	case IN:
		cpu.A = cpu.Memory.In(cpu.fetch())
	case OUT:
		cpu.Memory.Out(cpu.fetch(), cpu.A)
	case DI:
		cpu.InterruptEnable = false
	case EI:
		cpu.InterruptEnable = true
		cpu.interruptDelay = 1
	}
}
