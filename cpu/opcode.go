package cpu

import (
	"strings"
)

// Raw is the tag-only form of an opcode. The value of a Raw is its opcode byte.
type Raw uint8

//go:generate go tool stringer -type=Raw

// Opcode tags. The twelve reserved byte values (0x08, 0x10, 0x18, 0x20, 0x28,
// 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd) have no tag of their own and
// decode to NOP.
const (
	NOP      = Raw(0x00)
	LXI_B    = Raw(0x01)
	STAX_B   = Raw(0x02)
	INX_B    = Raw(0x03)
	INR_B    = Raw(0x04)
	DCR_B    = Raw(0x05)
	MVI_B    = Raw(0x06)
	RLC      = Raw(0x07)
	DAD_B    = Raw(0x09)
	LDAX_B   = Raw(0x0a)
	DCX_B    = Raw(0x0b)
	INR_C    = Raw(0x0c)
	DCR_C    = Raw(0x0d)
	MVI_C    = Raw(0x0e)
	RRC      = Raw(0x0f)
	LXI_D    = Raw(0x11)
	STAX_D   = Raw(0x12)
	INX_D    = Raw(0x13)
	INR_D    = Raw(0x14)
	DCR_D    = Raw(0x15)
	MVI_D    = Raw(0x16)
	RAL      = Raw(0x17)
	DAD_D    = Raw(0x19)
	LDAX_D   = Raw(0x1a)
	DCX_D    = Raw(0x1b)
	INR_E    = Raw(0x1c)
	DCR_E    = Raw(0x1d)
	MVI_E    = Raw(0x1e)
	RAR      = Raw(0x1f)
	LXI_H    = Raw(0x21)
	SHLD     = Raw(0x22)
	INX_H    = Raw(0x23)
	INR_H    = Raw(0x24)
	DCR_H    = Raw(0x25)
	MVI_H    = Raw(0x26)
	DAA      = Raw(0x27)
	DAD_H    = Raw(0x29)
	LHLD     = Raw(0x2a)
	DCX_H    = Raw(0x2b)
	INR_L    = Raw(0x2c)
	DCR_L    = Raw(0x2d)
	MVI_L    = Raw(0x2e)
	CMA      = Raw(0x2f)
	LXI_SP   = Raw(0x31)
	STA      = Raw(0x32)
	INX_SP   = Raw(0x33)
	INR_M    = Raw(0x34)
	DCR_M    = Raw(0x35)
	MVI_M    = Raw(0x36)
	STC      = Raw(0x37)
	DAD_SP   = Raw(0x39)
	LDA      = Raw(0x3a)
	DCX_SP   = Raw(0x3b)
	INR_A    = Raw(0x3c)
	DCR_A    = Raw(0x3d)
	MVI_A    = Raw(0x3e)
	CMC      = Raw(0x3f)
	MOV_B_B  = Raw(0x40)
	MOV_B_C  = Raw(0x41)
	MOV_B_D  = Raw(0x42)
	MOV_B_E  = Raw(0x43)
	MOV_B_H  = Raw(0x44)
	MOV_B_L  = Raw(0x45)
	MOV_B_M  = Raw(0x46)
	MOV_B_A  = Raw(0x47)
	MOV_C_B  = Raw(0x48)
	MOV_C_C  = Raw(0x49)
	MOV_C_D  = Raw(0x4a)
	MOV_C_E  = Raw(0x4b)
	MOV_C_H  = Raw(0x4c)
	MOV_C_L  = Raw(0x4d)
	MOV_C_M  = Raw(0x4e)
	MOV_C_A  = Raw(0x4f)
	MOV_D_B  = Raw(0x50)
	MOV_D_C  = Raw(0x51)
	MOV_D_D  = Raw(0x52)
	MOV_D_E  = Raw(0x53)
	MOV_D_H  = Raw(0x54)
	MOV_D_L  = Raw(0x55)
	MOV_D_M  = Raw(0x56)
	MOV_D_A  = Raw(0x57)
	MOV_E_B  = Raw(0x58)
	MOV_E_C  = Raw(0x59)
	MOV_E_D  = Raw(0x5a)
	MOV_E_E  = Raw(0x5b)
	MOV_E_H  = Raw(0x5c)
	MOV_E_L  = Raw(0x5d)
	MOV_E_M  = Raw(0x5e)
	MOV_E_A  = Raw(0x5f)
	MOV_H_B  = Raw(0x60)
	MOV_H_C  = Raw(0x61)
	MOV_H_D  = Raw(0x62)
	MOV_H_E  = Raw(0x63)
	MOV_H_H  = Raw(0x64)
	MOV_H_L  = Raw(0x65)
	MOV_H_M  = Raw(0x66)
	MOV_H_A  = Raw(0x67)
	MOV_L_B  = Raw(0x68)
	MOV_L_C  = Raw(0x69)
	MOV_L_D  = Raw(0x6a)
	MOV_L_E  = Raw(0x6b)
	MOV_L_H  = Raw(0x6c)
	MOV_L_L  = Raw(0x6d)
	MOV_L_M  = Raw(0x6e)
	MOV_L_A  = Raw(0x6f)
	MOV_M_B  = Raw(0x70)
	MOV_M_C  = Raw(0x71)
	MOV_M_D  = Raw(0x72)
	MOV_M_E  = Raw(0x73)
	MOV_M_H  = Raw(0x74)
	MOV_M_L  = Raw(0x75)
	HLT      = Raw(0x76)
	MOV_M_A  = Raw(0x77)
	MOV_A_B  = Raw(0x78)
	MOV_A_C  = Raw(0x79)
	MOV_A_D  = Raw(0x7a)
	MOV_A_E  = Raw(0x7b)
	MOV_A_H  = Raw(0x7c)
	MOV_A_L  = Raw(0x7d)
	MOV_A_M  = Raw(0x7e)
	MOV_A_A  = Raw(0x7f)
	ADD_B    = Raw(0x80)
	ADD_C    = Raw(0x81)
	ADD_D    = Raw(0x82)
	ADD_E    = Raw(0x83)
	ADD_H    = Raw(0x84)
	ADD_L    = Raw(0x85)
	ADD_M    = Raw(0x86)
	ADD_A    = Raw(0x87)
	ADC_B    = Raw(0x88)
	ADC_C    = Raw(0x89)
	ADC_D    = Raw(0x8a)
	ADC_E    = Raw(0x8b)
	ADC_H    = Raw(0x8c)
	ADC_L    = Raw(0x8d)
	ADC_M    = Raw(0x8e)
	ADC_A    = Raw(0x8f)
	SUB_B    = Raw(0x90)
	SUB_C    = Raw(0x91)
	SUB_D    = Raw(0x92)
	SUB_E    = Raw(0x93)
	SUB_H    = Raw(0x94)
	SUB_L    = Raw(0x95)
	SUB_M    = Raw(0x96)
	SUB_A    = Raw(0x97)
	SBB_B    = Raw(0x98)
	SBB_C    = Raw(0x99)
	SBB_D    = Raw(0x9a)
	SBB_E    = Raw(0x9b)
	SBB_H    = Raw(0x9c)
	SBB_L    = Raw(0x9d)
	SBB_M    = Raw(0x9e)
	SBB_A    = Raw(0x9f)
	ANA_B    = Raw(0xa0)
	ANA_C    = Raw(0xa1)
	ANA_D    = Raw(0xa2)
	ANA_E    = Raw(0xa3)
	ANA_H    = Raw(0xa4)
	ANA_L    = Raw(0xa5)
	ANA_M    = Raw(0xa6)
	ANA_A    = Raw(0xa7)
	XRA_B    = Raw(0xa8)
	XRA_C    = Raw(0xa9)
	XRA_D    = Raw(0xaa)
	XRA_E    = Raw(0xab)
	XRA_H    = Raw(0xac)
	XRA_L    = Raw(0xad)
	XRA_M    = Raw(0xae)
	XRA_A    = Raw(0xaf)
	ORA_B    = Raw(0xb0)
	ORA_C    = Raw(0xb1)
	ORA_D    = Raw(0xb2)
	ORA_E    = Raw(0xb3)
	ORA_H    = Raw(0xb4)
	ORA_L    = Raw(0xb5)
	ORA_M    = Raw(0xb6)
	ORA_A    = Raw(0xb7)
	CMP_B    = Raw(0xb8)
	CMP_C    = Raw(0xb9)
	CMP_D    = Raw(0xba)
	CMP_E    = Raw(0xbb)
	CMP_H    = Raw(0xbc)
	CMP_L    = Raw(0xbd)
	CMP_M    = Raw(0xbe)
	CMP_A    = Raw(0xbf)
	RNZ      = Raw(0xc0)
	POP_B    = Raw(0xc1)
	JNZ      = Raw(0xc2)
	JMP      = Raw(0xc3)
	CNZ      = Raw(0xc4)
	PUSH_B   = Raw(0xc5)
	ADI      = Raw(0xc6)
	RST_0    = Raw(0xc7)
	RZ       = Raw(0xc8)
	RET      = Raw(0xc9)
	JZ       = Raw(0xca)
	CZ       = Raw(0xcc)
	CALL     = Raw(0xcd)
	ACI      = Raw(0xce)
	RST_1    = Raw(0xcf)
	RNC      = Raw(0xd0)
	POP_D    = Raw(0xd1)
	JNC      = Raw(0xd2)
	OUT      = Raw(0xd3)
	CNC      = Raw(0xd4)
	PUSH_D   = Raw(0xd5)
	SUI      = Raw(0xd6)
	RST_2    = Raw(0xd7)
	RC       = Raw(0xd8)
	JC       = Raw(0xda)
	IN       = Raw(0xdb)
	CC       = Raw(0xdc)
	SBI      = Raw(0xde)
	RST_3    = Raw(0xdf)
	RPO      = Raw(0xe0)
	POP_H    = Raw(0xe1)
	JPO      = Raw(0xe2)
	XTHL     = Raw(0xe3)
	CPO      = Raw(0xe4)
	PUSH_H   = Raw(0xe5)
	ANI      = Raw(0xe6)
	RST_4    = Raw(0xe7)
	RPE      = Raw(0xe8)
	PCHL     = Raw(0xe9)
	JPE      = Raw(0xea)
	XCHG     = Raw(0xeb)
	CPE      = Raw(0xec)
	XRI      = Raw(0xee)
	RST_5    = Raw(0xef)
	RP       = Raw(0xf0)
	POP_PSW  = Raw(0xf1)
	JP       = Raw(0xf2)
	DI       = Raw(0xf3)
	CP       = Raw(0xf4)
	PUSH_PSW = Raw(0xf5)
	ORI      = Raw(0xf6)
	RST_6    = Raw(0xf7)
	RM       = Raw(0xf8)
	SPHL     = Raw(0xf9)
	JM       = Raw(0xfa)
	EI       = Raw(0xfb)
	CM       = Raw(0xfc)
	CPI      = Raw(0xfe)
	RST_7    = Raw(0xff)
)

// opcodeInfo is the static description of a single opcode byte.
type opcodeInfo struct {
	width  int // Instruction width in bytes, including the opcode.
	cycles int // Base cycle cost.
}

// opcodeTable is indexed by opcode byte.
var opcodeTable = [256]opcodeInfo{
	0x00: {1, 4},
	0x01: {3, 10},
	0x02: {1, 7},
	0x03: {1, 5},
	0x04: {1, 5},
	0x05: {1, 5},
	0x06: {2, 7},
	0x07: {1, 4},
	0x08: {1, 4}, // reserved
	0x09: {1, 10},
	0x0a: {1, 7},
	0x0b: {1, 5},
	0x0c: {1, 5},
	0x0d: {1, 5},
	0x0e: {2, 7},
	0x0f: {1, 4},
	0x10: {1, 4}, // reserved
	0x11: {3, 10},
	0x12: {1, 7},
	0x13: {1, 5},
	0x14: {1, 5},
	0x15: {1, 5},
	0x16: {2, 7},
	0x17: {1, 4},
	0x18: {1, 4}, // reserved
	0x19: {1, 10},
	0x1a: {1, 7},
	0x1b: {1, 5},
	0x1c: {1, 5},
	0x1d: {1, 5},
	0x1e: {2, 7},
	0x1f: {1, 4},
	0x20: {1, 4}, // reserved
	0x21: {3, 10},
	0x22: {3, 16},
	0x23: {1, 5},
	0x24: {1, 5},
	0x25: {1, 5},
	0x26: {2, 7},
	0x27: {1, 4},
	0x28: {1, 4}, // reserved
	0x29: {1, 10},
	0x2a: {3, 16},
	0x2b: {1, 5},
	0x2c: {1, 5},
	0x2d: {1, 5},
	0x2e: {2, 7},
	0x2f: {1, 4},
	0x30: {1, 4}, // reserved
	0x31: {3, 10},
	0x32: {3, 13},
	0x33: {1, 5},
	0x34: {1, 10},
	0x35: {1, 10},
	0x36: {2, 10},
	0x37: {1, 4},
	0x38: {1, 4}, // reserved
	0x39: {1, 10},
	0x3a: {3, 13},
	0x3b: {1, 5},
	0x3c: {1, 5},
	0x3d: {1, 5},
	0x3e: {2, 7},
	0x3f: {1, 4},
	0x40: {1, 5},
	0x41: {1, 5},
	0x42: {1, 5},
	0x43: {1, 5},
	0x44: {1, 5},
	0x45: {1, 5},
	0x46: {1, 7},
	0x47: {1, 5},
	0x48: {1, 5},
	0x49: {1, 5},
	0x4a: {1, 5},
	0x4b: {1, 5},
	0x4c: {1, 5},
	0x4d: {1, 5},
	0x4e: {1, 7},
	0x4f: {1, 5},
	0x50: {1, 5},
	0x51: {1, 5},
	0x52: {1, 5},
	0x53: {1, 5},
	0x54: {1, 5},
	0x55: {1, 5},
	0x56: {1, 7},
	0x57: {1, 5},
	0x58: {1, 5},
	0x59: {1, 5},
	0x5a: {1, 5},
	0x5b: {1, 5},
	0x5c: {1, 5},
	0x5d: {1, 5},
	0x5e: {1, 7},
	0x5f: {1, 5},
	0x60: {1, 5},
	0x61: {1, 5},
	0x62: {1, 5},
	0x63: {1, 5},
	0x64: {1, 5},
	0x65: {1, 5},
	0x66: {1, 7},
	0x67: {1, 5},
	0x68: {1, 5},
	0x69: {1, 5},
	0x6a: {1, 5},
	0x6b: {1, 5},
	0x6c: {1, 5},
	0x6d: {1, 5},
	0x6e: {1, 7},
	0x6f: {1, 5},
	0x70: {1, 7},
	0x71: {1, 7},
	0x72: {1, 7},
	0x73: {1, 7},
	0x74: {1, 7},
	0x75: {1, 7},
	0x76: {1, 7},
	0x77: {1, 7},
	0x78: {1, 5},
	0x79: {1, 5},
	0x7a: {1, 5},
	0x7b: {1, 5},
	0x7c: {1, 5},
	0x7d: {1, 5},
	0x7e: {1, 7},
	0x7f: {1, 5},
	0x80: {1, 4},
	0x81: {1, 4},
	0x82: {1, 4},
	0x83: {1, 4},
	0x84: {1, 4},
	0x85: {1, 4},
	0x86: {1, 7},
	0x87: {1, 4},
	0x88: {1, 4},
	0x89: {1, 4},
	0x8a: {1, 4},
	0x8b: {1, 4},
	0x8c: {1, 4},
	0x8d: {1, 4},
	0x8e: {1, 7},
	0x8f: {1, 4},
	0x90: {1, 4},
	0x91: {1, 4},
	0x92: {1, 4},
	0x93: {1, 4},
	0x94: {1, 4},
	0x95: {1, 4},
	0x96: {1, 7},
	0x97: {1, 4},
	0x98: {1, 4},
	0x99: {1, 4},
	0x9a: {1, 4},
	0x9b: {1, 4},
	0x9c: {1, 4},
	0x9d: {1, 4},
	0x9e: {1, 7},
	0x9f: {1, 4},
	0xa0: {1, 4},
	0xa1: {1, 4},
	0xa2: {1, 4},
	0xa3: {1, 4},
	0xa4: {1, 4},
	0xa5: {1, 4},
	0xa6: {1, 7},
	0xa7: {1, 4},
	0xa8: {1, 4},
	0xa9: {1, 4},
	0xaa: {1, 4},
	0xab: {1, 4},
	0xac: {1, 4},
	0xad: {1, 4},
	0xae: {1, 7},
	0xaf: {1, 4},
	0xb0: {1, 4},
	0xb1: {1, 4},
	0xb2: {1, 4},
	0xb3: {1, 4},
	0xb4: {1, 4},
	0xb5: {1, 4},
	0xb6: {1, 7},
	0xb7: {1, 4},
	0xb8: {1, 4},
	0xb9: {1, 4},
	0xba: {1, 4},
	0xbb: {1, 4},
	0xbc: {1, 4},
	0xbd: {1, 4},
	0xbe: {1, 7},
	0xbf: {1, 4},
	0xc0: {1, 5},
	0xc1: {1, 10},
	0xc2: {3, 10},
	0xc3: {3, 10},
	0xc4: {3, 11},
	0xc5: {1, 11},
	0xc6: {2, 7},
	0xc7: {1, 11},
	0xc8: {1, 5},
	0xc9: {1, 10},
	0xca: {3, 10},
	0xcb: {1, 10}, // reserved
	0xcc: {3, 11},
	0xcd: {3, 17},
	0xce: {2, 7},
	0xcf: {1, 11},
	0xd0: {1, 5},
	0xd1: {1, 10},
	0xd2: {3, 10},
	0xd3: {2, 10},
	0xd4: {3, 11},
	0xd5: {1, 11},
	0xd6: {2, 7},
	0xd7: {1, 11},
	0xd8: {1, 5},
	0xd9: {1, 10}, // reserved
	0xda: {3, 10},
	0xdb: {2, 10},
	0xdc: {3, 11},
	0xdd: {1, 17}, // reserved
	0xde: {2, 7},
	0xdf: {1, 11},
	0xe0: {1, 5},
	0xe1: {1, 10},
	0xe2: {3, 10},
	0xe3: {1, 18},
	0xe4: {3, 11},
	0xe5: {1, 11},
	0xe6: {2, 7},
	0xe7: {1, 11},
	0xe8: {1, 5},
	0xe9: {1, 5},
	0xea: {3, 10},
	0xeb: {1, 4},
	0xec: {3, 11},
	0xed: {1, 17}, // reserved
	0xee: {2, 7},
	0xef: {1, 11},
	0xf0: {1, 5},
	0xf1: {1, 10},
	0xf2: {3, 10},
	0xf3: {1, 4},
	0xf4: {3, 11},
	0xf5: {1, 11},
	0xf6: {2, 7},
	0xf7: {1, 11},
	0xf8: {1, 5},
	0xf9: {1, 5},
	0xfa: {3, 10},
	0xfb: {1, 4},
	0xfc: {3, 11},
	0xfd: {1, 17}, // reserved
	0xfe: {2, 7},
	0xff: {1, 11},
}

// RawFrom converts an opcode byte to its tag. Every byte has a tag; the
// reserved bytes all map to NOP, so for them the conversion cannot be undone.
func RawFrom(b byte) Raw {
	switch b {
	case 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		// Undocumented NOP duplicates.
		return NOP
	case 0xcb, 0xd9, 0xdd, 0xed, 0xfd:
		// Undocumented JMP, RET and CALL duplicates.
		return NOP
	default:
		return Raw(b)
	}
}

// Reserved returns true if the byte is one of the undocumented opcodes.
func Reserved(b byte) bool {
	return RawFrom(b) != Raw(b)
}

// Byte returns the opcode byte for the tag.
func (raw Raw) Byte() byte {
	return byte(raw)
}

// Valid returns true if the tag names a documented opcode.
func (raw Raw) Valid() bool {
	return !Reserved(byte(raw))
}

// Width returns the instruction width, in bytes, including the opcode itself.
func (raw Raw) Width() int {
	return opcodeTable[raw].width
}

// Operands returns the number of operand bytes that follow the opcode.
func (raw Raw) Operands() int {
	return opcodeTable[raw].width - 1
}

// Cycles returns the base cycle cost of the opcode.
func (raw Raw) Cycles() int {
	return opcodeTable[raw].cycles
}

// Mnemonic returns the assembly mnemonic and any fixed register operands,
// ie "mov a m" for MOV_A_M. Reserved bytes render as "nop".
func (raw Raw) Mnemonic() string {
	name := RawFrom(byte(raw)).String()
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}
