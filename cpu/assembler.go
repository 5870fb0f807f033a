// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// word is a single source token and the line it came from.
type word struct {
	text   string
	lineno int
}

// Assembler is a two pass assembler for the 8080.
//
// The first pass emits opcodes as mnemonics are scanned, recording the
// opcode index of every reference to a label that is not yet defined. The
// second pass patches those references once every label is known.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Opcode  []Opcode          // List of generated opcodes.
	Label   map[string]uint16 // Map of labels to addresses.

	forward map[string][]int // Map of undefined labels to referencing opcode indexes.
	words   []word           // Token stream.
	next    int              // Index of the next token to scan.
	pc      int              // Address of the next opcode.
	errs    []error          // Collected errors.
}

// Register operand names, in instruction encoding order.
var (
	regNames  = []string{"b", "c", "d", "e", "h", "l", "m", "a"}
	pairNames = []string{"b", "d", "h", "sp"}
	pswNames  = []string{"b", "d", "h", "psw"}
	rstNames  = []string{"0", "1", "2", "3", "4", "5", "6", "7"}
)

// impliedMap maps mnemonics that take no operands.
var impliedMap = map[string]Raw{
	"nop":  NOP,
	"rlc":  RLC,
	"rrc":  RRC,
	"ral":  RAL,
	"rar":  RAR,
	"daa":  DAA,
	"cma":  CMA,
	"stc":  STC,
	"cmc":  CMC,
	"hlt":  HLT,
	"ret":  RET,
	"rnz":  RNZ,
	"rz":   RZ,
	"rnc":  RNC,
	"rc":   RC,
	"rpo":  RPO,
	"rpe":  RPE,
	"rp":   RP,
	"rm":   RM,
	"xthl": XTHL,
	"pchl": PCHL,
	"xchg": XCHG,
	"sphl": SPHL,
	"di":   DI,
	"ei":   EI,
}

// data8Map maps mnemonics that take a single byte operand.
var data8Map = map[string]Raw{
	"adi": ADI,
	"aci": ACI,
	"sui": SUI,
	"sbi": SBI,
	"ani": ANI,
	"xri": XRI,
	"ori": ORI,
	"cpi": CPI,
	"in":  IN,
	"out": OUT,
}

// addressMap maps mnemonics that take an address operand.
var addressMap = map[string]Raw{
	"shld": SHLD,
	"lhld": LHLD,
	"sta":  STA,
	"lda":  LDA,
	"jmp":  JMP,
	"jnz":  JNZ,
	"jz":   JZ,
	"jnc":  JNC,
	"jc":   JC,
	"jpo":  JPO,
	"jpe":  JPE,
	"jp":   JP,
	"jm":   JM,
	"call": CALL,
	"cnz":  CNZ,
	"cz":   CZ,
	"cnc":  CNC,
	"cc":   CC,
	"cpo":  CPO,
	"cpe":  CPE,
	"cp":   CP,
	"cm":   CM,
}

// registerMap maps mnemonics that take a single register or register pair
// operand, and then the operand name to the opcode.
var registerMap = map[string]map[string]Raw{
	"ldax": {"b": LDAX_B, "d": LDAX_D},
	"stax": {"b": STAX_B, "d": STAX_D},
	"inx":  encodeOperands(pairNames, INX_B, 4),
	"dcx":  encodeOperands(pairNames, DCX_B, 4),
	"dad":  encodeOperands(pairNames, DAD_B, 4),
	"push": encodeOperands(pswNames, PUSH_B, 4),
	"pop":  encodeOperands(pswNames, POP_B, 4),
	"inr":  encodeOperands(regNames, INR_B, 3),
	"dcr":  encodeOperands(regNames, DCR_B, 3),
	"add":  encodeOperands(regNames, ADD_B, 0),
	"adc":  encodeOperands(regNames, ADC_B, 0),
	"sub":  encodeOperands(regNames, SUB_B, 0),
	"sbb":  encodeOperands(regNames, SBB_B, 0),
	"ana":  encodeOperands(regNames, ANA_B, 0),
	"xra":  encodeOperands(regNames, XRA_B, 0),
	"ora":  encodeOperands(regNames, ORA_B, 0),
	"cmp":  encodeOperands(regNames, CMP_B, 0),
	"rst":  encodeOperands(rstNames, RST_0, 3),
}

var (
	mviMap    = encodeOperands(regNames, MVI_B, 3)
	lxiMap    = encodeOperands(pairNames, LXI_B, 4)
	movDstMap = encodeOperands(regNames, MOV_B_B, 3)
	movSrcMap = encodeOperands(regNames, 0, 0)
)

// encodeOperands builds an operand map for an opcode family whose operand
// index is encoded at bit 'shift' of the opcode.
func encodeOperands(names []string, base Raw, shift int) map[string]Raw {
	ops := make(map[string]Raw, len(names))
	for n, name := range names {
		ops[name] = base + Raw(n<<shift)
	}
	return ops
}

// fail records an error against a source word.
func (asm *Assembler) fail(w word, err error) {
	err = ErrSyntax{LineNo: w.lineno, Word: w.text, Err: err}
	if asm.Verbose {
		log.Printf("asm: %v", err)
	}
	asm.errs = append(asm.errs, err)
}

// lex splits the source text into lower case words, removing comments.
func (asm *Assembler) lex(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if n := strings.IndexAny(line, "#;"); n >= 0 {
			line = line[:n]
		}
		line = strings.ReplaceAll(line, ",", " ")

		for _, text := range strings.Fields(line) {
			asm.words = append(asm.words, word{text: strings.ToLower(text), lineno: lineno})
		}
	}

	return scanner.Err()
}

// operand consumes the next word as an operand of the mnemonic.
func (asm *Assembler) operand(mnemonic word) (w word, ok bool) {
	if asm.next >= len(asm.words) {
		asm.fail(mnemonic, ErrOperandMissing)
		return
	}

	w = asm.words[asm.next]
	asm.next++
	return w, true
}

// parseNumber parses an unsigned literal of the given bit size. Literals
// are decimal, or hexadecimal, octal or binary with a 0x, 0o or 0b prefix,
// or hexadecimal with an 'h' suffix.
func parseNumber(text string, bits int) (value uint64, err error) {
	base := 10
	digits := text
	switch {
	case len(text) > 1 && strings.HasSuffix(text, "h") && text[0] >= '0' && text[0] <= '9':
		base = 16
		digits = text[:len(text)-1]
	case len(text) > 2 && text[0] == '0' && strings.ContainsRune("xob", rune(text[1])):
		base = 0
	}

	value, err = strconv.ParseUint(digits, base, bits)
	if err != nil {
		value = 0
		err = ErrParseNumber(text)
	}
	return
}

// byteOperand consumes an 8-bit literal. A malformed literal is recorded
// and assembled as 0.
func (asm *Assembler) byteOperand(mnemonic word) (value byte, ok bool) {
	w, ok := asm.operand(mnemonic)
	if !ok {
		return
	}

	v, err := parseNumber(w.text, 8)
	if err != nil {
		asm.fail(w, err)
	}
	return byte(v), true
}

// addressOperand consumes a 16-bit literal, '$' (the address of the current
// instruction), or a label. Labels that are not yet defined assemble as 0
// until linked.
func (asm *Assembler) addressOperand(mnemonic word) (addr uint16, label string, ok bool) {
	w, ok := asm.operand(mnemonic)
	if !ok {
		return
	}

	switch {
	case w.text == "$":
		addr = uint16(asm.pc)
	case w.text[0] >= '0' && w.text[0] <= '9':
		v, err := parseNumber(w.text, 16)
		if err != nil {
			asm.fail(w, err)
		}
		addr = uint16(v)
	default:
		label = w.text
		addr = asm.Label[label]
	}

	return
}

// registerOperand consumes a register name from the operand map.
func (asm *Assembler) registerOperand(mnemonic word, ops map[string]Raw) (raw Raw, ok bool) {
	w, ok := asm.operand(mnemonic)
	if !ok {
		return
	}

	raw, ok = ops[w.text]
	if !ok {
		asm.fail(w, ErrOperandUnknown)
	}
	return
}

// emit appends an opcode, advancing the program counter. A reference to a
// label that is not yet defined is recorded for linking.
func (asm *Assembler) emit(mnemonic word, start int, code Code, label string) {
	width := code.Raw().Width()
	if asm.pc+width > ADDRESS_SPACE {
		asm.fail(mnemonic, ErrProgramCounterOverflow)
		asm.pc += width
		return
	}

	if _, defined := asm.Label[label]; len(label) != 0 && !defined {
		asm.forward[label] = append(asm.forward[label], len(asm.Opcode))
	}

	op := Opcode{
		LineNo:    mnemonic.lineno,
		Addr:      uint16(asm.pc),
		Code:      code,
		LinkLabel: label,
	}
	for _, w := range asm.words[start:asm.next] {
		op.Words = append(op.Words, w.text)
	}

	if asm.Verbose {
		log.Printf("asm: %04x: %v", op.Addr, code)
	}

	asm.Opcode = append(asm.Opcode, op)
	asm.pc += width
}

// defineLabel records a label at the current program counter.
func (asm *Assembler) defineLabel(w word) {
	label := strings.TrimSuffix(w.text, ":")
	if len(label) == 0 {
		asm.fail(w, ErrLabelEmpty)
		return
	}

	_, ok := asm.Label[label]
	if ok {
		asm.fail(w, ErrLabel{Label: label, Err: ErrLabelRedefined})
		return
	}

	if asm.pc >= ADDRESS_SPACE {
		asm.fail(w, ErrLabel{Label: label, Err: ErrProgramCounterOverflow})
		return
	}

	asm.Label[label] = uint16(asm.pc)
}

// org moves the program counter forward, padding with NOPs.
func (asm *Assembler) org(mnemonic word) {
	w, ok := asm.operand(mnemonic)
	if !ok {
		return
	}

	target, err := parseNumber(w.text, 16)
	if err != nil {
		asm.fail(w, err)
		return
	}

	if int(target) < asm.pc {
		asm.fail(w, ErrProgramCounterUnderflow)
		return
	}

	for asm.pc < int(target) {
		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo: mnemonic.lineno,
			Addr:   uint16(asm.pc),
			Code:   MakeImplied(NOP),
		})
		asm.pc++
	}
}

// lxi assembles a register pair load. The value is either a single 16-bit
// operand or label, or two byte operands in (low, high) order.
func (asm *Assembler) lxi(mnemonic word, start int) {
	raw, ok := asm.registerOperand(mnemonic, lxiMap)
	if !ok {
		return
	}

	if asm.next+1 < len(asm.words) {
		_, errLo := parseNumber(asm.words[asm.next].text, 8)
		_, errHi := parseNumber(asm.words[asm.next+1].text, 8)
		if errLo == nil && errHi == nil {
			lo, _ := asm.byteOperand(mnemonic)
			hi, _ := asm.byteOperand(mnemonic)
			asm.emit(mnemonic, start, MakeData16(raw, lo, hi), "")
			return
		}
	}

	addr, label, ok := asm.addressOperand(mnemonic)
	if !ok {
		return
	}
	asm.emit(mnemonic, start, MakeAddress(raw, addr), label)
}

// mov assembles a register to register move.
func (asm *Assembler) mov(mnemonic word, start int) {
	dst, ok := asm.registerOperand(mnemonic, movDstMap)
	if !ok {
		return
	}
	src, ok := asm.registerOperand(mnemonic, movSrcMap)
	if !ok {
		return
	}

	raw := dst + src
	if raw == HLT {
		// 'mov m m' encodes as hlt.
		asm.fail(asm.words[asm.next-1], ErrOperandUnknown)
		return
	}
	asm.emit(mnemonic, start, MakeImplied(raw), "")
}

// parseWord assembles the statement starting with the word.
func (asm *Assembler) parseWord(w word) {
	start := asm.next - 1

	if strings.HasSuffix(w.text, ":") {
		asm.defineLabel(w)
		return
	}

	if raw, ok := impliedMap[w.text]; ok {
		asm.emit(w, start, MakeImplied(raw), "")
		return
	}

	if raw, ok := data8Map[w.text]; ok {
		data, ok := asm.byteOperand(w)
		if ok {
			asm.emit(w, start, MakeData8(raw, data), "")
		}
		return
	}

	if raw, ok := addressMap[w.text]; ok {
		addr, label, ok := asm.addressOperand(w)
		if ok {
			asm.emit(w, start, MakeAddress(raw, addr), label)
		}
		return
	}

	if ops, ok := registerMap[w.text]; ok {
		raw, ok := asm.registerOperand(w, ops)
		if ok {
			asm.emit(w, start, MakeImplied(raw), "")
		}
		return
	}

	switch w.text {
	case "mov":
		asm.mov(w, start)
	case "mvi":
		raw, ok := asm.registerOperand(w, mviMap)
		if !ok {
			return
		}
		data, ok := asm.byteOperand(w)
		if ok {
			asm.emit(w, start, MakeData8(raw, data), "")
		}
	case "lxi":
		asm.lxi(w, start)
	case "org":
		asm.org(w)
	default:
		asm.fail(w, ErrMnemonicUnknown)
	}
}

// link patches every forward label reference with the label's address.
func (asm *Assembler) link() {
	for _, label := range slices.Sorted(maps.Keys(asm.forward)) {
		refs := asm.forward[label]
		addr, ok := asm.Label[label]
		if !ok {
			op := asm.Opcode[refs[0]]
			asm.fail(word{text: label, lineno: op.LineNo}, ErrLabel{Label: label, Err: ErrLabelUnresolved})
			continue
		}

		for _, index := range refs {
			op := &asm.Opcode[index]
			op.Code = MakeAddress(op.Code.Raw(), addr)
		}
	}
}

// Parse assembles an input stream into a Program.
//
// Every error in the source is collected; if there are any, the returned
// error is an *ErrAssembly listing all of them and no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Opcode = asm.Opcode[:0]
	asm.Label = make(map[string]uint16)
	asm.forward = make(map[string][]int)
	asm.words = nil
	asm.next = 0
	asm.pc = 0
	asm.errs = nil

	err = asm.lex(input)
	if err != nil {
		return
	}

	for asm.next < len(asm.words) {
		w := asm.words[asm.next]
		asm.next++
		asm.parseWord(w)
	}

	asm.link()

	if len(asm.errs) != 0 {
		err = &ErrAssembly{Errs: slices.Clone(asm.errs)}
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Labels:  maps.Clone(asm.Label),
	}

	return
}

// Tokenize assembles source text into Codes.
func Tokenize(src string) (codes []Code, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(src))
	if err != nil {
		return
	}

	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}

	return
}
