// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package preproc implements a text to text macro preprocessor for 8080
// assembly source.
//
// It supports:
//   - '.equ NAME VALUE' equates, substituted for whole words.
//   - '.macro NAME arg...' / '.endm' macros. In a macro body, '@' is replaced
//     with a prefix unique to each expansion, for local labels.
//   - '$(expr)' compile-time integer expressions, with equates as variables.
//   - 'c' character literals, replaced by their decimal value.
//
// Each source line produces exactly one output line, so assembler line
// numbers refer to the input source. Macro expansions are written on the
// line of their invocation.
package preproc

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// MACRO_DEPTH_LIMIT is the maximum nesting of macro expansions.
const MACRO_DEPTH_LIMIT = 16

// Macro represents a macro definition.
type Macro struct {
	LineNo int      // Line number of the first line of the macro body.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	charRegexp = regexp.MustCompile(`'\\?[^']'`)
	exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Preprocessor expands equates, macros and expressions in assembly source.
type Preprocessor struct {
	Verbose bool // If set, verbosely logs the expanded lines.

	Equate map[string]string   // Map of equates.
	Macro  map[string](*Macro) // Map of macros.

	predefine  map[string]string // Predefines
	expansions int               // Count of macro expansions.
}

// Predefine defines a new equate or redefines an existing equate.
func (pp *Preprocessor) Predefine(equ string, value string) {
	if pp.predefine == nil {
		pp.predefine = map[string]string{equ: value}
	} else {
		pp.predefine[equ] = value
	}
}

// PredefineAll predefines every equate in the sequence.
func (pp *Preprocessor) PredefineAll(defines iter.Seq2[string, string]) {
	for equ, value := range defines {
		pp.Predefine(equ, value)
	}
}

// valueOf returns the integer value of an equate, if it has one.
func valueOf(str string) (value int64, ok bool) {
	value, err := strconv.ParseInt(str, 0, 64)
	return value, err == nil
}

// eval does compile-time $(...) evaluations
func (pp *Preprocessor) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range pp.Equate {
		v, ok := valueOf(str)
		if !ok {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// charValue replaces a quoted character with its decimal value.
func charValue(word string) string {
	str := word[1 : len(word)-1]
	if str[0] == '\\' {
		str = str[1:]
		switch str {
		case "\\":
			str = "\\"
		case "n":
			str = "\n"
		case "r":
			str = "\r"
		case "t":
			str = "\t"
		case "0":
			str = "\x00"
		case "e":
			str = "\033"
		default:
			return word
		}
	} else if len(str) != 1 {
		return word
	}
	return fmt.Sprintf("%v", str[0])
}

// stripComment removes a trailing '#' or ';' comment.
func stripComment(line string) string {
	if n := strings.IndexAny(line, "#;"); n >= 0 {
		line = line[:n]
	}
	return line
}

// expandLine expands a single line into words.
func (pp *Preprocessor) expandLine(line string, lineno int, depth int) (words []string, err error) {
	// Set line number.
	pp.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = charRegexp.ReplaceAllStringFunc(line, charValue)
	line = stripComment(line)

	// Do $() evaluations
	line = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := pp.eval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := pp.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		pp.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		equate, ok := pp.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// Labels may precede a macro invocation.
	index := 0
	for index < len(words) && strings.HasSuffix(words[index], ":") {
		index++
	}
	if index == len(words) {
		return
	}

	name := words[index]
	macro, ok := pp.Macro[name]
	if !ok {
		return
	}

	if depth >= MACRO_DEPTH_LIMIT {
		err = ErrMacroRecursion
		return
	}

	args := words[index+1:]
	if len(args) != len(macro.Args) {
		err = ErrMacroSyntax
		return
	}

	// Turn args into equs
	old_equate := maps.Clone(pp.Equate)
	for n, arg := range macro.Args {
		pp.Equate[arg] = args[n]
	}
	defer func() { pp.Equate = old_equate }()

	pp.expansions++
	prefix := fmt.Sprintf("%v_%v_", name, pp.expansions)

	words = words[:index]
	for n, line := range macro.Lines {
		lineno := macro.LineNo + n

		line = strings.ReplaceAll(line, "@", prefix)
		var expanded []string
		expanded, err = pp.expandLine(line, lineno, depth+1)
		if err != nil {
			err = &ErrMacro{Macro: name, Line: lineno, Err: err}
			return
		}
		words = append(words, expanded...)
	}

	return
}

// Process preprocesses an input stream, returning the expanded source text.
func (pp *Preprocessor) Process(input io.Reader) (text string, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	pp.Macro = make(map[string](*Macro))
	pp.Equate = maps.Clone(sysEquate)
	for attr, val := range pp.predefine {
		pp.Equate[attr] = val
	}
	pp.expansions = 0

	var out strings.Builder
	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		words := strings.Fields(strings.ReplaceAll(stripComment(line), ",", " "))

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := pp.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
				Args:   words[2:],
			}
			pp.Macro[words[1]] = macro
			out.WriteString("\n")
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			out.WriteString("\n")
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			out.WriteString("\n")
			continue
		}

		words, err = pp.expandLine(line, lineno, 0)
		if err != nil {
			return
		}

		expanded := strings.Join(words, " ")
		if pp.Verbose {
			log.Printf("%v: %v", lineno, expanded)
		}

		out.WriteString(expanded)
		out.WriteString("\n")
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	text = out.String()
	return
}
