// Command vmirdump is an interactive REPL over the function-body
// builder: each line names an opcode and its raw record arguments (or a
// handful of bookkeeping commands), and the print command shows the
// function's disassembly so far. It exists to poke at the builder by hand
// without writing a Go test for every scenario.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/tools/container/intsets"

	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/build"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/printer"
	"github.com/vmir-go/vmir/valuetab"
)

// opcodeNames maps a REPL command's opcode word to the record code it
// builds. Names follow the lowercase-hyphenated spelling of the
// bitcode.Opcode constants.
var opcodeNames = map[string]bitcode.Opcode{
	"declare-blocks":   bitcode.DeclareBlocks,
	"ret":              bitcode.InstRet,
	"binop":            bitcode.InstBinop,
	"cast":             bitcode.InstCast,
	"load":             bitcode.InstLoad,
	"load-atomic":      bitcode.InstLoadAtomic,
	"store":            bitcode.InstStore,
	"store-old":        bitcode.InstStoreOld,
	"store-atomic":     bitcode.InstStoreAtomic,
	"store-atomic-old": bitcode.InstStoreAtomicOld,
	"gep-old":          bitcode.InstGEPOld,
	"inbounds-gep-old": bitcode.InstInboundsGEPOld,
	"gep":              bitcode.InstGEP,
	"cmp2":             bitcode.InstCmp2,
	"br":               bitcode.InstBr,
	"phi":              bitcode.InstPhi,
	"invoke":           bitcode.InstInvoke,
	"call":             bitcode.InstCall,
	"switch":           bitcode.InstSwitch,
	"alloca":           bitcode.InstAlloca,
	"unreachable":      bitcode.InstUnreachable,
	"vselect":          bitcode.InstVSelect,
	"vaarg":            bitcode.InstVAArg,
	"extractval":       bitcode.InstExtractVal,
	"insertval":        bitcode.InstInsertVal,
	"landingpad":       bitcode.InstLandingPad,
	"landingpad-old":   bitcode.InstLandingPadOld,
	"resume":           bitcode.InstResume,
}

func main() {
	log.SetPrefix("vmirdump: ")
	log.SetFlags(0)

	width := 80
	if terminal.IsTerminal(syscall.Stdout) {
		if w, _, err := terminal.GetSize(syscall.Stdout); err == nil && w > 0 {
			width = w
		}
	}

	unit := ir.NewUnit()
	var c *build.Context

	fmt.Println("vmirdump: type an opcode and its record args, or one of:")
	fmt.Println("  new-function NAME TYPEID   const TYPE BITS   temp TYPE   print   blocks   quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		words, err := shellquote.Split(scanner.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "quit", "exit":
			return

		case "new-function":
			name, typ, err := parseNewFunction(words)
			if err != nil {
				fmt.Println(err)
				continue
			}
			c = build.NewContext(unit, name, typ)

		case "const":
			id, err := parseConst(unit.Values, words)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("allocated constant v%d\n", id)

		case "temp":
			id, err := parseTemp(unit.Values, words)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("allocated temporary v%d\n", id)

		case "print":
			if c == nil {
				fmt.Println("no current function; use new-function first")
				continue
			}
			fmt.Print(printer.Function(c.Func))
			fmt.Println(strings.Repeat("-", width))

		case "blocks":
			if c == nil {
				fmt.Println("no current function; use new-function first")
				continue
			}
			printBlocks(c.Func)

		default:
			op, ok := opcodeNames[words[0]]
			if !ok {
				fmt.Printf("unknown command %q\n", words[0])
				continue
			}
			if c == nil {
				fmt.Println("no current function; use new-function first")
				continue
			}
			args, err := parseArgs(words[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := c.Handle(bitcode.Record{Op: int(op), Args: args}); err != nil {
				fmt.Println("error:", err)
			}
		}
	}
}

func parseNewFunction(words []string) (name string, typ int, err error) {
	if len(words) != 3 {
		return "", 0, fmt.Errorf("usage: new-function NAME TYPEID")
	}
	typ, err = strconv.Atoi(words[2])
	if err != nil {
		return "", 0, fmt.Errorf("bad type id %q: %w", words[2], err)
	}
	return words[1], typ, nil
}

func parseConst(values *valuetab.Table, words []string) (valuetab.ID, error) {
	if len(words) != 3 {
		return 0, fmt.Errorf("usage: const TYPE BITS")
	}
	typ, err := strconv.Atoi(words[1])
	if err != nil {
		return 0, fmt.Errorf("bad type %q: %w", words[1], err)
	}
	bits, err := strconv.ParseUint(words[2], 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad constant bits %q: %w", words[2], err)
	}
	return values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: typ, ConstBits: bits}), nil
}

func parseTemp(values *valuetab.Table, words []string) (valuetab.ID, error) {
	if len(words) != 2 {
		return 0, fmt.Errorf("usage: temp TYPE")
	}
	typ, err := strconv.Atoi(words[1])
	if err != nil {
		return 0, fmt.Errorf("bad type %q: %w", words[1], err)
	}
	return values.Alloc(valuetab.Value{Class: valuetab.Temporary, Type: typ}), nil
}

func parseArgs(words []string) ([]int64, error) {
	args := make([]int64, len(words))
	for i, w := range words {
		v, err := strconv.ParseInt(w, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad argument %q: %w", w, err)
		}
		args[i] = v
	}
	return args, nil
}

// printBlocks reports which of the function's declared blocks are sealed
// (have a terminator appended) versus still open, using a sparse int set
// rather than a bool slice since most functions only leave the last
// block unsealed at any point during construction.
func printBlocks(fn *ir.Function) {
	var sealed intsets.Sparse
	for _, blk := range fn.Blocks {
		if blk.Sealed {
			sealed.Insert(blk.ID)
		}
	}
	fmt.Printf("%d block(s), %d sealed: %s\n", len(fn.Blocks), sealed.Len(), sealed.String())
}
