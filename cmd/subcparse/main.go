/*
Subcparse parses a subC source file and prints the reduction trace its
LALR(1) table-driven parser performs.

Usage:

	subcparse [flags] <source-file>

The flags are:

	-v, --version
		Print the current version and exit.

	--dump-table
		Print the constructed ACTION/GOTO table to standard error before
		parsing, then continue parsing as normal.

	--trace
		Print the token stream to standard error before parsing, then
		print one UUID-tagged line per shift/reduce/goto step as parsing
		proceeds.

There is no AST construction, no semantic analysis, and no code
generation: the output is exactly the sequence of grammar reductions the
parser performed, one per line, in the order it performed them.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/subcparse/internal/lex"
	"github.com/dekarrin/subcparse/internal/parse"
	"github.com/dekarrin/subcparse/internal/subc"
	"github.com/dekarrin/subcparse/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates the source parsed to completion.
	ExitSuccess = iota

	// ExitFailure is returned for any ordinary failure: a bad command line,
	// an unreadable source file, a lex error, or a syntax error.
	ExitFailure

	// ExitInternalError is returned when the grammar itself fails to
	// construct: an unresolved shift/reduce or reduce/reduce conflict. This
	// is never a property of the input source; it indicates a defect in the
	// grammar or tables. A missing GOTO entry during parsing is reported like
	// any other parse failure and exits with ExitFailure.
	ExitInternalError
)

var (
	returnCode int   = ExitSuccess
	flagVer    *bool = pflag.BoolP("version", "v", false, "Print the current version and exit")
	dumpTable  *bool = pflag.Bool("dump-table", false, "Print the ACTION/GOTO table to stderr before parsing")
	traceToks  *bool = pflag.Bool("trace", false, "Print the token stream to stderr before parsing")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVer {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: subcparse [flags] <source-file>")
		returnCode = ExitFailure
		return
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read input file: %s\n", err.Error())
		returnCode = ExitFailure
		return
	}

	g, err := subc.Grammar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		returnCode = ExitInternalError
		return
	}

	tbl, err := parse.Build(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		returnCode = ExitInternalError
		return
	}
	if *dumpTable {
		fmt.Fprintln(os.Stderr, parse.DumpTable(tbl, g))
	}

	toks, lexErr := lex.New(string(src)).Tokenize()
	if *traceToks {
		if str, ok := toks.(fmt.Stringer); ok {
			fmt.Fprintln(os.Stderr, str.String())
		}
	}
	if lexErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", lexErr.Error())
		returnCode = ExitFailure
		return
	}

	var traceFn parse.TraceFunc
	if *traceToks {
		traceFn = func(line string) { fmt.Fprintln(os.Stderr, line) }
	}
	reductions, parseErr := parse.Parse(tbl, g, toks, traceFn)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", parseErr.Error())
		returnCode = ExitFailure
		return
	}

	fmt.Println(parse.FormatTrace(reductions))
}
