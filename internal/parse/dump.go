package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/subcparse/internal/grammar"
)

// DumpTable renders the ACTION/GOTO table as a fixed-width grid, one row
// per state, for the --dump-table diagnostic flag: a rosed InsertTableOpts
// call over a header row of "A:<terminal>"/"G:<nonterminal>" columns.
func DumpTable(t *Table, g *grammar.Grammar) string {
	terms := append(append([]string{}, g.Terminals()...), "$")
	nonterms := g.Nonterminals()
	sort.Strings(terms)

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonterms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}

	for i := range t.Action {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, term := range terms {
			act := t.ActionFor(i, term)
			cell := ""
			switch act.Type {
			case ActionAccept:
				cell = "acc"
			case ActionReduce:
				cell = fmt.Sprintf("r%s", g.Production(act.Prod).String())
			case ActionShift:
				cell = fmt.Sprintf("s%d", act.State)
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonterms {
			cell := ""
			if target, ok := t.GotoFor(i, nt); ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
