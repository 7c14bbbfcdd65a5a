package parse

import (
	"strings"

	"github.com/dekarrin/subcparse/internal/lex"
)

// String renders a Reduction in the trace format:
// "lhs->rhs1 rhs2 ..." with a single-character punctuator RHS symbol quoted
// (via lex.IsPunctuator) and every other symbol, terminal or nonterminal,
// printed bare; an epsilon production renders as "lhs->epsilon".
func (r Reduction) String() string {
	if len(r.RHS) == 0 {
		return r.LHS + "->epsilon"
	}

	parts := make([]string, len(r.RHS))
	for i, sym := range r.RHS {
		if lex.IsPunctuator(sym) {
			parts[i] = "'" + sym + "'"
		} else {
			parts[i] = sym
		}
	}
	return r.LHS + "->" + strings.Join(parts, " ")
}

// FormatTrace renders a full reduction trace, one reduction per line, in
// application order.
func FormatTrace(reductions []Reduction) string {
	lines := make([]string, len(reductions))
	for i, r := range reductions {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
