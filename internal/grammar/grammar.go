// Package grammar holds the frozen data model for a context-free grammar
// under LALR(1) construction: productions, terminal/nonterminal sets, FIRST
// sets, and the precedence/associativity table used to disambiguate
// shift/reduce conflicts.
//
// FIRST-set computation, closure, and GOTO follow the standard formulation
// from Aho/Sethi/Ullman/Lam's treatment of LALR(1) table construction.
package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Assoc is operator associativity for precedence-directed conflict
// resolution.
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
	AssocNonassoc
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	case AssocNonassoc:
		return "nonassoc"
	default:
		return "none"
	}
}

// PrecEntry is a precedence table entry: an integer level (higher binds
// tighter) and an associativity.
type PrecEntry struct {
	Level int
	Assoc Assoc
}

// Production is a single grammar rule A -> rhs. Index is a dense integer
// identity assigned when the production is added. An empty RHS denotes an
// epsilon production. PrecedenceOverride, if non-empty, names the terminal
// whose precedence this production should use instead of its rightmost
// precedence-bearing terminal. The unexported level override lets a
// production take an explicit (level, assoc) pair that need not match any
// terminal's own entry, for productions whose effective precedence level
// isn't carried by any terminal in their own infix/postfix role.
type Production struct {
	Index              int
	LHS                string
	RHS                []string
	PrecedenceOverride string

	hasLevelOverride bool
	levelOverride    PrecEntry
}

// IsEpsilon reports whether this production's right-hand side is empty.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return fmt.Sprintf("%s -> epsilon", p.LHS)
	}
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(p.RHS, " "))
}

// Grammar is a frozen context-free grammar: productions, terminal and
// nonterminal sets, precedence table, and derived FIRST sets.
// A Grammar is built with New, populated with AddTerminal/AddProduction/
// SetPrecedence/SetProductionPrecedence, and then frozen with Finalize, which
// augments it with `start' -> start` as production 0 and computes FIRST
// sets. All further methods assume Finalize has been called.
type Grammar struct {
	start          string
	terminals      map[string]bool
	productions    []Production
	allProductions []Production
	byLHS          map[string][]int
	precedence     map[string]PrecEntry
	first          map[string]map[string]bool // symbol -> FIRST set; "" key means ε is in the set
	finalized      bool
}

// New returns an empty Grammar whose start symbol is start.
func New(start string) *Grammar {
	return &Grammar{
		start:      start,
		terminals:  map[string]bool{},
		byLHS:      map[string][]int{},
		precedence: map[string]PrecEntry{},
	}
}

// AddTerminal declares sym as a terminal symbol of the grammar.
func (g *Grammar) AddTerminal(sym string) {
	if g.finalized {
		panic("grammar: cannot add terminal after Finalize")
	}
	g.terminals[sym] = true
}

// AddProduction appends a new production LHS -> rhs and returns its index.
// Pass a nil or empty rhs for an epsilon production.
func (g *Grammar) AddProduction(lhs string, rhs ...string) int {
	if g.finalized {
		panic("grammar: cannot add production after Finalize")
	}
	idx := len(g.productions) + 1 // index 0 is reserved for the augmented start production
	p := Production{Index: idx, LHS: lhs, RHS: rhs}
	g.productions = append(g.productions, p)
	g.byLHS[lhs] = append(g.byLHS[lhs], idx)
	return idx
}

// SetProductionPrecedence overrides the given production's effective
// precedence to that of terminal.
func (g *Grammar) SetProductionPrecedence(prodIndex int, terminal string) {
	for i := range g.productions {
		if g.productions[i].Index == prodIndex {
			g.productions[i].PrecedenceOverride = terminal
			return
		}
	}
	panic(fmt.Sprintf("grammar: no such production index %d", prodIndex))
}

// SetProductionPrecedenceLevel overrides the given production's effective
// precedence to an explicit (level, assoc) pair not tied to any terminal's
// own precedence entry.
func (g *Grammar) SetProductionPrecedenceLevel(prodIndex int, level int, assoc Assoc) {
	for i := range g.productions {
		if g.productions[i].Index == prodIndex {
			g.productions[i].hasLevelOverride = true
			g.productions[i].levelOverride = PrecEntry{Level: level, Assoc: assoc}
			return
		}
	}
	panic(fmt.Sprintf("grammar: no such production index %d", prodIndex))
}

// SetPrecedence records the precedence level and associativity of terminal.
func (g *Grammar) SetPrecedence(terminal string, level int, assoc Assoc) {
	g.precedence[terminal] = PrecEntry{Level: level, Assoc: assoc}
}

// Precedence returns the precedence entry for terminal, if any.
func (g *Grammar) Precedence(terminal string) (PrecEntry, bool) {
	p, ok := g.precedence[terminal]
	return p, ok
}

// ProductionPrecedence returns the effective precedence of production p: its
// explicit override if present, else the precedence of its rightmost
// terminal that has one, else ok is false.
func (g *Grammar) ProductionPrecedence(p Production) (PrecEntry, bool) {
	if p.hasLevelOverride {
		return p.levelOverride, true
	}
	if p.PrecedenceOverride != "" {
		entry, ok := g.precedence[p.PrecedenceOverride]
		return entry, ok
	}
	for i := len(p.RHS) - 1; i >= 0; i-- {
		sym := p.RHS[i]
		if !g.IsTerminal(sym) {
			continue
		}
		if entry, ok := g.precedence[sym]; ok {
			return entry, true
		}
	}
	return PrecEntry{}, false
}

// IsTerminal reports whether sym is a declared terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals[sym]
}

// IsNonterminal reports whether sym is a declared nonterminal (appears as
// some production's LHS, including the augmented start symbol once
// Finalize has been called).
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.byLHS[sym]
	return ok
}

// StartSymbol returns the grammar's original (non-augmented) start symbol.
func (g *Grammar) StartSymbol() string {
	return g.start
}

// AugmentedStartSymbol returns the distinguished nonterminal added by
// Finalize, e.g. "start'" for start symbol "start".
func (g *Grammar) AugmentedStartSymbol() string {
	return g.start + "'"
}

// Productions returns every production, including the augmented production
// 0, in index order.
func (g *Grammar) Productions() []Production {
	return g.allProductions
}

// Production returns the production with the given index.
func (g *Grammar) Production(index int) Production {
	return g.allProductions[index]
}

// ProductionsFor returns the indices of every production whose LHS is nt, in
// the order they were added.
func (g *Grammar) ProductionsFor(nt string) []int {
	return g.byLHS[nt]
}

// Terminals returns every declared terminal, sorted, excluding the "$"
// end-of-input sentinel (callers that need it, such as the table dump in
// internal/parse, append it explicitly).
func (g *Grammar) Terminals() []string {
	out := make([]string, 0, len(g.terminals))
	for t := range g.terminals {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Nonterminals returns every declared nonterminal (including the augmented
// start symbol), sorted.
func (g *Grammar) Nonterminals() []string {
	out := make([]string, 0, len(g.byLHS))
	for nt := range g.byLHS {
		out = append(out, nt)
	}
	sort.Strings(out)
	return out
}

// Finalize augments the grammar with production 0 (`start' -> start`),
// freezes it against further mutation, and computes FIRST sets for every
// symbol.
func (g *Grammar) Finalize() error {
	if g.finalized {
		return nil
	}
	if g.start == "" {
		return fmt.Errorf("grammar: no start symbol set")
	}
	if len(g.productions) == 0 {
		return fmt.Errorf("grammar: no productions defined")
	}
	if _, ok := g.byLHS[g.start]; !ok {
		return fmt.Errorf("grammar: start symbol %q has no productions", g.start)
	}

	augStart := g.AugmentedStartSymbol()
	augmented := Production{Index: 0, LHS: augStart, RHS: []string{g.start}}

	all := make([]Production, 0, len(g.productions)+1)
	all = append(all, augmented)
	all = append(all, g.productions...)
	g.allProductions = all
	g.byLHS[augStart] = append([]int{0}, g.byLHS[augStart]...)

	if err := g.validateSymbols(); err != nil {
		return err
	}

	g.computeFirstSets()
	g.finalized = true
	return nil
}

func (g *Grammar) validateSymbols() error {
	for _, p := range g.allProductions {
		for _, sym := range p.RHS {
			if !g.IsTerminal(sym) && !g.IsNonterminal(sym) {
				return fmt.Errorf("grammar: production %q references undeclared symbol %q", p.String(), sym)
			}
		}
	}
	return nil
}

// computeFirstSets runs the standard fixed-point iteration: for each
// production A -> X1 X2 ... Xn, propagate FIRST(X1) (minus
// ε) into FIRST(A); if X1 is nullable continue with X2, and so on; if every
// Xi is nullable, ε is added to FIRST(A). Iterate to a fixed point.
func (g *Grammar) computeFirstSets() {
	first := map[string]map[string]bool{}

	ensure := func(sym string) map[string]bool {
		s, ok := first[sym]
		if !ok {
			s = map[string]bool{}
			first[sym] = s
		}
		return s
	}

	for t := range g.terminals {
		ensure(t)[t] = true
	}
	for nt := range g.byLHS {
		ensure(nt)
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.allProductions {
			lhsSet := ensure(p.LHS)

			if p.IsEpsilon() {
				if !lhsSet[""] {
					lhsSet[""] = true
					changed = true
				}
				continue
			}

			allNullable := true
			for _, sym := range p.RHS {
				symSet := ensure(sym)
				for t := range symSet {
					if t == "" {
						continue
					}
					if !lhsSet[t] {
						lhsSet[t] = true
						changed = true
					}
				}
				if !symSet[""] {
					allNullable = false
					break
				}
			}
			if allNullable {
				if !lhsSet[""] {
					lhsSet[""] = true
					changed = true
				}
			}
		}
	}

	g.first = first
}

// First returns FIRST(sym): the set of terminals (and possibly ε, keyed by
// the empty string) that can begin a string derived from sym.
func (g *Grammar) First(sym string) map[string]bool {
	return g.first[sym]
}

// FirstOfSequence computes FIRST(X1 X2 ... Xn) for a sequence of symbols: the
// union of FIRST(Xi) for each prefix of nullable symbols, plus ε if every Xi
// is nullable. An empty sequence is trivially nullable with an empty
// terminal set.
func (g *Grammar) FirstOfSequence(seq []string) (terms map[string]bool, nullable bool) {
	terms = map[string]bool{}
	nullable = true
	for _, sym := range seq {
		symSet := g.first[sym]
		for t := range symSet {
			if t != "" {
				terms[t] = true
			}
		}
		if !symSet[""] {
			nullable = false
			break
		}
	}
	return terms, nullable
}
