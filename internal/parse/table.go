package parse

import (
	"fmt"

	"github.com/dekarrin/subcparse/internal/automaton"
	"github.com/dekarrin/subcparse/internal/grammar"
)

// Table is the materialized ACTION/GOTO table for a grammar.
type Table struct {
	Action [](map[string]Action)
	Goto   [](map[string]int)
	Start  int
}

// ActionFor returns the ACTION table entry for the given state and
// terminal, or the zero-value error Action if none is defined.
func (t *Table) ActionFor(state int, terminal string) Action {
	if state < 0 || state >= len(t.Action) {
		return Action{}
	}
	return t.Action[state][terminal]
}

// GotoFor returns the GOTO table entry for the given state and nonterminal.
func (t *Table) GotoFor(state int, nonterminal string) (int, bool) {
	if state < 0 || state >= len(t.Goto) {
		return 0, false
	}
	s, ok := t.Goto[state][nonterminal]
	return s, ok
}

// Build constructs the LALR(1) ACTION/GOTO table for g: canonical LR(1)
// collection, merge by core into an LALR(1) automaton, then fill
// ACTION/GOTO, resolving shift/reduce conflicts by precedence and failing
// construction on any reduce/reduce conflict or unresolved shift/reduce
// conflict. g must already be finalized.
func Build(g *grammar.Grammar) (*Table, error) {
	canon := automaton.CanonicalCollection(g)
	a := automaton.MergeLALR1(canon)

	t := &Table{
		Action: make([]map[string]Action, len(a.States)),
		Goto:   make([]map[string]int, len(a.States)),
		Start:  a.Start,
	}
	for i := range a.States {
		t.Action[i] = map[string]Action{}
		t.Goto[i] = map[string]int{}
	}

	for i, st := range a.States {
		for sym, target := range st.Transitions {
			if g.IsNonterminal(sym) {
				t.Goto[i][sym] = target
				continue
			}
			if err := setAction(t, g, i, sym, Action{Type: ActionShift, State: target}); err != nil {
				return nil, err
			}
		}

		for it := range st.Items {
			prod := g.Production(it.Production)
			if it.Dot < len(prod.RHS) {
				continue
			}
			if prod.Index == 0 {
				if it.Lookahead == "$" {
					if err := setAction(t, g, i, "$", Action{Type: ActionAccept}); err != nil {
						return nil, err
					}
				}
				continue
			}
			if err := setAction(t, g, i, it.Lookahead, Action{Type: ActionReduce, Prod: prod.Index}); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// setAction installs want into state i's ACTION row under terminal, resolving
// against whatever is already there. A fresh cell
// (ActionError, the zero value) always accepts. A conflicting cell is
// resolved by shiftReduce when one side is a shift and the other a reduce;
// any other collision (reduce/reduce, shift/shift on different targets,
// anything involving accept) is a fatal grammar-construction error.
func setAction(t *Table, g *grammar.Grammar, state int, terminal string, want Action) error {
	existing := t.Action[state][terminal]
	if existing.Type == ActionError {
		t.Action[state][terminal] = want
		return nil
	}
	if existing == want {
		return nil
	}

	shiftAction, reduceAction, ok := asShiftReducePair(existing, want)
	if !ok {
		return fmt.Errorf("parse: unresolvable %s/%s conflict in state %d on terminal %q", existing.Type, want.Type, state, terminal)
	}

	winner, err := shiftReduce(g, terminal, g.Production(reduceAction.Prod))
	if err != nil {
		return fmt.Errorf("parse: state %d: %w", state, err)
	}
	if winner == ActionShift {
		t.Action[state][terminal] = shiftAction
	} else {
		t.Action[state][terminal] = reduceAction
	}
	return nil
}

func asShiftReducePair(a, b Action) (shift, reduce Action, ok bool) {
	switch {
	case a.Type == ActionShift && b.Type == ActionReduce:
		return a, b, true
	case a.Type == ActionReduce && b.Type == ActionShift:
		return b, a, true
	default:
		return Action{}, Action{}, false
	}
}
