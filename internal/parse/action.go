// Package parse builds the LALR(1) ACTION/GOTO table for a grammar and
// drives it against a token stream. Shift/reduce ambiguities are resolved by
// operator precedence and associativity rather than treated as fatal; the
// driver emits a reduction trace rather than building a parse tree, since
// there is no AST construction here.
package parse

import (
	"fmt"

	"github.com/dekarrin/subcparse/internal/grammar"
)

// ActionType distinguishes the four kinds of ACTION table entry.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION table entry: shift(state), reduce(production
// index), accept, or error (the zero value).
type Action struct {
	Type  ActionType
	State int
	Prod  int
}

func (a Action) String() string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %d", a.Prod)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// shiftReduce resolves a conflict between a shift on terminal t and a reduce
// by production p:
//
//  1. compare precedence levels of t and p; higher level wins.
//  2. equal levels: consult t's associativity (left -> reduce, right ->
//     shift, nonassoc -> error).
//  3. if either precedence is undefined: shift if t is "ELSE" (the
//     dangling-else rule), otherwise it is a construction error.
func shiftReduce(g *grammar.Grammar, t string, p grammar.Production) (ActionType, error) {
	tp, tpOk := g.Precedence(t)
	pp, ppOk := g.ProductionPrecedence(p)

	if tpOk && ppOk {
		switch {
		case tp.Level > pp.Level:
			return ActionShift, nil
		case tp.Level < pp.Level:
			return ActionReduce, nil
		default:
			switch tp.Assoc {
			case grammar.AssocLeft:
				return ActionReduce, nil
			case grammar.AssocRight:
				return ActionShift, nil
			default:
				return ActionError, fmt.Errorf("nonassociative operator %q used without parentheses (conflicts with reduction %s)", t, p.String())
			}
		}
	}

	if t == "ELSE" {
		return ActionShift, nil
	}

	return ActionError, fmt.Errorf("shift/reduce conflict on terminal %q: shift vs. reduce %s (neither side carries precedence)", t, p.String())
}
