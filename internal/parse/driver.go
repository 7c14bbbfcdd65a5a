package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/subcparse/internal/grammar"
	"github.com/dekarrin/subcparse/internal/lex"
	"github.com/dekarrin/subcparse/internal/parseerr"
	"github.com/dekarrin/subcparse/internal/util"
	"github.com/google/uuid"
)

// Reduction is one step of the leftmost-derivation-in-reverse trace a
// successful parse produces: the production applied, recorded as its LHS
// and RHS symbols at the moment the parser reduced by it.
type Reduction struct {
	LHS string
	RHS []string
}

// TraceFunc receives one formatted line per ACTION lookup and one per GOTO
// taken after a reduce, each tagged with a fresh UUID. Passed to Parse for
// the --trace diagnostic; nil means no tracing.
type TraceFunc func(line string)

// Parse drives tbl against tokens, running the classic shift/reduce loop and
// returning the reduction trace in the order productions were applied. On a
// syntax error (no ACTION entry for the current state/token pair) it returns
// the reductions applied so far alongside a parseerr describing the failure.
// A missing GOTO entry after a reduce is not a property of the input; it
// means the table itself is broken, so it is reported as a plain internal
// error rather than a parseerr. If trace is non-nil, it is called with a
// human-readable, UUID-tagged line once per ACTION lookup (including the one
// that finds no entry), once more for the GOTO after each reduce, and once on
// accept.
func Parse(tbl *Table, g *grammar.Grammar, tokens lex.TokenStream, trace ...TraceFunc) ([]Reduction, error) {
	var notify TraceFunc
	if len(trace) > 0 {
		notify = trace[0]
	}
	emit := func(format string, args ...interface{}) {
		if notify == nil {
			return
		}
		notify(fmt.Sprintf("[%s] %s", uuid.NewString(), fmt.Sprintf(format, args...)))
	}

	var states util.Stack[int]
	states.Push(tbl.Start)
	var reductions []Reduction

	tok := tokens.Next()

	for {
		state := states.Peek()
		sym := tok.Class().ID()
		action := tbl.ActionFor(state, sym)
		emit("state %d, lookahead %s: %s", state, sym, action)

		switch action.Type {
		case ActionShift:
			states.Push(action.State)
			tok = tokens.Next()

		case ActionReduce:
			prod := g.Production(action.Prod)
			for n := len(prod.RHS); n > 0; n-- {
				states.Pop()
			}
			back := states.Peek()
			target, ok := tbl.GotoFor(back, prod.LHS)
			if !ok {
				return reductions, fmt.Errorf("internal error: no GOTO[%d, %s]", back, prod.LHS)
			}
			states.Push(target)
			emit("goto %d on %s", target, prod.LHS)
			reductions = append(reductions, Reduction{LHS: prod.LHS, RHS: append([]string{}, prod.RHS...)})

		case ActionAccept:
			emit("accept")
			return reductions, nil

		default:
			return reductions, parseerr.Syntax(expectedFor(tbl, state), tok.Lexeme(), tok.Line(), tok.Column())
		}
	}
}

// expectedFor lists the human-readable display names of every terminal for
// which state has a defined ACTION entry, sorted, for the syntax-error
// diagnostic's "expected ..." clause.
func expectedFor(tbl *Table, state int) []string {
	var names []string
	for sym, act := range tbl.Action[state] {
		if act.Type == ActionError {
			continue
		}
		names = append(names, lex.HumanForID(sym))
	}
	sort.Strings(names)
	return names
}
