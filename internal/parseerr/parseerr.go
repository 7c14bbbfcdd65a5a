// Package parseerr defines the syntax-error type the parse driver reports
// through when the ACTION table has no entry for the current state/token
// pair.
package parseerr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/subcparse/internal/util"
)

// syntaxError is a fatal parser failure: the ACTION table has no entry for
// the current state and lookahead token.
type syntaxError struct {
	msg    string
	line   int
	col    int
	lexeme string
}

func (e *syntaxError) Error() string {
	return e.msg
}

// Line returns the 1-based line the offending token appeared on.
func (e *syntaxError) Line() int { return e.line }

// Column returns the 1-based column the offending token appeared on.
func (e *syntaxError) Column() int { return e.col }

// Syntax returns a syntax error of the form:
//
//	SyntaxError: expected <set> before <lexeme> at line <L>, column <C>
//
// expected is the sorted list of terminal display names for which the
// current state's ACTION entry is defined; it is rendered as "a FOO", "a FOO
// or a BAR", or "a FOO, a BAR, or a BAZ" depending on its length.
func Syntax(expected []string, lexeme string, line, col int) error {
	set := expectedSet(expected)

	return &syntaxError{
		msg:    fmt.Sprintf("SyntaxError: expected %s before %s at line %d, column %d", set, lexeme, line, col),
		line:   line,
		col:    col,
		lexeme: lexeme,
	}
}

// expectedSet renders the expected-terminal set the way the diagnostic
// prose needs it, one article per item.
func expectedSet(expected []string) string {
	if len(expected) == 0 {
		return "(nothing; end of grammar)"
	}

	withArticles := make([]string, len(expected))
	for i, t := range expected {
		withArticles[i] = util.ArticleFor(t, false) + " " + t
	}

	last := len(withArticles) - 1
	switch last {
	case 0:
		return withArticles[0]
	case 1:
		return withArticles[0] + " or " + withArticles[1]
	default:
		return strings.Join(withArticles[:last], ", ") + ", or " + withArticles[last]
	}
}
