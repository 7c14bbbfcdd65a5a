package subc

import (
	"strings"
	"testing"

	"github.com/dekarrin/subcparse/internal/lex"
	"github.com/dekarrin/subcparse/internal/parse"
	"github.com/stretchr/testify/assert"
)

func Test_Grammar_finalizesWithoutError(t *testing.T) {
	assert := assert.New(t)

	g, err := Grammar()
	assert.NoError(err)
	assert.NotNil(g)
	assert.Equal("program", g.StartSymbol())
}

// Test_Grammar_tableConstructs checks the subC grammar's LALR(1)
// construction is conflict-free: after precedence-directed resolution,
// table construction must succeed with no residual conflicts.
func Test_Grammar_tableConstructs(t *testing.T) {
	assert := assert.New(t)

	g, err := Grammar()
	assert.NoError(err)

	tbl, err := parse.Build(g)
	assert.NoError(err)
	assert.NotNil(tbl)
}

func parseSource(t *testing.T, src string) ([]parse.Reduction, error) {
	t.Helper()
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar: %v", err)
	}
	tbl, err := parse.Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks, err := lex.New(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return parse.Parse(tbl, g, toks)
}

func Test_Parse_emptyProgram(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "")
	assert.NoError(err)
	assert.NotEmpty(reductions)

	last := reductions[len(reductions)-1]
	assert.Equal("program", last.LHS)
	assert.Equal([]string{"ext_def_list"}, last.RHS)

	first := reductions[0]
	assert.Equal("ext_def_list", first.LHS)
	assert.Empty(first.RHS)
}

func Test_Parse_emptyMain(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "int main(void){}")
	assert.NoError(err)

	trace := parse.FormatTrace(reductions)
	assert.Contains(trace, "ext_def->func_decl compound_stmt")
	assert.Contains(trace, "ext_def_list->ext_def_list ext_def")
	assert.Contains(trace, "program->ext_def_list")
}

func Test_Parse_returnLiteral(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "int f(void){ return 0; }")
	assert.NoError(err)

	trace := parse.FormatTrace(reductions)
	assert.Contains(trace, "unary->INTEGER_CONST")
	assert.Contains(trace, "binary->unary")
	assert.Contains(trace, "expr->binary")
	assert.Contains(trace, "stmt->RETURN expr ';'")
}

func Test_Parse_assignment(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "int f(void){ int a; a = 1; }")
	assert.NoError(err)

	count := 0
	for _, r := range reductions {
		if r.LHS == "expr" && len(r.RHS) == 3 && r.RHS[1] == "=" {
			count++
		}
	}
	assert.Equal(1, count)
}

func Test_Parse_precedenceMultiplicationBeforeAddition(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "int f(void){ int a; a = 1 + 2 * 3; }")
	assert.NoError(err)

	mulIdx, addIdx := -1, -1
	for i, r := range reductions {
		if r.LHS == "binary" && len(r.RHS) == 3 && r.RHS[1] == "*" && mulIdx == -1 {
			mulIdx = i
		}
		if r.LHS == "binary" && len(r.RHS) == 3 && r.RHS[1] == "+" && addIdx == -1 {
			addIdx = i
		}
	}
	assert.NotEqual(-1, mulIdx)
	assert.NotEqual(-1, addIdx)
	assert.Less(mulIdx, addIdx)
}

func Test_Parse_danglingElseBindsToInnerIf(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "int f(void){ if (a) if (b) c; else d; }")
	assert.NoError(err)

	ifElseIdx, bareIfIdx := -1, -1
	for i, r := range reductions {
		if r.LHS != "stmt" {
			continue
		}
		if len(r.RHS) == 7 && r.RHS[5] == "ELSE" && ifElseIdx == -1 {
			ifElseIdx = i
		}
		if len(r.RHS) == 5 && bareIfIdx == -1 {
			bareIfIdx = i
		}
	}
	assert.NotEqual(-1, ifElseIdx)
	assert.NotEqual(-1, bareIfIdx)
	// the inner if/else must reduce before the outer bare if completes,
	// which is what makes it the outer if's single stmt body rather than
	// the else binding to the outer if.
	assert.Less(ifElseIdx, bareIfIdx)
}

func Test_Parse_syntaxErrorReturnsDiagnostic(t *testing.T) {
	assert := assert.New(t)

	_, err := parseSource(t, "int f(void){ return }")
	assert.Error(err)
	assert.True(strings.HasPrefix(err.Error(), "SyntaxError:"))
	assert.Contains(err.Error(), "before }")
}

func Test_Parse_rightAssociativeAssignment(t *testing.T) {
	assert := assert.New(t)

	reductions, err := parseSource(t, "int f(void){ int a; int b; a = b = 1; }")
	assert.NoError(err)

	assigns := 0
	for _, r := range reductions {
		if r.LHS == "expr" && len(r.RHS) == 3 && r.RHS[1] == "=" {
			assigns++
		}
	}
	assert.Equal(2, assigns)
}
