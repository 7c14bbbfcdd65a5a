// Package subc holds the frozen subC grammar: the production list, the
// terminal precedence/associativity table, and the per-production
// precedence overrides, built as a concrete grammar.Grammar value.
package subc

import "github.com/dekarrin/subcparse/internal/grammar"

// Grammar builds and finalizes the subC grammar.
func Grammar() (*grammar.Grammar, error) {
	g := grammar.New("program")

	for _, t := range terminals {
		g.AddTerminal(t)
	}

	idx := map[string]int{}
	add := func(name string, lhs string, rhs ...string) {
		idx[name] = g.AddProduction(lhs, rhs...)
	}

	add("program", "program", "ext_def_list")

	add("ext_def_list_cons", "ext_def_list", "ext_def_list", "ext_def")
	add("ext_def_list_eps", "ext_def_list")

	add("ext_def_var", "ext_def", "type_specifier", "pointers", "ID", ";")
	add("ext_def_array", "ext_def", "type_specifier", "pointers", "ID", "[", "INTEGER_CONST", "]", ";")
	add("ext_def_struct", "ext_def", "struct_specifier", ";")
	add("ext_def_func", "ext_def", "func_decl", "compound_stmt")

	add("type_specifier_type", "type_specifier", "TYPE")
	add("type_specifier_void", "type_specifier", "VOID")
	add("type_specifier_struct", "type_specifier", "struct_specifier")

	add("struct_specifier_def", "struct_specifier", "STRUCT", "ID", "{", "def_list", "}")
	add("struct_specifier_decl", "struct_specifier", "STRUCT", "ID")

	add("func_decl_empty", "func_decl", "type_specifier", "pointers", "ID", "(", ")")
	add("func_decl_void", "func_decl", "type_specifier", "pointers", "ID", "(", "VOID", ")")
	add("func_decl_params", "func_decl", "type_specifier", "pointers", "ID", "(", "param_list", ")")

	add("pointers_one", "pointers", "*")
	add("pointers_none", "pointers")

	add("param_list_one", "param_list", "param_decl")
	add("param_list_cons", "param_list", "param_list", ",", "param_decl")

	add("param_decl_plain", "param_decl", "type_specifier", "pointers", "ID")
	add("param_decl_array", "param_decl", "type_specifier", "pointers", "ID", "[", "INTEGER_CONST", "]")

	add("def_list_cons", "def_list", "def_list", "def")
	add("def_list_eps", "def_list")

	add("def_plain", "def", "type_specifier", "pointers", "ID", ";")
	add("def_array", "def", "type_specifier", "pointers", "ID", "[", "INTEGER_CONST", "]", ";")

	add("compound_stmt", "compound_stmt", "{", "def_list", "stmt_list", "}")

	add("stmt_list_cons", "stmt_list", "stmt_list", "stmt")
	add("stmt_list_eps", "stmt_list")

	add("stmt_expr", "stmt", "expr", ";")
	add("stmt_compound", "stmt", "compound_stmt")
	add("stmt_return", "stmt", "RETURN", ";")
	add("stmt_return_expr", "stmt", "RETURN", "expr", ";")
	add("stmt_empty", "stmt", ";")
	add("stmt_if", "stmt", "IF", "(", "expr", ")", "stmt")
	add("stmt_if_else", "stmt", "IF", "(", "expr", ")", "stmt", "ELSE", "stmt")
	add("stmt_while", "stmt", "WHILE", "(", "expr", ")", "stmt")
	add("stmt_for", "stmt", "FOR", "(", "expr_e", ";", "expr_e", ";", "expr_e", ")", "stmt")
	add("stmt_break", "stmt", "BREAK", ";")
	add("stmt_continue", "stmt", "CONTINUE", ";")

	add("expr_e_expr", "expr_e", "expr")
	add("expr_e_eps", "expr_e")

	add("expr_assign", "expr", "unary", "=", "expr")
	add("expr_binary", "expr", "binary")

	add("binary_relop", "binary", "binary", "RELOP", "binary")
	add("binary_equop", "binary", "binary", "EQUOP", "binary")
	add("binary_add", "binary", "binary", "+", "binary")
	add("binary_sub", "binary", "binary", "-", "binary")
	add("binary_mul", "binary", "binary", "*", "binary")
	add("binary_div", "binary", "binary", "/", "binary")
	add("binary_mod", "binary", "binary", "%", "binary")
	add("binary_unary", "binary", "unary")
	add("binary_and", "binary", "binary", "LOGICAL_AND", "binary")
	add("binary_or", "binary", "binary", "LOGICAL_OR", "binary")

	add("unary_paren", "unary", "(", "expr", ")")
	add("unary_int", "unary", "INTEGER_CONST")
	add("unary_char", "unary", "CHAR_CONST")
	add("unary_string", "unary", "STRING")
	add("unary_id", "unary", "ID")
	add("unary_neg", "unary", "-", "unary")
	add("unary_not", "unary", "!", "unary")
	add("unary_postinc", "unary", "unary", "INCOP")
	add("unary_postdec", "unary", "unary", "DECOP")
	add("unary_preinc", "unary", "INCOP", "unary")
	add("unary_predec", "unary", "DECOP", "unary")
	add("unary_addr", "unary", "&", "unary")
	add("unary_deref", "unary", "*", "unary")
	add("unary_index", "unary", "unary", "[", "expr", "]")
	add("unary_field", "unary", "unary", ".", "ID")
	add("unary_arrow", "unary", "unary", "STRUCTOP", "ID")
	add("unary_call", "unary", "unary", "(", "args", ")")
	add("unary_call_empty", "unary", "unary", "(", ")")
	add("unary_null", "unary", "SYM_NULL")

	add("args_one", "args", "expr")
	add("args_cons", "args", "args", ",", "expr")

	// Prefix-unary productions carry an explicit level-9, right-associative
	// override: none of '-', '!', '&', '*', INCOP, DECOP hold level 9 in
	// their own infix/postfix table entry, so there is no terminal whose
	// precedence these productions could borrow.
	for _, name := range []string{"unary_neg", "unary_not", "unary_preinc", "unary_predec", "unary_addr", "unary_deref"} {
		g.SetProductionPrecedenceLevel(idx[name], 9, grammar.AssocRight)
	}

	// binary -> unary has no terminal in its rhs to borrow a precedence
	// from. Overriding it to '=' own entry (level 2, right) means that in
	// any state offering both a shift on '=' and this reduction, the levels
	// tie and right-associativity picks the shift, so an assignment's LHS
	// stays an unreduced unary long enough for expr -> unary '=' expr to
	// claim it.
	g.SetProductionPrecedence(idx["binary_unary"], "=")

	for t, p := range precedenceTable {
		g.SetPrecedence(t, p.level, p.assoc)
	}

	if err := g.Finalize(); err != nil {
		return nil, err
	}
	return g, nil
}

var terminals = []string{
	"TYPE", "VOID", "STRUCT", "RETURN", "IF", "ELSE", "WHILE", "FOR",
	"BREAK", "CONTINUE", "SYM_NULL", "ID", "INTEGER_CONST", "CHAR_CONST",
	"STRING", "RELOP", "EQUOP", "LOGICAL_AND", "LOGICAL_OR", "INCOP",
	"DECOP", "STRUCTOP",
	"(", ")", "[", "]", "{", "}", ",", ";", ".", "+", "-", "*", "/", "%",
	"=", "!", "&",
}

type precEntry struct {
	level int
	assoc grammar.Assoc
}

// precedenceTable is the terminal precedence/associativity table, low to
// high.
var precedenceTable = map[string]precEntry{
	",":           {1, grammar.AssocLeft},
	"=":           {2, grammar.AssocRight},
	"LOGICAL_OR":  {3, grammar.AssocLeft},
	"LOGICAL_AND": {4, grammar.AssocLeft},
	"EQUOP":       {5, grammar.AssocLeft},
	"RELOP":       {6, grammar.AssocLeft},
	"+":           {7, grammar.AssocLeft},
	"-":           {7, grammar.AssocLeft},
	"*":           {8, grammar.AssocLeft},
	"/":           {8, grammar.AssocLeft},
	"%":           {8, grammar.AssocLeft},
	"INCOP":       {10, grammar.AssocLeft},
	"DECOP":       {10, grammar.AssocLeft},
	"[":           {10, grammar.AssocLeft},
	"(":           {10, grammar.AssocLeft},
	".":           {10, grammar.AssocLeft},
	"STRUCTOP":    {10, grammar.AssocLeft},
}
