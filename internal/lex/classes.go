package lex

// Terminal symbol names, exactly as the subC grammar (internal/subc) and its
// reduction formatter refer to them. Word-like terminals are printed bare;
// the single-character punctuators are printed quoted by the formatter,
// which recognizes them by IsPunctuator.
var (
	ClassType      = ClassNamed("TYPE", "type name")
	ClassVoid      = ClassNamed("VOID", "'void'")
	ClassStruct    = ClassNamed("STRUCT", "'struct'")
	ClassReturn    = ClassNamed("RETURN", "'return'")
	ClassIf        = ClassNamed("IF", "'if'")
	ClassElse      = ClassNamed("ELSE", "'else'")
	ClassWhile     = ClassNamed("WHILE", "'while'")
	ClassFor       = ClassNamed("FOR", "'for'")
	ClassBreak     = ClassNamed("BREAK", "'break'")
	ClassContinue  = ClassNamed("CONTINUE", "'continue'")
	ClassSymNull   = ClassNamed("SYM_NULL", "'NULL'")
	ClassID        = ClassNamed("ID", "identifier")
	ClassIntConst  = ClassNamed("INTEGER_CONST", "integer constant")
	ClassCharConst = ClassNamed("CHAR_CONST", "character constant")
	ClassString    = ClassNamed("STRING", "string literal")
	ClassRelop     = ClassNamed("RELOP", "relational operator")
	ClassEquop     = ClassNamed("EQUOP", "equality operator")
	ClassLogAnd    = ClassNamed("LOGICAL_AND", "'&&'")
	ClassLogOr     = ClassNamed("LOGICAL_OR", "'||'")
	ClassIncop     = ClassNamed("INCOP", "'++'")
	ClassDecop     = ClassNamed("DECOP", "'--'")
	ClassStructop  = ClassNamed("STRUCTOP", "'->'")

	// classFloatConst is deliberately NOT part of the subC terminal alphabet: a
	// float literal is lexed (so the lexer never errors on one) but has no
	// ACTION table entry, so the parser rejects it as a syntax error instead
	// of silently coercing it to an integer.
	classFloatConst = ClassNamed("FLOAT_CONST", "floating-point constant")
)

// punctuatorClasses are the single-character terminals, keyed by the
// character itself (which doubles as the terminal's grammar symbol name).
var punctuatorClasses = map[rune]TokenClass{
	'(': ClassNamed("(", "'('"),
	')': ClassNamed(")", "')'"),
	'[': ClassNamed("[", "'['"),
	']': ClassNamed("]", "']'"),
	'{': ClassNamed("{", "'{'"),
	'}': ClassNamed("}", "'}'"),
	',': ClassNamed(",", "','"),
	';': ClassNamed(";", "';'"),
	'.': ClassNamed(".", "'.'"),
	'+': ClassNamed("+", "'+'"),
	'-': ClassNamed("-", "'-'"),
	'*': ClassNamed("*", "'*'"),
	'/': ClassNamed("/", "'/'"),
	'%': ClassNamed("%", "'%'"),
	'=': ClassNamed("=", "'='"),
	'!': ClassNamed("!", "'!'"),
	'&': ClassNamed("&", "'&'"),
}

// keywordClasses maps the reserved words of subC to their terminal class.
// Identifiers that don't appear here lex as ClassID.
var keywordClasses = map[string]TokenClass{
	"int":      ClassType,
	"char":     ClassType,
	"void":     ClassVoid,
	"struct":   ClassStruct,
	"return":   ClassReturn,
	"if":       ClassIf,
	"else":     ClassElse,
	"while":    ClassWhile,
	"for":      ClassFor,
	"break":    ClassBreak,
	"continue": ClassContinue,
	"NULL":     ClassSymNull,
}

// IsPunctuator reports whether sym is one of the single-character
// punctuator terminals (as opposed to a word-like terminal or a
// nonterminal), for use by the reduction formatter.
func IsPunctuator(sym string) bool {
	if len(sym) != 1 {
		return false
	}
	_, ok := punctuatorClasses[rune(sym[0])]
	return ok
}

// classesByID indexes every terminal class declared in this file by its
// grammar ID, for the "expected ..." diagnostic the parse driver builds on a
// syntax error.
var classesByID = buildClassesByID()

func buildClassesByID() map[string]TokenClass {
	m := map[string]TokenClass{EndOfText.ID(): EndOfText}
	for _, c := range []TokenClass{
		ClassType, ClassVoid, ClassStruct, ClassReturn, ClassIf, ClassElse,
		ClassWhile, ClassFor, ClassBreak, ClassContinue, ClassSymNull,
		ClassID, ClassIntConst, ClassCharConst, ClassString, ClassRelop,
		ClassEquop, ClassLogAnd, ClassLogOr, ClassIncop, ClassDecop,
		ClassStructop,
	} {
		m[c.ID()] = c
	}
	for _, c := range punctuatorClasses {
		m[c.ID()] = c
	}
	return m
}

// HumanForID returns the "expected ..." display name for a terminal's
// grammar ID, falling back to the ID itself (quoted) if it names no class
// declared in this file.
func HumanForID(id string) string {
	if c, ok := classesByID[id]; ok {
		return c.Human()
	}
	return "'" + id + "'"
}
