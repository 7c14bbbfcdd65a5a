package lex

import (
	"fmt"
	"strings"

	"github.com/dekarrin/subcparse/internal/lexerr"
)

// Lexer turns subC source text into a TokenStream. The terminal alphabet is
// fixed by the grammar rather than built up by callers, so there is no
// class-registration step: it is a single concrete rune scanner.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New returns a Lexer over the given source text.
func New(source string) *Lexer {
	return &Lexer{src: []rune(source), pos: 0, line: 1, col: 1}
}

// Tokenize scans the entire source and returns a token stream. Scanning is
// eager: subC programs are small enough that buffering the whole stream
// costs nothing and greatly simplifies the multi-char-operator and
// nested-comment logic. On success the returned stream is terminated by
// exactly one token of class EndOfText. If a lexer error occurs mid-scan, the
// returned error is non-nil and the returned stream holds every valid token
// scanned up to that point, with no EndOfText token.
func (lx *Lexer) Tokenize() (TokenStream, error) {
	var toks []Token
	for {
		tok, done, err := lx.next()
		if err != nil {
			return &sliceStream{toks: toks}, err
		}
		toks = append(toks, tok)
		if done {
			break
		}
	}
	return &sliceStream{toks: toks}, nil
}

func (lx *Lexer) peekRune() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.pos], true
}

func (lx *Lexer) peekAt(offset int) (rune, bool) {
	idx := lx.pos + offset
	if idx >= len(lx.src) {
		return 0, false
	}
	return lx.src[idx], true
}

// advance consumes and returns the current rune, updating line/column.
func (lx *Lexer) advance() rune {
	r := lx.src[lx.pos]
	lx.pos++
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
func isAlnum(r rune) bool { return isAlpha(r) || isDigit(r) }

// skipWhitespaceAndComments consumes spaces, tabs, CR/LF, and nested block
// comments. Returns an error if a comment is unterminated or if a "*/"
// appears with no open comment.
func (lx *Lexer) skipWhitespaceAndComments() error {
	for {
		r, ok := lx.peekRune()
		if !ok {
			return nil
		}

		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			lx.advance()
			continue
		}

		if r == '/' {
			if next, ok := lx.peekAt(1); ok && next == '*' {
				if err := lx.skipBlockComment(); err != nil {
					return err
				}
				continue
			}
		}

		if r == '*' {
			if next, ok := lx.peekAt(1); ok && next == '/' {
				return lexerr.UnmatchedCommentClose(lx.line, lx.col)
			}
		}

		return nil
	}
}

// skipBlockComment consumes a "/* ... */" comment, tracking nesting depth so
// that "/* /* */ */" closes only its innermost comment per inner "*/" and the
// outermost comment requires a matching "*/" for every nested "/*".
func (lx *Lexer) skipBlockComment() error {
	startLine, startCol := lx.line, lx.col
	lx.advance() // '/'
	lx.advance() // '*'
	depth := 1

	for depth > 0 {
		r, ok := lx.peekRune()
		if !ok {
			return lexerr.UnterminatedComment(startLine, startCol)
		}

		if r == '/' {
			if next, ok := lx.peekAt(1); ok && next == '*' {
				lx.advance()
				lx.advance()
				depth++
				continue
			}
		}
		if r == '*' {
			if next, ok := lx.peekAt(1); ok && next == '/' {
				lx.advance()
				lx.advance()
				depth--
				continue
			}
		}
		lx.advance()
	}
	return nil
}

// next scans and returns the single next token. done reports whether the
// token returned is the terminal EndOfText sentinel.
func (lx *Lexer) next() (tok Token, done bool, err error) {
	if err := lx.skipWhitespaceAndComments(); err != nil {
		return Token{}, false, err
	}

	r, ok := lx.peekRune()
	if !ok {
		return NewToken(EndOfText, "$", lx.line, lx.col), true, nil
	}

	line, col := lx.line, lx.col

	switch {
	case isAlpha(r):
		return lx.lexIdentifier(line, col), false, nil
	case isDigit(r):
		return lx.lexNumber(line, col)
	case r == '\'':
		return lx.lexCharLiteral(line, col)
	case r == '"':
		return lx.lexStringLiteral(line, col)
	}

	return lx.lexOperator(line, col)
}

func (lx *Lexer) lexIdentifier(line, col int) Token {
	start := lx.pos
	for {
		r, ok := lx.peekRune()
		if !ok || !isAlnum(r) {
			break
		}
		lx.advance()
	}
	lexeme := string(lx.src[start:lx.pos])

	if class, ok := keywordClasses[lexeme]; ok {
		return NewToken(class, lexeme, line, col)
	}
	return NewToken(ClassID, lexeme, line, col)
}

func (lx *Lexer) lexNumber(line, col int) (Token, bool, error) {
	start := lx.pos
	for {
		r, ok := lx.peekRune()
		if !ok || !isDigit(r) {
			break
		}
		lx.advance()
	}

	// float literal: digits '.' digits. Lexed successfully (not a lexer
	// error) but tagged with a terminal the grammar never defines, so the
	// parser itself rejects it.
	if r, ok := lx.peekRune(); ok && r == '.' {
		if next, ok := lx.peekAt(1); ok && isDigit(next) {
			lx.advance() // '.'
			for {
				r, ok := lx.peekRune()
				if !ok || !isDigit(r) {
					break
				}
				lx.advance()
			}
			lexeme := string(lx.src[start:lx.pos])
			return NewToken(classFloatConst, lexeme, line, col), false, nil
		}
	}

	lexeme := string(lx.src[start:lx.pos])
	return NewToken(ClassIntConst, lexeme, line, col), false, nil
}

func (lx *Lexer) lexCharLiteral(line, col int) (Token, bool, error) {
	start := lx.pos
	lx.advance() // opening '

	for {
		r, ok := lx.peekRune()
		if !ok || r == '\n' {
			return Token{}, false, lexerr.UnterminatedLiteral(line, col)
		}
		if r == '\\' {
			lx.advance()
			if _, ok := lx.peekRune(); !ok {
				return Token{}, false, lexerr.UnterminatedLiteral(line, col)
			}
			lx.advance()
			continue
		}
		if r == '\'' {
			lx.advance()
			break
		}
		lx.advance()
	}

	lexeme := string(lx.src[start:lx.pos])
	return NewToken(ClassCharConst, lexeme, line, col), false, nil
}

func (lx *Lexer) lexStringLiteral(line, col int) (Token, bool, error) {
	start := lx.pos
	lx.advance() // opening "

	for {
		r, ok := lx.peekRune()
		if !ok || r == '\n' {
			return Token{}, false, lexerr.UnterminatedLiteral(line, col)
		}
		if r == '\\' {
			lx.advance()
			if _, ok := lx.peekRune(); !ok {
				return Token{}, false, lexerr.UnterminatedLiteral(line, col)
			}
			lx.advance()
			continue
		}
		if r == '"' {
			lx.advance()
			break
		}
		lx.advance()
	}

	lexeme := string(lx.src[start:lx.pos])
	return NewToken(ClassString, lexeme, line, col), false, nil
}

// multiCharOps is checked longest-first so that e.g. "->" is never split into
// "-" followed by ">".
var multiCharOps = []struct {
	text  string
	class TokenClass
}{
	{"->", ClassStructop},
	{"++", ClassIncop},
	{"--", ClassDecop},
	{"<=", ClassRelop},
	{">=", ClassRelop},
	{"==", ClassEquop},
	{"!=", ClassEquop},
	{"&&", ClassLogAnd},
	{"||", ClassLogOr},
}

func (lx *Lexer) lexOperator(line, col int) (Token, bool, error) {
	r := lx.peekRune
	for _, op := range multiCharOps {
		if lx.matches(op.text) {
			lx.advanceN(len(op.text))
			return NewToken(op.class, op.text, line, col), false, nil
		}
	}

	ch, _ := r()
	if ch == '<' || ch == '>' {
		lx.advance()
		return NewToken(ClassRelop, string(ch), line, col), false, nil
	}

	if class, ok := punctuatorClasses[ch]; ok {
		lx.advance()
		return NewToken(class, string(ch), line, col), false, nil
	}

	lx.advance()
	return Token{}, false, lexerr.IllegalChar(ch, line, col)
}

func (lx *Lexer) matches(s string) bool {
	for i, want := range s {
		got, ok := lx.peekAt(i)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func (lx *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		lx.advance()
	}
}

// sliceStream is a TokenStream over a fully-materialized token slice.
type sliceStream struct {
	toks []Token
	pos  int
}

func (s *sliceStream) Next() Token {
	tok := s.Peek()
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return tok
}

func (s *sliceStream) Peek() Token {
	if len(s.toks) == 0 {
		return NewToken(EndOfText, "$", 1, 1)
	}
	if s.pos >= len(s.toks) {
		return s.toks[len(s.toks)-1]
	}
	return s.toks[s.pos]
}

// String renders the stream's tokens for debug output.
func (s *sliceStream) String() string {
	var parts []string
	for _, t := range s.toks {
		parts = append(parts, fmt.Sprintf("%s:%q", t.Class().ID(), t.Lexeme()))
	}
	return strings.Join(parts, " ")
}
