package util

import (
	"strings"
)

// MakeTextList joins items into a prose list: "a", "a and b", or, for three
// or more, an Oxford-comma list ending in "..., and last".
func MakeTextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		var sb strings.Builder
		for _, it := range items[:len(items)-1] {
			sb.WriteString(it)
			sb.WriteString(", ")
		}
		sb.WriteString("and ")
		sb.WriteString(items[len(items)-1])
		return sb.String()
	}
}

// ArticleFor returns "a" or "an" depending on whether s would be pronounced
// starting with a vowel sound. If capital is true, the article is
// capitalized.
func ArticleFor(s string, capital bool) string {
	article := "a"
	if len(s) > 0 && strings.ContainsRune("aeiouAEIOU", rune(s[0])) {
		article = "an"
	}
	if capital {
		article = strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}

// Stack is a simple LIFO stack. Of holds the backing slice directly so
// callers can range over it (e.g. for trace/diagnostic output) without an
// accessor method.
type Stack[E any] struct {
	Of []E
}

// Push adds v to the top of the stack.
func (s *Stack[E]) Push(v E) {
	s.Of = append(s.Of, v)
}

// Pop removes and returns the top of the stack. Panics if the stack is empty.
func (s *Stack[E]) Pop() E {
	last := len(s.Of) - 1
	v := s.Of[last]
	s.Of = s.Of[:last]
	return v
}

// Peek returns the top of the stack without removing it. Panics if the stack
// is empty.
func (s *Stack[E]) Peek() E {
	return s.Of[len(s.Of)-1]
}

// Empty reports whether the stack has no elements.
func (s *Stack[E]) Empty() bool {
	return len(s.Of) == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[E]) Len() int {
	return len(s.Of)
}
