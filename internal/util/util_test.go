package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", MakeTextList(nil))
	assert.Equal("one", MakeTextList([]string{"one"}))
	assert.Equal("one and two", MakeTextList([]string{"one", "two"}))
	assert.Equal("one, two, and three", MakeTextList([]string{"one", "two", "three"}))
}

func Test_ArticleFor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a", ArticleFor("banana", false))
	assert.Equal("an", ArticleFor("apple", false))
	assert.Equal("An", ArticleFor("apple", true))
	assert.Equal("a", ArticleFor("", false))
}

func Test_Stack(t *testing.T) {
	assert := assert.New(t)

	var s Stack[int]
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(3, s.Len())
	assert.Equal(3, s.Peek())

	assert.Equal(3, s.Pop())
	assert.Equal(2, s.Pop())
	assert.Equal(1, s.Len())
	assert.False(s.Empty())
}

func Test_StringSet(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSet([]string{"a", "b"})
	assert.True(s.Has("a"))
	assert.False(s.Has("c"))
	assert.Equal(2, s.Len())

	s.Add("c")
	assert.Equal([]string{"a", "b", "c"}, s.Sorted())

	other := StringSetOf([]string{"a", "b", "c"})
	assert.True(s.Equal(other))

	s.Remove("c")
	assert.False(s.Equal(other))
	assert.Equal("{a, b}", s.String())
}

func Test_SVSet(t *testing.T) {
	assert := assert.New(t)

	s := NewSVSet[int]()
	s.Set("z", 1)
	s.Set("a", 2)
	assert.True(s.Has("z"))
	assert.False(s.Has("q"))
	assert.Equal(2, s.Len())
	assert.Equal([]string{"a", "z"}, s.SortedElements())
}

func Test_OrderedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"z": 1, "a": 2, "m": 3}
	assert.Equal([]string{"a", "m", "z"}, OrderedKeys(m))
}
