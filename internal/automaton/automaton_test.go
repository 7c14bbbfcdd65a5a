package automaton

import (
	"testing"

	"github.com/dekarrin/subcparse/internal/grammar"
	"github.com/stretchr/testify/assert"
)

// dragonExample is the purple dragon book's example 4.45/4.54:
//
//	S -> C C
//	C -> c C | d
//
// Its canonical LR(1) collection has exactly 10 states (dragon book fig.
// 4.49).
func dragonExample(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New("S")
	g.AddTerminal("c")
	g.AddTerminal("d")
	g.AddProduction("S", "C", "C")
	g.AddProduction("C", "c", "C")
	g.AddProduction("C", "d")
	if err := g.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return g
}

func Test_CanonicalCollection_stateCount(t *testing.T) {
	assert := assert.New(t)

	g := dragonExample(t)
	a := CanonicalCollection(g)

	assert.Len(a.States, 10)
}

func Test_CanonicalCollection_startClosureIncludesBothProductionsOfC(t *testing.T) {
	assert := assert.New(t)

	g := dragonExample(t)
	a := CanonicalCollection(g)
	start := a.States[a.Start]

	foundC2c := false
	foundC2d := false
	for it := range start.Items {
		prod := g.Production(it.Production)
		if prod.LHS != "C" || it.Dot != 0 {
			continue
		}
		if prod.RHS[0] == "c" {
			foundC2c = true
		}
		if prod.RHS[0] == "d" {
			foundC2d = true
		}
	}
	assert.True(foundC2c)
	assert.True(foundC2d)
}

func Test_MergeLALR1_doesNotIncreaseStateCount(t *testing.T) {
	assert := assert.New(t)

	g := dragonExample(t)
	canon := CanonicalCollection(g)
	merged := MergeLALR1(canon)

	assert.LessOrEqual(len(merged.States), len(canon.States))
	assert.Greater(len(merged.States), 0)
}

func Test_Goto_emptyWhenNoMatchingShift(t *testing.T) {
	assert := assert.New(t)

	g := dragonExample(t)
	a := CanonicalCollection(g)
	start := a.States[a.Start]

	next := Goto(g, start.Items, "nonexistent-symbol")
	assert.Empty(next)
}

func Test_ItemSet_HashIsOrderIndependent(t *testing.T) {
	assert := assert.New(t)

	i1 := grammar.LR1Item{LR0Item: grammar.LR0Item{Production: 1, Dot: 0}, Lookahead: "c"}
	i2 := grammar.LR1Item{LR0Item: grammar.LR0Item{Production: 2, Dot: 1}, Lookahead: "d"}

	a := NewItemSet(i1, i2)
	b := NewItemSet(i2, i1)

	assert.Equal(a.Hash(), b.Hash())
}
