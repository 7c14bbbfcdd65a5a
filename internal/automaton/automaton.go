// Package automaton builds the canonical LR(1) collection of item sets for a
// grammar and merges it into an LALR(1) automaton by core. LR1Item sets are
// comparable Go values, so states here are identified by a sorted content
// hash of their items rather than by a separately-maintained name map.
package automaton

import (
	"sort"
	"strings"

	"github.com/dekarrin/subcparse/internal/grammar"
)

// ItemSet is an unordered set of LR(1) items.
type ItemSet map[grammar.LR1Item]bool

// NewItemSet returns an ItemSet containing the given items.
func NewItemSet(items ...grammar.LR1Item) ItemSet {
	s := ItemSet{}
	for _, it := range items {
		s[it] = true
	}
	return s
}

// Add inserts it into the set.
func (s ItemSet) Add(it grammar.LR1Item) { s[it] = true }

// Union returns a new ItemSet containing every item of s and o.
func (s ItemSet) Union(o ItemSet) ItemSet {
	out := ItemSet{}
	for it := range s {
		out[it] = true
	}
	for it := range o {
		out[it] = true
	}
	return out
}

// Items returns the set's members in no particular order.
func (s ItemSet) Items() []grammar.LR1Item {
	out := make([]grammar.LR1Item, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	return out
}

// Hash returns a content hash that is equal for two ItemSets iff they
// contain exactly the same items, used as canonical LR(1) state identity per
// over sorted (production, dot, lookahead) triples.
func (s ItemSet) Hash() string {
	return hashItems(s.Items(), true)
}

// CoreHash returns a content hash over the item set's core only (lookaheads
// dropped), used to key LALR(1) state merging.
func (s ItemSet) CoreHash() string {
	return hashItems(s.Items(), false)
}

func hashItems(items []grammar.LR1Item, withLookahead bool) string {
	parts := make([]string, len(items))
	for i, it := range items {
		if withLookahead {
			parts[i] = it.String()
		} else {
			parts[i] = it.Core().String()
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Closure computes the closure of an LR(1) item set: for every item [A -> alpha . B beta, a] in the set, add [B -> . gamma,
// b] for every production B -> gamma and every b in FIRST(beta a), for as
// long as new items keep appearing.
func Closure(g *grammar.Grammar, items ItemSet) ItemSet {
	closure := ItemSet{}
	for it := range items {
		closure.Add(it)
	}

	changed := true
	for changed {
		changed = false
		for it := range closure {
			prod := g.Production(it.Production)
			if it.Dot >= len(prod.RHS) {
				continue
			}
			b := prod.RHS[it.Dot]
			if !g.IsNonterminal(b) {
				continue
			}

			beta := prod.RHS[it.Dot+1:]
			lookaheads, nullable := g.FirstOfSequence(beta)
			if nullable {
				lookaheads[it.Lookahead] = true
			}

			for _, prodIdx := range g.ProductionsFor(b) {
				for la := range lookaheads {
					newItem := grammar.LR1Item{
						LR0Item:   grammar.LR0Item{Production: prodIdx, Dot: 0},
						Lookahead: la,
					}
					if !closure[newItem] {
						closure.Add(newItem)
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// Goto computes GOTO(I, X): the closure of every item in I whose dot can
// shift across symbol X.
func Goto(g *grammar.Grammar, items ItemSet, sym string) ItemSet {
	moved := ItemSet{}
	for it := range items {
		prod := g.Production(it.Production)
		if it.Dot >= len(prod.RHS) {
			continue
		}
		if prod.RHS[it.Dot] != sym {
			continue
		}
		moved.Add(grammar.LR1Item{
			LR0Item:   grammar.LR0Item{Production: it.Production, Dot: it.Dot + 1},
			Lookahead: it.Lookahead,
		})
	}
	if len(moved) == 0 {
		return moved
	}
	return Closure(g, moved)
}

// State is one state of the LR(1)/LALR(1) automaton: its item set and the
// transitions leading out of it, keyed by grammar symbol.
type State struct {
	Items       ItemSet
	Transitions map[string]int
}

// Automaton is the full canonical LR(1) or LALR(1) collection, with the
// start state's index and every state's outgoing transitions.
type Automaton struct {
	States []State
	Start  int
}

// CanonicalCollection builds the canonical LR(1) collection of sets of items
// for g: start with the closure of
// {[start' -> . start, $]}, then breadth-first compute GOTO(I, X) for every
// state I already found and every grammar symbol X, adding newly-discovered
// states to the collection until no more appear.
func CanonicalCollection(g *grammar.Grammar) *Automaton {
	startItem := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{Production: 0, Dot: 0},
		Lookahead: "$",
	}
	start := Closure(g, NewItemSet(startItem))

	indexByHash := map[string]int{}
	a := &Automaton{}

	addState := func(items ItemSet) int {
		h := items.Hash()
		if idx, ok := indexByHash[h]; ok {
			return idx
		}
		idx := len(a.States)
		indexByHash[h] = idx
		a.States = append(a.States, State{Items: items, Transitions: map[string]int{}})
		return idx
	}

	a.Start = addState(start)

	symbols := append(append([]string{}, g.Terminals()...), g.Nonterminals()...)

	frontier := []int{a.Start}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		for _, sym := range symbols {
			next := Goto(g, a.States[cur].Items, sym)
			if len(next) == 0 {
				continue
			}
			h := next.Hash()
			_, existed := indexByHash[h]
			nextIdx := addState(next)
			a.States[cur].Transitions[sym] = nextIdx
			if !existed {
				frontier = append(frontier, nextIdx)
			}
		}
	}

	return a
}

// MergeLALR1 collapses a canonical LR(1) collection into an LALR(1)
// automaton by merging states that share the same core (production, dot
// position pairs, lookaheads dropped), unioning lookaheads per core element
// and rewriting transitions accordingly. Any
// reduce/reduce conflict that arises purely from this merge indicates the
// grammar is not LALR(1); this function does not itself detect that (table
// construction, which examines completed items per state, does).
func MergeLALR1(canon *Automaton) *Automaton {
	coreToMerged := map[string]int{}
	merged := &Automaton{}

	oldToNew := make([]int, len(canon.States))

	for i, st := range canon.States {
		core := st.Items.CoreHash()
		newIdx, ok := coreToMerged[core]
		if !ok {
			newIdx = len(merged.States)
			coreToMerged[core] = newIdx
			merged.States = append(merged.States, State{Items: ItemSet{}, Transitions: map[string]int{}})
		}
		for it := range st.Items {
			merged.States[newIdx].Items.Add(it)
		}
		oldToNew[i] = newIdx
	}

	for i, st := range canon.States {
		newIdx := oldToNew[i]
		for sym, target := range st.Transitions {
			merged.States[newIdx].Transitions[sym] = oldToNew[target]
		}
	}

	merged.Start = oldToNew[canon.Start]
	return merged
}
