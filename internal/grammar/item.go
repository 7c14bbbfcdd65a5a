package grammar

import "fmt"

// LR0Item is a grammar position with no lookahead: a production together
// with a dot position.
type LR0Item struct {
	// Production is the index into the owning Grammar's production list.
	Production int
	// Dot is the position of the dot within the production's rhs, in
	// [0, len(rhs)].
	Dot int
}

func (it LR0Item) String() string {
	return fmt.Sprintf("P%d@%d", it.Production, it.Dot)
}

// LR1Item is an LR0Item paired with a single lookahead terminal. Value
// semantics: two items with identical components are equal, so LR1Item is
// safe to use as a map key.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (it LR1Item) String() string {
	return fmt.Sprintf("%s,%s", it.LR0Item.String(), it.Lookahead)
}

// Core returns the LR0 core of the item (production and dot position,
// lookahead dropped), used to key LALR(1) state merging.
func (it LR1Item) Core() LR0Item {
	return it.LR0Item
}
