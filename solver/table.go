package solver

import "github.com/baduk-engine/sente/game/goban"

// Table is the transposition cache used during a search. Keys are position
// encodings and values are the negamax result for the side to move, so an
// entry is only meaningful while the searching colour and the cache agree.
// Solve builds a fresh Table per call for exactly that reason.
type Table struct {
	entries map[goban.Key]bool

	lookups uint64
	hits    uint64
	stores  uint64
}

func newTable() *Table {
	return &Table{entries: make(map[goban.Key]bool)}
}

// Lookup returns the cached result for k and whether one exists.
func (t *Table) Lookup(k goban.Key) (win, ok bool) {
	t.lookups++
	win, ok = t.entries[k]
	if ok {
		t.hits++
	}
	return win, ok
}

// Store records the result for k, overwriting any previous entry.
func (t *Table) Store(k goban.Key, win bool) {
	t.stores++
	t.entries[k] = win
}

// Len reports the number of cached positions.
func (t *Table) Len() int { return len(t.entries) }
