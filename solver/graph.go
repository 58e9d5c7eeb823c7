package solver

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/baduk-engine/sente/game/goban"
)

type traceNode struct {
	id     int
	key    goban.Key
	win    bool
	visits int
}

type traceEdge struct {
	from, to int
}

// Trace records the positions a search visits and the order it reached them
// in, for rendering with graphviz. Position keys collapse transpositions into
// a single node, so the rendering is the search DAG rather than the call
// tree.
type Trace struct {
	nodes map[goban.Key]*traceNode
	order []*traceNode
	edges []traceEdge
	seen  map[traceEdge]bool
	stack []*traceNode
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace {
	return &Trace{
		nodes: make(map[goban.Key]*traceNode),
		seen:  make(map[traceEdge]bool),
	}
}

func (t *Trace) enter(k goban.Key) {
	n, ok := t.nodes[k]
	if !ok {
		n = &traceNode{id: len(t.order), key: k}
		t.nodes[k] = n
		t.order = append(t.order, n)
	}
	n.visits++
	if len(t.stack) > 0 {
		e := traceEdge{from: t.stack[len(t.stack)-1].id, to: n.id}
		if !t.seen[e] {
			t.seen[e] = true
			t.edges = append(t.edges, e)
		}
	}
	t.stack = append(t.stack, n)
}

func (t *Trace) leave(k goban.Key, win bool) {
	t.nodes[k].win = win
	t.stack = t.stack[:len(t.stack)-1]
}

// Len reports the number of distinct positions recorded.
func (t *Trace) Len() int { return len(t.order) }

// ToDot renders the recorded search as a graphviz digraph. Winning positions
// for their side to move are drawn green, losing ones red.
func (t *Trace) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	for _, n := range t.order {
		colour := "tomato"
		if n.win {
			colour = "palegreen"
		}
		attrs := map[string]string{
			"fontname":  "Monaco",
			"shape":     "box",
			"style":     "filled",
			"fillcolor": colour,
			"label":     fmt.Sprintf("\"%v\\nvisits %d\"", n.key, n.visits),
		}
		g.AddNode("G", fmt.Sprintf("n%d", n.id), attrs)
	}
	for _, e := range t.edges {
		g.AddEdge(fmt.Sprintf("n%d", e.from), fmt.Sprintf("n%d", e.to), true, nil)
	}
	return g.String()
}
