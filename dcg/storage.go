package dcg

import (
	"fmt"
	"sort"
)

// edgeList holds, for one vertex inside one edge slice, the four directional
// edge lists. "Left" edges touch the cell below the slice index, "right"
// edges the slice index itself; incoming/outgoing is relative to the vertex
// the list belongs to. Lists keep insertion order so that walks taking "the
// first edge" are deterministic.
type edgeList struct {
	at *Vertex

	leftIncoming  []*Vertex
	leftOutgoing  []*Vertex
	rightIncoming []*Vertex
	rightOutgoing []*Vertex
}

func (l *edgeList) count() int {
	return len(l.leftIncoming) + len(l.leftOutgoing) + len(l.rightIncoming) + len(l.rightOutgoing)
}

// remove deletes the first occurrence of v from list, preserving order.
func removeVertex(list []*Vertex, v *Vertex) []*Vertex {
	for i, w := range list {
		if w == v {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func containsVertex(list []*Vertex, v *Vertex) bool {
	for _, w := range list {
		if w == v {
			return true
		}
	}
	return false
}

// edgeSlice stores every edge whose lower endpoint index equals index,
// per-vertex, plus the slice edge count.
type edgeSlice struct {
	index int
	edges map[VertexKey]*edgeList
	count int
}

func newEdgeSlice(index int) *edgeSlice {
	return &edgeSlice{index: index, edges: make(map[VertexKey]*edgeList)}
}

// listFor returns the edge list of v inside this slice, materializing it on
// first access. v must sit at the slice index or one above it.
func (s *edgeSlice) listFor(v *Vertex) *edgeList {
	if i := v.Index(); i != s.index && i-1 != s.index {
		panic(fmt.Sprintf("dcg: vertex %v outside edge slice %d", v, s.index))
	}
	l, ok := s.edges[v.Key()]
	if !ok {
		l = &edgeList{at: v}
		s.edges[v.Key()] = l
	}
	return l
}

// peek is listFor without materialization.
func (s *edgeSlice) peek(v *Vertex) *edgeList {
	return s.edges[v.Key()]
}

// lists returns the materialized edge lists in deterministic (vertex key)
// order.
func (s *edgeSlice) lists() []*edgeList {
	out := make([]*edgeList, 0, len(s.edges))
	for _, l := range s.edges {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return vertexKeyLess(out[i].at.Key(), out[j].at.Key())
	})
	return out
}

// allVertices returns every vertex that owns an edge list in this slice.
func (s *edgeSlice) allVertices() []*Vertex {
	out := make([]*Vertex, 0, len(s.edges))
	for _, l := range s.lists() {
		out = append(out, l.at)
	}
	return out
}

// allEdges enumerates the edges stored in this slice, each once, oriented as
// they were added.
func (s *edgeSlice) allEdges() []Edge {
	var out []Edge
	for _, l := range s.lists() {
		v := l.at
		if v.Index() != s.index {
			continue
		}
		for _, u := range l.rightIncoming {
			out = append(out, Edge{U: u, V: v})
		}
		for _, w := range l.rightOutgoing {
			out = append(out, Edge{U: v, V: w})
		}
	}
	return out
}

// floorEdges enumerates the slice edges whose target endpoint sits on the
// deterministic floor (tier 0).
func (s *edgeSlice) floorEdges() []Edge {
	var out []Edge
	for _, l := range s.lists() {
		v := l.at
		if v.Tier() != 0 {
			continue
		}
		for _, u := range l.leftIncoming {
			out = append(out, Edge{U: u, V: v})
		}
		for _, u := range l.rightIncoming {
			out = append(out, Edge{U: u, V: v})
		}
	}
	return out
}

func (s *edgeSlice) hasIncomingEdge(v *Vertex) bool {
	l := s.peek(v)
	return l != nil && len(l.leftIncoming)+len(l.rightIncoming) > 0
}

func (s *edgeSlice) hasOutgoingEdge(v *Vertex) bool {
	l := s.peek(v)
	return l != nil && len(l.leftOutgoing)+len(l.rightOutgoing) > 0
}

// vertexAxis is the sparse vertex store: tape index → tier → state → symbol
// → canonical Case. Cases (and the floor vertex of a tier-0 case) are
// materialized on first access.
type vertexAxis struct {
	machine *Machine
	cells   *Cells[*tierArray]
}

type tierArray struct {
	index int
	tiers []map[string]map[string]*Case
}

func newVertexAxis(m *Machine) *vertexAxis {
	return &vertexAxis{
		machine: m,
		cells: NewCells(func(index int) *tierArray {
			return &tierArray{index: index}
		}),
	}
}

// caseAt returns the canonical case of this axis for the given
// configuration, creating it (and computing its transition) on first
// access.
func (a *vertexAxis) caseAt(index, tier int, state, symbol string) *Case {
	ta := a.cells.At(index)
	for len(ta.tiers) <= tier {
		ta.tiers = append(ta.tiers, make(map[string]map[string]*Case))
	}
	byState := ta.tiers[tier]
	bySym, ok := byState[state]
	if !ok {
		bySym = make(map[string]*Case)
		byState[state] = bySym
	}
	c, ok := bySym[symbol]
	if !ok {
		c = newCase(a.machine, index, tier, state, symbol)
		bySym[symbol] = c
	}
	return c
}

// statesAt lists, in sorted order, the states already materialized at a
// given cell and tier. Out-of-range tiers yield nil without expanding.
func (a *vertexAxis) statesAt(index, tier int) []string {
	if !a.cells.Defined(index) {
		return nil
	}
	ta := a.cells.At(index)
	if tier >= len(ta.tiers) {
		return nil
	}
	out := make([]string, 0, len(ta.tiers[tier]))
	for q := range ta.tiers[tier] {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

func vertexKeyLess(a, b VertexKey) bool {
	switch {
	case a.Index != b.Index:
		return a.Index < b.Index
	case a.Tier != b.Tier:
		return a.Tier < b.Tier
	case a.State != b.State:
		return a.State < b.State
	case a.Symbol != b.Symbol:
		return a.Symbol < b.Symbol
	case a.PredState != b.PredState:
		return a.PredState < b.PredState
	default:
		return a.PredSymbol < b.PredSymbol
	}
}

// EdgeLess orders edges by source key then target key, with the zero edge
// first.
func EdgeLess(a, b Edge) bool {
	// Zero edges (the floor marker) sort first.
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && !b.IsZero()
	}
	if ak, bk := a.U.Key(), b.U.Key(); ak != bk {
		return vertexKeyLess(ak, bk)
	}
	return vertexKeyLess(a.V.Key(), b.V.Key())
}

// SortEdges orders edges deterministically (by source key, then target
// key). Worklist algorithms use it to make set-seeded iteration order
// reproducible.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return EdgeLess(edges[i], edges[j]) })
}

// SortedEdgeSet returns the members of set in deterministic order.
func SortedEdgeSet(set map[Edge]struct{}) []Edge {
	out := make([]Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	SortEdges(out)
	return out
}
