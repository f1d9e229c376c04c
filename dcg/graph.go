package dcg

import "fmt"

// Graph is the dynamic computation graph: a sparse store of configuration
// vertices and index-adjacent edges, growable toward negative indices. Edges
// are stored once, under the lower endpoint index, and queried from both
// endpoints through directional lists.
type Graph struct {
	machine *Machine
	verts   *vertexAxis
	edges   *Cells[*edgeSlice]

	size  int
	stats *Stats
}

// NewGraph returns an empty computation graph for machine m.
func NewGraph(m *Machine) *Graph {
	return &Graph{
		machine: m,
		verts:   newVertexAxis(m),
		edges:   NewCells(newEdgeSlice),
		stats:   &Stats{},
	}
}

// Machine returns the machine specification the graph was built for.
func (g *Graph) Machine() *Machine { return g.machine }

// Stats returns the run counters accumulated on this graph. Clones share
// the same counters.
func (g *Graph) Stats() *Stats { return g.stats }

// CaseAt returns the canonical transition case of this graph for the given
// configuration, materializing it (and invoking the oracle) on first
// access.
func (g *Graph) CaseAt(index, tier int, state, symbol string) *Case {
	return g.verts.caseAt(index, tier, state, symbol)
}

// Size returns the number of stored edges.
func (g *Graph) Size() int { return g.size }

// AddVertex registers v in the vertex axis. Idempotent.
func (g *Graph) AddVertex(v *Vertex) {
	g.CaseAt(v.Index(), v.Tier(), v.State(), v.Symbol()).register(v)
}

// HasEdge reports whether e is stored, in either orientation.
func (g *Graph) HasEdge(e Edge) bool {
	s := g.edges.At(e.Index())
	if l := s.peek(e.U); l != nil && containsVertex(l.rightOutgoing, e.V) {
		return true
	}
	if l := s.peek(e.V); l != nil && containsVertex(l.rightIncoming, e.U) {
		return true
	}
	return false
}

// AddEdge stores e, registering both endpoints. Adding a present edge is a
// no-op. Endpoints must sit at adjacent tape indices.
func (g *Graph) AddEdge(e Edge) {
	d := e.U.Index() - e.V.Index()
	if d != 1 && d != -1 {
		panic(fmt.Sprintf("dcg: edge endpoints not index-adjacent: %v", e))
	}
	if g.HasEdge(e) {
		return
	}
	g.AddVertex(e.U)
	g.AddVertex(e.V)

	s := g.edges.At(e.Index())
	if e.U.Index() < e.V.Index() {
		ul, vl := s.listFor(e.U), s.listFor(e.V)
		ul.rightOutgoing = append(ul.rightOutgoing, e.V)
		vl.leftIncoming = append(vl.leftIncoming, e.U)
	} else {
		ul, vl := s.listFor(e.U), s.listFor(e.V)
		ul.leftOutgoing = append(ul.leftOutgoing, e.V)
		vl.rightIncoming = append(vl.rightIncoming, e.U)
	}
	s.count++
	g.size++
}

// RemoveEdge deletes e. Removing an absent edge is a no-op.
func (g *Graph) RemoveEdge(e Edge) {
	if !g.HasEdge(e) {
		return
	}
	s := g.edges.At(e.Index())
	if e.U.Index() < e.V.Index() {
		ul, vl := s.listFor(e.U), s.listFor(e.V)
		ul.rightOutgoing = removeVertex(ul.rightOutgoing, e.V)
		vl.leftIncoming = removeVertex(vl.leftIncoming, e.U)
	} else {
		ul, vl := s.listFor(e.U), s.listFor(e.V)
		ul.leftOutgoing = removeVertex(ul.leftOutgoing, e.V)
		vl.rightIncoming = removeVertex(vl.rightIncoming, e.U)
	}
	s.count--
	g.size--
}

// IncomingEdgesOf returns the edges ending at v, right side first.
func (g *Graph) IncomingEdgesOf(v *Vertex) []Edge {
	i := v.Index()
	var out []Edge
	if l := g.edges.At(i).peek(v); l != nil {
		for _, u := range l.rightIncoming {
			out = append(out, Edge{U: u, V: v})
		}
	}
	if l := g.edges.At(i - 1).peek(v); l != nil {
		for _, u := range l.leftIncoming {
			out = append(out, Edge{U: u, V: v})
		}
	}
	return out
}

// OutgoingEdgesOf returns the edges starting at v, right side first. Walks
// that take "the first outgoing edge" therefore prefer the rightward
// continuation, which keeps arbitrary-walk selection deterministic.
func (g *Graph) OutgoingEdgesOf(v *Vertex) []Edge {
	i := v.Index()
	var out []Edge
	if l := g.edges.At(i).peek(v); l != nil {
		for _, w := range l.rightOutgoing {
			out = append(out, Edge{U: v, V: w})
		}
	}
	if l := g.edges.At(i - 1).peek(v); l != nil {
		for _, w := range l.leftOutgoing {
			out = append(out, Edge{U: v, V: w})
		}
	}
	return out
}

// HasIncomingEdge reports whether any edge ends at v.
func (g *Graph) HasIncomingEdge(v *Vertex) bool {
	return g.edges.At(v.Index()).hasIncomingEdge(v) ||
		g.edges.At(v.Index()-1).hasIncomingEdge(v)
}

// NextEdges returns the forward continuations of e (edges leaving its
// target).
func (g *Graph) NextEdges(e Edge) []Edge {
	return g.OutgoingEdgesOf(e.V)
}

// PrevEdges returns the backward continuations of e (edges entering its
// source).
func (g *Graph) PrevEdges(e Edge) []Edge {
	return g.IncomingEdgesOf(e.U)
}

// edgeIndexRange returns the lowest and highest slice indices that hold
// edges. ok is false on an empty graph.
func (g *Graph) edgeIndexRange() (lo, hi int, ok bool) {
	if g.size == 0 {
		return 0, 0, false
	}
	lo = g.edges.Base()
	for g.edges.At(lo).count == 0 {
		lo++
	}
	hi = g.edges.Base() + g.edges.Len() - 1
	for g.edges.At(hi).count == 0 {
		hi--
	}
	return lo, hi, true
}

// MinEdgeIndex returns the lowest slice index holding an edge. The graph
// must be non-empty.
func (g *Graph) MinEdgeIndex() int {
	lo, _, ok := g.edgeIndexRange()
	if !ok {
		panic("dcg: MinEdgeIndex on empty graph")
	}
	return lo
}

// MaxEdgeIndex returns the highest slice index holding an edge. The graph
// must be non-empty.
func (g *Graph) MaxEdgeIndex() int {
	_, hi, ok := g.edgeIndexRange()
	if !ok {
		panic("dcg: MaxEdgeIndex on empty graph")
	}
	return hi
}

// AllEdges enumerates every stored edge once, in deterministic order.
func (g *Graph) AllEdges() []Edge {
	lo, hi, ok := g.edgeIndexRange()
	if !ok {
		return nil
	}
	var out []Edge
	for i := lo; i <= hi; i++ {
		out = append(out, g.edges.At(i).allEdges()...)
	}
	return out
}

// FloorEdges enumerates the edges whose target endpoint sits on tier 0, in
// deterministic order.
func (g *Graph) FloorEdges() []Edge {
	lo, hi, ok := g.edgeIndexRange()
	if !ok {
		return nil
	}
	var out []Edge
	for i := lo; i <= hi; i++ {
		out = append(out, g.edges.At(i).floorEdges()...)
	}
	return out
}

// VerticesAt returns the vertices at tape index i that touch at least one
// edge list.
func (g *Graph) VerticesAt(i int) []*Vertex {
	seen := make(map[VertexKey]struct{})
	var out []*Vertex
	for _, s := range []*edgeSlice{g.edges.At(i), g.edges.At(i - 1)} {
		for _, v := range s.allVertices() {
			if v.Index() != i {
				continue
			}
			if _, ok := seen[v.Key()]; ok {
				continue
			}
			seen[v.Key()] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Clone returns a structural copy: the vertex axis (and so vertex identity)
// is shared, edge-list state is rebuilt independently, so mutating the copy
// never affects the original's edges.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		machine: g.machine,
		verts:   g.verts,
		edges:   NewCells(newEdgeSlice),
		stats:   g.stats,
	}
	lo, hi, ok := g.edgeIndexRange()
	if !ok {
		return c
	}
	for i := lo; i <= hi; i++ {
		for _, e := range g.edges.At(i).allEdges() {
			c.AddEdge(e)
		}
	}
	return c
}
