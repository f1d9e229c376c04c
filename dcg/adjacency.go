package dcg

// Weak ceiling adjacency. An edge one tier above e0 is weakly ceiling
// adjacent to it when a chain of folding vertices connects them; the
// searches below walk those chains breadth-first and collect the incoming
// edges of the first non-folding vertices they reach.

// EdgeSet is a membership set of edges. The zero Edge may appear in it as
// the floor marker.
type EdgeSet map[Edge]struct{}

// NewEdgeSet returns a set holding the given edges.
func NewEdgeSet(edges ...Edge) EdgeSet {
	s := make(EdgeSet, len(edges))
	for _, e := range edges {
		s[e] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s EdgeSet) Has(e Edge) bool {
	_, ok := s[e]
	return ok
}

// Add inserts e.
func (s EdgeSet) Add(e Edge) { s[e] = struct{}{} }

// Sorted returns the members in deterministic order.
func (s EdgeSet) Sorted() []Edge { return SortedEdgeSet(s) }

// WeakCeilingAdjacentEdges returns the edges weakly ceiling adjacent to
// e0, searching backward from e0's source (and from its target too when
// e0 is itself a final edge in ef).
func WeakCeilingAdjacentEdges(g *Graph, e0 Edge, ef EdgeSet) []Edge {
	collected := make(EdgeSet)
	visited := make(map[VertexKey]struct{})
	queue := []*Vertex{e0.U}
	if ef.Has(e0) {
		queue = append(queue, e0.V)
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if _, ok := visited[u.Key()]; ok {
			continue
		}
		visited[u.Key()] = struct{}{}
		if g.IsFoldingNode(u) || u == e0.V {
			queue = append(queue, g.Precedents(u)...)
		} else {
			for _, f := range g.IncomingEdgesOf(u) {
				collected.Add(f)
			}
		}
	}
	return collected.Sorted()
}

// ForwardWeakCeilingAdjacentEdges returns the edges weakly ceiling
// adjacent to e0 ahead of it, searching from e0's target. A chain that
// bottoms out with no precedent contributes the zero Edge, standing for
// the tier floor. Halting targets have no forward ceiling.
func ForwardWeakCeilingAdjacentEdges(g *Graph, e0 Edge) []Edge {
	collected := make(EdgeSet)
	if g.machine.Halting(e0.V.State()) {
		return nil
	}
	visited := make(map[VertexKey]struct{})
	queue := []*Vertex{e0.V}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if _, ok := visited[u.Key()]; ok {
			continue
		}
		visited[u.Key()] = struct{}{}
		if g.IsFoldingNode(u) || u == e0.V {
			p := g.Precedents(u)
			if len(p) == 0 {
				collected.Add(Edge{})
			}
			queue = append(queue, p...)
		} else {
			for _, f := range g.IncomingEdgesOf(u) {
				collected.Add(f)
			}
		}
	}
	return collected.Sorted()
}

// FilterWithPathForward returns the members of ef reachable from es along
// stored edges without revisiting es's slice index.
func FilterWithPathForward(g *Graph, es Edge, ef EdgeSet) []Edge {
	collected := make(EdgeSet)
	visited := make(EdgeSet)
	i0 := es.Index()
	stack := []Edge{es}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(e) {
			continue
		}
		visited.Add(e)
		if ef.Has(e) {
			collected.Add(e)
		}
		if e != es && e.Index() == i0 {
			continue
		}
		stack = append(stack, g.NextEdges(e)...)
	}
	return collected.Sorted()
}

// FilterWithPathBackward returns the members of es reachable backward from
// ef along stored edges, stopping at the slice index just past ef's
// target.
func FilterWithPathBackward(g *Graph, ef Edge, es EdgeSet) []Edge {
	collected := make(EdgeSet)
	if len(es) == 0 {
		return nil
	}
	i0 := ef.V.Index()
	if n := ef.V.NextIndex(); n < i0 {
		i0 = n
	}
	visited := make(EdgeSet)
	stack := []Edge{ef}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(e) {
			continue
		}
		visited.Add(e)
		if es.Has(e) {
			collected.Add(e)
		}
		if e.Index() == i0 {
			continue
		}
		stack = append(stack, g.PrevEdges(e)...)
	}
	return collected.Sorted()
}

// AreAdjacent reports whether f continues e or e continues f.
func AreAdjacent(e, f Edge) bool {
	return e.V == f.U || f.V == e.U
}
