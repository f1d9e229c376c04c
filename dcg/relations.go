package dcg

// Precedent/succedent relations between vertices and edges one tier apart.
// These are the moral equivalent of graph adjacency along the tier axis:
// a vertex on tier t descends from the configuration it branched off on
// tier t-1, and the walk machinery constantly asks which stored edges sit
// directly above or below a given edge.

// PrecedentCase returns the transition case v branched off from, one tier
// below, or nil for a floor vertex.
func (g *Graph) PrecedentCase(v *Vertex) *Case {
	if v.Tier() == 0 {
		return nil
	}
	return g.CaseAt(v.Index(), v.Tier()-1, v.LastState(), v.LastSymbol())
}

// Precedents returns the vertices registered in g on the case v branched
// off from. Empty for floor vertices.
func (g *Graph) Precedents(v *Vertex) []*Vertex {
	c := g.PrecedentCase(v)
	if c == nil {
		return nil
	}
	return c.Vertices()
}

// Succedents returns the vertices registered in g one tier above v whose
// predecessor case is v's case: the configurations that branched off v.
func (g *Graph) Succedents(v *Vertex) []*Vertex {
	i, t := v.Index(), v.Tier()+1
	s := v.Output()
	var out []*Vertex
	for _, q := range g.verts.statesAt(i, t) {
		for _, w := range g.CaseAt(i, t, q, s).Vertices() {
			if w.Pred != nil && w.Pred.Same(v.Case) {
				out = append(out, w)
			}
		}
	}
	return out
}

// CountPrecedentEdges counts, within e's slice, the outgoing edge ends of
// every precedent vertex of e's target.
func (g *Graph) CountPrecedentEdges(e Edge) int {
	s := g.edges.At(e.Index())
	cnt := 0
	for _, p := range g.Precedents(e.V) {
		if l := s.peek(p); l != nil {
			cnt += len(l.rightOutgoing) + len(l.leftOutgoing)
		}
	}
	return cnt
}

// CountSuccedentEdges counts, within e's slice, the incoming edge ends of
// every succedent vertex of e's source.
func (g *Graph) CountSuccedentEdges(e Edge) int {
	s := g.edges.At(e.Index())
	cnt := 0
	for _, w := range g.Succedents(e.U) {
		if l := s.peek(w); l != nil {
			cnt += len(l.leftIncoming) + len(l.rightIncoming)
		}
	}
	return cnt
}

// PrecedentEdges returns the stored edges lying directly below e: edges
// out of a precedent of e's target whose far end is a precedent of e's
// source, e's source itself, or deeper than one tier below it. Empty for
// floor edges.
func (g *Graph) PrecedentEdges(e Edge) []Edge {
	if e.V.Tier() == 0 {
		return nil
	}
	predU := make(map[VertexKey]struct{})
	for _, p := range g.Precedents(e.U) {
		predU[p.Key()] = struct{}{}
	}
	set := make(map[Edge]struct{})
	for _, p := range g.Precedents(e.V) {
		for _, f := range g.OutgoingEdgesOf(p) {
			_, below := predU[f.V.Key()]
			if below || f.V.Key() == e.U.Key() || f.V.Tier() < e.U.Tier()-1 {
				set[f] = struct{}{}
			}
		}
	}
	return SortedEdgeSet(set)
}

// SuccedentEdges returns the stored edges lying directly above e: edges
// into a succedent of e's source whose far end is a succedent of e's
// target, e's target itself, or higher than one tier above it.
func (g *Graph) SuccedentEdges(e Edge) []Edge {
	succV := make(map[VertexKey]struct{})
	for _, w := range g.Succedents(e.V) {
		succV[w.Key()] = struct{}{}
	}
	set := make(map[Edge]struct{})
	for _, w := range g.Succedents(e.U) {
		for _, f := range g.IncomingEdgesOf(w) {
			_, above := succV[f.U.Key()]
			if above || f.U.Key() == e.V.Key() || f.U.Tier() > e.V.Tier()+1 {
				set[f] = struct{}{}
			}
		}
	}
	return SortedEdgeSet(set)
}
