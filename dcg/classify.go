package dcg

import "fmt"

// Edge and node classification predicates. The feasibility pruning cascade
// keys off these shapes: a pendant edge survives pruning exactly when one
// of the classifications below licenses it.

// IsFoldingNode reports whether v both receives and emits an edge on the
// same side. A computation walk reverses direction at such a vertex.
func (g *Graph) IsFoldingNode(v *Vertex) bool {
	i := v.Index()
	if l := g.edges.At(i - 1).peek(v); l != nil {
		if len(l.leftIncoming) > 0 && len(l.leftOutgoing) > 0 {
			return true
		}
	}
	if l := g.edges.At(i).peek(v); l != nil {
		if len(l.rightIncoming) > 0 && len(l.rightOutgoing) > 0 {
			return true
		}
	}
	return false
}

func (g *Graph) mustHaveEdge(e Edge, op string) {
	if !g.HasEdge(e) {
		panic(fmt.Sprintf("dcg: %s on absent edge %v", op, e))
	}
}

// IsSplittingEdge reports whether e's source emits more than one edge in
// e's direction. e must be stored.
func (g *Graph) IsSplittingEdge(e Edge) bool {
	g.mustHaveEdge(e, "IsSplittingEdge")
	l := g.edges.At(e.Index()).peek(e.U)
	if e.U.Index() < e.V.Index() {
		return len(l.rightOutgoing) > 1
	}
	return len(l.leftOutgoing) > 1
}

// IsMergingEdge reports whether e's target receives more than one edge
// from e's direction. e must be stored.
func (g *Graph) IsMergingEdge(e Edge) bool {
	g.mustHaveEdge(e, "IsMergingEdge")
	l := g.edges.At(e.Index()).peek(e.V)
	if e.U.Index() < e.V.Index() {
		return len(l.leftIncoming) > 1
	}
	return len(l.rightIncoming) > 1
}

// IsCombinedMergingEdge reports whether some other edge into e's target
// starts on a vertex sharing e's source case. e must be stored.
func (g *Graph) IsCombinedMergingEdge(e Edge) bool {
	g.mustHaveEdge(e, "IsCombinedMergingEdge")
	for _, f := range g.IncomingEdgesOf(e.V) {
		if f.U != e.U && f.U.Case.Same(e.U.Case) {
			return true
		}
	}
	return false
}

// IsCombinedFoldingEdge reports whether e's source folds and a sibling
// vertex of the same case continues into e's target case.
func (g *Graph) IsCombinedFoldingEdge(e Edge) bool {
	if !g.IsFoldingNode(e.U) {
		return false
	}
	for _, w := range e.U.Case.Vertices() {
		if w == e.U {
			continue
		}
		for _, f := range g.OutgoingEdgesOf(w) {
			if f.V.Case.Same(e.V.Case) {
				return true
			}
		}
	}
	return false
}

// IsCombiningEdge reports whether a sibling of e's target, in the same
// slice, either receives an edge from outside e's source case or differs
// from e's target in folding shape. e must be stored.
func (g *Graph) IsCombiningEdge(e Edge) bool {
	g.mustHaveEdge(e, "IsCombiningEdge")
	s := g.edges.At(e.Index())
	vFolds := g.IsFoldingNode(e.V)
	for _, w := range e.V.Case.Vertices() {
		if w == e.V {
			continue
		}
		if l := s.peek(w); l != nil {
			for _, x := range l.leftIncoming {
				if !x.Case.Same(e.U.Case) {
					return true
				}
			}
			for _, x := range l.rightIncoming {
				if !x.Case.Same(e.U.Case) {
					return true
				}
			}
		}
		if g.IsFoldingNode(w) != vFolds {
			return true
		}
	}
	return false
}

// IsPseudoCombiningEdge reports whether e's target does not fold itself
// but some succedent of it does.
func (g *Graph) IsPseudoCombiningEdge(e Edge) bool {
	if g.IsFoldingNode(e.V) {
		return false
	}
	for _, w := range g.Succedents(e.V) {
		if g.IsFoldingNode(w) {
			return true
		}
	}
	return false
}
