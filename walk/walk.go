// Package walk verifies the existence of computation walks in a dynamic
// computation graph. Given start vertices and a candidate end edge, it
// repeatedly takes arbitrary deterministic walks, prunes the ones that
// merge back into the remaining graph, and either certifies a walk ending
// at the candidate or identifies a disjoint edge proving there is none.
package walk

import (
	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/feasible"
	"github.com/verigraph/verigraph/vlog"
)

// TakeArbitraryWalk follows outgoing edges from the first start vertex,
// always choosing the first continuation consistent with the walk's own
// surface: at each tape index the transition case last stamped there binds
// every later crossing. Any consistent choice rule yields an equivalent
// walk; first-edge selection keeps it deterministic.
func TakeArbitraryWalk(g *dcg.Graph, v0 []*dcg.Vertex) []dcg.Edge {
	surface := dcg.NewCells(func(int) *dcg.Case { return nil })

	es := g.OutgoingEdgesOf(v0[0])
	if len(es) == 0 {
		vlog.L().Warn("initial edge missing, empty walk returned")
		return nil
	}

	var w []dcg.Edge
	e, ok := es[0], true
	for ok {
		surface.Set(e.U.Index(), e.U.Case)
		w = append(w, e)
		ok = false
		for _, n := range g.NextEdges(e) {
			if n.V.Tier() == 0 || sameCase(g.PrecedentCase(n.V), surface.At(n.V.Index())) {
				e, ok = n, true
				break
			}
		}
	}
	return w
}

func sameCase(a, b *dcg.Case) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Same(b)
}

// FindFirstMergingEdgeOrFinalEdge returns the first merging edge of w in
// g, or w's final edge when no edge before it merges.
func FindFirstMergingEdgeOrFinalEdge(g *dcg.Graph, w []dcg.Edge) dcg.Edge {
	for i := 0; i < len(w)-1; i++ {
		if g.IsMergingEdge(w[i]) {
			return w[i]
		}
	}
	return w[len(w)-1]
}

// addObsoleteWalkEnds re-adds to g the final edges of walks that pruning
// already removed: edges of the full graph gU reachable from v0 whose
// target still has a precedent edge in g. Their feasibility is re-checked
// by the next feasible-graph computation.
func addObsoleteWalkEnds(gU, g *dcg.Graph, v0 []*dcg.Vertex) dcg.EdgeSet {
	obsolete := make(dcg.EdgeSet)
	visited := make(dcg.EdgeSet)
	var stack []dcg.Edge
	for _, v := range v0 {
		stack = append(stack, gU.OutgoingEdgesOf(v)...)
	}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(e) {
			continue
		}
		visited.Add(e)
		if g.HasEdge(e) {
			stack = append(stack, gU.NextEdges(e)...)
		} else if e.V.Tier() > 0 && g.CountPrecedentEdges(e) > 0 {
			g.AddEdge(e)
			obsolete.Add(e)
		}
	}
	return obsolete
}

// PruneWalk removes w's first merging (or final) edge from g and returns
// the feasible graph that remains. With preserveObsolete set, the final
// edges of previously pruned walks are first re-added so the result keeps
// every obsolete walk alive alongside the final edges ef.
func PruneWalk(gU, g *dcg.Graph, v0 []*dcg.Vertex, ef dcg.EdgeSet, w []dcg.Edge, preserveObsolete bool) *dcg.Graph {
	cut := FindFirstMergingEdgeOrFinalEdge(g, w)

	obsolete := make(dcg.EdgeSet)
	if preserveObsolete {
		obsolete = addObsoleteWalkEnds(gU, g, v0)
		vlog.Debug("obsolete walk ends re-added", "count", len(obsolete))
	}
	gU.Stats().PrunedWalks++

	finals := make(dcg.EdgeSet, len(ef)+len(obsolete))
	for e := range ef {
		finals.Add(e)
	}
	for e := range obsolete {
		finals.Add(e)
	}

	g.RemoveEdge(cut)
	pruned := feasible.ComputeFeasibleGraph(g, v0, finals, nil)
	g.AddEdge(cut)

	if pruned.Size() > 0 {
		alive := false
		for f := range ef {
			if g.HasEdge(f) {
				alive = true
				break
			}
		}
		if alive {
			for e := range obsolete {
				if pruned.HasEdge(e) {
					pruned.RemoveEdge(e)
				}
			}
		}
	}
	vlog.Debug("walk pruned", "cut", cut.String(), "preserveObsolete", preserveObsolete, "remaining", pruned.Size())
	return pruned
}

// FindDisjointEdge returns the first edge of w absent from r. ok is false
// when every edge of w lies in r, meaning the whole walk is obsolete.
func FindDisjointEdge(r *dcg.Graph, w []dcg.Edge) (dcg.Edge, bool) {
	for _, e := range w {
		if !r.HasEdge(e) {
			return e, true
		}
	}
	return dcg.Edge{}, false
}

// findFeasibleOrDisjointEdge works on a copy of g, peeling walks off until
// either a walk reaches ef (returning ef and the walk) or only embedded
// walks remain and a disjoint edge is exposed. ok is false when the graph
// prunes away entirely.
func findFeasibleOrDisjointEdge(gU, g *dcg.Graph, v0 []*dcg.Vertex, ef dcg.Edge) (dcg.Edge, []dcg.Edge, bool) {
	g = g.Clone()
	finals := dcg.NewEdgeSet(ef)
	r := dcg.NewGraph(g.Machine())

	vlog.Debug("searching feasible or disjoint edge", "edges", g.Size())
	for g.Size() > 0 {
		w := TakeArbitraryWalk(g, v0)
		if len(w) == 0 {
			return dcg.Edge{}, nil, false
		}
		if containsEdge(w, ef) {
			return ef, w, true
		}
		if r.Size() > 0 {
			// Only the embedded walk remains; whatever W carries
			// beyond it is disjoint or redundant.
			f, found := FindDisjointEdge(r, w)
			if !found {
				return dcg.Edge{}, w, false
			}
			return f, w, true
		}
		h := PruneWalk(gU, g, v0, finals, w, false)
		if h.Size() == 0 {
			for _, e := range w {
				r.AddEdge(e)
			}
			g = PruneWalk(gU, g, v0, finals, w, true)
		} else {
			g = h
		}
	}
	vlog.Verbose("graph pruned to empty")
	return dcg.Edge{}, nil, false
}

func containsEdge(w []dcg.Edge, e dcg.Edge) bool {
	for _, f := range w {
		if f == e {
			return true
		}
	}
	return false
}

// VerifyExistenceOfWalk reports whether a feasible computation walk from
// v0 ending at ef exists in g0, returning the walk when it does and nil
// otherwise. Disjoint edges discovered along the way are removed from the
// working feasible graph until the question settles.
func VerifyExistenceOfWalk(g0 *dcg.Graph, v0 []*dcg.Vertex, ef dcg.Edge) []dcg.Edge {
	finals := dcg.NewEdgeSet(ef)
	g := feasible.ComputeFeasibleGraph(g0, v0, finals, nil)
	vlog.Debug("verifying walk", "end", ef.String(), "full", g0.Size(), "feasible", g.Size())

	for g.Size() > 0 {
		e, w, found := findFeasibleOrDisjointEdge(g0, g, v0, ef)
		if found && e == ef {
			vlog.Verbose("walk verified", "end", ef.String())
			return w
		}
		if !found {
			return nil
		}
		g0.Stats().RemovedDisjointEdges++
		g.RemoveEdge(e)
		g = feasible.ComputeFeasibleGraph(g, v0, finals, nil)
		vlog.Debug("removed disjoint edge", "edge", e.String(), "remaining", g.Size())
	}
	return nil
}
