// Package feasible computes feasible subgraphs of a dynamic computation
// graph: the subgraph of edges that can still take part in a valid
// computation walk from a set of start vertices to a set of final edges.
//
// What: cover-edge propagation by weak ceiling adjacency, step-pendant
// edge detection, and the pruning cascade that removes pendant edges until
// the subgraph stabilizes.
//
// Why: the simulation never enumerates certificates; instead it repeatedly
// narrows the speculative graph to its feasible core and inspects what
// survives. Everything here is a pure function of the input graph — the
// result is always a freshly built graph sharing vertex identity with the
// input.
package feasible

import (
	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/vlog"
)

// Cover is a per-slice-index family of edge sets: the cover edges of a
// graph with respect to a final edge set.
type Cover struct {
	cells *dcg.Cells[dcg.EdgeSet]
}

func newCover() *Cover {
	return &Cover{cells: dcg.NewCells(func(int) dcg.EdgeSet { return make(dcg.EdgeSet) })}
}

// Has reports whether e is a cover edge.
func (c *Cover) Has(e dcg.Edge) bool {
	return c.cells.At(e.Index()).Has(e)
}

func (c *Cover) add(e dcg.Edge) {
	c.cells.At(e.Index()).Add(e)
}

// collectWithPath keeps only the cover edges lying on a backward path from
// a final edge.
func collectWithPath(g *dcg.Graph, c0 *Cover, ef dcg.EdgeSet) *Cover {
	out := newCover()
	visited := make(dcg.EdgeSet)
	stack := ef.Sorted()
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(e) {
			continue
		}
		if c0.Has(e) {
			out.add(e)
		}
		visited.Add(e)
		stack = append(stack, g.IncomingEdgesOf(e.U)...)
	}
	return out
}

// CoverEdges computes the cover of g with respect to the final edges ef:
// the final edges themselves plus everything reachable from them by weak
// ceiling adjacency, restricted to edges on a backward path from ef.
func CoverEdges(g *dcg.Graph, ef dcg.EdgeSet) *Cover {
	c := newCover()
	seen := make(dcg.EdgeSet)
	queue := ef.Sorted()
	for _, f := range queue {
		c.add(f)
		seen.Add(f)
	}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, e := range dcg.WeakCeilingAdjacentEdges(g, f, ef) {
			if seen.Has(e) {
				continue
			}
			c.add(e)
			seen.Add(e)
			queue = append(queue, e)
		}
	}
	return collectWithPath(g, c, ef)
}

// stepPendantEdges walks g from the start vertices v0, building the
// reachable subgraph h and collecting the edges that are step-pendant in
// it: edges with no continuation, no origin, or no surviving tier
// neighbor.
func stepPendantEdges(g *dcg.Graph, c *Cover, v0 []*dcg.Vertex, ef dcg.EdgeSet) (*dcg.Graph, dcg.EdgeSet) {
	h := dcg.NewGraph(g.Machine())
	pendant := make(dcg.EdgeSet)

	starts := make(map[dcg.VertexKey]struct{}, len(v0))
	var stack []dcg.Edge
	for _, v := range v0 {
		starts[v.Key()] = struct{}{}
		stack = append(stack, g.OutgoingEdgesOf(v)...)
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if h.HasEdge(f) {
			continue
		}
		h.AddEdge(f)

		if !c.Has(f) && g.CountSuccedentEdges(f) == 0 {
			pendant.Add(f)
		}
		if f.V.Tier() > 0 && g.CountPrecedentEdges(f) == 0 {
			pendant.Add(f)
		}
		if !ef.Has(f) {
			next := g.NextEdges(f)
			if len(next) == 0 {
				pendant.Add(f)
			} else {
				stack = append(stack, next...)
			}
		}
		if _, ok := starts[f.U.Key()]; !ok {
			prev := g.PrevEdges(f)
			if len(prev) == 0 {
				pendant.Add(f)
			} else {
				stack = append(stack, prev...)
			}
		}
	}
	return h, pendant
}

// ComputeFeasibleGraph returns the feasible subgraph of g with respect to
// the start vertices v0 and final edges ef. extra seeds the removal
// worklist with edges already known infeasible; pass nil when there are
// none. If the cascade consumes every final edge the result is an empty
// graph.
func ComputeFeasibleGraph(g *dcg.Graph, v0 []*dcg.Vertex, ef dcg.EdgeSet, extra dcg.EdgeSet) *dcg.Graph {
	vlog.Verbose("computing feasible graph", "edges", g.Size(), "final", len(ef))

	c := CoverEdges(g, ef)
	h, pendant := stepPendantEdges(g, c, v0, ef)

	remaining := make(dcg.EdgeSet, len(ef))
	for e := range ef {
		remaining.Add(e)
	}

	seed := make(dcg.EdgeSet, len(pendant)+len(extra))
	for e := range pendant {
		seed.Add(e)
	}
	for e := range extra {
		seed.Add(e)
	}
	stack := seed.Sorted()

	vlog.Verbose("step-pendant edges collected", "reachable", h.Size(), "pendant", len(stack))

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !h.HasEdge(e) {
			continue
		}

		// Removing a non-merging edge strands its continuations;
		// removing a non-splitting edge strands its origins.
		if !h.IsMergingEdge(e) {
			stack = append(stack, h.NextEdges(e)...)
		}
		for _, f := range h.SuccedentEdges(e) {
			if h.CountPrecedentEdges(f) == 1 {
				stack = append(stack, f)
			}
		}
		for _, f := range h.PrecedentEdges(e) {
			if c.Has(f) {
				continue
			}
			if h.CountSuccedentEdges(f) == 1 {
				stack = append(stack, f)
			}
		}
		if !h.IsSplittingEdge(e) {
			for _, f := range h.PrevEdges(e) {
				if !ef.Has(f) {
					stack = append(stack, f)
				}
			}
		}

		h.RemoveEdge(e)

		if remaining.Has(e) {
			delete(remaining, e)
			if len(remaining) == 0 {
				return dcg.NewGraph(g.Machine())
			}
		}
	}
	return h
}
