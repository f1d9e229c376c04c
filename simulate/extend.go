package simulate

import (
	"sort"

	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/walk"
	"github.com/verigraph/verigraph/vlog"
)

// extension records an edge admitted to the working graph together with
// the ceiling edge it was extended above. A zero Prev means the edge sits
// directly above the tier floor and its ceiling must be recomputed when
// the boundary is collected.
type extension struct {
	Prev dcg.Edge
	Edge dcg.Edge
}

type extensionSet map[extension]struct{}

func (s extensionSet) add(prev, e dcg.Edge) {
	s[extension{Prev: prev, Edge: e}] = struct{}{}
}

func (s extensionSet) sorted() []extension {
	out := make([]extension, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prev != out[j].Prev {
			return dcg.EdgeLess(out[i].Prev, out[j].Prev)
		}
		return dcg.EdgeLess(out[i].Edge, out[j].Edge)
	})
	return out
}

// footmarks records the tier-0 symbol stamped at each tape index along an
// accepting walk; joined in index order it reconstructs the accepted tape.
type footmarks = dcg.Cells[string]

func newFootmarks() *footmarks {
	return dcg.NewCells(func(int) string { return "" })
}

// surface tracks, per slice index, the last walk edge crossing it.
type surface = dcg.Cells[dcg.Edge]

func newSurface() *surface {
	return dcg.NewCells(func(int) dcg.Edge { return dcg.Edge{} })
}

// addExtendableEdgeOnCeilingEdges scans the walk surface for edges whose
// shape can shadow another walk (merging, combining, or pseudo-combining)
// and records, for each succedent that folds back onto the surface edge,
// the reachable incoming edges as verification candidates.
func addExtendableEdgeOnCeilingEdges(h *dcg.Graph, s *surface, ev extensionSet) {
	s.Each(func(_ int, e dcg.Edge) {
		if e.IsZero() {
			return
		}
		if !h.IsMergingEdge(e) && !h.IsPseudoCombiningEdge(e) && !h.IsCombiningEdge(e) {
			return
		}
		seen := make(map[dcg.VertexKey]struct{})
		queue := h.Succedents(e.V)
		for len(queue) > 0 {
			w := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			if _, ok := seen[w.Key()]; ok {
				continue
			}
			seen[w.Key()] = struct{}{}
			if h.IsFoldingNode(w) {
				queue = append(queue, h.Succedents(w)...)
			} else if w.NextIndex() == e.U.Index() {
				in := dcg.NewEdgeSet(h.IncomingEdgesOf(w)...)
				for _, ec := range dcg.FilterWithPathForward(h, e, in) {
					ev.add(e, ec)
				}
			}
		}
	})
}

// extendEdgeDirectlyWithWalk admits the verified walk w into h and keeps
// extending it deterministically, spawning a branch for every extra
// continuation, until each branch halts. On reaching the accept state it
// returns the branch's footmarks; otherwise nil.
func extendEdgeDirectlyWithWalk(g *NPGraph, h *dcg.Graph, w []dcg.Edge, ev extensionSet) *footmarks {
	mach := g.Machine()
	s := newSurface()
	r := newFootmarks()

	var e dcg.Edge
	for _, e = range w {
		if e.U.Tier() == 0 {
			r.Set(e.U.Index(), e.U.Symbol())
		}
		if !h.HasEdge(e) {
			if e != w[len(w)-1] {
				vlog.Info("extended edge is a merging edge", "edge", e.String())
			}
			break
		}
		s.Set(e.Index(), e)
	}

	type branch struct {
		e dcg.Edge
		s *surface
		r *footmarks
	}
	stack := []branch{{e: e, s: s, r: r}}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e, s, r := b.e, b.s, b.r
		if h.HasEdge(e) {
			continue
		}
		vlog.Debug("restarted extension", "edge", e.String())

		walkLength := 0
		for {
			isNew := false
			if !h.HasEdge(e) {
				h.AddEdge(e)
				isNew = true
			}
			s.Set(e.Index(), e)
			if e.V.Tier() == 0 {
				r.Set(e.V.Index(), e.V.Symbol())
			}

			if isNew && h.IsMergingEdge(e) {
				addExtendableEdgeOnCeilingEdges(h, s, ev)
			}

			walkLength++
			if mach.Halting(e.V.State()) {
				h.Stats().HaltingEdges++
				break
			}

			pi := e.V.Index()
			if n := e.V.NextIndex(); n < pi {
				pi = n
			}
			prev := s.At(pi)

			if isNew && !prev.IsZero() && e.V.NextIndex() != e.U.Index() {
				if h.IsMergingEdge(prev) || h.IsPseudoCombiningEdge(prev) || h.IsCombiningEdge(prev) {
					ev.add(dcg.Edge{}, e)
				}
			}

			next := g.NextEdgesAbovePreds(e.V, []dcg.Edge{prev})
			e = next[0]
			for _, f := range next[1:] {
				if !h.HasEdge(f) {
					vlog.Debug("walk split", "edge", f.String())
					stack = append(stack, branch{e: f, s: s.Clone(), r: r.Clone()})
				}
			}
		}

		h.Stats().ExtendedWalks++
		h.Stats().WalkLengthSum += walkLength

		if e.V.State() == mach.Accept {
			vlog.Info("accepted edge", "edge", e.String())
			return r
		}
		vlog.Info("walk rejected", "edge", e.String(), "tape", vlog.TruncateTape(joinFootmarks(r, mach.Blank), 60))
	}
	return nil
}

// collectRestrictedBoundaryEdges gathers the next round of verification
// candidates: for each recorded extension whose target still moves, the
// continuations above its ceiling edges that h does not hold yet.
func collectRestrictedBoundaryEdges(g *NPGraph, h *dcg.Graph, ev extensionSet) []dcg.Edge {
	mach := g.Machine()
	out := make(dcg.EdgeSet)
	vlog.Verbose("collecting boundary edges", "extensions", len(ev))

	for _, x := range ev.sorted() {
		e := x.Edge
		if e.V.NextIndex() == e.U.Index() || mach.Halting(e.V.State()) {
			continue
		}
		var preds []dcg.Edge
		if x.Prev.IsZero() {
			ceiling := dcg.NewEdgeSet(dcg.ForwardWeakCeilingAdjacentEdges(h, e)...)
			preds = dcg.FilterWithPathBackward(h, e, ceiling)
		} else {
			preds = []dcg.Edge{x.Prev}
		}
		for _, f := range g.NextEdgesAbovePreds(e.V, preds) {
			if !h.HasEdge(f) {
				out.Add(f)
			}
		}
	}
	return out.Sorted()
}

// extendByVerifiableEdges tries each boundary candidate in turn:
// speculatively add it to h, verify a walk to it exists, and on success
// extend the walk directly. Returns the accepting footmarks as soon as a
// branch accepts, nil when the queue drains.
func extendByVerifiableEdges(g *NPGraph, v0 []*dcg.Vertex, q0 []dcg.Edge, h *dcg.Graph, ev extensionSet) *footmarks {
	queue := q0
	for len(queue) > 0 {
		ef := queue[0]
		queue = queue[1:]
		if h.HasEdge(ef) {
			continue
		}

		h.AddEdge(ef)
		h.Stats().CandidatesVerified++
		w := walk.VerifyExistenceOfWalk(h, v0, ef)
		h.RemoveEdge(ef)

		if w == nil {
			vlog.Debug("candidate not extended", "edge", ef.String(), "remaining", len(queue))
			continue
		}
		vlog.Info("candidate extended", "edge", ef.String(), "remaining", len(queue))
		h.Stats().ExtendedByVerification++
		if r := extendEdgeDirectlyWithWalk(g, h, w, ev); r != nil {
			return r
		}
	}
	return nil
}
