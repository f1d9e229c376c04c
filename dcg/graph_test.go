package dcg_test

import (
	"testing"

	"github.com/verigraph/verigraph/dcg"
)

// TestAddEdge verifies insertion, idempotence and lookup in both
// storage orientations.
func TestAddEdge(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")

	e := dcg.Edge{U: u, V: v}
	g.AddEdge(e)
	g.AddEdge(e)
	if g.Size() != 1 {
		t.Errorf("Size() = %d after duplicate insert, want 1", g.Size())
	}
	if !g.HasEdge(e) {
		t.Errorf("HasEdge(%v) = false after insert", e)
	}
	// A leftward edge between the same cells is a distinct edge.
	back := dcg.Edge{U: v, V: u}
	if g.HasEdge(back) {
		t.Errorf("HasEdge(%v) = true, reversed edge was never added", back)
	}
	g.AddEdge(back)
	if g.Size() != 2 {
		t.Errorf("Size() = %d, want 2", g.Size())
	}
}

// TestAddEdgeNonAdjacent verifies that edges between non-neighboring tape
// cells are refused.
func TestAddEdgeNonAdjacent(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 2, "Right", "b")

	defer func() {
		if recover() == nil {
			t.Errorf("AddEdge across two cells did not panic")
		}
	}()
	g.AddEdge(dcg.Edge{U: u, V: v})
}

// TestRemoveEdge verifies removal updates size and incident lists.
func TestRemoveEdge(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")
	e := dcg.Edge{U: u, V: v}

	g.AddEdge(e)
	g.RemoveEdge(e)
	if g.Size() != 0 {
		t.Errorf("Size() = %d after removal, want 0", g.Size())
	}
	if g.HasEdge(e) {
		t.Errorf("HasEdge(%v) = true after removal", e)
	}
	if got := g.OutgoingEdgesOf(u); len(got) != 0 {
		t.Errorf("OutgoingEdgesOf(u) = %v after removal, want empty", got)
	}
}

// TestIncidentEdges verifies incoming and outgoing enumeration around a
// middle vertex with neighbors on both sides.
func TestIncidentEdges(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")
	w := floor(g, 2, "Right", "b")

	e1 := dcg.Edge{U: u, V: v}
	e2 := dcg.Edge{U: v, V: w}
	g.AddEdge(e1)
	g.AddEdge(e2)

	if got := g.OutgoingEdgesOf(v); len(got) != 1 || got[0] != e2 {
		t.Errorf("OutgoingEdgesOf(v) = %v, want [%v]", got, e2)
	}
	if got := g.IncomingEdgesOf(v); len(got) != 1 || got[0] != e1 {
		t.Errorf("IncomingEdgesOf(v) = %v, want [%v]", got, e1)
	}
	if !g.HasIncomingEdge(v) {
		t.Errorf("HasIncomingEdge(v) = false, want true")
	}
	if g.HasIncomingEdge(u) {
		t.Errorf("HasIncomingEdge(u) = true, want false")
	}
	if got := g.NextEdges(e1); len(got) != 1 || got[0] != e2 {
		t.Errorf("NextEdges(e1) = %v, want [%v]", got, e2)
	}
	if got := g.PrevEdges(e2); len(got) != 1 || got[0] != e1 {
		t.Errorf("PrevEdges(e2) = %v, want [%v]", got, e1)
	}
}

// TestEdgeIndexRange verifies the populated-slice bounds.
func TestEdgeIndexRange(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	g.AddEdge(dcg.Edge{U: floor(g, 2, "Right", "a"), V: floor(g, 3, "Right", "a")})
	g.AddEdge(dcg.Edge{U: floor(g, 5, "Right", "a"), V: floor(g, 6, "Right", "b")})

	if got := g.MinEdgeIndex(); got != 2 {
		t.Errorf("MinEdgeIndex() = %d, want 2", got)
	}
	if got := g.MaxEdgeIndex(); got != 5 {
		t.Errorf("MaxEdgeIndex() = %d, want 5", got)
	}
	if got := len(g.AllEdges()); got != 2 {
		t.Errorf("AllEdges() has %d edges, want 2", got)
	}
}

// TestCloneSharesVerticesNotEdges verifies that a cloned graph reuses the
// canonical vertex arena while keeping an independent edge set.
func TestCloneSharesVerticesNotEdges(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")
	e := dcg.Edge{U: u, V: v}
	g.AddEdge(e)

	h := g.Clone()
	if h.Size() != 1 || !h.HasEdge(e) {
		t.Fatalf("clone lost the edge set")
	}
	if floor(h, 0, "Start", "a") != u {
		t.Errorf("clone materialized a second vertex for the same configuration")
	}
	h.RemoveEdge(e)
	if !g.HasEdge(e) {
		t.Errorf("removal in clone leaked into the original")
	}
	if h.Stats() != g.Stats() {
		t.Errorf("clone does not share the run counters")
	}
}

// TestAddEdgeAdoptsForeignVertices verifies that a fresh graph populated
// with edges minted on another graph's arena adopts the canonical vertex
// pointers: relation queries answer with pointer-identical endpoints and
// removal clears both directional lists.
func TestAddEdgeAdoptsForeignVertices(t *testing.T) {
	m := testMachine(t)
	g := dcg.NewGraph(m)
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")
	w := g.CaseAt(0, 1, "Start", "a").Vertex(g.CaseAt(0, 0, "Start", "a"))

	h := dcg.NewGraph(m)
	e0 := dcg.Edge{U: u, V: v}
	e1 := dcg.Edge{U: v, V: w}
	h.AddEdge(e0)
	h.AddEdge(e1)

	if got := floor(h, 0, "Start", "a"); got != u {
		t.Errorf("floor configuration resolved to a duplicate of %v", u)
	}
	pe := h.PrecedentEdges(e1)
	if len(pe) != 1 || pe[0] != e0 {
		t.Fatalf("PrecedentEdges(e1) = %v, want [%v]", pe, e0)
	}
	h.RemoveEdge(pe[0])
	if h.HasEdge(e0) {
		t.Errorf("HasEdge(e0) = true after removal")
	}
	if h.Size() != 1 {
		t.Errorf("Size() = %d after removal, want 1", h.Size())
	}
	if got := h.IncomingEdgesOf(v); len(got) != 0 {
		t.Errorf("IncomingEdgesOf(v) = %v after removal, want empty", got)
	}
}

// TestSizeMatchesStoredEdges verifies the edge counter stays equal to the
// enumerable edges and to the incident-list totals through interleaved
// inserts and removals.
func TestSizeMatchesStoredEdges(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")
	w := floor(g, 2, "Right", "b")
	x := floor(g, 2, "Right", "a")

	check := func(when string) {
		t.Helper()
		if got := len(g.AllEdges()); got != g.Size() {
			t.Errorf("%s: AllEdges() holds %d edges, Size() = %d", when, got, g.Size())
		}
		in, out := 0, 0
		for i := 0; i <= 3; i++ {
			for _, y := range g.VerticesAt(i) {
				in += len(g.IncomingEdgesOf(y))
				out += len(g.OutgoingEdgesOf(y))
			}
		}
		if in != g.Size() || out != g.Size() {
			t.Errorf("%s: incident lists count %d in / %d out, Size() = %d", when, in, out, g.Size())
		}
	}

	g.AddEdge(dcg.Edge{U: u, V: v})
	g.AddEdge(dcg.Edge{U: v, V: w})
	g.AddEdge(dcg.Edge{U: v, V: x})
	g.AddEdge(dcg.Edge{U: x, V: v})
	check("after inserts")
	g.RemoveEdge(dcg.Edge{U: v, V: w})
	check("after removal")
	g.RemoveEdge(dcg.Edge{U: v, V: w})
	check("after removing an absent edge")
	g.AddEdge(dcg.Edge{U: v, V: w})
	check("after reinsert")
}

// TestVerticesAt verifies per-cell vertex enumeration without duplicates.
func TestVerticesAt(t *testing.T) {
	g := dcg.NewGraph(testMachine(t))
	u := floor(g, 0, "Start", "a")
	v := floor(g, 1, "Right", "a")
	w := floor(g, 2, "Right", "b")
	g.AddEdge(dcg.Edge{U: u, V: v})
	g.AddEdge(dcg.Edge{U: v, V: w})

	got := g.VerticesAt(1)
	if len(got) != 1 || got[0] != v {
		t.Errorf("VerticesAt(1) = %v, want [%v]", got, v)
	}
}
