package feasible_test

import (
	"testing"

	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/feasible"
)

func scannerMachine(t *testing.T) *dcg.Machine {
	t.Helper()
	m, err := dcg.NewMachine(dcg.Machine{
		Start:   "Start",
		Accept:  "Accept",
		Reject:  "Reject",
		States:  []string{"Start", "Right", "Other", "Accept", "Reject"},
		Symbols: []string{"a", "b", dcg.Blank},
		Delta: func(state, symbol string) (string, string, int) {
			switch {
			case state == "Start" && symbol == "a":
				return "Right", "a", +1
			case state == "Right" && symbol == "a":
				return "Right", "a", +1
			case state == "Other" && symbol == "a":
				return "Other", "a", +1
			case state == "Right" && symbol == "b":
				return "Accept", "b", +1
			}
			return "Reject", symbol, +1
		},
	})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

func vertex(g *dcg.Graph, index int, state, symbol string) *dcg.Vertex {
	return g.CaseAt(index, 0, state, symbol).Vertex(nil)
}

// chain builds a three-cell rightward walk and returns the graph, its
// start vertex and its two edges.
func chain(t *testing.T) (*dcg.Graph, *dcg.Vertex, dcg.Edge, dcg.Edge) {
	g := dcg.NewGraph(scannerMachine(t))
	u := vertex(g, 0, "Start", "a")
	v := vertex(g, 1, "Right", "a")
	w := vertex(g, 2, "Right", "b")
	e1 := dcg.Edge{U: u, V: v}
	e2 := dcg.Edge{U: v, V: w}
	g.AddEdge(e1)
	g.AddEdge(e2)
	return g, u, e1, e2
}

// TestComputeFeasibleGraphChain verifies a plain walk from the start vertex
// to the final edge survives intact.
func TestComputeFeasibleGraphChain(t *testing.T) {
	g, u, e1, e2 := chain(t)

	h := feasible.ComputeFeasibleGraph(g, []*dcg.Vertex{u}, dcg.NewEdgeSet(e2), nil)
	if h.Size() != 2 {
		t.Fatalf("feasible graph has %d edges, want 2", h.Size())
	}
	if !h.HasEdge(e1) || !h.HasEdge(e2) {
		t.Errorf("feasible graph dropped a chain edge")
	}
}

// TestComputeFeasibleGraphUnreachable verifies that edges disconnected from
// the start vertex are excluded.
func TestComputeFeasibleGraphUnreachable(t *testing.T) {
	g, u, _, e2 := chain(t)
	stray := dcg.Edge{U: vertex(g, 5, "Right", "a"), V: vertex(g, 6, "Right", "a")}
	g.AddEdge(stray)

	h := feasible.ComputeFeasibleGraph(g, []*dcg.Vertex{u}, dcg.NewEdgeSet(e2), nil)
	if h.HasEdge(stray) {
		t.Errorf("feasible graph kept an unreachable edge")
	}
	if !h.HasEdge(e2) {
		t.Errorf("feasible graph lost the final edge")
	}
}

// TestComputeFeasibleGraphDeadBranch verifies a split branch with no
// continuation is pruned without harming the surviving walk.
func TestComputeFeasibleGraphDeadBranch(t *testing.T) {
	g, u, e1, e2 := chain(t)
	dead := dcg.Edge{U: e1.V, V: vertex(g, 2, "Other", "a")}
	g.AddEdge(dead)

	h := feasible.ComputeFeasibleGraph(g, []*dcg.Vertex{u}, dcg.NewEdgeSet(e2), nil)
	if h.Size() >= g.Size() {
		t.Errorf("pruning did not decrease the edge count: %d -> %d", g.Size(), h.Size())
	}
	if h.HasEdge(dead) {
		t.Errorf("feasible graph kept the dead branch")
	}
	if !h.HasEdge(e1) || !h.HasEdge(e2) {
		t.Errorf("pruning the dead branch removed walk edges")
	}
}

// TestComputeFeasibleGraphIterationCap drives the prune-then-remove loop
// the existence check runs: each round recomputes the feasible graph and
// deletes the final edge. The working graph must shrink every round and
// drain within a hard iteration cap.
func TestComputeFeasibleGraphIterationCap(t *testing.T) {
	g, u, _, e2 := chain(t)
	g.AddEdge(dcg.Edge{U: e2.U, V: vertex(g, 2, "Other", "a")})

	const maxRounds = 8
	prev := g.Size() + 1
	for i := 0; ; i++ {
		if i > maxRounds {
			t.Fatalf("pruning loop still running after %d rounds", maxRounds)
		}
		h := feasible.ComputeFeasibleGraph(g, []*dcg.Vertex{u}, dcg.NewEdgeSet(e2), nil)
		if h.Size() >= prev {
			t.Fatalf("round %d: working graph did not shrink: %d -> %d", i, prev, h.Size())
		}
		if h.Size() == 0 {
			break
		}
		prev = h.Size()
		h.RemoveEdge(e2)
		g = h
	}
}

// TestComputeFeasibleGraphNoFinal verifies an unreachable final edge yields
// an empty graph.
func TestComputeFeasibleGraphNoFinal(t *testing.T) {
	g, u, _, _ := chain(t)
	far := dcg.Edge{U: vertex(g, 5, "Right", "a"), V: vertex(g, 6, "Right", "a")}
	g.AddEdge(far)

	h := feasible.ComputeFeasibleGraph(g, []*dcg.Vertex{u}, dcg.NewEdgeSet(far), nil)
	if h.Size() != 0 {
		t.Errorf("feasible graph has %d edges, want 0", h.Size())
	}
}
