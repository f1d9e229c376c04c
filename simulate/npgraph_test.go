package simulate_test

import (
	"testing"

	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/simulate"
)

func scannerMachine(t *testing.T) *dcg.Machine {
	t.Helper()
	m, err := dcg.NewMachine(dcg.Machine{
		Start:       "Start",
		Accept:      "Accept",
		Reject:      "Reject",
		States:      []string{"Start", "Right", "Accept", "Reject"},
		Symbols:     []string{"a", "b", dcg.Blank},
		CertSymbols: []string{"a", "b"},
		Delta: func(state, symbol string) (string, string, int) {
			switch {
			case state == "Start" && symbol == "a":
				return "Right", "a", +1
			case state == "Right" && symbol == "a":
				return "Right", "a", +1
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

// TestFloorNextEdgesRegions verifies continuation edges per tape region:
// input literal, certificate fan-out, blank beyond.
func TestFloorNextEdgesRegions(t *testing.T) {
	g := simulate.NewNPGraph(scannerMachine(t), "aa", 1)
	v0 := g.CaseAt(0, 0, "Start", "a").Vertex(nil)

	// Head inside the input region reads the tape literal.
	next := g.FloorNextEdges(v0)
	if len(next) != 1 {
		t.Fatalf("input region: %d edges, want 1", len(next))
	}
	if got := next[0].V; got.Index() != 1 || got.Symbol() != "a" || got.State() != "Right" {
		t.Errorf("input region continuation = %v", got)
	}

	// Head inside the certificate region branches over the certificate
	// alphabet.
	v1 := next[0].V
	cert := g.FloorNextEdges(v1)
	if len(cert) != 2 {
		t.Fatalf("certificate region: %d edges, want 2", len(cert))
	}
	for _, e := range cert {
		if e.V.Index() != 2 {
			t.Errorf("certificate continuation at index %d, want 2", e.V.Index())
		}
	}

	// Head beyond the certificate region reads blank.
	v2 := g.CaseAt(2, 0, "Right", "a").Vertex(nil)
	blank := g.FloorNextEdges(v2)
	if len(blank) != 1 || blank[0].V.Symbol() != dcg.Blank {
		t.Errorf("blank region continuation = %v", blank)
	}
}

// TestSuccessorWith verifies the minted vertex sits one tier up and records
// the resolution case.
func TestSuccessorWith(t *testing.T) {
	g := simulate.NewNPGraph(scannerMachine(t), "aa", 0)
	u := g.CaseAt(1, 0, "Right", "a").Vertex(nil)

	w := g.SuccessorWith(u, "Right")
	if w.Index() != 1 || w.Tier() != 1 || w.Symbol() != u.Output() {
		t.Errorf("SuccessorWith minted %v", w)
	}
	if w.Pred != u.Case {
		t.Errorf("SuccessorWith did not record the resolution case")
	}
}

// TestNextEdgesAbovePredsFloor verifies the zero marker stands for the
// tier floor.
func TestNextEdgesAbovePredsFloor(t *testing.T) {
	g := simulate.NewNPGraph(scannerMachine(t), "aa", 0)
	v0 := g.CaseAt(0, 0, "Start", "a").Vertex(nil)

	got := g.NextEdgesAbovePreds(v0, []dcg.Edge{{}})
	want := g.FloorNextEdges(v0)
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("NextEdgesAbovePreds(zero) = %v, want %v", got, want)
	}
}

// TestNextEdgesAbovePredsLift verifies a real predecessor edge lifts the
// continuation one tier above its source.
func TestNextEdgesAbovePredsLift(t *testing.T) {
	g := simulate.NewNPGraph(scannerMachine(t), "aa", 0)
	u := g.CaseAt(0, 0, "Start", "a").Vertex(nil)
	v := g.CaseAt(1, 0, "Right", "a").Vertex(nil)
	w := g.CaseAt(0, 0, "Right", "a").Vertex(nil)

	// Predecessor edge runs from u's next index back onto u's index.
	pred := dcg.Edge{U: v, V: w}
	got := g.NextEdgesAbovePreds(u, []dcg.Edge{pred})
	if len(got) != 1 {
		t.Fatalf("NextEdgesAbovePreds = %v, want one edge", got)
	}
	z := got[0].V
	if z.Index() != 1 || z.Tier() != 1 || z.State() != u.NextState() {
		t.Errorf("lifted continuation = %v", z)
	}
	if z.Pred != v.Case {
		t.Errorf("lifted continuation does not descend from the predecessor source")
	}
}
