package dcg_test

import (
	"testing"

	"github.com/verigraph/verigraph/dcg"
)

// testMachine is a minimal right-scanner: it walks over 'a' cells and
// accepts on the first 'b'. Everything else rejects in place.
func testMachine(t *testing.T) *dcg.Machine {
	t.Helper()
	m, err := dcg.NewMachine(dcg.Machine{
		Start:   "Start",
		Accept:  "Accept",
		Reject:  "Reject",
		States:  []string{"Start", "Right", "Left", "Accept", "Reject"},
		Symbols: []string{"a", "b", dcg.Blank},
		Delta: func(state, symbol string) (string, string, int) {
			switch {
			case state == "Start" && symbol == "a":
				return "Right", "a", +1
			case state == "Right" && symbol == "a":
				return "Right", "a", +1
			case state == "Right" && symbol == "b":
				return "Accept", "b", +1
			case state == "Left":
				return "Left", symbol, -1
			}
			return "Reject", symbol, +1
		},
	})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

// floor returns the tier-0 vertex for the given configuration.
func floor(g *dcg.Graph, index int, state, symbol string) *dcg.Vertex {
	return g.CaseAt(index, 0, state, symbol).Vertex(nil)
}
