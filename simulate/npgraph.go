package simulate

import (
	"fmt"

	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/vlog"
)

// NPGraph is the master computation graph of a verifier run: the full
// dynamic computation graph over the input tape plus a certificate region
// of m cells. It owns the canonical vertex arena; every vertex the run
// touches is minted here.
type NPGraph struct {
	*dcg.Graph

	tape        []rune
	m           int
	certSymbols []string
}

// NewNPGraph builds the master graph for machine mach over the given input
// tape with a certificate region of m cells appended.
func NewNPGraph(mach *dcg.Machine, tape string, m int) *NPGraph {
	return &NPGraph{
		Graph:       dcg.NewGraph(mach),
		tape:        []rune(tape),
		m:           m,
		certSymbols: mach.CertSymbols,
	}
}

// Tape returns the input tape string.
func (g *NPGraph) Tape() string { return string(g.tape) }

// CertLength returns the certificate region length.
func (g *NPGraph) CertLength() int { return g.m }

// SuccessorWith mints the vertex one tier above u in state q, reading u's
// output and descending from u's case.
func (g *NPGraph) SuccessorWith(u *dcg.Vertex, q string) *dcg.Vertex {
	return g.CaseAt(u.Index(), u.Tier()+1, q, u.Output()).Vertex(u.Case)
}

// FloorNextEdges returns the tier-0 continuations of v: outside the taped
// region the head reads blank, inside the input it reads the tape
// literal, and inside the certificate region one edge per certificate
// symbol, since every certificate is simulated at once.
func (g *NPGraph) FloorNextEdges(v *dcg.Vertex) []dcg.Edge {
	i, q := v.NextIndex(), v.NextState()
	if i < 0 {
		vlog.Verbose("negative index accessed", "index", i)
	}
	mk := func(s string) dcg.Edge {
		return dcg.Edge{U: v, V: g.CaseAt(i, 0, q, s).Vertex(nil)}
	}
	switch {
	case i < 0 || i >= len(g.tape)+g.m:
		vlog.Debug("blank area accessed", "index", i)
		return []dcg.Edge{mk(g.Machine().Blank)}
	case i < len(g.tape):
		return []dcg.Edge{mk(string(g.tape[i]))}
	default:
		out := make([]dcg.Edge, 0, len(g.certSymbols))
		for _, s := range g.certSymbols {
			out = append(out, mk(s))
		}
		return out
	}
}

// NextEdgesAbovePreds returns the continuations of u lying one tier above
// each predecessor edge in preds. A zero edge in preds stands for the
// tier floor and contributes u's floor continuations instead. Each
// predecessor (v,w) must end on u's index and start on u's next index.
func (g *NPGraph) NextEdgesAbovePreds(u *dcg.Vertex, preds []dcg.Edge) []dcg.Edge {
	set := make(dcg.EdgeSet)
	for _, e := range preds {
		if e.IsZero() {
			for _, f := range g.FloorNextEdges(u) {
				set.Add(f)
			}
			continue
		}
		v, w := e.U, e.V
		if w.Index() != u.Index() || u.NextIndex() != v.Index() {
			panic(fmt.Sprintf("simulate: edge %v is not a precedent of %v", e, u))
		}
		z := g.CaseAt(v.Index(), v.Tier()+1, u.NextState(), v.Output()).Vertex(v.Case)
		set.Add(dcg.Edge{U: u, V: z})
	}
	return set.Sorted()
}
