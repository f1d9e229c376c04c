// Package simulate runs an NP verifier Turing machine over every
// certificate at once. It grows a working computation graph edge by edge,
// admitting speculative boundary edges only after a feasible walk to them
// is verified, and reports acceptance together with a witness certificate
// when one exists.
package simulate

import (
	"fmt"
	"strings"
	"time"

	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/vlog"
)

// Result reports the outcome of a simulation run.
type Result struct {
	// Accepted is true when some certificate drives the verifier to its
	// accept state.
	Accepted bool

	// Witness is the accepted certificate region, present when Accepted
	// and the certificate length is positive.
	Witness string

	// AcceptedTape is the full reconstructed tape of the accepting walk.
	AcceptedTape string

	// Edges is the final size of the working graph.
	Edges int

	// Stats carries the run counters.
	Stats dcg.Stats

	// Elapsed is the wall-clock simulation time.
	Elapsed time.Duration
}

// joinFootmarks renders footmarks in tape order, trimming the surrounding
// blank symbols.
func joinFootmarks(r *footmarks, blank string) string {
	var b strings.Builder
	r.Each(func(_ int, s string) {
		b.WriteString(s)
	})
	return strings.Trim(b.String(), blank)
}

// isAcceptedOnFootmarks is the outer extension loop: verify and admit
// boundary candidates, then collect the next boundary from the recorded
// extensions, until a branch accepts or no extension remains.
func isAcceptedOnFootmarks(g *NPGraph, h *dcg.Graph, v0 []*dcg.Vertex) (*footmarks, bool) {
	seed := make(dcg.EdgeSet)
	for _, v := range v0 {
		for _, e := range g.FloorNextEdges(v) {
			seed.Add(e)
		}
	}
	queue := seed.Sorted()

	for len(queue) > 0 {
		ev := make(extensionSet)
		r := extendByVerifiableEdges(g, v0, queue, h, ev)
		if r != nil {
			return r, true
		}
		if len(ev) == 0 {
			return nil, false
		}
		queue = collectRestrictedBoundaryEdges(g, h, ev)
		vlog.Debug("collected boundary edges", "count", len(queue))
	}
	return nil, false
}

// Run simulates machine mach on the input tape with a certificate region
// of m cells and reports whether any certificate is accepted.
func Run(mach *dcg.Machine, tape string, m int) (*Result, error) {
	if tape == "" {
		return nil, fmt.Errorf("simulate: empty input tape")
	}
	g := NewNPGraph(mach, tape, m)

	s := string([]rune(tape)[0])
	v0 := g.CaseAt(0, 0, mach.Start, s).Vertex(nil)

	h := dcg.NewGraph(mach)
	vlog.Info("simulation started",
		"tape", vlog.TruncateTape(tape, 60), "input", len([]rune(tape)), "cert", m)

	start := time.Now()
	r, accepted := isAcceptedOnFootmarks(g, h, []*dcg.Vertex{v0})
	elapsed := time.Since(start)

	res := &Result{
		Accepted: accepted,
		Edges:    h.Size(),
		Stats:    *h.Stats(),
		Elapsed:  elapsed,
	}
	if accepted {
		res.AcceptedTape = joinFootmarks(r, mach.Blank)
		if m > 0 {
			if _, cert, ok := strings.Cut(res.AcceptedTape, "#"); ok {
				res.Witness = cert
			}
		}
	}
	return res, nil
}

// SimulateVerifierForAllCertificates runs a verifier assembled from raw
// machine parts and returns "Yes" or "No". Run is the structured form;
// this wrapper keeps the classic call shape.
func SimulateVerifierForAllCertificates(tape string, m int, q0 string, symbols []string, delta dcg.DeltaFunc, states []string, certSymbols []string) (string, error) {
	mach, err := dcg.NewMachine(dcg.Machine{
		Start:       q0,
		Accept:      "Accept",
		Reject:      "Reject",
		States:      states,
		Symbols:     symbols,
		Blank:       dcg.Blank,
		CertSymbols: certSymbols,
		Delta:       delta,
	})
	if err != nil {
		return "", err
	}
	res, err := Run(mach, tape, m)
	if err != nil {
		return "", err
	}
	if res.Accepted {
		return "Yes", nil
	}
	return "No", nil
}
