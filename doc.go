// Package verigraph simulates NP verifier Turing Machines across all
// certificates at once, on a single deterministic control process.
//
// Instead of enumerating certificate strings one by one, the engine grows a
// sparse dynamic computation graph that represents every machine
// configuration reachable under any certificate, and extends it one verified
// edge at a time:
//
//	dcg/        — configuration model, sparse indexed storage and the
//	              dynamic computation graph with its edge classification
//	              predicates (folding, merging, splitting, combining)
//	feasible/   — minimal feasible subgraph computation: cover-edge
//	              propagation plus iterative step-pendant pruning
//	walk/       — verification of concrete, single-history computation
//	              walks inside a feasible graph
//	simulate/   — the orchestrator driving graph growth until an accepting
//	              configuration is reached or the candidate frontier empties
//	verifiertm/ — concrete verifier machines (SAT and Subset-Sum) with
//	              their transition tables and tape helpers
//	vlog/       — verbose-level structured logging shared by the engine
//
// A run is configured by an immutable dcg.Machine (state set, tape alphabet,
// transition function) and an input tape string; the answer is "Yes" or
// "No", with a witness certificate reported on acceptance.
//
//	go get github.com/verigraph/verigraph
package verigraph
