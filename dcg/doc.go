// Package dcg implements the dynamic computation graph used to simulate a
// nondeterministic verifier Turing Machine over all certificates at once.
//
// What:
//
//   - Machine: the immutable specification of a single-tape deterministic
//     verifier (state set, tape alphabet, blank symbol, transition function).
//     One Machine value is threaded through every graph, so independent
//     machines can be simulated in one process without shared state.
//   - Case: a transition case — the machine configuration at a tape index,
//     nondeterminism tier, state and scanned symbol, with its eagerly
//     computed transition outcome. Each Case owns the arena of Vertex
//     records that refine it by predecessor configuration; the arena grows
//     monotonically as new ways of reaching the configuration are found.
//   - Vertex: a Case plus (for tier > 0) the predecessor Case whose
//     transition justifies it. Vertices are canonical: exactly one record
//     exists per composite key, created through Case.Vertex.
//   - Edge: an ordered pair of vertices at adjacent tape indices.
//   - Graph: the sparse, negative-index-capable store of vertices and edges,
//     with idempotent edge CRUD, directional adjacency queries,
//     precedent/succedent relations and the edge classification predicates
//     (folding node, merging/splitting edge, combining/pseudo-combining
//     edge) that the feasible-graph and walk-verification layers build on.
//   - Cells: the growable base-offset container behind both axes, also used
//     by callers for per-tape-index scratch surfaces.
//
// Tiers:
//
// Tier 0 is the deterministic floor anchored to the literal input tape.
// Tier t > 0 counts how many nondeterministic branch points were resolved to
// reach a configuration at a given cell; precedent/succedent relations move
// between adjacent tiers at a fixed cell.
//
// Errors vs. panics:
//
// Structural contract violations — endpoints whose indices do not differ by
// exactly one, a predecessor case at the wrong tier, a symbol outside the
// machine alphabet — indicate a bug in the caller or in the transition
// oracle and panic. Expected negative outcomes (no precedent, no edge) are
// ordinary empty results.
//
// Concurrency:
//
// A Graph is not safe for concurrent use. A simulation run is
// single-threaded by design; graph copies made during verification share
// vertex identity but own independent edge state.
package dcg
