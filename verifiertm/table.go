// Package verifiertm provides the concrete deterministic verifier Turing
// machines the simulator runs: SAT in a fixed-state and an input-dependent
// variant, and Subset-Sum with decimal tape arithmetic. Each machine also
// comes in a form that validates the certificate region before verifying.
//
// Transition tables use meta-symbols expanded at lookup time: 'D' matches
// any decimal digit, '*' matches anything, and parameterized states such
// as "Inc.N" carry a decimal register in the state name. The expansion
// rules live in each machine's delta function; the tables stay close to
// the paper notation.
package verifiertm

import "strings"

type transition struct {
	next string
	out  string
	move int
}

type tmKey struct {
	state  string
	symbol string
}

type table map[tmKey]transition

// merge overlays extra onto base, later entries winning.
func merge(base, extra table) table {
	out := make(table, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// splitState separates "Action.addr" state names. ok is false for plain
// states.
func splitState(state string) (action, addr string, ok bool) {
	action, addr, ok = strings.Cut(state, ".")
	if !ok {
		return state, "", false
	}
	return action, addr, true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func decimalVal(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// circledVal maps ⓪–⑨ to its digit value. ok is false for other symbols.
func circledVal(s string) (int, bool) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, false
	}
	switch {
	case r[0] == '⓪':
		return 0, true
	case r[0] >= '①' && r[0] <= '⑨':
		return int(r[0]-'①') + 1, true
	}
	return 0, false
}

// circledSym is the inverse of circledVal for 0–9.
func circledSym(n int) string {
	if n == 0 {
		return "⓪"
	}
	return string('①' + rune(n-1))
}

// runeSymbols splits s into one-rune symbol strings.
func runeSymbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func stateSet(states []string) map[string]struct{} {
	set := make(map[string]struct{}, len(states))
	for _, q := range states {
		set[q] = struct{}{}
	}
	return set
}
