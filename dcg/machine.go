package dcg

import (
	"errors"
	"fmt"
)

// Sentinel errors for machine construction.
var (
	// ErrNoStates indicates an empty state set.
	ErrNoStates = errors.New("dcg: machine has no states")

	// ErrNoSymbols indicates an empty tape alphabet.
	ErrNoSymbols = errors.New("dcg: machine has no symbols")

	// ErrNilDelta indicates a missing transition function.
	ErrNilDelta = errors.New("dcg: machine has no transition function")

	// ErrBadState indicates a distinguished state missing from the state set.
	ErrBadState = errors.New("dcg: state not in machine state set")
)

// Blank is the conventional tape blank symbol shared by the verifier
// machines shipped with this module.
const Blank = "ϵ"

// DeltaFunc is the transition oracle of a single-tape deterministic Turing
// Machine: given the current state and the scanned symbol it yields the next
// state, the symbol written back, and the head movement (-1 or +1; 0 is
// reserved for oracle-internal conventions and never produced by the
// machines in this module).
type DeltaFunc func(state, symbol string) (next, output string, move int)

// Machine is the immutable specification of a verifier Turing Machine. It
// replaces process-wide machine registration: every Graph carries the
// Machine it was built for, so distinct machines never share state.
type Machine struct {
	// Start is the initial control state.
	Start string

	// Accept and Reject are the two distinguished terminal states.
	Accept string
	Reject string

	// States is the finite set of valid state names, including Accept and
	// Reject.
	States []string

	// Symbols is the finite tape alphabet, including the blank symbol.
	Symbols []string

	// Blank is the tape blank symbol.
	Blank string

	// CertSymbols is the sub-alphabet the certificate region may carry; a
	// tier-0 frontier inside the certificate region branches over exactly
	// these symbols.
	CertSymbols []string

	// Delta is the transition oracle.
	Delta DeltaFunc

	stateSet  map[string]struct{}
	symbolSet map[string]struct{}
}

// NewMachine validates and freezes a machine specification. The blank
// symbol is appended to Symbols when absent, mirroring the Γ = Σ ∪ {ϵ}
// convention of the verifier construction. CertSymbols defaults to Symbols
// minus the blank when empty.
func NewMachine(m Machine) (*Machine, error) {
	if len(m.States) == 0 {
		return nil, ErrNoStates
	}
	if len(m.Symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if m.Delta == nil {
		return nil, ErrNilDelta
	}
	if m.Blank == "" {
		m.Blank = Blank
	}

	m.symbolSet = make(map[string]struct{}, len(m.Symbols)+1)
	for _, s := range m.Symbols {
		m.symbolSet[s] = struct{}{}
	}
	if _, ok := m.symbolSet[m.Blank]; !ok {
		m.Symbols = append(m.Symbols, m.Blank)
		m.symbolSet[m.Blank] = struct{}{}
	}

	m.stateSet = make(map[string]struct{}, len(m.States))
	for _, q := range m.States {
		m.stateSet[q] = struct{}{}
	}
	for _, q := range []string{m.Start, m.Accept, m.Reject} {
		if _, ok := m.stateSet[q]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadState, q)
		}
	}

	if len(m.CertSymbols) == 0 {
		for _, s := range m.Symbols {
			if s != m.Blank {
				m.CertSymbols = append(m.CertSymbols, s)
			}
		}
	}

	return &m, nil
}

// HasState reports whether q belongs to the machine state set.
func (m *Machine) HasState(q string) bool {
	_, ok := m.stateSet[q]
	return ok
}

// HasSymbol reports whether s belongs to the tape alphabet.
func (m *Machine) HasSymbol(s string) bool {
	_, ok := m.symbolSet[s]
	return ok
}

// Halting reports whether q is one of the two terminal states.
func (m *Machine) Halting(q string) bool {
	return q == m.Accept || q == m.Reject
}
