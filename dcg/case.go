package dcg

import "fmt"

// CaseKey identifies a transition case: a machine configuration at a tape
// cell index and nondeterminism tier. Two cases with equal keys describe the
// same configuration even when they live in different graphs.
type CaseKey struct {
	Index  int
	Tier   int
	State  string
	Symbol string
}

// Case is a transition case together with its oracle-computed outcome. It
// owns the arena of vertices that refine this configuration by predecessor;
// the arena only grows.
type Case struct {
	Index  int
	Tier   int
	State  string
	Symbol string

	// Outcome of Delta(State, Symbol), computed once at creation.
	NextState string
	Output    string
	Move      int
	NextIndex int

	verts  []*Vertex
	byPred map[predKey]*Vertex
}

type predKey struct {
	state  string
	symbol string
}

// newCase computes the transition outcome eagerly. Vertices are minted
// lazily: a case materialized in a subordinate graph must adopt the master
// arena's vertex through register, never a fresh duplicate.
func newCase(m *Machine, index, tier int, state, symbol string) *Case {
	if !m.HasSymbol(symbol) {
		panic(fmt.Sprintf("dcg: symbol %q not in machine alphabet", symbol))
	}
	next, out, move := m.Delta(state, symbol)
	if !m.HasState(next) {
		panic(fmt.Sprintf("dcg: oracle moved %q to undeclared state %q on %q", state, next, symbol))
	}
	if !m.HasSymbol(out) {
		panic(fmt.Sprintf("dcg: oracle wrote undeclared symbol %q in state %q", out, state))
	}
	c := &Case{
		Index:     index,
		Tier:      tier,
		State:     state,
		Symbol:    symbol,
		NextState: next,
		Output:    out,
		Move:      move,
		NextIndex: index + move,
		byPred:    make(map[predKey]*Vertex, 1),
	}
	return c
}

// Key returns the composite identity of the case.
func (c *Case) Key() CaseKey {
	return CaseKey{Index: c.Index, Tier: c.Tier, State: c.State, Symbol: c.Symbol}
}

// Same reports configuration equality across graphs (key equality).
func (c *Case) Same(o *Case) bool {
	return o != nil && c.Key() == o.Key()
}

// Vertex returns the canonical vertex of this case for predecessor case
// pred, creating it on first request. At tier 0, pred must be nil; above
// tier 0 pred must sit one tier below at the same cell.
func (c *Case) Vertex(pred *Case) *Vertex {
	if c.Tier == 0 {
		if pred != nil {
			panic(fmt.Sprintf("dcg: floor case %v cannot take a predecessor", c.Key()))
		}
		if v, ok := c.byPred[predKey{}]; ok {
			return v
		}
		v := &Vertex{Case: c}
		c.verts = append(c.verts, v)
		c.byPred[predKey{}] = v
		return v
	}
	if pred.Index != c.Index {
		panic(fmt.Sprintf("dcg: predecessor index %d for case %v", pred.Index, c.Key()))
	}
	if pred.Tier != c.Tier-1 {
		panic(fmt.Sprintf("dcg: predecessor tier %d for case %v", pred.Tier, c.Key()))
	}
	k := predKey{state: pred.State, symbol: pred.Symbol}
	if v, ok := c.byPred[k]; ok {
		return v
	}
	v := &Vertex{Case: c, Pred: pred}
	c.verts = append(c.verts, v)
	c.byPred[k] = v
	return v
}

// Vertices returns the arena in creation order. The returned slice is the
// live arena: callers must not mutate it.
func (c *Case) Vertices() []*Vertex { return c.verts }

// register records a vertex of this configuration discovered elsewhere
// (another graph's arena). Idempotent.
func (c *Case) register(v *Vertex) {
	k := predKey{}
	if v.Pred != nil {
		k = predKey{state: v.Pred.State, symbol: v.Pred.Symbol}
	}
	if _, ok := c.byPred[k]; ok {
		return
	}
	c.verts = append(c.verts, v)
	c.byPred[k] = v
}

func (c *Case) String() string {
	return fmt.Sprintf("(%d,%d,%s,%s)", c.Index, c.Tier, c.State, c.Symbol)
}

// VertexKey is the composite identity of a vertex: its case key plus, above
// tier 0, the predecessor configuration that produced it.
type VertexKey struct {
	Index      int
	Tier       int
	State      string
	Symbol     string
	PredState  string
	PredSymbol string
}

// Vertex is a transition case disambiguated by the predecessor case whose
// transition justified arriving at its tier. Tier-0 vertices have no
// predecessor. Vertices are canonical pointers: all graphs of one run share
// the records created through Case.Vertex, so pointer equality coincides
// with key equality.
type Vertex struct {
	Case *Case
	Pred *Case // nil at tier 0
}

// Key returns the composite identity of the vertex.
func (v *Vertex) Key() VertexKey {
	k := VertexKey{Index: v.Case.Index, Tier: v.Case.Tier, State: v.Case.State, Symbol: v.Case.Symbol}
	if v.Pred != nil {
		k.PredState = v.Pred.State
		k.PredSymbol = v.Pred.Symbol
	}
	return k
}

// Index returns the tape cell of the vertex.
func (v *Vertex) Index() int { return v.Case.Index }

// Tier returns the nondeterminism tier of the vertex.
func (v *Vertex) Tier() int { return v.Case.Tier }

// State returns the control state of the configuration.
func (v *Vertex) State() string { return v.Case.State }

// Symbol returns the scanned symbol of the configuration.
func (v *Vertex) Symbol() string { return v.Case.Symbol }

// Output returns the symbol the transition writes back.
func (v *Vertex) Output() string { return v.Case.Output }

// NextIndex returns the cell the head moves to.
func (v *Vertex) NextIndex() int { return v.Case.NextIndex }

// NextState returns the state the transition moves to.
func (v *Vertex) NextState() string { return v.Case.NextState }

// LastState returns the predecessor state; valid only above tier 0.
func (v *Vertex) LastState() string { return v.Pred.State }

// LastSymbol returns the predecessor symbol; valid only above tier 0.
func (v *Vertex) LastSymbol() string { return v.Pred.Symbol }

func (v *Vertex) String() string {
	if v.Pred == nil {
		return fmt.Sprintf("(%d,%d,%s,%s)", v.Index(), v.Tier(), v.State(), v.Symbol())
	}
	return fmt.Sprintf("(%d,%d,%s,%s,%s,%s)",
		v.Index(), v.Tier(), v.State(), v.Symbol(), v.Pred.State, v.Pred.Symbol)
}

// Edge is a committed transition between two vertices at adjacent tape
// cells. The zero Edge is the floor marker used by the orchestrator to mean
// "no supporting ceiling edge": IsZero reports it.
type Edge struct {
	U, V *Vertex
}

// IsZero reports whether e is the zero (marker) edge.
func (e Edge) IsZero() bool { return e.U == nil && e.V == nil }

// Index returns the lower of the two endpoint indices; edges are stored
// under it.
func (e Edge) Index() int {
	if e.U.Index() < e.V.Index() {
		return e.U.Index()
	}
	return e.V.Index()
}

// Dir returns the head movement realized by the edge: +1 rightward, -1
// leftward.
func (e Edge) Dir() int { return e.V.Index() - e.U.Index() }

func (e Edge) String() string {
	if e.IsZero() {
		return "(∅)"
	}
	return fmt.Sprintf("%v→%v", e.U, e.V)
}
