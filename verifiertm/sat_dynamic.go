package verifiertm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verigraph/verigraph/dcg"
)

// Input-dependent SAT verifier. The certificate holds one T/F cell per
// variable; the machine parses each decimal variable index into its state
// register (Inc.N), walks forward to the certificate cell (Forward.N,
// Dec.N), and propagates the assignment back onto the literal occurrence
// (Backward.T/F). The state set grows with the largest variable index.
var satDynamicTable = table{
	// evaluate literals
	{"Check", "_"}: {"Check", "_", +1},
	{"Check", "-"}: {"Not", "-", +1},
	{"Check", "D"}: {"Inc.D", "?", +1},
	{"Not", "D"}:   {"Inc.D", "!", +1},
	{"Skip", "&"}:  {"Check", "_", +1},
	{"Skip", "#"}:  {"Accept", "_", +1},
	{"Skip", "*"}:  {"Skip", "_", +1},
	{"Check", "&"}: {"Reject", "_", +1},
	{"Check", "#"}: {"Reject", "_", +1},

	// parse the variable index
	{"Inc.N", "_"}: {"Forward.N", "_", +1},
	{"Inc.N", "&"}: {"Forward.N", "&", +1},
	{"Inc.N", "#"}: {"Dec.(N-1)", "#", +1},
	{"Inc.N", "D"}: {"Inc.(10N+D)", "_", +1},

	// move to the certificate cell
	{"Forward.N", "*"}: {"Forward.N", "*", +1},
	{"Forward.N", "#"}: {"Dec.(N-1)", "#", +1},

	// count down across certificate cells
	{"Dec.N", "T"}: {"Dec.(N-1)", "T", +1},
	{"Dec.N", "F"}: {"Dec.(N-1)", "F", +1},
	{"Dec.0", "T"}: {"Backward.T", "T", -1},
	{"Dec.0", "F"}: {"Backward.F", "F", -1},

	// propagate the assignment back to the literal
	{"Backward.T", "*"}: {"Backward.T", "*", -1},
	{"Backward.F", "*"}: {"Backward.F", "*", -1},
	{"Backward.T", "?"}: {"Skip", "_", +1},
	{"Backward.F", "?"}: {"Check", "_", +1},
	{"Backward.T", "!"}: {"Check", "_", +1},
	{"Backward.F", "!"}: {"Skip", "_", +1},
}

var satDynamicCertCheckTable = merge(satDynamicTable, table{
	{"InputCheck", "#"}:       {"CertificateCheck", "#", +1},
	{"InputCheck", "*"}:       {"InputCheck", "*", +1},
	{"CertificateCheck", "T"}: {"CertificateCheck", "T", +1},
	{"CertificateCheck", "F"}: {"CertificateCheck", "F", +1},
	{"CertificateCheck", "ϵ"}: {"BackToBeginning", "ϵ", -1},
	{"CertificateCheck", "*"}: {"Reject", "_", -1},
	{"BackToBeginning", "*"}:  {"BackToBeginning", "*", -1},
	{"BackToBeginning", "ϵ"}:  {"Check", "ϵ", +1},
})

const satDynamicSymbols = "_-&#TF?!0123456789ϵ"

func satDynamicStates(base []string, m int) []string {
	states := append([]string(nil), base...)
	for j := 0; j <= m; j++ {
		n := strconv.Itoa(j)
		states = append(states, "Inc."+n, "Dec."+n, "Forward."+n)
	}
	return states
}

// satDynamicDelta expands the parameterized table against the machine's
// state set: a register value stepping outside it rejects.
func satDynamicDelta(tbl table, states map[string]struct{}) dcg.DeltaFunc {
	return func(state, symbol string) (string, string, int) {
		action, addr, parameterized := splitState(state)
		altstate := ""
		if parameterized {
			altstate = action + ".N"
		}

		cands := []string{symbol}
		if isDecimal(symbol) {
			cands = append(cands, "D")
		}
		cands = append(cands, "*")

		for _, s := range cands {
			tr, ok := tbl[tmKey{state, s}]
			if !ok && altstate != "" {
				tr, ok = tbl[tmKey{altstate, s}]
			}
			if !ok {
				continue
			}
			next, out := tr.next, tr.out

			if strings.HasSuffix(next, ".D") && isDecimal(symbol) {
				next = strings.TrimSuffix(next, ".D") + "." + symbol
			}
			switch {
			case strings.HasSuffix(next, ".N"):
				next = strings.TrimSuffix(next, ".N") + "." + addr
			case strings.HasSuffix(next, ".(N-1)"):
				next = strings.TrimSuffix(next, ".(N-1)") + "." + strconv.Itoa(decimalVal(addr)-1)
			case strings.HasSuffix(next, ".(10N+D)"):
				next = strings.TrimSuffix(next, ".(10N+D)") + "." + strconv.Itoa(decimalVal(addr)*10+decimalVal(symbol))
			}
			if _, ok := states[next]; !ok {
				return "Reject", "_", -1
			}
			if out == "*" {
				out = symbol
			}
			return next, out, tr.move
		}
		return "Reject", "_", -1
	}
}

func newSATDynamic(start string, base []string, tbl table, m int) (*dcg.Machine, error) {
	states := satDynamicStates(base, m)
	return dcg.NewMachine(dcg.Machine{
		Start:       start,
		Accept:      "Accept",
		Reject:      "Reject",
		States:      states,
		Symbols:     runeSymbols(satDynamicSymbols),
		Blank:       dcg.Blank,
		CertSymbols: []string{"T", "F"},
		Delta:       satDynamicDelta(tbl, stateSet(states)),
	})
}

// SATDynamic builds the input-dependent SAT verifier with register values
// up to m, the largest variable index of the instance.
func SATDynamic(m int) (*dcg.Machine, error) {
	base := []string{"Check", "Not", "Skip", "Backward.T", "Backward.F", "Reject", "Accept"}
	return newSATDynamic("Check", base, satDynamicTable, m)
}

// SATDynamicWithCertificateCheck is SATDynamic preceded by a validation
// sweep rejecting any certificate cell other than T or F.
func SATDynamicWithCertificateCheck(m int) (*dcg.Machine, error) {
	base := []string{
		"Check", "Not", "Skip", "Backward.T", "Backward.F", "Reject", "Accept",
		"InputCheck", "CertificateCheck", "BackToBeginning",
	}
	return newSATDynamic("InputCheck", base, satDynamicCertCheckTable, m)
}

// SATCertificateBound returns the largest variable index of a SAT tape,
// the certificate length the dynamic machines need in existence mode.
func SATCertificateBound(tape string) (int, error) {
	body, _, ok := strings.Cut(tape, "#")
	if !ok {
		return 0, fmt.Errorf("verifiertm: tape has no '#' terminator")
	}
	max := 0
	found := false
	for _, tok := range strings.FieldsFunc(body, func(r rune) bool {
		return r == '_' || r == '&' || r == '-'
	}) {
		if !isDecimal(tok) {
			continue
		}
		found = true
		if v := decimalVal(tok); v > max {
			max = v
		}
	}
	if !found {
		return 0, fmt.Errorf("verifiertm: no variable index in tape")
	}
	return max, nil
}
