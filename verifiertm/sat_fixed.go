package verifiertm

import (
	"strconv"
	"strings"

	"github.com/verigraph/verigraph/dcg"
)

// Fixed-state SAT verifier. Variable indices are never loaded into the
// control: matching a literal against its certificate cell happens by
// symbolic decimal countdown on the tape itself (Backward/Borrow states),
// so the state set is finite and independent of the instance. State
// classes: ".S" states carry a scan mode (Free/Forwarded), ".B" states
// carry the fetched truth value (T/F).
var satFixedTable = table{
	// literal scan, erasing the countdown's leading zeros
	{"Check.S", "_"}: {"Check.S", "_", +1},
	{"Check.S", "-"}: {"CheckNot.S", "-", +1},
	{"Check.S", "0"}: {"Unknown.S", "_", +1},
	{"Check.S", "D"}: {"UnknownTerm.S", "D", +1},
	{"Check.S", "T"}: {"Skip.S", "T", +1},
	{"Check.S", "F"}: {"Check.S", "F", +1},
	{"Check.S", "&"}: {"Reject", "_", +1},
	{"Check.S", "#"}: {"Reject", "_", +1},

	{"CheckNot.S", "_"}: {"CheckNot.S", "_", +1},
	{"CheckNot.S", "T"}: {"Check.S", "T", +1},
	{"CheckNot.S", "D"}: {"UnknownTerm.S", "D", +1},
	{"CheckNot.S", "0"}: {"Unknown.S", "_", +1},
	{"CheckNot.S", "F"}: {"Skip.S", "F", +1},

	{"Unknown.S", "_"}:     {"Unknown.S", "_", +1},
	{"Unknown.S", "0"}:     {"Unknown.S", "_", +1},
	{"Unknown.S", "D"}:     {"UnknownTerm.S", "D", +1},
	{"Unknown.S", "T"}:     {"Skip.S", "T", +1},
	{"Unknown.S", "F"}:     {"Unknown.S", "F", +1},
	{"Unknown.S", "-"}:     {"UnknownNot.S", "-", +1},
	{"UnknownTerm.S", "D"}: {"UnknownTerm.S", "D", +1},
	{"UnknownTerm.S", "_"}: {"Unknown.S", "_", +1},
	{"UnknownTerm.S", "&"}: {"Check.Free", "&", +1},
	{"UnknownTerm.S", "#"}: {"Fetch", "#", +1},

	{"UnknownNot.S", "T"}: {"Unknown.S", "T", +1},
	{"UnknownNot.S", "0"}: {"Unknown.S", "_", +1},
	{"UnknownNot.S", "D"}: {"UnknownTerm.S", "D", +1},
	{"UnknownNot.S", "F"}: {"Skip.S", "F", +1},
	{"UnknownNot.S", "_"}: {"UnknownNot.S", "_", +1},
	{"Unknown.S", "&"}:    {"Check.Free", "&", +1},
	{"Unknown.S", "#"}:    {"Fetch", "#", +1},

	{"Skip.Free", "&"}:      {"Check.Free", "&", +1},
	{"Skip.Free", "#"}:      {"Fetch", "#", +1},
	{"Skip.Forwarded", "&"}: {"Check.Forwarded", "&", +1},
	{"Skip.Forwarded", "#"}: {"Accept", "#", +1},
	{"Skip.S", "*"}:         {"Skip.S", "_", +1},

	// fetch the next certificate value
	{"Fetch", "_"}: {"Fetch", "_", +1},
	{"Fetch", "T"}: {"Backward.T", "_", -1},
	{"Fetch", "F"}: {"Backward.F", "_", -1},

	// carry the value back, decrementing every index on the way
	{"Backward.B", "ϵ"}:       {"Check.Forwarded", "ϵ", +1},
	{"BackwardInTerm.B", "ϵ"}: {"Check.Forwarded", "ϵ", +1},
	{"Backward.B", "*"}:       {"Backward.B", "*", -1},

	{"Backward.B", "1"}:     {"BackwardFrom1.B", "0", -1},
	{"Backward.B", "0"}:     {"Borrow.B", "9", -1},
	{"Backward.B", "D"}:     {"BackwardInTerm.B", "D-1", -1},
	{"Borrow.B", "D"}:       {"BackwardInTerm.B", "D-1", -1},
	{"Borrow.B", "0"}:       {"Borrow.B", "9", -1},
	{"BackwardFrom1.B", "D"}: {"BackwardInTerm.B", "D", -1},

	{"BackwardInTerm.B", "D"}: {"BackwardInTerm.B", "D", -1},
	{"BackwardInTerm.B", "_"}: {"Backward.B", "_", -1},
	{"BackwardInTerm.B", "&"}: {"Backward.B", "&", -1},
	{"BackwardInTerm.B", "-"}: {"Backward.B", "-", -1},
	{"BackwardFrom1.B", "_"}:  {"Assign.B", "_", +1},
	{"BackwardFrom1.B", "-"}:  {"Assign.B", "-", +1},
	{"BackwardFrom1.B", "&"}:  {"Assign.B", "&", +1},
	{"BackwardFrom1.B", "ϵ"}:  {"Assign.B", "ϵ", +1},
	{"Assign.B", "0"}:         {"Backward.B", "B", -1},
}

var satFixedCertCheckTable = merge(satFixedTable, table{
	{"InputCheck", "#"}:       {"CertificateCheck", "#", +1},
	{"InputCheck", "*"}:       {"InputCheck", "*", +1},
	{"CertificateCheck", "T"}: {"CertificateCheck", "T", +1},
	{"CertificateCheck", "F"}: {"CertificateCheck", "F", +1},
	{"CertificateCheck", "ϵ"}: {"BackToBeginning", "ϵ", -1},
	{"CertificateCheck", "*"}: {"Reject", "_", -1},
	{"BackToBeginning", "*"}:  {"BackToBeginning", "*", -1},
	{"BackToBeginning", "ϵ"}:  {"Check.Forwarded", "ϵ", +1},
})

const satFixedSymbols = "_-&#TF0123456789ϵ"

var satFixedStates = []string{
	"Check.Free", "CheckNot.Free", "Unknown.Free", "UnknownNot.Free", "UnknownTerm.Free", "Skip.Free",
	"Check.Forwarded", "CheckNot.Forwarded", "Unknown.Forwarded", "UnknownNot.Forwarded", "UnknownTerm.Forwarded", "Skip.Forwarded",
	"Fetch", "Backward.T", "Backward.F", "BackwardInTerm.T", "BackwardInTerm.F",
	"Borrow.T", "Borrow.F", "BackwardFrom1.T", "BackwardFrom1.F", "Assign.T", "Assign.F",
	"Reject", "Accept",
}

func satFixedDelta(tbl table) dcg.DeltaFunc {
	return func(state, symbol string) (string, string, int) {
		action, sub, parameterized := splitState(state)
		altstate := ""
		if parameterized {
			switch {
			case isDecimal(sub):
				altstate = action + ".D"
			case sub == "T" || sub == "F":
				altstate = action + ".B"
			default:
				altstate = action + ".S"
			}
		}

		cands := []string{symbol}
		if isDecimal(symbol) {
			cands = append(cands, "D")
		} else if symbol == "T" || symbol == "F" {
			cands = append(cands, "B")
		}
		cands = append(cands, "*")

		for _, s := range cands {
			tr, ok := tbl[tmKey{state, s}]
			next, out := tr.next, tr.out
			if !ok && altstate != "" {
				tr, ok = tbl[tmKey{altstate, s}]
				if ok {
					next, out = tr.next, tr.out
					if strings.HasSuffix(altstate, ".B") && strings.HasSuffix(next, ".B") {
						next = strings.TrimSuffix(next, ".B") + "." + sub
					}
					if strings.HasSuffix(altstate, ".B") && out == "B" && (sub == "T" || sub == "F") {
						out = sub
					}
				}
			}
			if !ok {
				continue
			}

			if strings.HasSuffix(next, ".B") && (symbol == "T" || symbol == "F") {
				next = strings.TrimSuffix(next, ".B") + "." + symbol
			} else if strings.HasSuffix(next, ".S") {
				next = strings.TrimSuffix(next, ".S") + "." + sub
			}
			if out == "D" && isDecimal(symbol) {
				out = symbol
			} else if out == "D-1" && isDecimal(symbol) {
				out = strconv.Itoa(decimalVal(symbol) - 1)
			}
			if out == "*" {
				out = symbol
			}
			return next, out, tr.move
		}
		return "Reject", "_", +1
	}
}

// SATFixed builds the fixed-state SAT verifier, starting in the forwarded
// scan since no certificate value has been fetched yet.
func SATFixed() (*dcg.Machine, error) {
	return dcg.NewMachine(dcg.Machine{
		Start:       "Check.Forwarded",
		Accept:      "Accept",
		Reject:      "Reject",
		States:      satFixedStates,
		Symbols:     runeSymbols(satFixedSymbols),
		Blank:       dcg.Blank,
		CertSymbols: []string{"T", "F"},
		Delta:       satFixedDelta(satFixedTable),
	})
}

// SATFixedWithCertificateCheck is SATFixed preceded by a validation sweep
// of the certificate region.
func SATFixedWithCertificateCheck() (*dcg.Machine, error) {
	states := append(append([]string(nil), satFixedStates...),
		"InputCheck", "CertificateCheck", "BackToBeginning")
	return dcg.NewMachine(dcg.Machine{
		Start:       "InputCheck",
		Accept:      "Accept",
		Reject:      "Reject",
		States:      states,
		Symbols:     runeSymbols(satFixedSymbols),
		Blank:       dcg.Blank,
		CertSymbols: []string{"T", "F"},
		Delta:       satFixedDelta(satFixedCertCheckTable),
	})
}
