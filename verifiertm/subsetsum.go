package verifiertm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verigraph/verigraph/dcg"
)

// Subset-Sum verifier with base-10 tape arithmetic. The tape encodes
// [target] @ [elements] # [certificate]; the machine repeatedly matches a
// certificate number against an element digit by digit (marking matched
// digits with the circled forms ⓪–⑨), subtracts it from the running sum
// with explicit borrow propagation, and accepts when the sum reaches zero
// with no marked digit left over.
//
// Meta-symbols: 'M' matches the digit held in the state register, 'D' any
// digit, 'Ⓜ'/'Ⓓ' their circled counterparts. The output "Ⓓ-Ⓜ" triggers
// the digit subtraction with borrow.
var subsetSumTable = table{
	// find the next certificate digit to match
	{"Forward", "#"}:          {"FindDigitToMatch", "#", +1},
	{"Forward", "*"}:          {"Forward", "*", +1},
	{"FindDigitToMatch", "~"}: {"FindDigitToMatch", "~", +1},
	{"FindDigitToMatch", "M"}: {"BackwardToMatch.M", "~", -1},
	{"FindDigitToMatch", "Ⓓ"}: {"FindDigitToMatch", "Ⓓ", +1},
	{"FindDigitToMatch", "_"}: {"BackwardToCheckMatch", "~", -1},
	{"FindDigitToMatch", ";"}: {"BackwardToCheckSum", ";", -1},

	// match a single digit against the element region
	{"BackwardToMatch.M", "_"}: {"MatchPosition.M", "|", +1},
	{"BackwardToMatch.M", "D"}: {"BackwardToMatch.M", "D", -1},
	{"BackwardToMatch.M", "|"}: {"BackwardToMatch.M", "|", -1},
	{"BackwardToMatch.M", "~"}: {"BackwardToMatch.M", "~", -1},
	{"BackwardToMatch.M", "#"}: {"BackwardToMatch.M", "#", -1},

	{"BackwardToMatch.M", "Ⓓ"}: {"MatchPosition.M", "D", +1},
	{"MatchPosition.M", "|"}:   {"BackwardToMatch.M", "|", -1},
	{"MatchPosition.M", "~"}:   {"BackwardToMatch.M", "~", -1},
	{"MatchPosition.M", "M"}:   {"BackwardToMatch.M", "Ⓜ", -1},
	{"MatchPosition.M", "D"}:   {"BackwardToMatch.M", "D", -1},
	{"BackwardToMatch.M", "@"}: {"CheckForward", "@", -1},

	// confirm the digit found a position
	{"CheckForward", "Ⓓ"}: {"Forward", "Ⓓ", +1},
	{"CheckForward", "*"}: {"CheckForward", "*", +1},
	{"CheckForward", "#"}: {"Reject", "_", -1},

	// confirm a whole element matched, recovering its digits
	{"BackwardToCheckMatch", "#"}: {"MatchedDigits", "#", -1},
	{"BackwardToCheckMatch", "|"}: {"MatchedDigits", "_", -1},
	{"BackwardToCheckMatch", "Ⓓ"}: {"BackwardToCheckMatch", "D", -1},
	{"BackwardToCheckMatch", "*"}: {"BackwardToCheckMatch", "*", -1},
	{"BackwardToCheckMatch", "@"}: {"Reject", "_", -1},
	{"MatchedDigits", "Ⓜ"}:        {"BackwardToSubtract.M", "$", -1},
	{"MatchedDigits", "D"}:        {"BackwardToCheckMatch", "D", -1},
	{"MatchedDigits", "~"}:        {"BackwardToCheckMatch", "~", -1},
	{"BackwardToSubtract.M", "*"}: {"BackwardToSubtract.M", "*", -1},

	// subtract the matched digits once the match is confirmed
	{"BackwardToSubtract.M", "@"}: {"SumArea.M", "@", -1},
	{"Forward", "$"}:              {"SubtractionDigit", "~", -1},
	{"SubtractionDigit", "M"}:     {"BackwardToSubtract.M", "$", -1},
	{"SubtractionDigit", "|"}:     {"BackwardAfterMatching", "_", -1},

	// erase the matched element and recover marks
	{"BackwardAfterMatching", "|"}: {"BackwardAfterMatching", "_", -1},
	{"BackwardAfterMatching", "Ⓓ"}: {"BackwardAfterMatching", "D", -1},
	{"BackwardAfterMatching", "ϵ"}: {"Forward", "ϵ", +1},
	{"BackwardAfterMatching", "*"}: {"BackwardAfterMatching", "*", -1},

	// accept iff the running sum is all zeros
	{"BackwardToCheckSum", "@"}: {"CheckSum", "@", -1},
	{"BackwardToCheckSum", "Ⓓ"}: {"Reject", "_", -1},
	{"BackwardToCheckSum", "*"}: {"BackwardToCheckSum", "*", -1},
	{"CheckSum", "_"}:           {"CheckSum", "_", -1},
	{"CheckSum", "0"}:           {"CheckSum", "0", -1},
	{"CheckSum", "ϵ"}:           {"Accept", "_", -1},
	{"CheckSum", "*"}:           {"Reject", "_", -1},

	// decimal subtraction in the sum area
	{"SumArea.M", "D"}:  {"SumArea.M", "D", -1},
	{"SumArea.M", "|"}:  {"SumArea.M", "|", -1},
	{"SumArea.M", "_"}:  {"Subtract.M", "|", -1},
	{"SumArea.M", "Ⓓ"}:  {"Subtract.M", "D", -1},
	{"Subtract.M", "D"}: {"Borrow.B", "Ⓓ-Ⓜ", -1},
	{"Borrow.0", "*"}:   {"Forward", "*", +1},
	{"Borrow.1", "0"}:   {"Borrow.1", "9", -1},
	{"Borrow.1", "D"}:   {"Forward", "D-1", +1},
	{"Borrow.1", "ϵ"}:   {"Reject", "_", -1},
}

var subsetSumCertCheckTable = merge(subsetSumTable, table{
	{"InputCheck", "#"}:       {"CertificateCheck", "#", +1},
	{"InputCheck", "*"}:       {"InputCheck", "*", +1},
	{"CertificateCheck", "D"}: {"CertificateCheck", "D", +1},
	{"CertificateCheck", "_"}: {"CertificateCheck", "_", +1},
	{"CertificateCheck", ";"}: {"BackToBeginning", ";", -1},
	{"CertificateCheck", "*"}: {"Reject", "_", -1},
	{"BackToBeginning", "*"}:  {"BackToBeginning", "*", -1},
	{"BackToBeginning", "ϵ"}:  {"Forward", "ϵ", +1},
})

const subsetSumSymbols = "#$;|_~@0123456789⓪①②③④⑤⑥⑦⑧⑨ϵ"

func subsetSumStates(extra []string) []string {
	states := []string{
		"Forward", "FindDigitToMatch", "SubtractionDigit", "MatchedDigits", "BackwardAfterMatching",
		"CheckForward", "BackwardToCheckMatch", "CheckSum", "BackwardToCheckSum", "Borrow.0", "Borrow.1",
		"Reject", "Accept",
	}
	states = append(states, extra...)
	for i := 0; i < 10; i++ {
		n := strconv.Itoa(i)
		states = append(states,
			"BackwardToMatch."+n, "MatchPosition."+n,
			"BackwardToSubtract."+n, "SumArea."+n, "Subtract."+n)
	}
	return states
}

// tryTransition resolves one candidate meta-symbol s for the given state
// and raw symbol. M carries the register digit, D the digit under the
// head; both feed the output resolution.
func tryTransition(tbl table, state, altstate, addr, symbol, s string) (string, string, int, bool) {
	mVal, dVal := -1, -1

	tr, ok := tbl[tmKey{state, s}]
	if !ok && altstate != "" {
		if strings.HasSuffix(altstate, ".M") && s == "M" && addr != symbol {
			return "", "", 0, false
		}
		tr, ok = tbl[tmKey{altstate, s}]
		if ok && isDecimal(addr) {
			mVal = decimalVal(addr)
		}
	}
	if !ok {
		return "", "", 0, false
	}

	switch {
	case s == "M" && isDecimal(symbol):
		mVal = decimalVal(symbol)
	case s == "Ⓜ":
		if v, ok := circledVal(symbol); ok {
			mVal = v
		}
	case s == "D" && isDecimal(symbol):
		dVal = decimalVal(symbol)
	case s == "Ⓓ":
		if v, ok := circledVal(symbol); ok {
			dVal = v
		}
	}

	next, out := tr.next, tr.out
	switch {
	case strings.HasSuffix(next, "M") && mVal >= 0:
		next = strings.TrimSuffix(next, ".M") + "." + strconv.Itoa(mVal)
	case strings.HasSuffix(next, "B") && out == "Ⓓ-Ⓜ" && dVal >= 0 && mVal >= 0:
		n := (10 + dVal - mVal) % 10
		borrow := "0"
		if dVal-mVal < 0 {
			borrow = "1"
		}
		return strings.TrimSuffix(next, ".B") + "." + borrow, circledSym(n), tr.move, true
	}

	switch {
	case out == "Ⓜ" && mVal >= 0:
		out = circledSym(mVal)
	case out == "D" && dVal >= 0:
		out = strconv.Itoa(dVal)
	case out == "D-1" && dVal >= 0:
		out = strconv.Itoa(dVal - 1)
	case out == "Ⓓ" && dVal >= 0:
		out = circledSym(dVal)
	case out == "*":
		out = symbol
	}
	return next, out, tr.move, true
}

func subsetSumDelta(tbl table) dcg.DeltaFunc {
	return func(state, symbol string) (string, string, int) {
		action, addr, parameterized := splitState(state)
		altstate := ""
		if parameterized && isDecimal(addr) {
			altstate = action + ".M"
		}

		cands := []string{symbol}
		if isDecimal(symbol) {
			cands = append(cands, "M", "D")
		} else if _, ok := circledVal(symbol); ok {
			cands = append(cands, "Ⓜ", "Ⓓ")
		}
		cands = append(cands, "*")

		for _, s := range cands {
			if next, out, move, ok := tryTransition(tbl, state, altstate, addr, symbol, s); ok {
				return next, out, move
			}
		}
		return "Reject", "_", -1
	}
}

// SubsetSum builds the fixed-state Subset-Sum verifier.
func SubsetSum() (*dcg.Machine, error) {
	return dcg.NewMachine(dcg.Machine{
		Start:       "Forward",
		Accept:      "Accept",
		Reject:      "Reject",
		States:      subsetSumStates(nil),
		Symbols:     runeSymbols(subsetSumSymbols),
		Blank:       dcg.Blank,
		CertSymbols: runeSymbols(";_0123456789"),
		Delta:       subsetSumDelta(subsetSumTable),
	})
}

// SubsetSumWithCertificateCheck is SubsetSum preceded by a validation
// sweep rejecting certificates with symbols outside digits, '_' and ';'.
func SubsetSumWithCertificateCheck() (*dcg.Machine, error) {
	return dcg.NewMachine(dcg.Machine{
		Start:       "InputCheck",
		Accept:      "Accept",
		Reject:      "Reject",
		States:      subsetSumStates([]string{"InputCheck", "CertificateCheck", "BackToBeginning"}),
		Symbols:     runeSymbols(subsetSumSymbols),
		Blank:       dcg.Blank,
		CertSymbols: runeSymbols(";_0123456789"),
		Delta:       subsetSumDelta(subsetSumCertCheckTable),
	})
}

// SubsetSumCertificateBound returns the certificate region length for a
// Subset-Sum tape: the distance from the '@' separator to the '#'
// terminator.
func SubsetSumCertificateBound(tape string) (int, error) {
	r := []rune(tape)
	at, hash := -1, -1
	for i, c := range r {
		switch {
		case c == '@' && at < 0:
			at = i
		case c == '#' && hash < 0:
			hash = i
		}
	}
	if at < 0 || hash < 0 {
		return 0, fmt.Errorf("verifiertm: tape needs both '@' and '#'")
	}
	return hash - at, nil
}
