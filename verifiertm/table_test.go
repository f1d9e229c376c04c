package verifiertm

import "testing"

// TestCircledDigits verifies the circled-digit round trip used for marking
// matched Subset-Sum digits.
func TestCircledDigits(t *testing.T) {
	for n := 0; n <= 9; n++ {
		got, ok := circledVal(circledSym(n))
		if !ok || got != n {
			t.Errorf("circledVal(circledSym(%d)) = (%d, %v)", n, got, ok)
		}
	}
	if _, ok := circledVal("5"); ok {
		t.Errorf("circledVal accepted a plain digit")
	}
}

// TestSplitState verifies parameterized state parsing.
func TestSplitState(t *testing.T) {
	action, addr, ok := splitState("Inc.57")
	if !ok || action != "Inc" || addr != "57" {
		t.Errorf("splitState(Inc.57) = (%q, %q, %v)", action, addr, ok)
	}
	if _, _, ok := splitState("Fetch"); ok {
		t.Errorf("splitState(Fetch) reported a parameter")
	}
}

// TestDecimalVal verifies multi-digit register parsing.
func TestDecimalVal(t *testing.T) {
	if !isDecimal("120") || isDecimal("12a") || isDecimal("") {
		t.Errorf("isDecimal misclassified an input")
	}
	if got := decimalVal("120"); got != 120 {
		t.Errorf("decimalVal(120) = %d", got)
	}
}

// TestMergeOverride verifies table composition keeps the base rules and
// adds the extensions.
func TestMergeOverride(t *testing.T) {
	base := table{{"A", "x"}: {"B", "x", +1}}
	got := merge(base, table{{"C", "y"}: {"D", "y", -1}})
	if len(got) != 2 {
		t.Fatalf("merged table has %d rules, want 2", len(got))
	}
	if _, ok := base[tmKey{"C", "y"}]; ok {
		t.Errorf("merge mutated the base table")
	}
}
