package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verigraph/verigraph/simulate"
	"github.com/verigraph/verigraph/verifiertm"
)

// TestRunEmptyTape verifies the empty input is refused.
func TestRunEmptyTape(t *testing.T) {
	_, err := simulate.Run(scannerMachine(t), "", 0)
	require.Error(t, err)
}

// TestRunScannerAcceptance verifies plain deterministic acceptance and
// rejection without a certificate region.
func TestRunScannerAcceptance(t *testing.T) {
	res, err := simulate.Run(scannerMachine(t), "aab", 0)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.Equal(t, "aab", res.AcceptedTape)

	res, err = simulate.Run(scannerMachine(t), "aba", 0)
	require.NoError(t, err)
	require.False(t, res.Accepted)
}

// TestRunScannerExistence verifies the certificate region is searched: the
// scanner accepts iff some suffix drives it onto 'b'.
func TestRunScannerExistence(t *testing.T) {
	res, err := simulate.Run(scannerMachine(t), "aa", 1)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.Greater(t, res.Stats.ExtendedWalks, 0)
}

// TestSATVerifier verifies the input-dependent SAT machine on tapes
// carrying their full certificate.
func TestSATVerifier(t *testing.T) {
	mach, err := verifiertm.SATDynamic(2)
	require.NoError(t, err)

	res, err := simulate.Run(mach, "1&2#TT", 0)
	require.NoError(t, err)
	require.True(t, res.Accepted, "x1=T x2=T satisfies (x1)∧(x2)")

	res, err = simulate.Run(mach, "1&2#TF", 0)
	require.NoError(t, err)
	require.False(t, res.Accepted, "x2=F falsifies the second clause")
}

// TestSATExistence verifies the certificate search over the appended
// region, including the recovered witness.
func TestSATExistence(t *testing.T) {
	mach, err := verifiertm.SATDynamic(2)
	require.NoError(t, err)

	res, err := simulate.Run(mach, "1&2#", 2)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.Equal(t, "TT", res.Witness)
}

// TestSATExistenceUnsat verifies a contradictory formula rejects every
// certificate.
func TestSATExistenceUnsat(t *testing.T) {
	mach, err := verifiertm.SATDynamic(1)
	require.NoError(t, err)

	res, err := simulate.Run(mach, "1&-1#", 1)
	require.NoError(t, err)
	require.False(t, res.Accepted)
}

// TestSATCertificateCheck verifies the validation sweep accepts a
// well-formed certificate and rejects a malformed one.
func TestSATCertificateCheck(t *testing.T) {
	mach, err := verifiertm.SATDynamicWithCertificateCheck(2)
	require.NoError(t, err)

	res, err := simulate.Run(mach, "1&2#TT", 0)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	// A digit in the certificate region fails the sweep before any
	// clause is evaluated.
	res, err = simulate.Run(mach, "1&2#T1", 0)
	require.NoError(t, err)
	require.False(t, res.Accepted)
}

// TestSubsetSumVerifier verifies the Subset-Sum machine on tapes carrying
// their full certificate.
func TestSubsetSumVerifier(t *testing.T) {
	mach, err := verifiertm.SubsetSum()
	require.NoError(t, err)

	res, err := simulate.Run(mach, "15_@_1_3_5_7_10_20#3_5_7_;", 0)
	require.NoError(t, err)
	require.True(t, res.Accepted, "3+5+7 = 15")

	// A leading zero never matches an element digit by digit.
	res, err = simulate.Run(mach, "15_@_1_3_5_7_10_20#3_5_07_;", 0)
	require.NoError(t, err)
	require.False(t, res.Accepted)
}

// TestSubsetSumExistence verifies the certificate search finds a subset
// summing to the target.
func TestSubsetSumExistence(t *testing.T) {
	mach, err := verifiertm.SubsetSum()
	require.NoError(t, err)

	tape := "28_@_42_20_3_5#"
	m, err := verifiertm.SubsetSumCertificateBound(tape)
	require.NoError(t, err)

	res, err := simulate.Run(mach, tape, m)
	require.NoError(t, err)
	require.True(t, res.Accepted, "20+3+5 = 28")
	require.NotEmpty(t, res.Witness)
}

// TestSATVerifierFullFormula verifies the ten-variable formula with its
// satisfying certificate on the tape, and a contradictory certificate on a
// second formula.
func TestSATVerifierFullFormula(t *testing.T) {
	mach, err := verifiertm.SATDynamic(10)
	require.NoError(t, err)

	res, err := simulate.Run(mach, "1_2_3&4_5_6&7_8_9&-9_10_1&-2_6_1&3_5_1&-4_2_10#TTFFTFTFFT", 0)
	require.NoError(t, err)
	require.True(t, res.Accepted)

	mach, err = verifiertm.SATDynamic(7)
	require.NoError(t, err)
	res, err = simulate.Run(mach, "1&-1&2_3&4_5&7#TTTTTTT", 0)
	require.NoError(t, err)
	require.False(t, res.Accepted, "x1=T falsifies the clause -1")
}

// TestSATExistenceFullFormula verifies the certificate search over the
// ten-variable formula and over an unsatisfiable one.
func TestSATExistenceFullFormula(t *testing.T) {
	if testing.Short() {
		t.Skip("full-formula certificate search")
	}
	mach, err := verifiertm.SATDynamic(10)
	require.NoError(t, err)

	res, err := simulate.Run(mach, "1_2_3&4_5_6&7_8_9&-9_10_1&-2_6_1&3_5_1&-4_2_10#", 10)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	require.NotEmpty(t, res.Witness)

	mach, err = verifiertm.SATDynamic(7)
	require.NoError(t, err)
	res, err = simulate.Run(mach, "1&-1&2_3&4_5&7#", 7)
	require.NoError(t, err)
	require.False(t, res.Accepted)
}

// TestSubsetSumVerifierFullTarget verifies the target-28 instance with its
// correct witness on the tape.
func TestSubsetSumVerifierFullTarget(t *testing.T) {
	mach, err := verifiertm.SubsetSum()
	require.NoError(t, err)

	res, err := simulate.Run(mach, "28_@_1_3_5_7_10_20#1_20_7_;", 0)
	require.NoError(t, err)
	require.True(t, res.Accepted, "1+20+7 = 28")
}

// TestSimulateVerifierForAllCertificates verifies the classic wrapper
// returns the textual verdict.
func TestSimulateVerifierForAllCertificates(t *testing.T) {
	mach := scannerMachine(t)
	got, err := simulate.SimulateVerifierForAllCertificates(
		"aab", 0, mach.Start, mach.Symbols, mach.Delta, mach.States, mach.CertSymbols)
	require.NoError(t, err)
	require.Equal(t, "Yes", got)
}
