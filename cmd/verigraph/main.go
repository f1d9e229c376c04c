// verigraph runs NP verifier Turing machines over every certificate at
// once on a dynamic computation graph.
//
//	verigraph sat "1_2_3&-1_2#TFT"            verifier mode, certificate on tape
//	verigraph sat --existence "1_2_3&-1_2#"   search all certificates
//	verigraph sat --cnf formula.cnf            DIMACS input, fixed-state machine
//	verigraph subsetsum "28_@_1_3_5_7_10_20#1_20_7_;"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verigraph/verigraph/simulate"
	"github.com/verigraph/verigraph/vlog"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "verigraph",
		Short:         "simulate NP verifier Turing machines for all certificates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			vlog.SetLogger(vlog.NewLeveled(vlog.ParseLevel(logLevel)))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "loglevel", "info",
		"log level: verbose, debug, info, warn, error")
	root.AddCommand(newSATCmd(), newSubsetSumCmd())
	return root
}

func printResult(w *cobra.Command, res *simulate.Result, m int) {
	out := w.OutOrStdout()
	if res.Accepted {
		fmt.Fprintln(out, "Yes")
		if m > 0 && res.Witness != "" {
			fmt.Fprintln(out, "Witness for accepted certificate:", res.Witness)
		}
	} else {
		fmt.Fprintln(out, "No")
	}
	s := res.Stats
	fmt.Fprintln(out, "Total edge count:", res.Edges)
	fmt.Fprintln(out, "Edges extended directly:", res.Edges-s.ExtendedByVerification)
	fmt.Fprintln(out, "Edges extended by verification:", s.ExtendedByVerification)
	fmt.Fprintln(out, "Candidate edges verified:", s.CandidatesVerified)
	fmt.Fprintln(out, "Disjoint edges computed:", s.RemovedDisjointEdges)
	fmt.Fprintln(out, "Pruned walks:", s.PrunedWalks)
	fmt.Fprintln(out, "Halting edges:", s.HaltingEdges)
	fmt.Fprintln(out, "Extended maximal computation walks:", s.ExtendedWalks)
	fmt.Fprintf(out, "Average computation walk length extended: %.2f\n", s.AverageWalkLength())
	fmt.Fprintln(out, "Elapsed time:", res.Elapsed)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "verigraph:", err)
		os.Exit(2)
	}
}
