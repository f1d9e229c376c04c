package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verigraph/verigraph/dcg"
	"github.com/verigraph/verigraph/simulate"
	"github.com/verigraph/verigraph/verifiertm"
)

func newSATCmd() *cobra.Command {
	var (
		existence bool
		fixed     bool
		certCheck bool
		cnfPath   string
	)
	cmd := &cobra.Command{
		Use:   "sat [tape]",
		Short: "run a SAT verifier machine",
		Long: `Run a SAT verifier over a tape of '&'-separated clauses of
'_'-separated literals, terminated by '#'. In verifier mode the
certificate (T/F per variable) follows the '#'; with --existence the
certificate region is left open and every assignment is simulated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tape string
			switch {
			case cnfPath != "":
				data, err := os.ReadFile(cnfPath)
				if err != nil {
					return err
				}
				tape, err = tapeFromCNF(string(data))
				if err != nil {
					return err
				}
				fixed = true
			case len(args) == 1:
				tape = args[0]
			default:
				return fmt.Errorf("need a tape argument or --cnf file")
			}
			if !strings.Contains(tape, "#") {
				return fmt.Errorf("tape has no '#' terminator")
			}

			m := 0
			if existence {
				var err error
				if m, err = verifiertm.SATCertificateBound(tape); err != nil {
					return err
				}
			}

			mach, err := satMachine(fixed, certCheck, m)
			if err != nil {
				return err
			}
			res, err := simulate.Run(mach, tape, m)
			if err != nil {
				return err
			}
			printResult(cmd, res, m)
			return nil
		},
	}
	cmd.Flags().BoolVar(&existence, "existence", false, "search over all certificates")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "use the fixed-state machine")
	cmd.Flags().BoolVar(&certCheck, "cert-check", false, "validate the certificate region first")
	cmd.Flags().StringVar(&cnfPath, "cnf", "", "read a DIMACS CNF file (implies --fixed)")
	return cmd
}

func satMachine(fixed, certCheck bool, m int) (*dcg.Machine, error) {
	switch {
	case fixed && certCheck:
		return verifiertm.SATFixedWithCertificateCheck()
	case fixed:
		return verifiertm.SATFixed()
	case certCheck:
		return verifiertm.SATDynamicWithCertificateCheck(m)
	default:
		return verifiertm.SATDynamic(m)
	}
}

// tapeFromCNF converts DIMACS CNF content to the SAT tape encoding:
// clauses end with 0 in DIMACS and become '&'-separated literal groups.
func tapeFromCNF(content string) (string, error) {
	var clauses []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "%" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}
		lits := strings.Fields(line)
		if len(lits) > 0 && lits[len(lits)-1] == "0" {
			lits = lits[:len(lits)-1]
		}
		if len(lits) == 0 {
			continue
		}
		clauses = append(clauses, strings.Join(lits, "_"))
	}
	if len(clauses) == 0 {
		return "", fmt.Errorf("no clauses in CNF input")
	}
	return strings.Join(clauses, "&") + "#", nil
}
