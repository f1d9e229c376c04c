package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verigraph/verigraph/simulate"
	"github.com/verigraph/verigraph/verifiertm"
)

func newSubsetSumCmd() *cobra.Command {
	var (
		existence bool
		certCheck bool
	)
	cmd := &cobra.Command{
		Use:   "subsetsum <tape>",
		Short: "run the Subset-Sum verifier machine",
		Long: `Run the Subset-Sum verifier over a tape encoded as
<target>_@_<elements>#<certificate> with '_'-separated decimal numbers
and a ';'-terminated certificate. With --existence the certificate
region is left open and every subset is simulated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape := args[0]
			if !strings.Contains(tape, "#") || !strings.Contains(tape, "@") {
				return fmt.Errorf("tape needs both '@' and '#'")
			}

			m := 0
			if existence {
				var err error
				if m, err = verifiertm.SubsetSumCertificateBound(tape); err != nil {
					return err
				}
			}

			build := verifiertm.SubsetSum
			if certCheck {
				build = verifiertm.SubsetSumWithCertificateCheck
			}
			mach, err := build()
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
	cmd.Flags().BoolVar(&certCheck, "cert-check", false, "validate the certificate region first")
	return cmd
}
