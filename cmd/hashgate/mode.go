package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sara-star-quant/hashgate/pkg/fips"
)

func newModeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print the resolved compliance mode.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode:        %s\n", a.registry.Mode())
			fmt.Fprintf(out, "runtime:     %t\n", fips.Enabled())
			fmt.Fprintf(out, "strict:      %t\n", fips.Strict())
			fmt.Fprintf(out, "build tag:   %t\n", fips.ForcedByBuild())
			return nil
		},
	}
}
