package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sara-star-quant/hashgate/pkg/hashlib"
)

func newAlgorithmsCommand(a *app) *cobra.Command {
	var guaranteed bool

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List digest algorithms with their provider and gating.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.registry.Available()
			if guaranteed {
				names = hashlib.Guaranteed()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ALGORITHM\tPROVIDER\tAUDITED\tGATED")
			for _, name := range names {
				src, err := a.registry.Source(name)
				if err != nil {
					fmt.Fprintf(w, "%s\t-\t-\t-\n", name)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%t\n", src.Algorithm, src.Provider, src.Audited, src.Gated)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&guaranteed, "guaranteed", false, "list only algorithms available on every platform")
	return cmd
}
