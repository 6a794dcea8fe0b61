package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgversion "github.com/sara-star-quant/hashgate/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hashgate version %s\n", getVersion())
			fmt.Fprintln(out, pkgversion.Full())
			if buildTime != "unknown" {
				fmt.Fprintf(out, "Built: %s\n", buildTime)
			}
			if gitCommit != "unknown" {
				fmt.Fprintf(out, "Commit: %s\n", gitCommit)
			}
		},
	}
}
