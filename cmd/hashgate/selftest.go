package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errSelfTestFailed = errors.New("self-test failed")

func newSelfTestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run known-answer tests against every provider.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			failed := false
			for _, res := range a.registry.SelfTest() {
				status := "PASS"
				if !res.Passed {
					status = "FAIL"
					failed = true
				}
				fmt.Fprintf(out, "%s %s (%s)\n", status, res.Provider, strings.Join(res.Checked, ", "))
				if len(res.Skipped) > 0 {
					fmt.Fprintf(out, "  skipped, refused by runtime: %s\n", strings.Join(res.Skipped, ", "))
				}
				for _, e := range res.Errors {
					fmt.Fprintf(out, "  %s\n", e)
				}
			}
			if failed {
				return errSelfTestFailed
			}
			return nil
		},
	}
}
