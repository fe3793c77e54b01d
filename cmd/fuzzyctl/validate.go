// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a rule base and print its inputs and outputs",
		Long: `Validate builds every variable and rule and reports the first
configuration error. A document with variables but no rules (as used by
relate) is checked for its variables only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := a.ruleBase()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(rb.Rules) == 0 {
				vars, err := rb.BuildVariables()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "ok: %d variables, no rules\n", len(vars))
				return nil
			}

			eng, err := rb.Build(inference.WithLogger(a.log))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "ok: %d variables, %d rules\n", len(eng.Variables()), len(eng.Rules()))
			fmt.Fprintf(out, "inputs:  %s\n", strings.Join(eng.Inputs(), ", "))
			fmt.Fprintf(out, "outputs: %s\n", strings.Join(eng.Outputs(), ", "))
			for i, r := range eng.Rules() {
				a.log.Debug("rule", zap.String("name", eng.RuleNames()[i]), zap.Stringer("rule", r))
			}
			return nil
		},
	}
}
