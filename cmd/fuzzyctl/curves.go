// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func curvesCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "curves",
		Short: "Print every term of a variable sampled over its universe, as CSV",
		Long: `Curves samples each membership function of one variable at the
universe resolution and prints x followed by one column per term, ready
for any plotting tool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := a.ruleBase()
			if err != nil {
				return err
			}
			vars, err := rb.BuildVariables()
			if err != nil {
				return err
			}
			for _, v := range vars {
				if v.Name() != name {
					continue
				}
				terms := v.TermNames()
				cols := make([][]float64, len(terms))
				var xs []float64
				for i, term := range terms {
					if xs, cols[i], err = v.Curve(term); err != nil {
						return err
					}
				}

				cw := csv.NewWriter(cmd.OutOrStdout())
				if err := cw.Write(append([]string{"x"}, terms...)); err != nil {
					return err
				}
				rec := make([]string, len(terms)+1)
				for k, x := range xs {
					rec[0] = strconv.FormatFloat(x, 'g', -1, 64)
					for i := range terms {
						rec[i+1] = strconv.FormatFloat(cols[i][k], 'f', 4, 64)
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				cw.Flush()
				return cw.Error()
			}

			return fmt.Errorf("--variable: unknown variable %q", name)
		},
	}
	cmd.Flags().StringVar(&name, "variable", "", "Variable name")
	_ = cmd.MarkFlagRequired("variable")

	return cmd
}
