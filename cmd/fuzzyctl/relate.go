// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfuzzy/relation"
	"github.com/katalvlaran/lvfuzzy/variable"
)

func relateCmd(a *app) *cobra.Command {
	var first, second string
	cmd := &cobra.Command{
		Use:   "relate",
		Short: "Show the joint relation of two fuzzified values and its projections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := a.ruleBase()
			if err != nil {
				return err
			}
			vars, err := rb.BuildVariables()
			if err != nil {
				return err
			}
			byName := make(map[string]*variable.Variable, len(vars))
			for _, v := range vars {
				byName[v.Name()] = v
			}
			pick := func(flag, s string) (*variable.Variable, float64, error) {
				name, x, err := parseAssignment(s)
				if err != nil {
					return nil, 0, fmt.Errorf("--%s %w", flag, err)
				}
				v, ok := byName[name]
				if !ok {
					return nil, 0, fmt.Errorf("--%s: unknown variable %q", flag, name)
				}
				return v, x, nil
			}
			va, x, err := pick("a", first)
			if err != nil {
				return err
			}
			vb, y, err := pick("b", second)
			if err != nil {
				return err
			}

			return printReport(cmd.OutOrStdout(), relation.Relate(va, x, vb, y))
		},
	}
	cmd.Flags().StringVar(&first, "a", "", "First variable as name=value")
	cmd.Flags().StringVar(&second, "b", "", "Second variable as name=value")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func printReport(w io.Writer, rep *relation.Report) error {
	j := rep.Joint
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\\%s", j.NameA, j.NameB)
	for _, tb := range j.TermsB() {
		fmt.Fprintf(tw, "\t%s", tb)
	}
	fmt.Fprintln(tw)
	for _, ta := range j.TermsA() {
		fmt.Fprint(tw, ta)
		for _, tb := range j.TermsB() {
			fmt.Fprintf(tw, "\t%.2f", j.Degree(ta, tb))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printProjection(w, j.NameA, rep.ProjA)
	printProjection(w, j.NameB, rep.ProjB)

	return nil
}

func printProjection(w io.Writer, name string, d variable.Degrees) {
	fmt.Fprintf(w, "\nprojection on %s:\n", name)
	for _, term := range d.Names() {
		fmt.Fprintf(w, "  %s: %.2f\n", term, d[term])
	}
}
