// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// detailView is the JSON shape of --detailed: sampled aggregates are
// summarized by their area to keep the output readable.
type detailView struct {
	Inputs     map[string]float64          `json:"inputs"`
	Fuzzified  map[string]variable.Degrees `json:"fuzzified"`
	Rules      []ruleView                  `json:"rules"`
	Aggregates map[string]aggregateView    `json:"aggregates"`
	Outputs    map[string]float64          `json:"outputs"`
	Fallbacks  []string                    `json:"fallbacks,omitempty"`
	Errors     string                      `json:"error,omitempty"`
}

type ruleView struct {
	Name     string  `json:"name"`
	Rule     string  `json:"rule"`
	Strength float64 `json:"strength"`
}

type aggregateView struct {
	Exact    bool         `json:"exact"`
	Area     float64      `json:"area"`
	Segments []segmentRow `json:"segments,omitempty"`
}

type segmentRow struct {
	Lo     float64 `json:"lo"`
	Hi     float64 `json:"hi"`
	Height float64 `json:"height"`
}

func inferCmd(a *app) *cobra.Command {
	var (
		assignments []string
		detailed    bool
	)
	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer crisp outputs from crisp inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			inputs := make(map[string]float64, len(assignments))
			for _, s := range assignments {
				name, v, err := parseAssignment(s)
				if err != nil {
					return fmt.Errorf("--input %w", err)
				}
				inputs[name] = v
			}

			d, inferErr := eng.InferDetailed(inputs)
			if d == nil {
				return inferErr
			}
			out := cmd.OutOrStdout()
			if detailed {
				view := newDetailView(eng, inputs, d)
				if inferErr != nil {
					view.Errors = inferErr.Error()
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(view); err != nil {
					return err
				}
				return inferErr
			}

			names := make([]string, 0, len(d.Outputs))
			for name := range d.Outputs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%s=%.4f\n", name, d.Outputs[name])
			}
			return inferErr
		},
	}
	cmd.Flags().StringArrayVarP(&assignments, "input", "i", nil, "Crisp input as name=value (repeatable)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Print fuzzified inputs, rule strengths and aggregates as JSON")

	return cmd
}

func newDetailView(eng *inference.Engine, inputs map[string]float64, d *inference.Detail) detailView {
	rules := eng.Rules()
	view := detailView{
		Inputs:     inputs,
		Fuzzified:  d.Fuzzified,
		Rules:      make([]ruleView, len(d.Rules)),
		Aggregates: make(map[string]aggregateView, len(d.Aggregates)),
		Outputs:    d.Outputs,
		Fallbacks:  d.Fallbacks,
	}
	for i, rf := range d.Rules {
		view.Rules[i] = ruleView{Name: rf.Name, Rule: rules[rf.Index].String(), Strength: rf.Strength}
	}
	for name, agg := range d.Aggregates {
		av := aggregateView{Exact: agg.Exact, Area: agg.Area}
		for _, s := range agg.Segments {
			if s.Height > 0 {
				av.Segments = append(av.Segments, segmentRow{Lo: s.Lo, Hi: s.Hi, Height: s.Height})
			}
		}
		view.Aggregates[name] = av
	}

	return view
}
