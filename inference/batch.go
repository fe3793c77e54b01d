// SPDX-License-Identifier: MIT

package inference

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one input set in InferBatch.
type Result struct {
	Outputs map[string]float64
	Err     error
}

// InferBatch runs Infer over independent input sets on a bounded pool of
// goroutines (WithWorkers). Result i belongs to inputs[i]. Per-item failures
// are reported in Result.Err and never stop the batch; once ctx is done,
// items not yet started get ctx.Err().
//
// Complexity: O(len(inputs) · cost(Infer)) work, spread over the workers.
func (e *Engine) InferBatch(ctx context.Context, inputs []map[string]float64) []Result {
	results := make([]Result, len(inputs))
	var g errgroup.Group
	g.SetLimit(e.workers)

	for i := range inputs {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			out, err := e.Infer(inputs[i])
			results[i] = Result{Outputs: out, Err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}
