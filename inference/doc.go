// Package inference implements a Mamdani fuzzy-inference engine with Zadeh
// max-min composition and centroid defuzzification.
//
// 🚀 Pipeline:
//
//	crisp inputs
//	  → fuzzify every input variable once
//	  → firing strength of every rule (min for AND, max for OR, × weight)
//	  → per output: μ(x) = max over rules of min(strength, consequent(x))
//	  → centroid of μ → crisp output
//
// Aggregation by pointwise maximum is commutative and associative, so the
// order of rules never changes the result. When every consequent targeting
// an output is a piecewise-constant table, aggregation is computed exactly
// on the elementary intervals between table breakpoints; otherwise the
// output universe is sampled at its resolution.
//
// ⚙️ Usage:
//
//	eng, err := inference.Configure(vars, rules,
//		inference.WithLogger(log),
//		inference.WithFallback("speed", 0),
//	)
//	if err != nil {
//	  // errors.Is(err, lvfuzzy.ErrConfiguration)
//	}
//	out, err := eng.Infer(map[string]float64{"temperature": 22, "fan": 60})
//
// Concurrency:
//
//	An Engine is immutable after Configure. Infer, InferDetailed and
//	InferBatch may be called from any number of goroutines without locking;
//	each call allocates only its own fuzzification and aggregation state.
//
// Errors:
//   - Configure returns errors wrapping lvfuzzy.ErrConfiguration.
//   - Infer returns errors wrapping lvfuzzy.ErrInference: ErrMissingInput,
//     ErrUnknownInput, ErrInvalidInput, ErrZeroMembershipArea.
package inference
