// Package lvfuzzy is a Mamdani fuzzy-inference toolkit: membership functions,
// fuzzy variables, rule bases evaluated with Zadeh max-min composition,
// centroid defuzzification and fuzzy relations.
//
// 🚀 What is lvfuzzy?
//
//	A small library that turns crisp numbers into linguistic
//	degrees, reasons over them with IF-THEN rules, and turns the result back
//	into crisp numbers:
//		• Membership functions: triangular, trapezoidal, gaussian, tables
//		• Variables: named terms over a bounded, sampled universe
//		• Rules: AND (min) / OR (max) antecedents, weighted consequents
//		• Inference: max-min aggregation, exact for piecewise-constant tables
//		• Defuzzification: centroid of area
//		• Relations: cylindrical extension and projection
//
// ✨ Why choose lvfuzzy?
//
//   - Immutable configuration – build once, infer concurrently without locks
//   - Strict validation – an invalid engine cannot be constructed
//   - Explicit errors – configuration vs. per-call inference failures
//   - Declarative rule bases – YAML or TOML documents via the config package
//
// Packages:
//
//	membership/: shapes and evaluation
//	variable/  : universes, terms, fuzzification
//	rule/      : clauses, operators, firing strength
//	defuzz/    : centroid over samples or piecewise-constant segments
//	inference/ : the engine: Infer, InferDetailed, InferBatch
//	relation/  : cylindrical extension and projection
//	config/    : declarative rule-base loading
//	cmd/fuzzyctl: command-line front end
//
// Errors from every package wrap one of two classes defined here:
//
//	errors.Is(err, lvfuzzy.ErrConfiguration) // fatal, build time
//	errors.Is(err, lvfuzzy.ErrInference)     // recoverable, per call
//
//	go get github.com/katalvlaran/lvfuzzy
package lvfuzzy
