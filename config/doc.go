// SPDX-License-Identifier: MIT

// Package config loads declarative rule bases from YAML or TOML documents and
// builds them into inference engines.
//
// Document layout (YAML; TOML uses the same keys):
//
//	variables:
//	  - name: temperature
//	    universe: {min: 0, max: 40, resolution: 1}
//	    terms:
//	      - {name: cold, shape: piecewise, intervals: [[0, 10, 1.0], [10, 20, 0.4]]}
//	      - {name: warm, shape: triangular, params: [15, 25, 35]}
//	  - name: speed
//	    universe: {min: 0, max: 2000, resolution: 1}
//	    default: 0          # crisp output used when no rule fires
//	    terms: [...]
//	rules:
//	  - name: R1
//	    if: [{variable: temperature, term: cold}]
//	    operator: and       # and | or, default and
//	    then: {variable: speed, term: low}
//	    weight: 1.0         # optional, default 1
//
// A term gives its membership function either as a shape tag plus a flat
// params list (see membership.New), as piecewise-constant intervals
// [lo, hi, degree], or as piecewise-linear points [x, y]. The shape may be
// omitted when intervals or points are present.
//
// Decoding is strict: unknown keys are rejected, so a misspelt "resolution"
// fails loudly instead of silently defaulting.
//
// Errors wrap lvfuzzy.ErrConfiguration; decode failures additionally wrap
// ErrMalformed, unknown file extensions ErrUnsupportedFormat.
package config
