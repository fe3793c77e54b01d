// SPDX-License-Identifier: MIT

package defuzz

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
)

var (
	// ErrZeroMembershipArea indicates the aggregated membership integrates to 0.
	ErrZeroMembershipArea = fmt.Errorf("defuzz: zero membership area: %w", lvfuzzy.ErrInference)

	// ErrLengthMismatch indicates len(xs) != len(mu).
	ErrLengthMismatch = fmt.Errorf("defuzz: sample length mismatch: %w", lvfuzzy.ErrInference)

	// ErrTooFewSamples indicates fewer than two samples.
	ErrTooFewSamples = fmt.Errorf("defuzz: at least two samples required: %w", lvfuzzy.ErrInference)

	// ErrInvalidSegment indicates a segment with lo > hi, a negative height,
	// or non-finite values; also non-increasing sample positions.
	ErrInvalidSegment = fmt.Errorf("defuzz: invalid segment: %w", lvfuzzy.ErrInference)
)
