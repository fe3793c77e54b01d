// SPDX-License-Identifier: MIT

package lvfuzzy

import "errors"

// Error classes. Package-level sentinels in the subpackages wrap exactly one
// of these, so callers may branch on the class or on the specific kind.
var (
	// ErrConfiguration marks build-time failures: malformed universes, shape
	// parameters out of order, duplicate names, dangling rule references.
	// An engine is never constructed when one of these is returned.
	ErrConfiguration = errors.New("lvfuzzy: configuration error")

	// ErrInference marks per-call failures such as a zero-area aggregate or
	// a missing input. They are recoverable; the engine stays usable.
	ErrInference = errors.New("lvfuzzy: inference error")
)
