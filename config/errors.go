// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
)

var (
	// ErrUnsupportedFormat indicates a file extension or format other than YAML or TOML.
	ErrUnsupportedFormat = fmt.Errorf("config: unsupported format: %w", lvfuzzy.ErrConfiguration)

	// ErrMalformed indicates a document that does not decode or whose
	// structure is inconsistent (e.g. an interval without three values).
	ErrMalformed = fmt.Errorf("config: malformed rule base: %w", lvfuzzy.ErrConfiguration)
)
