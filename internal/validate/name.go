// Package validate provides input validation utilities for kontroll.
//
// This file validates keyboard friendly names given to the simulated
// controller daemon. Names are printed verbatim by `kontroll list`, so they
// must be single-line, trimmed and reasonably short.

package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// maxKeyboardNameLen bounds friendly names in characters.
const maxKeyboardNameLen = 64

// KeyboardNameFormat validates a keyboard friendly name.
// Names may contain any printable characters including spaces, but must not
// be empty, start or end with whitespace, or contain control characters.
func KeyboardNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("keyboard name cannot be empty")
	}

	if err := ValidateField(name, fmt.Sprintf("max=%d", maxKeyboardNameLen)); err != nil {
		return fmt.Errorf("keyboard name '%s' exceeds %d characters", name, maxKeyboardNameLen)
	}

	if strings.TrimSpace(name) != name {
		return fmt.Errorf("keyboard name '%s' cannot start or end with whitespace", name)
	}

	for _, r := range name {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("keyboard name %q must contain only printable characters", name)
		}
	}

	return nil
}
