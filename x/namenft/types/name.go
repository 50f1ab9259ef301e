package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// NameSeparator is reserved for sub-names and may not appear in a name.
const NameSeparator = "."

// ValidateName checks that name can be used as a token id.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errorsmod.Wrap(ErrInvalidName, "name cannot be empty")
	}
	if strings.Contains(name, NameSeparator) {
		return errorsmod.Wrapf(ErrInvalidName, "name %q contains reserved separator %q", name, NameSeparator)
	}
	return nil
}
