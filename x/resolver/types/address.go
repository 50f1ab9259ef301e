package types

import (
	"sort"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// ValidateAddress checks that address is a checksum-valid bech32 string whose
// human readable part is exactly prefix.
func ValidateAddress(prefix, address string) error {
	if prefix == "" {
		return errorsmod.Wrap(ErrInvalidAddress, "empty bech32 prefix")
	}

	hrp, _, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: %s", address, err)
	}

	if hrp != prefix {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s has prefix %q, expected %q", address, hrp, prefix)
	}

	return nil
}

// NormalizeAddresses validates every entry and returns the set in canonical
// order (ascending by prefix) with every address in lowercase form. Exact
// duplicates collapse into one entry; two different addresses under the same
// prefix are rejected.
func NormalizeAddresses(entries []AddressEntry) ([]AddressEntry, error) {
	if len(entries) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidAddress, "record must contain at least one address")
	}

	byPrefix := make(map[string]string, len(entries))
	normalized := make([]AddressEntry, 0, len(entries))

	for _, entry := range entries {
		// bech32 accepts all-uppercase strings; store one form per wallet
		entry.Address = strings.ToLower(entry.Address)
		if existing, ok := byPrefix[entry.Prefix]; ok {
			if existing != entry.Address {
				return nil, errorsmod.Wrapf(ErrInvalidAddress, "duplicate prefix %q", entry.Prefix)
			}
			continue
		}

		if err := ValidateAddress(entry.Prefix, entry.Address); err != nil {
			return nil, err
		}

		byPrefix[entry.Prefix] = entry.Address
		normalized = append(normalized, entry)
	}

	SortEntries(normalized)
	return normalized, nil
}

// SortEntries orders entries ascending by prefix in place.
func SortEntries(entries []AddressEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Prefix < entries[j].Prefix
	})
}
