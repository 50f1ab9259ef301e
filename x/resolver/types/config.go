package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// Config is the resolver's process-wide configuration, written once at
// genesis.
type Config struct {
	Admins        []string `json:"admins"`              // may bypass ownership checks
	Registrars    []string `json:"registrar_addresses"` // may mint name tokens
	NameNFT       string   `json:"name_nft"`            // name-ownership token module address
	Transferrable bool     `json:"transferrable"`       // gates name token transfers
}

// NewConfig creates a new Config
func NewConfig(admins, registrars []string, nameNFT string, transferrable bool) Config {
	return Config{
		Admins:        admins,
		Registrars:    registrars,
		NameNFT:       nameNFT,
		Transferrable: transferrable,
	}
}

// IsAdmin reports whether addr is in the admin set.
func (c Config) IsAdmin(addr string) bool {
	for _, admin := range c.Admins {
		if admin == addr {
			return true
		}
	}
	return false
}

// IsRegistrar reports whether addr is in the registrar set.
func (c Config) IsRegistrar(addr string) bool {
	for _, registrar := range c.Registrars {
		if registrar == addr {
			return true
		}
	}
	return false
}

// Validate performs stateless validation of the config.
func (c Config) Validate() error {
	if err := validatePrincipals("admin", c.Admins); err != nil {
		return err
	}
	if err := validatePrincipals("registrar", c.Registrars); err != nil {
		return err
	}
	if _, _, err := bech32.DecodeAndConvert(c.NameNFT); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "name nft %q: %s", c.NameNFT, err)
	}
	return nil
}

func validatePrincipals(role string, addrs []string) error {
	seen := make(map[string]bool, len(addrs))
	for _, addr := range addrs {
		if _, _, err := bech32.DecodeAndConvert(addr); err != nil {
			return errorsmod.Wrapf(ErrInvalidConfig, "%s %q: %s", role, addr, err)
		}
		if seen[addr] {
			return errorsmod.Wrapf(ErrInvalidConfig, "duplicate %s %s", role, addr)
		}
		seen[addr] = true
	}
	return nil
}
