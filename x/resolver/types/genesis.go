package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	namenfttypes "github.com/icnx-xyz/icns/x/namenft/types"
)

// GenesisRecord is a record together with the owner it was written for
type GenesisRecord struct {
	Record AddressRecord `json:"record"`
	Owner  string        `json:"owner"`
}

// GenesisState defines the resolver module's genesis state
type GenesisState struct {
	Config  Config          `json:"config"`
	Records []GenesisRecord `json:"records"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(config Config, records []GenesisRecord) *GenesisState {
	return &GenesisState{
		Config:  config,
		Records: records,
	}
}

// DefaultGenesisState returns a default genesis state: no admins, no
// registrars, transfers disabled, pointing at the name token module account.
func DefaultGenesisState() *GenesisState {
	nameNFT := authtypes.NewModuleAddress(namenfttypes.ModuleName).String()
	return NewGenesisState(NewConfig([]string{}, []string{}, nameNFT, false), []GenesisRecord{})
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(gs.Records))
	for _, gr := range gs.Records {
		name := gr.Record.UserName
		if err := ValidateUserName(name); err != nil {
			return err
		}
		if seen[name] {
			return errorsmod.Wrapf(ErrAlreadyRegistered, "duplicate genesis record %s", name)
		}
		seen[name] = true

		if err := validatePrincipals("owner", []string{gr.Owner}); err != nil {
			return fmt.Errorf("genesis record %s: %w", name, err)
		}

		normalized, err := NormalizeAddresses(gr.Record.Addresses)
		if err != nil {
			return fmt.Errorf("genesis record %s: %w", name, err)
		}
		if len(normalized) != len(gr.Record.Addresses) {
			return fmt.Errorf("genesis record %s: duplicate address entries", name)
		}
	}

	return nil
}
