package types

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// GenesisState defines the namenft module's genesis state
type GenesisState struct {
	Tokens []NameToken `json:"tokens"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(tokens []NameToken) *GenesisState {
	return &GenesisState{Tokens: tokens}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return NewGenesisState([]NameToken{})
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	seen := make(map[string]bool, len(gs.Tokens))
	for _, token := range gs.Tokens {
		if err := ValidateName(token.TokenID); err != nil {
			return err
		}
		if seen[token.TokenID] {
			return fmt.Errorf("duplicate token %s", token.TokenID)
		}
		seen[token.TokenID] = true

		if _, _, err := bech32.DecodeAndConvert(token.Owner); err != nil {
			return fmt.Errorf("token %s: invalid owner %s: %w", token.TokenID, token.Owner, err)
		}
	}
	return nil
}
