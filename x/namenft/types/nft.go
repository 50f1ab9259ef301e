package types

import (
	"time"
)

// NameToken represents a non-fungible name token. Its id is the username it
// grants control over.
type NameToken struct {
	TokenID  string    `json:"token_id"`  // The name itself
	Owner    string    `json:"owner"`     // Cosmos bech32 address
	TokenURI string    `json:"token_uri"` // Metadata URI (IPFS/Arweave), optional
	MintedAt time.Time `json:"minted_at"` // Mint timestamp
}

// NewNameToken creates a new NameToken
func NewNameToken(tokenID, owner, tokenURI string, mintedAt time.Time) NameToken {
	return NameToken{
		TokenID:  tokenID,
		Owner:    owner,
		TokenURI: tokenURI,
		MintedAt: mintedAt,
	}
}
