package types

import (
	"context"
)

// NameNFTKeeper defines the expected interface of the name-ownership token
// module. Token ids double as usernames.
type NameNFTKeeper interface {
	// OwnerOf returns the current owner of the token with the given id.
	// found is false when no such token exists.
	OwnerOf(ctx context.Context, tokenID string) (owner string, found bool, err error)
}
