package types

const (
	// ModuleName defines the module name
	ModuleName = "namenft"

	// StoreKey defines the primary store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store prefixes
var (
	// TokenKey prefix for storing name tokens
	// Key: token id (the name) -> Value: NameToken
	TokenKey = []byte{0x01}

	// OwnerTokensKey prefix for indexing tokens by owner
	// Key: bech32 owner + 0x00 + token id -> Value: empty (existence check)
	OwnerTokensKey = []byte{0x02}

	// TotalSupplyKey stores the total number of name tokens minted
	TotalSupplyKey = []byte{0x03}
)

// TokenStoreKey returns the key of the token with the given id.
func TokenStoreKey(tokenID string) []byte {
	return append(append([]byte{}, TokenKey...), []byte(tokenID)...)
}

// OwnerTokensPrefix returns the prefix of every index entry held by owner.
func OwnerTokensPrefix(owner string) []byte {
	key := append(append([]byte{}, OwnerTokensKey...), []byte(owner)...)
	return append(key, 0x00)
}

// OwnerTokenStoreKey returns the index key for (owner, tokenID).
func OwnerTokenStoreKey(owner, tokenID string) []byte {
	return append(OwnerTokensPrefix(owner), []byte(tokenID)...)
}
