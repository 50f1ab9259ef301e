package types

const (
	// ModuleName defines the module name
	ModuleName = "resolver"

	// StoreKey defines the primary store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store prefixes
var (
	// RecordKey prefix for storing address records
	// Key: username -> Value: AddressRecord
	RecordKey = []byte{0x01}

	// OwnerKey prefix for the owner recorded when a username was written
	// Key: username -> Value: bech32 principal
	OwnerKey = []byte{0x02}

	// ConfigKey stores the module Config singleton
	ConfigKey = []byte{0x03}

	// AddressIndexKey prefix for reverse lookups
	// Key: bound address + 0x00 + username -> Value: empty (existence check)
	AddressIndexKey = []byte{0x04}
)

// RecordStoreKey returns the key of the record stored for username.
func RecordStoreKey(username string) []byte {
	return append(append([]byte{}, RecordKey...), []byte(username)...)
}

// OwnerStoreKey returns the key of the owner recorded for username.
func OwnerStoreKey(username string) []byte {
	return append(append([]byte{}, OwnerKey...), []byte(username)...)
}

// AddressIndexPrefix returns the prefix under which every username bound to
// address is indexed.
func AddressIndexPrefix(address string) []byte {
	key := append(append([]byte{}, AddressIndexKey...), []byte(address)...)
	return append(key, 0x00)
}

// AddressIndexStoreKey returns the reverse index key for (address, username).
func AddressIndexStoreKey(address, username string) []byte {
	return append(AddressIndexPrefix(address), []byte(username)...)
}
