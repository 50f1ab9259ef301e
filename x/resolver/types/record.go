package types

// AddressEntry binds one network prefix to one address on that network
type AddressEntry struct {
	Prefix  string `json:"prefix"`  // bech32 human readable part, e.g. "juno"
	Address string `json:"address"` // bech32 address carrying Prefix
}

// AddressRecord is the write-once set of addresses bound to a username
type AddressRecord struct {
	UserName  string         `json:"user_name"`
	Addresses []AddressEntry `json:"addresses"`
}

// NewAddressRecord creates a new AddressRecord. Entries are expected to be
// normalized already.
func NewAddressRecord(username string, addresses []AddressEntry) AddressRecord {
	return AddressRecord{
		UserName:  username,
		Addresses: addresses,
	}
}

// Address returns the address bound under prefix, if any.
func (r AddressRecord) Address(prefix string) (string, bool) {
	for _, entry := range r.Addresses {
		if entry.Prefix == prefix {
			return entry.Address, true
		}
	}
	return "", false
}

// Pairs splits the record into parallel prefix and address slices.
func (r AddressRecord) Pairs() (prefixes []string, addresses []string) {
	prefixes = make([]string, len(r.Addresses))
	addresses = make([]string, len(r.Addresses))
	for i, entry := range r.Addresses {
		prefixes[i] = entry.Prefix
		addresses[i] = entry.Address
	}
	return prefixes, addresses
}
