package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	namenfttypes "github.com/icnx-xyz/icns/x/namenft/types"
)

// MsgSetRecord binds a set of addresses to a username. It is the only state
// changing request the resolver accepts.
type MsgSetRecord struct {
	Sender    string         `json:"sender"`
	UserName  string         `json:"user_name"`
	Addresses []AddressEntry `json:"addresses"`
}

// NewMsgSetRecord creates a new MsgSetRecord
func NewMsgSetRecord(sender, username string, addresses []AddressEntry) MsgSetRecord {
	return MsgSetRecord{
		Sender:    sender,
		UserName:  username,
		Addresses: addresses,
	}
}

// ValidateBasic performs stateless checks on the message. Address entries are
// validated by the keeper after authorization.
func (msg MsgSetRecord) ValidateBasic() error {
	if _, _, err := bech32.DecodeAndConvert(msg.Sender); err != nil {
		return errorsmod.Wrapf(ErrUnauthorized, "invalid sender %q: %s", msg.Sender, err)
	}
	return ValidateUserName(msg.UserName)
}

// ValidateUserName applies the name token's format rule to username.
func ValidateUserName(username string) error {
	if err := namenfttypes.ValidateName(username); err != nil {
		return errorsmod.Wrapf(ErrInvalidName, "%q: %s", username, err)
	}
	return nil
}

// ParseIcns splits a full icns name such as "bob.juno" on its last separator
// into the username and the bech32 prefix.
func ParseIcns(icns string) (username, prefix string, err error) {
	idx := strings.LastIndex(icns, ".")
	if idx <= 0 || idx == len(icns)-1 {
		return "", "", errorsmod.Wrapf(ErrInvalidName, "%q is not of the form <name>.<prefix>", icns)
	}

	username, prefix = icns[:idx], icns[idx+1:]
	if err := ValidateUserName(username); err != nil {
		return "", "", err
	}
	return username, prefix, nil
}

// GetAddressesResponse lists the addresses bound to a username in canonical
// order. It is empty when no record exists.
type GetAddressesResponse struct {
	Addresses []AddressEntry `json:"addresses"`
}

// GetAddressResponse holds the address bound to a username under one prefix
type GetAddressResponse struct {
	Address string `json:"address"`
}

// AddressByIcnsResponse holds the address a full icns name resolves to
type AddressByIcnsResponse struct {
	Bech32Address string `json:"bech32_address"`
}

// GetNamesResponse lists the usernames that bind a given address
type GetNamesResponse struct {
	Names []string `json:"names"`
}

// AdminsResponse lists the configured admins
type AdminsResponse struct {
	Admins []string `json:"admins"`
}
