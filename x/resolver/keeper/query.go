package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// GetAddresses returns the addresses bound to username, ascending by prefix.
// An unset username yields an empty list.
func (k Keeper) GetAddresses(ctx sdk.Context, username string) types.GetAddressesResponse {
	record, found := k.GetRecord(ctx, username)
	if !found {
		return types.GetAddressesResponse{Addresses: []types.AddressEntry{}}
	}
	return types.GetAddressesResponse{Addresses: record.Addresses}
}

// GetAddress returns the address bound to username under prefix. found is
// false when either the record or the prefix is absent.
func (k Keeper) GetAddress(ctx sdk.Context, username, prefix string) (types.GetAddressResponse, bool) {
	record, found := k.GetRecord(ctx, username)
	if !found {
		return types.GetAddressResponse{}, false
	}
	address, found := record.Address(prefix)
	return types.GetAddressResponse{Address: address}, found
}

// GetAddressByIcns resolves a full icns name such as "bob.juno" to the
// address bound to "bob" under the "juno" prefix.
func (k Keeper) GetAddressByIcns(ctx sdk.Context, icns string) (types.AddressByIcnsResponse, error) {
	username, prefix, err := types.ParseIcns(icns)
	if err != nil {
		return types.AddressByIcnsResponse{}, err
	}

	resp, found := k.GetAddress(ctx, username, prefix)
	if !found {
		return types.AddressByIcnsResponse{}, errorsmod.Wrapf(types.ErrNotFound, "no %s address for %s", prefix, username)
	}
	return types.AddressByIcnsResponse{Bech32Address: resp.Address}, nil
}

// GetNames returns the usernames whose records bind address
func (k Keeper) GetNames(ctx sdk.Context, address string) types.GetNamesResponse {
	return types.GetNamesResponse{Names: k.NamesByAddress(ctx, address, 0)}
}

// GetAdmins returns the configured admin set
func (k Keeper) GetAdmins(ctx sdk.Context) (types.AdminsResponse, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.AdminsResponse{}, err
	}
	return types.AdminsResponse{Admins: config.Admins}, nil
}

// IsAdmin reports whether addr is a configured admin
func (k Keeper) IsAdmin(ctx sdk.Context, addr string) bool {
	return k.RequireAdmin(ctx, addr) == nil
}
