package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// RequireAdmin fails with ErrUnauthorized unless caller is a configured admin.
func (k Keeper) RequireAdmin(goCtx context.Context, caller string) error {
	config, err := k.GetConfig(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return errorsmod.Wrap(types.ErrUnauthorized, err.Error())
	}
	if !config.IsAdmin(caller) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not an admin", caller)
	}
	return nil
}

// RequireRegistrar fails with ErrUnauthorized unless caller is a configured
// registrar.
func (k Keeper) RequireRegistrar(goCtx context.Context, caller string) error {
	config, err := k.GetConfig(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return errorsmod.Wrap(types.ErrUnauthorized, err.Error())
	}
	if !config.IsRegistrar(caller) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not a registrar", caller)
	}
	return nil
}

// RequireTransferrable fails with ErrUnauthorized while transfers are frozen,
// whoever the caller is.
func (k Keeper) RequireTransferrable(goCtx context.Context) error {
	config, err := k.GetConfig(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return errorsmod.Wrap(types.ErrUnauthorized, err.Error())
	}
	if !config.Transferrable {
		return errorsmod.Wrap(types.ErrUnauthorized, "transfers are disabled")
	}
	return nil
}

// RequireNameOwner fails with ErrUnauthorized unless the name token module
// currently reports caller as the owner of username. Lookup failures count as
// authorization failures.
func (k Keeper) RequireNameOwner(goCtx context.Context, caller, username string) error {
	owner, err := k.currentOwner(goCtx, username)
	if err != nil {
		return err
	}
	if owner != caller {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s does not own %s", caller, username)
	}
	return nil
}

// requireOwnerOrAdmin authorizes caller to write the record for username and
// returns the principal the record will be owned by.
func (k Keeper) requireOwnerOrAdmin(goCtx context.Context, caller, username string) (string, error) {
	owner, err := k.currentOwner(goCtx, username)
	if err != nil {
		return "", err
	}
	if owner == caller {
		return owner, nil
	}
	if err := k.RequireAdmin(goCtx, caller); err != nil {
		return "", errorsmod.Wrapf(types.ErrUnauthorized, "%s is neither the owner of %s nor an admin", caller, username)
	}
	return owner, nil
}

func (k Keeper) currentOwner(goCtx context.Context, username string) (string, error) {
	owner, found, err := k.nameNFTKeeper.OwnerOf(goCtx, username)
	if err != nil {
		return "", errorsmod.Wrapf(types.ErrUnauthorized, "owner lookup for %s failed: %s", username, err)
	}
	if !found {
		return "", errorsmod.Wrapf(types.ErrUnauthorized, "name %s has no owner", username)
	}
	return owner, nil
}
