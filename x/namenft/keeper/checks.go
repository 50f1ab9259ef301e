package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/namenft/types"
)

func (k Keeper) checkMinter(ctx sdk.Context, minter string) error {
	if k.access == nil {
		return errorsmod.Wrap(types.ErrUnauthorized, "no access policy configured")
	}
	if err := k.access.RequireRegistrar(ctx, minter); err == nil {
		return nil
	}
	if err := k.access.RequireAdmin(ctx, minter); err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s may not mint names", minter)
	}
	return nil
}

func (k Keeper) checkTransferrable(ctx sdk.Context) error {
	if k.access == nil {
		return errorsmod.Wrap(types.ErrUnauthorized, "no access policy configured")
	}
	if err := k.access.RequireTransferrable(ctx); err != nil {
		return errorsmod.Wrap(types.ErrUnauthorized, "name transfers are disabled")
	}
	return nil
}

func (k Keeper) checkOwnerOrAdmin(ctx sdk.Context, sender, owner string) error {
	if sender == owner {
		return nil
	}
	if k.access != nil && k.access.RequireAdmin(ctx, sender) == nil {
		return nil
	}
	return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the owner", sender)
}
