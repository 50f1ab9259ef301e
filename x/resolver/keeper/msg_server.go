package keeper

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// SetRecord binds msg.Addresses to msg.UserName. A username moves from unset
// to set exactly once; any failure leaves the store untouched.
func (k Keeper) SetRecord(ctx sdk.Context, msg types.MsgSetRecord) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	if k.HasRecord(ctx, msg.UserName) {
		return errorsmod.Wrapf(types.ErrAlreadyRegistered, "name %s", msg.UserName)
	}

	owner, err := k.requireOwnerOrAdmin(ctx, msg.Sender, msg.UserName)
	if err != nil {
		return err
	}

	entries, err := types.NormalizeAddresses(msg.Addresses)
	if err != nil {
		return err
	}

	if err := k.PutRecord(ctx, msg.UserName, owner, entries); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetRecord,
			sdk.NewAttribute(types.AttributeKeyUserName, msg.UserName),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAddresses, joinEntries(entries)),
		),
	)

	k.Logger(ctx).Info("set record",
		"user_name", msg.UserName,
		"owner", owner,
		"sender", msg.Sender,
		"addresses", len(entries),
	)

	return nil
}

func joinEntries(entries []types.AddressEntry) string {
	parts := make([]string, len(entries))
	for i, entry := range entries {
		parts[i] = entry.Address
	}
	return strings.Join(parts, ",")
}
