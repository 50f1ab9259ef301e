package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/icnx-xyz/icns/x/namenft/types"
)

// Keeper maintains the state for the namenft module
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey
	access   types.AccessKeeper
}

// NewKeeper creates a new Keeper. The access policy is attached afterwards
// with SetAccessKeeper because it lives in a module that depends on this one.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
) Keeper {
	return Keeper{
		cdc:      cdc,
		storeKey: storeKey,
	}
}

// SetAccessKeeper sets the access policy. It may only be called once.
func (k *Keeper) SetAccessKeeper(access types.AccessKeeper) {
	if k.access != nil {
		panic("namenft access keeper already set")
	}
	k.access = access
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Mint mints a new name token to owner. The minter must be a registrar or an
// admin.
func (k Keeper) Mint(ctx sdk.Context, minter, tokenID, owner, tokenURI string) error {
	if err := types.ValidateName(tokenID); err != nil {
		return err
	}

	if err := k.checkMinter(ctx, minter); err != nil {
		return err
	}

	if _, _, err := bech32.DecodeAndConvert(owner); err != nil {
		return fmt.Errorf("invalid owner address %s: %w", owner, err)
	}

	// Check if the name is already taken
	if k.Exists(ctx, tokenID) {
		return errorsmod.Wrapf(types.ErrTokenExists, "name %s", tokenID)
	}

	k.setToken(ctx, types.NewNameToken(tokenID, owner, tokenURI, ctx.BlockTime()))

	// Increment total supply
	store := ctx.KVStore(k.storeKey)
	supplyBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(supplyBytes, k.GetTotalSupply(ctx)+1)
	store.Set(types.TotalSupplyKey, supplyBytes)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyTokenID, tokenID),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyMinter, minter),
		),
	)

	k.Logger(ctx).Info("minted name",
		"token_id", tokenID,
		"owner", owner,
		"minter", minter,
	)

	return nil
}

// Transfer moves a name token to newOwner. Transfers must be enabled and the
// sender must be the current owner or an admin.
func (k Keeper) Transfer(ctx sdk.Context, sender, tokenID, newOwner string) error {
	if err := k.checkTransferrable(ctx); err != nil {
		return err
	}

	token, err := k.GetToken(ctx, tokenID)
	if err != nil {
		return err
	}

	if err := k.checkOwnerOrAdmin(ctx, sender, token.Owner); err != nil {
		return err
	}

	if _, _, err := bech32.DecodeAndConvert(newOwner); err != nil {
		return fmt.Errorf("invalid recipient address %s: %w", newOwner, err)
	}

	store := ctx.KVStore(k.storeKey)
	oldOwner := token.Owner

	// Remove from old owner's index
	store.Delete(types.OwnerTokenStoreKey(oldOwner, tokenID))

	token.Owner = newOwner
	k.setToken(ctx, *token)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyTokenID, tokenID),
			sdk.NewAttribute(types.AttributeKeyFrom, oldOwner),
			sdk.NewAttribute(types.AttributeKeyTo, newOwner),
		),
	)

	k.Logger(ctx).Info("transferred name",
		"token_id", tokenID,
		"from", oldOwner,
		"to", newOwner,
	)

	return nil
}

// GetToken retrieves a name token by id
func (k Keeper) GetToken(ctx sdk.Context, tokenID string) (*types.NameToken, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.TokenStoreKey(tokenID))

	if bz == nil {
		return nil, errorsmod.Wrapf(types.ErrTokenNotFound, "name %s", tokenID)
	}

	var token types.NameToken
	if err := json.Unmarshal(bz, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal name token: %w", err)
	}

	return &token, nil
}

// Exists checks if a name token exists
func (k Keeper) Exists(ctx sdk.Context, tokenID string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.TokenStoreKey(tokenID))
}

// OwnerOf returns the owner of a name token. It reports found=false rather
// than an error when the token does not exist.
func (k Keeper) OwnerOf(goCtx context.Context, tokenID string) (string, bool, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if !k.Exists(ctx, tokenID) {
		return "", false, nil
	}

	token, err := k.GetToken(ctx, tokenID)
	if err != nil {
		return "", false, err
	}
	return token.Owner, true, nil
}

// GetTokensByOwner returns all token ids held by owner, in key order
func (k Keeper) GetTokensByOwner(ctx sdk.Context, owner string) []string {
	store := ctx.KVStore(k.storeKey)
	prefix := types.OwnerTokensPrefix(owner)

	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var tokenIDs []string
	for ; iterator.Valid(); iterator.Next() {
		tokenIDs = append(tokenIDs, string(iterator.Key()[len(prefix):]))
	}

	return tokenIDs
}

// IterateTokens calls cb for every token until cb returns true
func (k Keeper) IterateTokens(ctx sdk.Context, cb func(token types.NameToken) (stop bool)) error {
	store := ctx.KVStore(k.storeKey)

	iterator := storetypes.KVStorePrefixIterator(store, types.TokenKey)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var token types.NameToken
		if err := json.Unmarshal(iterator.Value(), &token); err != nil {
			return fmt.Errorf("failed to unmarshal name token: %w", err)
		}
		if cb(token) {
			break
		}
	}
	return nil
}

// GetTotalSupply returns the total number of name tokens minted
func (k Keeper) GetTotalSupply(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.TotalSupplyKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// setToken writes the token and its owner index entry
func (k Keeper) setToken(ctx sdk.Context, token types.NameToken) {
	store := ctx.KVStore(k.storeKey)

	bz, err := json.Marshal(token)
	if err != nil {
		// NameToken only holds strings and a timestamp
		panic(fmt.Errorf("failed to marshal name token: %w", err))
	}
	store.Set(types.TokenStoreKey(token.TokenID), bz)
	store.Set(types.OwnerTokenStoreKey(token.Owner, token.TokenID), []byte{1})
}
