package keeper

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// PutRecord stores the record for username together with its owner and
// reverse index entries. The existence check and every write happen in one
// cached context that is committed only when all of them succeed. Entries
// must already be normalized.
func (k Keeper) PutRecord(ctx sdk.Context, username, owner string, entries []types.AddressEntry) error {
	cacheCtx, write := ctx.CacheContext()
	store := cacheCtx.KVStore(k.storeKey)

	if store.Has(types.RecordStoreKey(username)) {
		return errorsmod.Wrapf(types.ErrAlreadyRegistered, "name %s", username)
	}

	record := types.NewAddressRecord(username, entries)
	bz, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	store.Set(types.RecordStoreKey(username), bz)
	store.Set(types.OwnerStoreKey(username), []byte(owner))
	for _, entry := range entries {
		store.Set(types.AddressIndexStoreKey(entry.Address, username), []byte{1})
	}

	write()
	return nil
}

// GetRecord returns the record stored for username, if any
func (k Keeper) GetRecord(ctx sdk.Context, username string) (types.AddressRecord, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.RecordStoreKey(username))
	if bz == nil {
		return types.AddressRecord{}, false
	}

	var record types.AddressRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		// Records are only written by PutRecord
		panic(fmt.Errorf("failed to unmarshal record %s: %w", username, err))
	}

	return record, true
}

// HasRecord checks if a record exists for username
func (k Keeper) HasRecord(ctx sdk.Context, username string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.RecordStoreKey(username))
}

// GetOwner returns the owner recorded when username was written
func (k Keeper) GetOwner(ctx sdk.Context, username string) (string, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.OwnerStoreKey(username))
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

// NamesByAddress returns the usernames whose records bind address, in key
// order, stopping after limit names. A limit of zero or less returns them all.
// The index holds lowercase addresses only.
func (k Keeper) NamesByAddress(ctx sdk.Context, address string, limit int) []string {
	store := ctx.KVStore(k.storeKey)
	prefix := types.AddressIndexPrefix(strings.ToLower(address))

	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	names := []string{}
	for ; iterator.Valid(); iterator.Next() {
		if limit > 0 && len(names) == limit {
			break
		}
		names = append(names, string(iterator.Key()[len(prefix):]))
	}

	return names
}

// IterateRecords calls cb for every record until cb returns true
func (k Keeper) IterateRecords(ctx sdk.Context, cb func(record types.AddressRecord) (stop bool)) error {
	store := ctx.KVStore(k.storeKey)

	iterator := storetypes.KVStorePrefixIterator(store, types.RecordKey)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.AddressRecord
		if err := json.Unmarshal(iterator.Value(), &record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		if cb(record) {
			break
		}
	}
	return nil
}
