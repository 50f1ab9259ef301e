package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// Keeper maintains the state for the resolver module
type Keeper struct {
	cdc           codec.BinaryCodec
	storeKey      storetypes.StoreKey
	nameNFTKeeper types.NameNFTKeeper
}

// NewKeeper creates a new Keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	nameNFTKeeper types.NameNFTKeeper,
) Keeper {
	return Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		nameNFTKeeper: nameNFTKeeper,
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetConfig loads the module config. A chain that skipped genesis has none.
func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ConfigKey)
	if bz == nil {
		return types.Config{}, fmt.Errorf("%s config not initialized", types.ModuleName)
	}

	var config types.Config
	if err := json.Unmarshal(bz, &config); err != nil {
		return types.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

// initConfig stores the config. It may only run once, at genesis.
func (k Keeper) initConfig(ctx sdk.Context, config types.Config) error {
	store := ctx.KVStore(k.storeKey)
	if store.Has(types.ConfigKey) {
		return fmt.Errorf("%s config already initialized", types.ModuleName)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	store.Set(types.ConfigKey, bz)

	return nil
}
