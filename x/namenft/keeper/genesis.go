package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/namenft/types"
)

// InitGenesis writes the genesis tokens without access checks
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	for _, token := range gs.Tokens {
		k.setToken(ctx, token)
	}

	supplyBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(supplyBytes, uint64(len(gs.Tokens)))
	ctx.KVStore(k.storeKey).Set(types.TotalSupplyKey, supplyBytes)

	k.Logger(ctx).Info("namenft genesis initialized", "tokens", len(gs.Tokens))
}

// ExportGenesis returns every stored token
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	tokens := []types.NameToken{}
	err := k.IterateTokens(ctx, func(token types.NameToken) bool {
		tokens = append(tokens, token)
		return false
	})
	if err != nil {
		return nil, err
	}
	return types.NewGenesisState(tokens), nil
}
