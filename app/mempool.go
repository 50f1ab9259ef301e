package app

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"cosmossdk.io/log"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"

	evmmempool "github.com/cosmos/evm/mempool"
)

const (
	// mempoolBlockGasLimit bounds the gas the EVM pool selects per block
	mempoolBlockGasLimit = 30_000_000
	// cosmosPoolMaxTx bounds the number of queued Cosmos transactions
	cosmosPoolMaxTx = 1000
)

// setEVMMempool builds the EVM mempool over the app's keepers and installs it
// on BaseApp.
func (app *App) setEVMMempool(logger log.Logger, txConfig client.TxConfig) {
	config := &evmmempool.EVMMempoolConfig{
		BlockGasLimit: mempoolBlockGasLimit,
		MinTip:        uint256.NewInt(0),
	}

	mempool := evmmempool.NewExperimentalEVMMempool(
		app.mempoolContext,
		logger.With("module", "mempool"),
		app.EVMKeeper,
		&app.FeeMarketKeeper,
		txConfig,
		client.Context{}, // replaced through SetClientCtx
		config,
		cosmosPoolMaxTx,
	)

	app.SetMempool(mempool)
	app.evmMempool = mempool
}

// mempoolContext returns a query context for the mempool. It is called during
// block production, genesis included, so it refuses to serve until a block is
// committed and the EVM coin info exists; otherwise base fee math would read
// zero decimals.
func (app *App) mempoolContext(height int64, prove bool) (sdk.Context, error) {
	cms := app.CommitMultiStore()
	if cms == nil {
		return sdk.Context{}, errors.New("commit multi-store not initialized")
	}

	latestHeight := cms.LatestVersion()
	if latestHeight == 0 {
		return sdk.Context{}, errors.New("no blocks committed yet")
	}
	if height <= 0 || height > latestHeight {
		height = latestHeight
	}

	ctx, err := app.CreateQueryContext(height, prove)
	if err != nil {
		return sdk.Context{}, err
	}

	if app.EVMKeeper.GetEvmCoinInfo(ctx).Decimals == 0 {
		return sdk.Context{}, fmt.Errorf("EVM coin info not initialized yet (height %d)", height)
	}

	return ctx, nil
}
