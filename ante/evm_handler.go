package ante

import (
	evmante "github.com/cosmos/evm/ante/evm"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// newMonoEVMAnteHandler creates the sdk.AnteHandler implementation for the EVM transactions.
func newMonoEVMAnteHandler(options HandlerOptions) sdk.AnteHandler {
	return func(ctx sdk.Context, tx sdk.Tx, simulate bool) (newCtx sdk.Context, err error) {
		// Read live params so governance changes apply to the next tx
		evmParams := options.EvmKeeper.GetParams(ctx)
		feeMarketParams := options.FeeMarketKeeper.GetParams(ctx)

		handler := sdk.ChainAnteDecorators(
			evmante.NewEVMMonoDecorator(
				options.AccountKeeper,
				options.FeeMarketKeeper,
				options.EvmKeeper,
				options.MaxTxGasWanted,
				&evmParams,
				&feeMarketParams,
			),
			NewSignerNameDecorator(options.NameLookup, options.Bech32Prefix),
		)

		return handler(ctx, tx, simulate)
	}
}
