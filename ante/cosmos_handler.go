package ante

import (
	evmante "github.com/cosmos/evm/ante/evm"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"
)

// newCosmosAnteHandler creates the ante handler chain for Cosmos transactions.
// EIP712, IBC and authz decorators are not wired.
func newCosmosAnteHandler(options HandlerOptions) sdk.AnteHandler {
	return func(ctx sdk.Context, tx sdk.Tx, simulate bool) (newCtx sdk.Context, err error) {
		feeMarketParams := options.FeeMarketKeeper.GetParams(ctx)

		handler := sdk.ChainAnteDecorators(
			ante.NewSetUpContextDecorator(),
			ante.NewExtensionOptionsDecorator(options.ExtensionOptionChecker),
			ante.NewValidateBasicDecorator(),
			ante.NewTxTimeoutHeightDecorator(),
			ante.NewValidateMemoDecorator(options.AccountKeeper),
			ante.NewConsumeGasForTxSizeDecorator(options.AccountKeeper),
			ante.NewDeductFeeDecorator(options.AccountKeeper, options.BankKeeper, options.FeegrantKeeper, options.TxFeeChecker),
			// SetPubKeyDecorator must be called before all signature verification decorators
			ante.NewSetPubKeyDecorator(options.AccountKeeper),
			ante.NewValidateSigCountDecorator(options.AccountKeeper),
			ante.NewSigGasConsumeDecorator(options.AccountKeeper, options.SigGasConsumer),
			ante.NewSigVerificationDecorator(options.AccountKeeper, options.SignModeHandler),
			ante.NewIncrementSequenceDecorator(options.AccountKeeper),
			evmante.NewGasWantedDecorator(options.EvmKeeper, options.FeeMarketKeeper, &feeMarketParams),
			// Tag signers with their resolved names
			NewSignerNameDecorator(options.NameLookup, options.Bech32Prefix),
		)

		return handler(ctx, tx, simulate)
	}
}
