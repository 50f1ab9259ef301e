package ante

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"
	authante "github.com/cosmos/cosmos-sdk/x/auth/ante"
)

const (
	// extension option type URLs routed to the EVM and Cosmos chains
	ethereumTxExtensionOption = "/cosmos.evm.vm.v1.ExtensionOptionsEthereumTx"
	dynamicFeeExtensionOption = "/cosmos.evm.types.v1.ExtensionOptionDynamicFeeTx"
)

// NewAnteHandler routes Ethereum or SDK transactions to the appropriate ante
// handler chain based on their extension options.
func NewAnteHandler(options HandlerOptions) sdk.AnteHandler {
	if options.SigGasConsumer == nil {
		options.SigGasConsumer = authante.DefaultSigVerificationGasConsumer
	}

	return func(ctx sdk.Context, tx sdk.Tx, simulate bool) (newCtx sdk.Context, err error) {
		var anteHandler sdk.AnteHandler

		if txWithExtensions, ok := tx.(authante.HasExtensionOptionsTx); ok {
			opts := txWithExtensions.GetExtensionOptions()
			if len(opts) > 0 {
				switch typeURL := opts[0].GetTypeUrl(); typeURL {
				case ethereumTxExtensionOption:
					anteHandler = newMonoEVMAnteHandler(options)
				case dynamicFeeExtensionOption:
					anteHandler = newCosmosAnteHandler(options)
				default:
					return ctx, errorsmod.Wrapf(
						errortypes.ErrUnknownExtensionOptions,
						"rejecting tx with unsupported extension option: %s", typeURL,
					)
				}

				return anteHandler(ctx, tx, simulate)
			}
		}

		// SDK transactions without extension options
		return newCosmosAnteHandler(options)(ctx, tx, simulate)
	}
}
