package ante

import (
	errorsmod "cosmossdk.io/errors"
	txsigning "cosmossdk.io/x/tx/signing"

	anteinterfaces "github.com/cosmos/evm/ante/interfaces"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// NameLookup resolves the usernames whose records bind an address, returning
// at most limit of them
type NameLookup interface {
	NamesByAddress(ctx sdk.Context, address string, limit int) []string
}

// HandlerOptions defines the list of module keepers required to run the
// ante handler decorators.
type HandlerOptions struct {
	Cdc                    codec.BinaryCodec
	AccountKeeper          anteinterfaces.AccountKeeper
	BankKeeper             authtypes.BankKeeper
	FeeMarketKeeper        anteinterfaces.FeeMarketKeeper
	EvmKeeper              anteinterfaces.EVMKeeper
	FeegrantKeeper         ante.FeegrantKeeper
	ExtensionOptionChecker ante.ExtensionOptionChecker
	SignModeHandler        *txsigning.HandlerMap
	SigGasConsumer         ante.SignatureVerificationGasConsumer
	MaxTxGasWanted         uint64
	TxFeeChecker           ante.TxFeeChecker

	// Bech32Prefix and NameLookup feed the signer name decorator
	Bech32Prefix string
	NameLookup   NameLookup
}

// Validate checks if the keepers are defined
func (options HandlerOptions) Validate() error {
	if options.Cdc == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "codec is required for AnteHandler")
	}
	if options.AccountKeeper == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "account keeper is required for AnteHandler")
	}
	if options.BankKeeper == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "bank keeper is required for AnteHandler")
	}
	if options.SignModeHandler == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "sign mode handler is required for AnteHandler")
	}
	if options.FeeMarketKeeper == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "fee market keeper is required for AnteHandler")
	}
	if options.EvmKeeper == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "evm keeper is required for AnteHandler")
	}
	if options.NameLookup == nil {
		return errorsmod.Wrap(errortypes.ErrLogic, "name lookup is required for AnteHandler")
	}
	if options.Bech32Prefix == "" {
		return errorsmod.Wrap(errortypes.ErrLogic, "bech32 prefix is required for AnteHandler")
	}
	return nil
}
