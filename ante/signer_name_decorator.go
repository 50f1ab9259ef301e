package ante

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/utils"
)

const (
	// EventTypeSignerNames tags a tx signer with its dual address forms and
	// the usernames whose records bind it
	EventTypeSignerNames = "signer_names"

	AttributeKeyEVMAddress    = "evm_address"
	AttributeKeyCosmosAddress = "cosmos_address"
	AttributeKeyNames         = "names"
	AttributeKeySignerIndex   = "signer_index"

	// MaxSignerNames caps the names listed per signer
	MaxSignerNames = 16
)

// SignerNameDecorator emits a signer_names event for every signer so
// indexers can search transactions by username as well as by address.
// Signers are looked up in this chain's bech32 form only, so the names
// attribute lists just the records that bind that exact address; records
// holding only foreign-chain addresses of the same key are not matched.
type SignerNameDecorator struct {
	names        NameLookup
	bech32Prefix string
}

// NewSignerNameDecorator creates a new SignerNameDecorator
func NewSignerNameDecorator(names NameLookup, bech32Prefix string) SignerNameDecorator {
	return SignerNameDecorator{
		names:        names,
		bech32Prefix: bech32Prefix,
	}
}

// AnteHandle emits one event per unique signer and never fails the tx
func (d SignerNameDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip event emission during simulation to save gas
	if simulate || d.names == nil {
		return next(ctx, tx, simulate)
	}

	for idx, addr := range utils.SignerAddresses(tx) {
		EmitSignerNamesEvent(ctx, d.names, addr, d.bech32Prefix, idx)
	}

	return next(ctx, tx, simulate)
}

// EmitSignerNamesEvent emits the signer_names event for addr. Conversion
// failures are logged and skipped.
func EmitSignerNamesEvent(ctx sdk.Context, names NameLookup, addr sdk.AccAddress, bech32Prefix string, idx int) {
	bech32Addr, ethHex, err := utils.DualFormat(addr, bech32Prefix)
	if err != nil {
		ctx.Logger().Error(
			"failed to convert signer to dual format",
			"address", addr.String(),
			"error", err.Error(),
		)
		return
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			EventTypeSignerNames,
			sdk.NewAttribute(AttributeKeyEVMAddress, ethHex),
			sdk.NewAttribute(AttributeKeyCosmosAddress, bech32Addr),
			sdk.NewAttribute(AttributeKeyNames, strings.Join(names.NamesByAddress(ctx, bech32Addr, MaxSignerNames), ",")),
			sdk.NewAttribute(AttributeKeySignerIndex, strconv.Itoa(idx)),
		),
	)
}
