package precompile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"

	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	cmn "github.com/cosmos/evm/precompiles/common"

	"github.com/icnx-xyz/icns/utils"
	namenftkeeper "github.com/icnx-xyz/icns/x/namenft/keeper"
	"github.com/icnx-xyz/icns/x/namenft/types"
)

const (
	// NameNFTAddress is the precompile address for name token operations
	NameNFTAddress = "0x0000000000000000000000000000000000000202"
)

// NameNFTABI describes the precompile's methods
const NameNFTABI = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable",
	 "inputs":[{"name":"name","type":"string"},{"name":"owner","type":"address"},{"name":"tokenURI","type":"string"}],
	 "outputs":[]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable",
	 "inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"name","type":"string"}],
	 "outputs":[]},
	{"type":"function","name":"ownerOf","stateMutability":"view",
	 "inputs":[{"name":"name","type":"string"}],
	 "outputs":[{"name":"owner","type":"address"},{"name":"ownerCosmos","type":"string"},{"name":"exists","type":"bool"}]},
	{"type":"function","name":"tokenURI","stateMutability":"view",
	 "inputs":[{"name":"name","type":"string"}],
	 "outputs":[{"name":"uri","type":"string"}]},
	{"type":"function","name":"tokensOfOwner","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"names","type":"string[]"}]}
]`

var nameNFTABI abi.ABI

// gas per method
var requiredGas = map[string]uint64{
	"mint":          100000, // State write + indexing
	"transferFrom":  80000,  // State write + index updates
	"ownerOf":       15000,  // State read
	"tokenURI":      10000,  // State read
	"tokensOfOwner": 30000,  // State read + iteration
}

func init() {
	parsed, err := abi.JSON(strings.NewReader(NameNFTABI))
	if err != nil {
		panic(fmt.Errorf("invalid name nft ABI: %w", err))
	}
	nameNFTABI = parsed
}

// NameNFTPrecompile implements the name token precompile
type NameNFTPrecompile struct {
	cmn.Precompile

	nameNFTKeeper namenftkeeper.Keeper
	bech32Prefix  string
}

// NewNameNFTPrecompile creates a new NameNFTPrecompile
func NewNameNFTPrecompile(nameNFTKeeper namenftkeeper.Keeper, bech32Prefix string) *NameNFTPrecompile {
	return &NameNFTPrecompile{
		Precompile: cmn.Precompile{
			KvGasConfig:          storetypes.KVGasConfig(),
			TransientKVGasConfig: storetypes.TransientGasConfig(),
			ContractAddress:      common.HexToAddress(NameNFTAddress),
		},
		nameNFTKeeper: nameNFTKeeper,
		bech32Prefix:  bech32Prefix,
	}
}

// Address returns the precompile address
func (p *NameNFTPrecompile) Address() common.Address {
	return common.HexToAddress(NameNFTAddress)
}

// RequiredGas returns the gas required to execute the precompiled contract
func (p *NameNFTPrecompile) RequiredGas(input []byte) uint64 {
	if len(input) < 4 {
		return 0
	}
	method, err := nameNFTABI.MethodById(input[:4])
	if err != nil {
		return 0
	}
	return requiredGas[method.Name]
}

// Run executes the precompiled contract on the statedb cache context with a
// journaled store snapshot, so a reverting caller undoes mints and transfers.
func (p *NameNFTPrecompile) Run(evm *vm.EVM, contract *vm.Contract, readOnly bool) ([]byte, error) {
	return p.RunNativeAction(evm, contract, func(ctx sdk.Context) ([]byte, error) {
		return p.execute(ctx, contract.Caller(), contract.Input, readOnly)
	})
}

func (p *NameNFTPrecompile) execute(ctx sdk.Context, caller common.Address, input []byte, readOnly bool) ([]byte, error) {
	if len(input) < 4 {
		return nil, errors.New("input too short")
	}

	method, err := nameNFTABI.MethodById(input[:4])
	if err != nil {
		return nil, fmt.Errorf("unknown function selector: %x", input[:4])
	}

	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", method.Name, err)
	}

	if readOnly && !method.IsConstant() {
		return nil, fmt.Errorf("cannot call %s in read-only mode", method.Name)
	}

	switch method.Name {
	case "mint":
		return p.mint(ctx, method, caller, args)
	case "transferFrom":
		return p.transferFrom(ctx, method, caller, args)
	case "ownerOf":
		return p.ownerOf(ctx, method, args)
	case "tokenURI":
		return p.tokenURI(ctx, method, args)
	case "tokensOfOwner":
		return p.tokensOfOwner(ctx, method, args)
	default:
		return nil, fmt.Errorf("unhandled method %s", method.Name)
	}
}

// mint mints name to owner; the caller must be a registrar or admin
func (p *NameNFTPrecompile) mint(ctx sdk.Context, method *abi.Method, caller common.Address, args []interface{}) ([]byte, error) {
	name := args[0].(string)
	owner := args[1].(common.Address)
	uri := args[2].(string)

	minter, err := utils.PrincipalFromEVM(caller, p.bech32Prefix)
	if err != nil {
		return nil, err
	}
	ownerCosmos, err := utils.PrincipalFromEVM(owner, p.bech32Prefix)
	if err != nil {
		return nil, err
	}

	if err := p.nameNFTKeeper.Mint(ctx, minter, name, ownerCosmos, uri); err != nil {
		return nil, err
	}

	return method.Outputs.Pack()
}

// transferFrom transfers name from one holder to another
func (p *NameNFTPrecompile) transferFrom(ctx sdk.Context, method *abi.Method, caller common.Address, args []interface{}) ([]byte, error) {
	from := args[0].(common.Address)
	to := args[1].(common.Address)
	name := args[2].(string)

	fromCosmos, err := utils.PrincipalFromEVM(from, p.bech32Prefix)
	if err != nil {
		return nil, err
	}

	currentOwner, found, err := p.nameNFTKeeper.OwnerOf(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found || currentOwner != fromCosmos {
		return nil, errors.New("from address is not owner")
	}

	sender, err := utils.PrincipalFromEVM(caller, p.bech32Prefix)
	if err != nil {
		return nil, err
	}
	toCosmos, err := utils.PrincipalFromEVM(to, p.bech32Prefix)
	if err != nil {
		return nil, err
	}

	// The keeper checks the sender against the owner and the admin set
	if err := p.nameNFTKeeper.Transfer(ctx, sender, name, toCosmos); err != nil {
		return nil, err
	}

	return method.Outputs.Pack()
}

// ownerOf returns the owner of a name in both address formats
func (p *NameNFTPrecompile) ownerOf(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	owner, found, err := p.nameNFTKeeper.OwnerOf(ctx, args[0].(string))
	if err != nil {
		return nil, err
	}
	if !found {
		return method.Outputs.Pack(common.Address{}, "", false)
	}

	ownerEVM, err := utils.PrincipalToEVM(owner)
	if err != nil {
		return nil, fmt.Errorf("failed to convert owner address: %w", err)
	}

	return method.Outputs.Pack(ownerEVM, owner, true)
}

// tokenURI returns the metadata URI of a name, or "" for an unminted name
func (p *NameNFTPrecompile) tokenURI(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	token, err := p.nameNFTKeeper.GetToken(ctx, args[0].(string))
	switch {
	case errors.Is(err, types.ErrTokenNotFound):
		return method.Outputs.Pack("")
	case err != nil:
		return nil, err
	}

	return method.Outputs.Pack(token.TokenURI)
}

// tokensOfOwner returns all names held by an address
func (p *NameNFTPrecompile) tokensOfOwner(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	owner, err := utils.PrincipalFromEVM(args[0].(common.Address), p.bech32Prefix)
	if err != nil {
		return nil, err
	}

	names := p.nameNFTKeeper.GetTokensByOwner(ctx, owner)
	if names == nil {
		names = []string{}
	}

	return method.Outputs.Pack(names)
}
