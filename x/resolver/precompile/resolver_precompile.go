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
	resolverkeeper "github.com/icnx-xyz/icns/x/resolver/keeper"
	"github.com/icnx-xyz/icns/x/resolver/types"
)

const (
	// ResolverAddress is the precompile address for resolver operations
	ResolverAddress = "0x0000000000000000000000000000000000000201"
)

// ResolverABI describes the precompile's methods
const ResolverABI = `[
	{"type":"function","name":"setRecord","stateMutability":"nonpayable",
	 "inputs":[{"name":"name","type":"string"},{"name":"prefixes","type":"string[]"},{"name":"addresses","type":"string[]"}],
	 "outputs":[]},
	{"type":"function","name":"getAddresses","stateMutability":"view",
	 "inputs":[{"name":"name","type":"string"}],
	 "outputs":[{"name":"prefixes","type":"string[]"},{"name":"addresses","type":"string[]"}]},
	{"type":"function","name":"getAddress","stateMutability":"view",
	 "inputs":[{"name":"name","type":"string"},{"name":"prefix","type":"string"}],
	 "outputs":[{"name":"addr","type":"string"},{"name":"found","type":"bool"}]},
	{"type":"function","name":"getNames","stateMutability":"view",
	 "inputs":[{"name":"addr","type":"string"}],
	 "outputs":[{"name":"names","type":"string[]"}]},
	{"type":"function","name":"getConfig","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"admins","type":"string[]"},{"name":"registrars","type":"string[]"},{"name":"nameNft","type":"string"},{"name":"transferrable","type":"bool"}]}
]`

var resolverABI abi.ABI

// gas per method
var requiredGas = map[string]uint64{
	"setRecord":        120000, // State writes + reverse index
	"getAddresses":     15000,  // State read
	"getAddress":       15000,  // State read
	"getAddressByIcns": 15000,  // State read
	"getNames":         30000,  // State read + iteration
	"getConfig":        10000,  // State read
}

func init() {
	parsed, err := abi.JSON(strings.NewReader(ResolverABI))
	if err != nil {
		panic(fmt.Errorf("invalid resolver ABI: %w", err))
	}
	resolverABI = parsed
}

// ResolverPrecompile exposes the resolver keeper to EVM callers
type ResolverPrecompile struct {
	cmn.Precompile

	resolverKeeper resolverkeeper.Keeper
	bech32Prefix   string
}

// NewResolverPrecompile creates a new ResolverPrecompile
func NewResolverPrecompile(resolverKeeper resolverkeeper.Keeper, bech32Prefix string) *ResolverPrecompile {
	return &ResolverPrecompile{
		Precompile: cmn.Precompile{
			KvGasConfig:          storetypes.KVGasConfig(),
			TransientKVGasConfig: storetypes.TransientGasConfig(),
			ContractAddress:      common.HexToAddress(ResolverAddress),
		},
		resolverKeeper: resolverKeeper,
		bech32Prefix:   bech32Prefix,
	}
}

// Address returns the precompile address
func (p *ResolverPrecompile) Address() common.Address {
	return common.HexToAddress(ResolverAddress)
}

// RequiredGas returns the gas required to execute the precompiled contract
func (p *ResolverPrecompile) RequiredGas(input []byte) uint64 {
	if len(input) < 4 {
		return 0
	}
	method, err := resolverABI.MethodById(input[:4])
	if err != nil {
		return 0
	}
	return requiredGas[method.Name]
}

// Run executes the precompiled contract on the statedb cache context. The
// store snapshot taken before the call is journaled, so writes are undone
// when the calling frame reverts.
func (p *ResolverPrecompile) Run(evm *vm.EVM, contract *vm.Contract, readOnly bool) ([]byte, error) {
	return p.RunNativeAction(evm, contract, func(ctx sdk.Context) ([]byte, error) {
		return p.execute(ctx, contract.Caller(), contract.Input, readOnly)
	})
}

func (p *ResolverPrecompile) execute(ctx sdk.Context, caller common.Address, input []byte, readOnly bool) ([]byte, error) {
	if len(input) < 4 {
		return nil, errors.New("input too short")
	}

	method, err := resolverABI.MethodById(input[:4])
	if err != nil {
		return nil, fmt.Errorf("unknown function selector: %x", input[:4])
	}

	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", method.Name, err)
	}

	switch method.Name {
	case "setRecord":
		if readOnly {
			return nil, errors.New("cannot call setRecord in read-only mode")
		}
		return p.setRecord(ctx, method, caller, args)
	case "getAddresses":
		return p.getAddresses(ctx, method, args)
	case "getAddress":
		return p.getAddress(ctx, method, args)
	case "getAddressByIcns":
		return p.getAddressByIcns(ctx, method, args)
	case "getNames":
		return p.getNames(ctx, method, args)
	case "getConfig":
		return p.getConfig(ctx, method)
	default:
		return nil, fmt.Errorf("unhandled method %s", method.Name)
	}
}

// setRecord binds (prefixes[i], addresses[i]) pairs to name on behalf of caller
func (p *ResolverPrecompile) setRecord(ctx sdk.Context, method *abi.Method, caller common.Address, args []interface{}) ([]byte, error) {
	name := args[0].(string)
	prefixes := args[1].([]string)
	addresses := args[2].([]string)

	if len(prefixes) != len(addresses) {
		return nil, fmt.Errorf("got %d prefixes for %d addresses", len(prefixes), len(addresses))
	}

	sender, err := utils.PrincipalFromEVM(caller, p.bech32Prefix)
	if err != nil {
		return nil, err
	}

	entries := make([]types.AddressEntry, len(prefixes))
	for i := range prefixes {
		entries[i] = types.AddressEntry{Prefix: prefixes[i], Address: addresses[i]}
	}

	if err := p.resolverKeeper.SetRecord(ctx, types.NewMsgSetRecord(sender, name, entries)); err != nil {
		return nil, err
	}

	return method.Outputs.Pack()
}

// getAddresses returns the record of name as parallel prefix/address arrays
func (p *ResolverPrecompile) getAddresses(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	name := args[0].(string)

	resp := p.resolverKeeper.GetAddresses(ctx, name)
	record := types.NewAddressRecord(name, resp.Addresses)
	prefixes, addresses := record.Pairs()

	return method.Outputs.Pack(prefixes, addresses)
}

// getAddress returns the address bound to name under one prefix
func (p *ResolverPrecompile) getAddress(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	name := args[0].(string)
	prefix := args[1].(string)

	resp, found := p.resolverKeeper.GetAddress(ctx, name, prefix)
	return method.Outputs.Pack(resp.Address, found)
}

// getAddressByIcns resolves a full icns name such as "bob.juno"
func (p *ResolverPrecompile) getAddressByIcns(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	resp, err := p.resolverKeeper.GetAddressByIcns(ctx, args[0].(string))
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(resp.Bech32Address)
}

// getNames returns the names whose records bind addr
func (p *ResolverPrecompile) getNames(ctx sdk.Context, method *abi.Method, args []interface{}) ([]byte, error) {
	addr := args[0].(string)

	resp := p.resolverKeeper.GetNames(ctx, addr)
	return method.Outputs.Pack(resp.Names)
}

// getConfig returns the resolver config
func (p *ResolverPrecompile) getConfig(ctx sdk.Context, method *abi.Method) ([]byte, error) {
	config, err := p.resolverKeeper.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	return method.Outputs.Pack(nonNil(config.Admins), nonNil(config.Registrars), config.NameNFT, config.Transferrable)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
