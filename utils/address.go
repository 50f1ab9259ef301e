// Package utils converts principals between their Cosmos bech32 and EVM hex forms
package utils

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	"github.com/ethereum/go-ethereum/common"
)

// PrincipalFromEVM converts an EVM caller to the bech32 principal used by the
// name modules.
// Example: 0x1234...abcd -> icns1abc...xyz
func PrincipalFromEVM(caller common.Address, prefix string) (string, error) {
	principal, err := bech32.ConvertAndEncode(prefix, caller.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to encode %s with prefix %s: %w", caller.Hex(), prefix, err)
	}
	return principal, nil
}

// PrincipalToEVM converts a bech32 principal back to its EVM address. Any
// bech32 prefix is accepted.
// Example: icns1abc...xyz -> 0x1234...abcd
func PrincipalToEVM(principal string) (common.Address, error) {
	_, bz, err := bech32.DecodeAndConvert(principal)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(bz), nil
}

// DualFormat returns addr in both bech32 and EVM hex form
func DualFormat(addr sdk.AccAddress, prefix string) (string, string, error) {
	principal, err := bech32.ConvertAndEncode(prefix, addr.Bytes())
	if err != nil {
		return "", "", err
	}
	return principal, common.BytesToAddress(addr.Bytes()).Hex(), nil
}

// SignerAddresses returns the unique signers of tx, in order of first
// appearance. Transactions that do not expose signers yield none.
func SignerAddresses(tx sdk.Tx) []sdk.AccAddress {
	addresses := make([]sdk.AccAddress, 0)

	sigTx, ok := tx.(authsigning.SigVerifiableTx)
	if !ok {
		return addresses
	}
	signers, err := sigTx.GetSigners()
	if err != nil {
		return addresses
	}

	seen := make(map[string]bool)
	for _, signer := range signers {
		key := string(signer)
		if seen[key] {
			continue
		}
		seen[key] = true
		addresses = append(addresses, sdk.AccAddress(signer))
	}

	return addresses
}
