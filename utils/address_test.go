package utils

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
)

func TestPrincipalRoundTrip(t *testing.T) {
	evmAddr := common.HexToAddress("0x1234567890abcdef1234567890abcdef12345678")

	principal, err := PrincipalFromEVM(evmAddr, "icns")
	require.NoError(t, err)
	require.Contains(t, principal, "icns1")

	back, err := PrincipalToEVM(principal)
	require.NoError(t, err)
	require.Equal(t, evmAddr, back)

	_, err = PrincipalToEVM("not-bech32")
	require.Error(t, err)
}

func TestDualFormat(t *testing.T) {
	evmAddr := common.HexToAddress("0x00000000000000000000000000000000000000b0")
	addr := sdk.AccAddress(evmAddr.Bytes())

	principal, hex, err := DualFormat(addr, "icns")
	require.NoError(t, err)
	require.Equal(t, evmAddr.Hex(), hex)

	expected, err := PrincipalFromEVM(common.HexToAddress(hex), "icns")
	require.NoError(t, err)
	require.Equal(t, expected, principal)
}

type signersTx struct {
	authsigning.SigVerifiableTx
	signers [][]byte
}

func (tx signersTx) GetSigners() ([][]byte, error) {
	return tx.signers, nil
}

func TestSignerAddresses(t *testing.T) {
	a := []byte("signer-a____________")
	b := []byte("signer-b____________")

	addrs := SignerAddresses(signersTx{signers: [][]byte{a, b, a}})
	require.Equal(t, []sdk.AccAddress{a, b}, addrs)

	// Transactions without signers yield none
	require.Empty(t, SignerAddresses(nil))
}
