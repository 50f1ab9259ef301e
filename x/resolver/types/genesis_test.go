package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

func TestDefaultGenesisValidates(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())
}

func TestGenesisValidate(t *testing.T) {
	config := types.NewConfig([]string{principal(t, "admin1")}, nil, principal(t, "namenft"), false)
	owner := principal(t, "bob")
	bob := types.NewAddressRecord("bob", []types.AddressEntry{
		{Prefix: "cosmos", Address: cosmosAddr},
		{Prefix: "juno", Address: junoAddr},
	})

	tests := []struct {
		name    string
		records []types.GenesisRecord
		wantErr error
	}{
		{
			name:    "valid",
			records: []types.GenesisRecord{{Record: bob, Owner: owner}},
		},
		{
			name:    "duplicate name",
			records: []types.GenesisRecord{{Record: bob, Owner: owner}, {Record: bob, Owner: owner}},
			wantErr: types.ErrAlreadyRegistered,
		},
		{
			name: "name with separator",
			records: []types.GenesisRecord{{
				Record: types.NewAddressRecord("bob.juno", bob.Addresses),
				Owner:  owner,
			}},
			wantErr: types.ErrInvalidName,
		},
		{
			name: "bad address",
			records: []types.GenesisRecord{{
				Record: types.NewAddressRecord("bob", []types.AddressEntry{{Prefix: "cosmos", Address: junoAddr}}),
				Owner:  owner,
			}},
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "empty owner",
			records: []types.GenesisRecord{{Record: bob, Owner: ""}},
			wantErr: types.ErrInvalidConfig,
		},
		{
			name:    "malformed owner",
			records: []types.GenesisRecord{{Record: bob, Owner: "bob"}},
			wantErr: types.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := types.NewGenesisState(config, tt.records).Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenesisValidateRejectsRepeatedEntries(t *testing.T) {
	config := types.NewConfig(nil, nil, principal(t, "namenft"), false)
	record := types.NewAddressRecord("bob", []types.AddressEntry{
		{Prefix: "juno", Address: junoAddr},
		{Prefix: "juno", Address: junoAddr},
	})

	err := types.NewGenesisState(config, []types.GenesisRecord{{Record: record, Owner: principal(t, "bob")}}).Validate()
	require.Error(t, err)
}

func TestMsgSetRecordValidateBasic(t *testing.T) {
	sender := principal(t, "bob")
	entries := []types.AddressEntry{{Prefix: "juno", Address: junoAddr}}

	require.NoError(t, types.NewMsgSetRecord(sender, "bob", entries).ValidateBasic())
	require.ErrorIs(t, types.NewMsgSetRecord("bob", "bob", entries).ValidateBasic(), types.ErrUnauthorized)
	require.ErrorIs(t, types.NewMsgSetRecord(sender, "", entries).ValidateBasic(), types.ErrInvalidName)
	require.ErrorIs(t, types.NewMsgSetRecord(sender, "bob.osmo", entries).ValidateBasic(), types.ErrInvalidName)
}

func TestParseIcns(t *testing.T) {
	username, prefix, err := types.ParseIcns("bob.juno")
	require.NoError(t, err)
	require.Equal(t, "bob", username)
	require.Equal(t, "juno", prefix)

	for _, icns := range []string{"", "bob", ".juno", "bob.", "a.bob.juno", " .juno"} {
		_, _, err := types.ParseIcns(icns)
		require.ErrorIs(t, err, types.ErrInvalidName, icns)
	}
}
