package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// principal derives a deterministic bech32 principal from seed
func principal(t *testing.T, seed string) string {
	t.Helper()
	bz := make([]byte, 20)
	copy(bz, seed)
	addr, err := bech32.ConvertAndEncode("icns", bz)
	require.NoError(t, err)
	return addr
}

func TestConfigValidate(t *testing.T) {
	admin1, admin2 := principal(t, "admin1"), principal(t, "admin2")
	registrar := principal(t, "registrar")
	nameNFT := principal(t, "namenft")

	tests := []struct {
		name    string
		config  types.Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: types.NewConfig([]string{admin1, admin2}, []string{registrar}, nameNFT, false),
		},
		{
			name:   "no admins",
			config: types.NewConfig(nil, nil, nameNFT, true),
		},
		{
			name:    "bad admin",
			config:  types.NewConfig([]string{"admin1"}, nil, nameNFT, false),
			wantErr: true,
		},
		{
			name:    "duplicate admin",
			config:  types.NewConfig([]string{admin1, admin1}, nil, nameNFT, false),
			wantErr: true,
		},
		{
			name:    "bad registrar",
			config:  types.NewConfig([]string{admin1}, []string{"registrar"}, nameNFT, false),
			wantErr: true,
		},
		{
			name:    "missing name nft",
			config:  types.NewConfig([]string{admin1}, nil, "", false),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfigMembership(t *testing.T) {
	admin := principal(t, "admin1")
	registrar := principal(t, "registrar")
	config := types.NewConfig([]string{admin}, []string{registrar}, principal(t, "namenft"), false)

	require.True(t, config.IsAdmin(admin))
	require.False(t, config.IsAdmin(registrar))
	require.True(t, config.IsRegistrar(registrar))
	require.False(t, config.IsRegistrar(admin))
}
