package keeper_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"

	"github.com/icnx-xyz/icns/x/resolver/keeper"
	"github.com/icnx-xyz/icns/x/resolver/types"
)

const (
	junoAddr   = "juno1kn27c8fu9qjmcn9hqytdzlml55mcs7dl2wu2ts"
	cosmosAddr = "cosmos1gf3dm2mvqhymts6ksrstlyuu2m8pw6dhv43wpe"
)

// mockNameNFT is an in-memory ownership oracle
type mockNameNFT struct {
	owners map[string]string
	err    error
}

func (m *mockNameNFT) OwnerOf(_ context.Context, tokenID string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	owner, found := m.owners[tokenID]
	return owner, found, nil
}

type KeeperTestSuite struct {
	suite.Suite

	ctx     sdk.Context
	keeper  keeper.Keeper
	nameNFT *mockNameNFT

	admin1    string
	admin2    string
	registrar string
	bob       string
	stranger  string
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) principal(seed string) string {
	bz := make([]byte, 20)
	copy(bz, seed)
	addr, err := bech32.ConvertAndEncode("icns", bz)
	s.Require().NoError(err)
	return addr
}

func (s *KeeperTestSuite) SetupTest() {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	testCtx := testutil.DefaultContextWithDB(s.T(), key, storetypes.NewTransientStoreKey("transient_test"))
	s.ctx = testCtx.Ctx

	s.admin1 = s.principal("admin1")
	s.admin2 = s.principal("admin2")
	s.registrar = s.principal("registrar")
	s.bob = s.principal("bob")
	s.stranger = s.principal("stranger")

	s.nameNFT = &mockNameNFT{owners: map[string]string{"bob": s.bob}}
	s.keeper = keeper.NewKeeper(moduletestutil.MakeTestEncodingConfig().Codec, key, s.nameNFT)

	config := types.NewConfig(
		[]string{s.admin1, s.admin2},
		[]string{s.registrar},
		s.principal("namenft"),
		false,
	)
	s.Require().NoError(s.keeper.InitGenesis(s.ctx, *types.NewGenesisState(config, nil)))
}

func (s *KeeperTestSuite) bobEntries() []types.AddressEntry {
	return []types.AddressEntry{
		{Prefix: "juno", Address: junoAddr},
		{Prefix: "cosmos", Address: cosmosAddr},
	}
}

func (s *KeeperTestSuite) canonicalBob() []types.AddressEntry {
	return []types.AddressEntry{
		{Prefix: "cosmos", Address: cosmosAddr},
		{Prefix: "juno", Address: junoAddr},
	}
}

func (s *KeeperTestSuite) TestSetRecordByAdmin() {
	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin1, "bob", s.bobEntries()))
	s.Require().NoError(err)

	resp := s.keeper.GetAddresses(s.ctx, "bob")
	s.Require().Equal(s.canonicalBob(), resp.Addresses)

	// Owner is the token holder, not the admin who wrote it
	owner, found := s.keeper.GetOwner(s.ctx, "bob")
	s.Require().True(found)
	s.Require().Equal(s.bob, owner)
}

func (s *KeeperTestSuite) TestSetRecordByOwner() {
	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob", s.bobEntries()))
	s.Require().NoError(err)
	s.Require().Equal(s.canonicalBob(), s.keeper.GetAddresses(s.ctx, "bob").Addresses)
}

func (s *KeeperTestSuite) TestSetRecordWriteOnce() {
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin1, "bob", s.bobEntries())))

	// Neither the owner nor an admin may overwrite
	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob", []types.AddressEntry{
		{Prefix: "juno", Address: junoAddr},
	}))
	s.Require().ErrorIs(err, types.ErrAlreadyRegistered)

	err = s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin2, "bob", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrAlreadyRegistered)

	s.Require().Equal(s.canonicalBob(), s.keeper.GetAddresses(s.ctx, "bob").Addresses)
}

func (s *KeeperTestSuite) TestSetRecordUnauthorized() {
	// Not the owner and not an admin
	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.stranger, "bob", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	// Registrars mint names but do not write records
	err = s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.registrar, "bob", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	// No token exists, even for an admin
	err = s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin1, "alice", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	s.Require().False(s.keeper.HasRecord(s.ctx, "bob"))
	s.Require().False(s.keeper.HasRecord(s.ctx, "alice"))
}

func (s *KeeperTestSuite) TestSetRecordOracleFailure() {
	s.nameNFT.err = errors.New("oracle unavailable")

	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().False(s.keeper.HasRecord(s.ctx, "bob"))
}

func (s *KeeperTestSuite) TestSetRecordInvalidAddress() {
	tests := []struct {
		name    string
		entries []types.AddressEntry
	}{
		{
			name:    "bad checksum",
			entries: []types.AddressEntry{{Prefix: "cosmos", Address: "cosmos1dsfsfasdfknsfkndfknskdfns"}},
		},
		{
			name:    "prefix mismatch",
			entries: []types.AddressEntry{{Prefix: "cosmos", Address: junoAddr}},
		},
		{
			name: "one bad entry among good ones",
			entries: []types.AddressEntry{
				{Prefix: "juno", Address: junoAddr},
				{Prefix: "osmo", Address: cosmosAddr},
			},
		},
		{
			name:    "empty",
			entries: nil,
		},
		{
			name: "conflicting prefix",
			entries: []types.AddressEntry{
				{Prefix: "juno", Address: junoAddr},
				{Prefix: "juno", Address: "juno1dsfsfasdfknsfkndfknskdfns"},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob", tt.entries))
			s.Require().ErrorIs(err, types.ErrInvalidAddress)
			s.Require().False(s.keeper.HasRecord(s.ctx, "bob"))
			s.Require().Empty(s.keeper.GetNames(s.ctx, junoAddr).Names)
		})
	}
}

func (s *KeeperTestSuite) TestSetRecordInvalidName() {
	s.nameNFT.owners["bob.juno"] = s.bob

	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob.juno", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrInvalidName)

	err = s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrInvalidName)
}

func (s *KeeperTestSuite) TestSetRecordEmitsEvent() {
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin1, "bob", s.bobEntries())))

	events := s.ctx.EventManager().Events()
	s.Require().Len(events, 1)
	s.Require().Equal(types.EventTypeSetRecord, events[0].Type)

	attrs := make(map[string]string)
	for _, attr := range events[0].Attributes {
		attrs[attr.Key] = attr.Value
	}
	s.Require().Equal("bob", attrs[types.AttributeKeyUserName])
	s.Require().Equal(s.bob, attrs[types.AttributeKeyOwner])
	s.Require().Equal(s.admin1, attrs[types.AttributeKeySender])
	s.Require().Equal(cosmosAddr+","+junoAddr, attrs[types.AttributeKeyAddresses])
}

func (s *KeeperTestSuite) TestFailedSetRecordEmitsNothing() {
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.stranger, "bob", s.bobEntries()))
	s.Require().Error(err)
	s.Require().Empty(s.ctx.EventManager().Events())
}

func (s *KeeperTestSuite) TestQueries() {
	s.nameNFT.owners["alice"] = s.stranger
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin1, "bob", s.bobEntries())))
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.stranger, "alice", []types.AddressEntry{
		{Prefix: "juno", Address: junoAddr},
	})))

	// Absent records read as empty
	resp := s.keeper.GetAddresses(s.ctx, "carol")
	s.Require().NotNil(resp.Addresses)
	s.Require().Empty(resp.Addresses)

	addr, found := s.keeper.GetAddress(s.ctx, "bob", "juno")
	s.Require().True(found)
	s.Require().Equal(junoAddr, addr.Address)

	_, found = s.keeper.GetAddress(s.ctx, "bob", "osmo")
	s.Require().False(found)

	_, found = s.keeper.GetAddress(s.ctx, "carol", "juno")
	s.Require().False(found)

	s.Require().Equal([]string{"alice", "bob"}, s.keeper.GetNames(s.ctx, junoAddr).Names)
	s.Require().Equal([]string{"bob"}, s.keeper.GetNames(s.ctx, cosmosAddr).Names)
	s.Require().Empty(s.keeper.GetNames(s.ctx, s.stranger).Names)

	s.Require().Equal([]string{"alice"}, s.keeper.NamesByAddress(s.ctx, junoAddr, 1))
	s.Require().Equal([]string{"alice", "bob"}, s.keeper.NamesByAddress(s.ctx, junoAddr, 5))
}

func (s *KeeperTestSuite) TestGetAddressByIcns() {
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob", s.bobEntries())))

	resp, err := s.keeper.GetAddressByIcns(s.ctx, "bob.juno")
	s.Require().NoError(err)
	s.Require().Equal(junoAddr, resp.Bech32Address)

	resp, err = s.keeper.GetAddressByIcns(s.ctx, "bob.cosmos")
	s.Require().NoError(err)
	s.Require().Equal(cosmosAddr, resp.Bech32Address)

	_, err = s.keeper.GetAddressByIcns(s.ctx, "bob.osmo")
	s.Require().ErrorIs(err, types.ErrNotFound)

	_, err = s.keeper.GetAddressByIcns(s.ctx, "carol.juno")
	s.Require().ErrorIs(err, types.ErrNotFound)

	for _, icns := range []string{"bob", "bob.", ".juno", "", "a.bob.juno"} {
		_, err = s.keeper.GetAddressByIcns(s.ctx, icns)
		s.Require().ErrorIs(err, types.ErrInvalidName, icns)
	}
}

func (s *KeeperTestSuite) TestSubmissionOrderDoesNotMatter() {
	s.nameNFT.owners["alice"] = s.stranger
	s.nameNFT.owners["carol"] = s.stranger

	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.stranger, "alice", []types.AddressEntry{
		{Prefix: "cosmos", Address: cosmosAddr},
		{Prefix: "juno", Address: junoAddr},
	})))
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.stranger, "carol", []types.AddressEntry{
		{Prefix: "juno", Address: junoAddr},
		{Prefix: "cosmos", Address: cosmosAddr},
	})))

	alice := s.keeper.GetAddresses(s.ctx, "alice").Addresses
	carol := s.keeper.GetAddresses(s.ctx, "carol").Addresses
	s.Require().Equal(alice, carol)
	s.Require().Equal(s.canonicalBob(), alice)
}

func (s *KeeperTestSuite) TestUppercaseAddressStoredLowercase() {
	err := s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.bob, "bob", []types.AddressEntry{
		{Prefix: "juno", Address: strings.ToUpper(junoAddr)},
	}))
	s.Require().NoError(err)

	s.Require().Equal([]types.AddressEntry{{Prefix: "juno", Address: junoAddr}}, s.keeper.GetAddresses(s.ctx, "bob").Addresses)
	s.Require().Equal([]string{"bob"}, s.keeper.GetNames(s.ctx, junoAddr).Names)
	s.Require().Equal([]string{"bob"}, s.keeper.GetNames(s.ctx, strings.ToUpper(junoAddr)).Names)
}

func (s *KeeperTestSuite) TestAdmins() {
	resp, err := s.keeper.GetAdmins(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal([]string{s.admin1, s.admin2}, resp.Admins)

	s.Require().True(s.keeper.IsAdmin(s.ctx, s.admin1))
	s.Require().True(s.keeper.IsAdmin(s.ctx, s.admin2))
	s.Require().False(s.keeper.IsAdmin(s.ctx, s.registrar))
}

func (s *KeeperTestSuite) TestGuard() {
	s.Require().NoError(s.keeper.RequireAdmin(s.ctx, s.admin1))
	s.Require().ErrorIs(s.keeper.RequireAdmin(s.ctx, s.bob), types.ErrUnauthorized)

	s.Require().NoError(s.keeper.RequireRegistrar(s.ctx, s.registrar))
	s.Require().ErrorIs(s.keeper.RequireRegistrar(s.ctx, s.admin1), types.ErrUnauthorized)

	s.Require().NoError(s.keeper.RequireNameOwner(s.ctx, s.bob, "bob"))
	s.Require().ErrorIs(s.keeper.RequireNameOwner(s.ctx, s.admin1, "bob"), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.RequireNameOwner(s.ctx, s.bob, "alice"), types.ErrUnauthorized)

	// Transfers are frozen for everyone, admins included
	s.Require().ErrorIs(s.keeper.RequireTransferrable(s.ctx), types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestGetConfig() {
	config, err := s.keeper.GetConfig(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal([]string{s.admin1, s.admin2}, config.Admins)
	s.Require().Equal([]string{s.registrar}, config.Registrars)
	s.Require().Equal(s.principal("namenft"), config.NameNFT)
	s.Require().False(config.Transferrable)
}

func (s *KeeperTestSuite) TestPutRecordRejectsExisting() {
	entries := s.canonicalBob()
	s.Require().NoError(s.keeper.PutRecord(s.ctx, "bob", s.bob, entries))

	err := s.keeper.PutRecord(s.ctx, "bob", s.stranger, []types.AddressEntry{{Prefix: "juno", Address: junoAddr}})
	s.Require().ErrorIs(err, types.ErrAlreadyRegistered)

	owner, _ := s.keeper.GetOwner(s.ctx, "bob")
	s.Require().Equal(s.bob, owner)

	record, found := s.keeper.GetRecord(s.ctx, "bob")
	s.Require().True(found)
	s.Require().Equal(entries, record.Addresses)
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	s.Require().NoError(s.keeper.SetRecord(s.ctx, types.NewMsgSetRecord(s.admin1, "bob", s.bobEntries())))

	exported, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(exported.Validate())
	s.Require().Len(exported.Records, 1)
	s.Require().Equal(s.bob, exported.Records[0].Owner)

	// Config is write-once
	s.Require().Error(s.keeper.InitGenesis(s.ctx, *exported))

	key := storetypes.NewKVStoreKey(types.StoreKey)
	fresh := testutil.DefaultContextWithDB(s.T(), key, storetypes.NewTransientStoreKey("transient_fresh")).Ctx
	imported := keeper.NewKeeper(moduletestutil.MakeTestEncodingConfig().Codec, key, s.nameNFT)
	s.Require().NoError(imported.InitGenesis(fresh, *exported))

	s.Require().Equal(s.canonicalBob(), imported.GetAddresses(fresh, "bob").Addresses)
	s.Require().Equal([]string{"bob"}, imported.GetNames(fresh, junoAddr).Names)

	reexported, err := imported.ExportGenesis(fresh)
	s.Require().NoError(err)
	s.Require().Equal(exported, reexported)
}

func (s *KeeperTestSuite) TestUninitializedConfig() {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContextWithDB(s.T(), key, storetypes.NewTransientStoreKey("transient_empty")).Ctx
	k := keeper.NewKeeper(moduletestutil.MakeTestEncodingConfig().Codec, key, s.nameNFT)

	_, err := k.GetConfig(ctx)
	s.Require().Error(err)

	// Owners may still write; the admin path is closed
	s.Require().NoError(k.SetRecord(ctx, types.NewMsgSetRecord(s.bob, "bob", s.bobEntries())))
	s.nameNFT.owners["alice"] = s.stranger
	err = k.SetRecord(ctx, types.NewMsgSetRecord(s.admin1, "alice", s.bobEntries()))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}
