package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/icnx-xyz/icns/x/resolver/types"
)

// InitGenesis stores the config and any genesis records. Records bypass
// ownership checks but are still normalized.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) error {
	if err := k.initConfig(ctx, gs.Config); err != nil {
		return err
	}

	for _, gr := range gs.Records {
		entries, err := types.NormalizeAddresses(gr.Record.Addresses)
		if err != nil {
			return fmt.Errorf("genesis record %s: %w", gr.Record.UserName, err)
		}
		if err := k.PutRecord(ctx, gr.Record.UserName, gr.Owner, entries); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("resolver genesis initialized",
		"admins", len(gs.Config.Admins),
		"registrars", len(gs.Config.Registrars),
		"records", len(gs.Records),
	)

	return nil
}

// ExportGenesis returns the config and every stored record with its owner
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	records := []types.GenesisRecord{}
	err = k.IterateRecords(ctx, func(record types.AddressRecord) bool {
		owner, _ := k.GetOwner(ctx, record.UserName)
		records = append(records, types.GenesisRecord{Record: record, Owner: owner})
		return false
	})
	if err != nil {
		return nil, err
	}

	return types.NewGenesisState(config, records), nil
}
