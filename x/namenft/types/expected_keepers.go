package types

import (
	"context"
)

// AccessKeeper defines the expected access policy shared with the resolver
// module, which owns the admin and registrar sets and the transfer flag.
type AccessKeeper interface {
	// RequireAdmin fails unless addr is a configured admin.
	RequireAdmin(ctx context.Context, addr string) error

	// RequireRegistrar fails unless addr is a configured registrar.
	RequireRegistrar(ctx context.Context, addr string) error

	// RequireTransferrable fails while token transfers are frozen.
	RequireTransferrable(ctx context.Context) error
}
