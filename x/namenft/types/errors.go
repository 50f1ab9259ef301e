package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/namenft module sentinel errors
var (
	ErrInvalidName   = errorsmod.Register(ModuleName, 2, "invalid name")
	ErrTokenExists   = errorsmod.Register(ModuleName, 3, "token already exists")
	ErrTokenNotFound = errorsmod.Register(ModuleName, 4, "token not found")
	ErrUnauthorized  = errorsmod.Register(ModuleName, 5, "unauthorized")
)
