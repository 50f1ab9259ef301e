package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/resolver module sentinel errors
var (
	ErrUnauthorized      = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrInvalidAddress    = errorsmod.Register(ModuleName, 3, "invalid address")
	ErrAlreadyRegistered = errorsmod.Register(ModuleName, 4, "user already registered")
	ErrInvalidName       = errorsmod.Register(ModuleName, 5, "invalid name")
	ErrNotFound          = errorsmod.Register(ModuleName, 6, "not found")
	ErrInvalidConfig     = errorsmod.Register(ModuleName, 7, "invalid config")
)
