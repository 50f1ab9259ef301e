package types

// namenft module event types
const (
	EventTypeMint     = "mint_name"
	EventTypeTransfer = "transfer_name"

	AttributeKeyTokenID = "token_id"
	AttributeKeyOwner   = "owner"
	AttributeKeyFrom    = "from"
	AttributeKeyTo      = "to"
	AttributeKeyMinter  = "minter"
)
