package types

// resolver module event types
const (
	EventTypeSetRecord = "set_record"

	AttributeKeyUserName  = "user_name"
	AttributeKeyOwner     = "owner"
	AttributeKeySender    = "sender"
	AttributeKeyAddresses = "addresses"
)
