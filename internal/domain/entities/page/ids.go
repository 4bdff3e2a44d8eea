package page

import "github.com/oklog/ulid/v2"

// NewItemID mints an id for an item created in the editor. ULIDs are never
// reused, so a deleted item's id cannot come back.
func NewItemID() ItemID {
	return ItemID(ulid.Make().String())
}
