package notify

import "github.com/foundlab/lostfound/pkg/lostitem"

// Action identifies what happened to a lost item. Only creation and field
// updates produce notifications; status toggles deliberately do not.
type Action string

const (
	// ActionCreated fires when a new item is reported.
	ActionCreated Action = "created"
	// ActionUpdated fires when an item's fields are edited.
	ActionUpdated Action = "updated"
)

func (a Action) String() string {
	return string(a)
}

// Snapshot is the item state captured at the moment of composition. For a
// field update the fields hold the just-written values while the status is
// the one in effect before the call, since field updates never change
// status.
type Snapshot struct {
	Description string
	Contact     *string
	ImageRef    *string
	Status      lostitem.Status
}

// SnapshotOf captures a snapshot from an item record.
func SnapshotOf(item lostitem.LostItem) Snapshot {
	return Snapshot{
		Description: item.Description,
		Contact:     item.Contact,
		ImageRef:    item.ImageRef,
		Status:      item.Status,
	}
}
