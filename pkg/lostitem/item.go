package lostitem

import "time"

// Status represents the claim status of a lost item. Only two states exist
// and both are reachable from each other; there is no terminal state.
type Status string

const (
	// StatusUnclaimed is the initial status of every reported item.
	StatusUnclaimed Status = "unclaimed"
	// StatusClaimed marks an item that has been picked up by its owner.
	StatusClaimed Status = "claimed"
)

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusUnclaimed || s == StatusClaimed
}

func (s Status) String() string {
	return string(s)
}

// LostItem is the authoritative record of a reported item. ID and CreatedAt
// are assigned once by the store and never change. Contact and ImageRef are
// optional; nil means absent, which is distinct from an empty string.
type LostItem struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Contact     *string   `json:"contact"`
	ImageRef    *string   `json:"image_ref"`
	CreatedAt   time.Time `json:"created_at"`
}
