package docstore

import "time"

type Collection string

const (
	CollectionSuspensions Collection = "playerSuspensions"
	CollectionMatches     Collection = "matches"
	CollectionPlayers     Collection = "players"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpBatch  Op = "batch"
)

// Change describes one committed mutation of a collection.
type Change struct {
	Collection Collection `json:"collection"`
	Op         Op         `json:"op"`
	Key        string     `json:"key,omitempty"`
	At         time.Time  `json:"at"`
}

// Publisher receives committed changes.
type Publisher interface {
	Publish(change Change)
}

type NopPublisher struct{}

func (NopPublisher) Publish(Change) {}
