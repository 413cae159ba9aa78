// Package playerdb keeps the roster of named players and their balances
// between sessions.
package playerdb

import (
	"context"
	"errors"
)

var ErrStoreClosed = errors.New("playerdb: store is closed")

// Record is the persisted part of a player.
type Record struct {
	Name    string
	Balance int64
}

// Store is a keyed store of records. PutAll upserts by name.
type Store interface {
	Get(ctx context.Context, name string) (Record, bool, error)
	Put(ctx context.Context, rec Record) error
	PutAll(ctx context.Context, recs []Record) error
	List(ctx context.Context) ([]Record, error)
	Close() error
}
