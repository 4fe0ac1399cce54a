// Package metadata stores small key/value records in the client's local
// SQLite database. The session manager keeps the user id and the auth token
// here.
package metadata

import (
	"context"
)

// Repository is a string-keyed blob store.
//
// Get returns (nil, nil) when the key does not exist. Delete removes every
// given key and succeeds when some or all of them are already gone. List
// returns every stored pair.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
