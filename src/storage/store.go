// Package storage holds the durable key-value stores that keep the session token
// across process restarts.
package storage

import "context"

// TokenKey fixed key ที่ใช้เก็บ session token
const TokenKey = "token"

// TokenStore durable key-value entry for the session token.
// Get reports ok=false when the key is absent.
type TokenStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
