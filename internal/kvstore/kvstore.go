// Package kvstore provides the flat key/value collaborator used by the
// fallback record store: one string blob per fixed key.
package kvstore

import "errors"

// KeyValue stores string blobs under string keys.
type KeyValue interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ErrInvalidKey is returned for keys that cannot be mapped to storage.
var ErrInvalidKey = errors.New("invalid key")
