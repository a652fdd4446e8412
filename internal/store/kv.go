package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// KV is a string-keyed store holding JSON-serialized values. It is the Go
// counterpart of the browser localStorage the app's data model was designed
// around: synchronous get/set, no transactions, no schema enforcement.
// Readers are expected to merge loaded values with defaults.
type KV interface {
	// Get unmarshals the value stored under key into dest.
	// Returns (false, nil) if the key does not exist; dest is untouched.
	Get(key string, dest any) (bool, error)

	// Set marshals value as JSON and stores it under key, replacing any
	// previous value.
	Set(key string, value any) error

	// GetString returns the raw string stored under key, or "" if absent.
	GetString(key string) (string, error)

	// SetString stores a raw string under key.
	SetString(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

type kvRepo struct {
	db *sql.DB
}

func (r *kvRepo) Get(key string, dest any) (bool, error) {
	raw, err := r.GetString(key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode value for %q: %w", key, err)
	}
	return true, nil
}

func (r *kvRepo) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}
	return r.SetString(key, string(raw))
}

func (r *kvRepo) GetString(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (r *kvRepo) SetString(key, value string) error {
	_, err := r.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// MemKV is an in-memory KV for tests.
type MemKV struct {
	m map[string]string
}

// NewMemKV creates an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string]string)}
}

func (k *MemKV) Get(key string, dest any) (bool, error) {
	raw, ok := k.m[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (k *MemKV) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	k.m[key] = string(raw)
	return nil
}

func (k *MemKV) GetString(key string) (string, error) { return k.m[key], nil }

func (k *MemKV) SetString(key, value string) error {
	k.m[key] = value
	return nil
}

func (k *MemKV) Delete(key string) error {
	delete(k.m, key)
	return nil
}
