package wallet

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Logical keys shared by the games.
const (
	KeyHighScore  = "tectraRunnerHighScore"
	KeyTotalCoins = "tectraRunnerTotalCoins"
)

// keyPrefix namespaces a logical key under a wallet identity.
const keyPrefix = "wallet-"

// Store is a wallet-scoped view over a Medium. Reads never fail: any
// storage or decoding problem degrades to the caller's default value. Writes
// never fail either: a failed durable write is logged and retried against
// the volatile fallback so the session keeps a consistent view.
//
// A Store is constructed once per application session and injected into
// consumers; the fallback map is part of the instance, not package state.
type Store struct {
	medium   Medium
	fallback *MemoryMedium
	logger   *log.Logger
}

// New creates a Store over the given medium. A nil medium means all data is
// volatile. A nil logger disables logging.
func New(medium Medium, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		medium:   medium,
		fallback: NewMemoryMedium(),
		logger:   logger,
	}
}

// Open creates a Store over a SQLite medium at dbPath. It never fails: if
// the durable medium cannot be opened the store degrades to in-memory
// operation.
func Open(dbPath string, logger *log.Logger) *Store {
	s := New(nil, logger)
	medium, err := OpenSQLite(dbPath)
	if err != nil {
		s.logger.Warn("durable storage unavailable, using in-memory fallback", "path", dbPath, "error", err)
		return s
	}
	s.medium = medium
	return s
}

// Close releases the underlying medium.
func (s *Store) Close() error {
	if s.medium != nil {
		return s.medium.Close()
	}
	return nil
}

// walletKey builds the namespaced physical key for a wallet-scoped value.
func walletKey(walletID, key string) string {
	return keyPrefix + walletID + "-" + key
}

// getRaw reads a physical key from the durable medium, falling back to the
// volatile map on failure.
func (s *Store) getRaw(key string) (string, bool) {
	if s.medium != nil {
		v, ok, err := s.medium.Get(key)
		if err == nil {
			return v, ok
		}
		s.logger.Warn("storage read failed, consulting fallback", "key", key, "error", err)
	}
	v, ok, _ := s.fallback.Get(key)
	return v, ok
}

// setRaw writes a physical key to the durable medium, falling back to the
// volatile map on failure. Errors are swallowed after logging.
func (s *Store) setRaw(key, value string) {
	if s.medium != nil {
		err := s.medium.Set(key, value)
		if err == nil {
			return
		}
		s.logger.Warn("storage write failed, using fallback", "key", key, "error", err)
	}
	s.fallback.Set(key, value)
}

// deleteRaw removes a physical key from both media.
func (s *Store) deleteRaw(key string) {
	if s.medium != nil {
		if err := s.medium.Delete(key); err != nil {
			s.logger.Warn("storage delete failed", "key", key, "error", err)
		}
	}
	s.fallback.Delete(key)
}

// rawKeys enumerates physical keys with the given prefix across both media.
func (s *Store) rawKeys(prefix string) []string {
	seen := make(map[string]bool)
	if s.medium != nil {
		keys, err := s.medium.Keys(prefix)
		if err != nil {
			s.logger.Warn("storage enumeration failed", "prefix", prefix, "error", err)
		}
		for _, k := range keys {
			seen[k] = true
		}
	}
	fbKeys, _ := s.fallback.Keys(prefix)
	for _, k := range fbKeys {
		seen[k] = true
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetInt returns the integer stored under (walletID, key), or def if the
// wallet identity is empty, the key is absent, or the stored value does not
// decode as a number.
func (s *Store) GetInt(walletID, key string, def int) int {
	if walletID == "" {
		return def
	}
	raw, ok := s.getRaw(walletKey(walletID, key))
	if !ok {
		return def
	}
	var v int
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("malformed stored value, using default", "key", key, "error", err)
		return def
	}
	return v
}

// SetInt stores an integer under (walletID, key). No-op if walletID is empty.
func (s *Store) SetInt(walletID, key string, value int) {
	if walletID == "" {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cannot encode value", "key", key, "error", err)
		return
	}
	s.setRaw(walletKey(walletID, key), string(data))
}

// GetBool returns the boolean stored under (walletID, key), or def when
// absent, unscoped, or malformed.
func (s *Store) GetBool(walletID, key string, def bool) bool {
	if walletID == "" {
		return def
	}
	raw, ok := s.getRaw(walletKey(walletID, key))
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("malformed stored value, using default", "key", key, "error", err)
		return def
	}
	return v
}

// SetBool stores a boolean under (walletID, key). No-op if walletID is empty.
func (s *Store) SetBool(walletID, key string, value bool) {
	if walletID == "" {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cannot encode value", "key", key, "error", err)
		return
	}
	s.setRaw(walletKey(walletID, key), string(data))
}

// Delete removes the value stored under (walletID, key).
func (s *Store) Delete(walletID, key string) {
	if walletID == "" {
		return
	}
	s.deleteRaw(walletKey(walletID, key))
}

// Keys enumerates the logical keys stored for walletID that match prefix,
// with the wallet namespace stripped. Returns nil for an empty identity.
func (s *Store) Keys(walletID, prefix string) []string {
	if walletID == "" {
		return nil
	}
	ns := keyPrefix + walletID + "-"
	raw := s.rawKeys(ns + prefix)

	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, strings.TrimPrefix(k, ns))
	}
	return keys
}
