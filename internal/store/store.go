// Package store is a typed document layer over a kv.Backend. Each key holds
// one JSON document: either a sequence (a whole collection) or a structured
// record (a singleton). Reads validate the container kind against the caller's
// default and fall back to that default on any corruption; writes are
// best-effort and never report failure to the caller.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"reflect"

	"sitefix/internal/kv"
)

// Store binds a backend and a logger for best-effort document persistence.
type Store struct {
	backend kv.Backend
	logger  *slog.Logger
}

// New creates a Store. A nil logger falls back to slog.Default().
func New(backend kv.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// ReadRaw returns the stored bytes for key, or nil when absent or unreadable.
func (s *Store) ReadRaw(ctx context.Context, key string) []byte {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil
	}
	return raw
}

// Delete removes a key. Used for session clearing; backend errors are ignored.
func (s *Store) Delete(ctx context.Context, key string) {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Warn("store: delete failed", "key", key, "error", err)
	}
}

// Read returns the document stored under key, or def when the key is absent,
// unparseable, null, or of the wrong container kind for def. When def is a
// structured record the stored object is shallow-merged over it, one level
// deep, with stored fields winning; sequence defaults are returned verbatim
// on any mismatch. Read never writes back.
func Read[T any](ctx context.Context, s *Store, key string, def T) T {
	raw := s.ReadRaw(ctx, key)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def
	}

	switch kindOf(def) {
	case kindSequence:
		if trimmed[0] != '[' {
			return def
		}
		var out T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return def
		}
		return out
	case kindRecord:
		if trimmed[0] != '{' {
			return def
		}
		return mergeRecord(trimmed, def)
	default:
		var out T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return def
		}
		return out
	}
}

// Write serializes v under key. Serialization or backend failures are logged
// and swallowed; callers proceed with their in-memory value either way.
func Write[T any](ctx context.Context, s *Store, key string, v T) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("store: marshal failed, value not persisted", "key", key, "error", err)
		return
	}
	if err := s.backend.Set(ctx, key, payload); err != nil {
		s.logger.Error("store: write failed, continuing with in-memory value", "key", key, "error", err)
	}
}

type containerKind int

const (
	kindScalar containerKind = iota
	kindSequence
	kindRecord
)

func kindOf(v any) containerKind {
	t := reflect.TypeOf(v)
	if t == nil {
		return kindScalar
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return kindSequence
	case reflect.Struct, reflect.Map:
		return kindRecord
	default:
		return kindScalar
	}
}

// mergeRecord overlays the stored object's top-level fields onto def's fields
// and decodes the result back into T. Nested structures are replaced whole,
// never merged. Any failure along the way yields def.
func mergeRecord[T any](stored []byte, def T) T {
	defRaw, err := json.Marshal(def)
	if err != nil {
		return def
	}

	var base map[string]json.RawMessage
	if err := json.Unmarshal(defRaw, &base); err != nil {
		return def
	}
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(stored, &overlay); err != nil {
		return def
	}
	if base == nil {
		base = make(map[string]json.RawMessage, len(overlay))
	}
	for k, v := range overlay {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return def
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return def
	}
	return out
}
