package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"sitefix/internal/kv"
)

type record struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Count int    `json:"count"`
}

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// failingBackend simulates a namespace whose writes always fail.
type failingBackend struct {
	kv.Backend
}

func (f *failingBackend) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestReadWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory(), nil)

	in := []item{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}
	Write(ctx, s, "items", in)

	out := Read(ctx, s, "items", []item{})
	assert.Equal(t, in, out)
}

func TestReadFallsBackToDefault(t *testing.T) {
	def := []item{{ID: "seed", Name: "seed item"}}

	tests := []struct {
		name   string
		stored string
	}{
		{name: "missing key", stored: ""},
		{name: "unparseable", stored: "{not json"},
		{name: "null", stored: "null"},
		{name: "record where sequence expected", stored: `{"id":"a"}`},
		{name: "scalar where sequence expected", stored: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := kv.NewMemory()
			if tt.stored != "" {
				_ = backend.Set(ctx, "items", []byte(tt.stored))
			}
			s := New(backend, nil)

			out := Read(ctx, s, "items", def)
			assert.Equal(t, def, out)

			// no write-back: the corrupted value stays as it was
			raw, _ := backend.Get(ctx, "items")
			assert.Equal(t, tt.stored, string(raw))
		})
	}
}

func TestReadRejectsSequenceForRecordDefault(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	_ = backend.Set(ctx, "config", []byte(`[1,2,3]`))
	s := New(backend, nil)

	def := record{Name: "default", Email: "d@example.com", Count: 7}
	assert.Equal(t, def, Read(ctx, s, "config", def))
}

func TestReadMergesStoredOverDefault(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	// a partial record written by an older build: no "count" field
	_ = backend.Set(ctx, "config", []byte(`{"name":"stored"}`))
	s := New(backend, nil)

	def := record{Name: "default", Email: "d@example.com", Count: 7}
	out := Read(ctx, s, "config", def)

	assert.Equal(t, "stored", out.Name, "stored field wins")
	assert.Equal(t, "d@example.com", out.Email, "missing field backfilled from default")
	assert.Equal(t, 7, out.Count, "missing field backfilled from default")
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	s := New(&failingBackend{Backend: kv.NewMemory()}, nil)

	assert.NotPanics(t, func() {
		Write(ctx, s, "items", []item{{ID: "a"}})
	})
}

func TestWriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	s := New(backend, nil)

	in := []item{{ID: "a", Name: "first"}}
	Write(ctx, s, "items", in)
	first, _ := backend.Get(ctx, "items")
	Write(ctx, s, "items", in)
	second, _ := backend.Get(ctx, "items")

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, in, Read(ctx, s, "items", []item{}))
}

func TestDeleteRemovesKey(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	s := New(backend, nil)

	Write(ctx, s, "items", []item{{ID: "a"}})
	s.Delete(ctx, "items")

	assert.Nil(t, s.ReadRaw(ctx, "items"))
}
