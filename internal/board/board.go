// Package board implements the order-tracking core: the flavor/server
// catalog, the active night's order ledger, night rollover into history and
// the report aggregations. A Board owns the whole SystemState in memory and
// rewrites it to the store as one blob after every mutation.
package board

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/rodizioboard/rodizio/internal/store"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Board is the single controller over the persisted state. It is not safe
// for concurrent use; the program drives it from one goroutine.
type Board struct {
	state    *models.SystemState
	store    store.BlobStore
	collator *collate.Collator
	now      func() time.Time
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithClock overrides the time source. Tests use it to make duration math
// deterministic.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// WithLocale sets the language used for name comparisons. Unparseable tags
// fall back to Portuguese, the default serving locale.
func WithLocale(locale string) Option {
	return func(b *Board) {
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.BrazilianPortuguese
		}
		b.collator = collate.New(tag, collate.IgnoreCase)
	}
}

// New loads the state from the store, initializing an empty first-run state
// when the key is absent.
func New(st store.BlobStore, opts ...Option) (*Board, error) {
	b := &Board{
		store:    st,
		collator: collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	data, ok, err := st.Get(store.StateKey)
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	if !ok {
		b.state = models.NewSystemState(b.now())
		if err := b.persist(); err != nil {
			return nil, err
		}
		return b, nil
	}

	var state models.SystemState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding stored state: %w", err)
	}
	b.state = &state
	return b, nil
}

// State exposes the in-memory state for read-only use (rendering, export).
func (b *Board) State() *models.SystemState {
	return b.state
}

// persist rewrites the whole state to the store. Every mutating operation
// calls it exactly once, after the in-memory change is complete.
func (b *Board) persist() error {
	data, err := json.Marshal(b.state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := b.store.Set(store.StateKey, data); err != nil {
		return fmt.Errorf("persisting state: %w", err)
	}
	return nil
}

func (b *Board) compareNames(a, c string) int {
	return b.collator.CompareString(a, c)
}
