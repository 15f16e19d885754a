package board

import (
	"testing"
	"time"

	"github.com/rodizioboard/rodizio/internal/models"
	"github.com/rodizioboard/rodizio/internal/store"
)

// memStore is an in-memory BlobStore for tests.
type memStore struct {
	data map[string][]byte
}

var _ store.BlobStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Close() error {
	return nil
}

// testClock is a manual clock for deterministic duration math.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestBoard(t *testing.T) (*Board, *testClock, *memStore) {
	t.Helper()
	clock := &testClock{now: time.Date(2025, 11, 21, 19, 0, 0, 0, time.UTC)}
	st := newMemStore()
	b, err := New(st, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, clock, st
}

// seedCatalog registers one savory flavor and one server.
func seedCatalog(t *testing.T, b *Board) (models.Flavor, models.Server) {
	t.Helper()
	flavor, err := b.AddFlavor("Margherita", models.CategorySavory)
	if err != nil {
		t.Fatalf("AddFlavor: %v", err)
	}
	server, err := b.AddServer("Ana")
	if err != nil {
		t.Fatalf("AddServer: %v", err)
	}
	return flavor, server
}

func mustCreateOrder(t *testing.T, b *Board, flavor models.Flavor, server models.Server, table int) models.Order {
	t.Helper()
	order, err := b.CreateOrder(flavor.Category, flavor.ID, server.ID, table)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return order
}
