package board

import (
	"testing"
	"time"

	"github.com/rodizioboard/rodizio/internal/store"
)

func TestNewBoardInitializesFirstRunState(t *testing.T) {
	clock := &testClock{now: time.Date(2025, 11, 21, 19, 30, 0, 0, time.UTC)}
	st := newMemStore()

	b, err := New(st, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	state := b.State()
	if len(state.Catalog.Flavors) != 0 || len(state.Catalog.Servers) != 0 {
		t.Error("first-run catalog must be empty")
	}
	if state.ActiveNight.DateLabel != "2025-11-21" {
		t.Errorf("date label = %q, want 2025-11-21", state.ActiveNight.DateLabel)
	}
	if len(state.History) != 0 {
		t.Error("first-run history must be empty")
	}

	if _, ok, _ := st.Get(store.StateKey); !ok {
		t.Error("first-run state must be persisted immediately")
	}
}

func TestBoardReloadsPersistedState(t *testing.T) {
	st := newMemStore()
	clock := &testClock{now: time.Date(2025, 11, 21, 19, 0, 0, 0, time.UTC)}

	b, err := New(st, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	flavor, server := seedCatalog(t, b)
	order := mustCreateOrder(t, b, flavor, server, 9)
	clock.Advance(2 * time.Minute)
	if err := b.CompleteOrder(order.ID); err != nil {
		t.Fatalf("CompleteOrder: %v", err)
	}

	// A second board over the same store sees everything.
	reloaded, err := New(st, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("New (reload): %v", err)
	}

	if len(reloaded.ListFlavors()) != 1 || len(reloaded.ListServers()) != 1 {
		t.Error("catalog lost across reload")
	}
	orders := reloaded.ListOrders(FilterAll)
	if len(orders) != 1 {
		t.Fatalf("orders lost across reload: %d", len(orders))
	}
	got := orders[0]
	if !got.Completed() || got.PrepMinutes == nil || *got.PrepMinutes != 2 {
		t.Errorf("reloaded order wrong: %+v", got)
	}
	if !got.CreatedAt.Equal(order.CreatedAt) {
		t.Errorf("created at drifted: %v vs %v", got.CreatedAt, order.CreatedAt)
	}
}

func TestEveryMutationRewritesWholeBlob(t *testing.T) {
	b, _, st := newTestBoard(t)

	before, _, _ := st.Get(store.StateKey)
	if _, err := b.AddFlavor("Calabresa", "savory"); err != nil {
		t.Fatalf("AddFlavor: %v", err)
	}
	after, _, _ := st.Get(store.StateKey)

	if string(before) == string(after) {
		t.Error("mutation did not rewrite the stored blob")
	}

	// A pure read leaves the blob alone.
	b.ListOrders(FilterAll)
	b.NightReport()
	unchanged, _, _ := st.Get(store.StateKey)
	if string(after) != string(unchanged) {
		t.Error("read operations must not persist")
	}
}
