package board

import (
	"fmt"
	"sort"

	"github.com/lucsky/cuid"
	"github.com/rodizioboard/rodizio/internal/models"
)

// Order list filters.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterCompleted = "completed"
)

// CreateOrder opens a pending order for a table, snapshotting the flavor and
// server names so later catalog edits never touch it.
func (b *Board) CreateOrder(category, flavorID, serverID string, tableNumber int) (models.Order, error) {
	if !models.ValidCategory(category) {
		return models.Order{}, fmt.Errorf("%w: category is required", models.ErrValidation)
	}
	if flavorID == "" || serverID == "" {
		return models.Order{}, fmt.Errorf("%w: flavor and server are required", models.ErrValidation)
	}
	if tableNumber <= 0 {
		return models.Order{}, fmt.Errorf("%w: table number must be positive", models.ErrValidation)
	}

	flavor := b.findFlavor(flavorID)
	if flavor == nil {
		return models.Order{}, fmt.Errorf("%w: flavor %s", models.ErrNotFound, flavorID)
	}
	server := b.findServer(serverID)
	if server == nil {
		return models.Order{}, fmt.Errorf("%w: server %s", models.ErrNotFound, serverID)
	}

	order := models.Order{
		ID:          cuid.New(),
		Category:    category,
		FlavorID:    flavor.ID,
		FlavorName:  flavor.Name,
		ServerID:    server.ID,
		ServerName:  server.Name,
		TableNumber: tableNumber,
		CreatedAt:   b.now(),
		Status:      models.OrderStatusPending,
	}
	b.state.ActiveNight.Orders = append(b.state.ActiveNight.Orders, order)
	if err := b.persist(); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CompleteOrder marks a pending order completed and records its prep
// duration. Unknown ids and already-completed orders are silent no-ops, so
// a double tap never recomputes the duration.
func (b *Board) CompleteOrder(id string) error {
	for i := range b.state.ActiveNight.Orders {
		order := &b.state.ActiveNight.Orders[i]
		if order.ID != id || !order.Pending() {
			continue
		}
		minutes := int(b.now().Sub(order.CreatedAt).Minutes())
		order.Status = models.OrderStatusCompleted
		order.PrepMinutes = &minutes
		return b.persist()
	}
	return nil
}

// ListOrders returns the active night's orders, newest first, optionally
// filtered by status. Pure read, no persistence effect.
func (b *Board) ListOrders(filter string) []models.Order {
	var out []models.Order
	for _, o := range b.state.ActiveNight.Orders {
		switch filter {
		case FilterPending:
			if !o.Pending() {
				continue
			}
		case FilterCompleted:
			if !o.Completed() {
				continue
			}
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MinutesElapsed is the whole minutes a pending order has been waiting.
// Never stored; recomputed at read time.
func (b *Board) MinutesElapsed(o models.Order) int {
	return int(b.now().Sub(o.CreatedAt).Minutes())
}

// SecondsElapsed supports the m:ss display on the live queue.
func (b *Board) SecondsElapsed(o models.Order) int {
	return int(b.now().Sub(o.CreatedAt).Seconds())
}
