package models

import "time"

// Order is a single table round. FlavorName and ServerName are snapshots
// taken at creation time; deleting the referenced catalog entry later does
// not invalidate the order. PrepMinutes is set exactly once, when the order
// completes.
type Order struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	FlavorID    string    `json:"flavor_id"`
	FlavorName  string    `json:"flavor_name"`
	ServerID    string    `json:"server_id"`
	ServerName  string    `json:"server_name"`
	TableNumber int       `json:"table_number"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
	PrepMinutes *int      `json:"prep_minutes,omitempty"`
}

func (o *Order) Pending() bool {
	return o.Status == OrderStatusPending
}

func (o *Order) Completed() bool {
	return o.Status == OrderStatusCompleted
}
