package models

// ItemCount is one row of a ranking: a display name and how many orders it
// accounts for.
type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NightStats summarizes a single night. AvgPrepMinutes is the rounded mean
// over completed orders only, and 0 when no order has completed.
type NightStats struct {
	OrderCount     int         `json:"order_count"`
	CompletedCount int         `json:"completed_count"`
	PendingCount   int         `json:"pending_count"`
	AvgPrepMinutes int         `json:"avg_prep_minutes"`
	TopFlavors     []ItemCount `json:"top_flavors"`
	ServerRanking  []ItemCount `json:"server_ranking"`
}

// OverallStats merges every archived night with the still-open active night.
// SessionCount includes the active night, so it is never zero.
type OverallStats struct {
	TotalOrders           int         `json:"total_orders"`
	OverallAvgPrepMinutes int         `json:"overall_avg_prep_minutes"`
	TopFlavors            []ItemCount `json:"top_flavors"`
	ServerRanking         []ItemCount `json:"server_ranking"`
	SessionCount          int         `json:"session_count"`
}

// HourBucket is one point of the orders-per-hour series fed to the chart.
type HourBucket struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
