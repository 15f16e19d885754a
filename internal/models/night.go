package models

import "time"

// Night is one service session. EndTime and Stats are set when the night is
// archived into history; the active night carries neither.
type Night struct {
	DateLabel string      `json:"date_label"`
	StartTime time.Time   `json:"start_time"`
	EndTime   *time.Time  `json:"end_time,omitempty"`
	Orders    []Order     `json:"orders"`
	Stats     *NightStats `json:"stats,omitempty"`
}

// NewNight starts an empty night labelled with the given day.
func NewNight(now time.Time) Night {
	return Night{
		DateLabel: now.Format("2006-01-02"),
		StartTime: now,
		Orders:    []Order{},
	}
}

// SystemState is the root persisted object: the whole board serializes as
// one blob, and every mutation rewrites it wholesale.
type SystemState struct {
	Catalog     Catalog `json:"catalog"`
	ActiveNight Night   `json:"active_night"`
	History     []Night `json:"history"`
}

// NewSystemState builds the first-run state: empty catalog, empty active
// night, no history.
func NewSystemState(now time.Time) *SystemState {
	return &SystemState{
		Catalog: Catalog{
			Flavors: []Flavor{},
			Servers: []Server{},
		},
		ActiveNight: NewNight(now),
		History:     []Night{},
	}
}
