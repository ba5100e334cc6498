package domain

import "time"

// RosterOverride forces a single day's status for a posto, superseding the
// computed schedule. At most one row exists per (posto, date); "no override"
// is represented by the absence of a row, not by a third state.
type RosterOverride struct {
	ID        int64     `json:"id"`
	PostoID   int64     `json:"postoID"`
	Date      time.Time `json:"date"`
	IsDayOff  bool      `json:"isDayOff"`
	CreatedAt time.Time `json:"createdAt"`
}
