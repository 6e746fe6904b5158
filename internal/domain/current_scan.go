package domain

import "time"

// CurrentScanValue latest observed value of one register.
type CurrentScanValue struct {
	NodeID      string     `db:"node_id"`
	Address     int        `db:"address"`
	Value       *float64   `db:"value"`
	StringValue *string    `db:"string_value"`
	UpdatedAt   *time.Time `db:"date_time_updated"`
}
