package entity

import "time"

// QueryLog is the write-only audit record of a dispatched chat query.
type QueryLog struct {
	ID        string
	RequestID string
	Message   string
	QueryType string
	Params    string
	Resolved  bool
	CreatedAt time.Time
}
