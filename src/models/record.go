package models

import "time"

type RecordType string

const (
	RecordIn  RecordType = "in"
	RecordOut RecordType = "out"
)

// AttendanceRecord one swipe at a gate. Type is kept verbatim, unknown values included.
type AttendanceRecord struct {
	ID        ID         `json:"id"`
	StaffID   ID         `json:"staffId"`
	Gate      int        `json:"gate"`
	Type      RecordType `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
}

// RecordResponse body of GET /record/
type RecordResponse struct {
	Records []AttendanceRecord `json:"records"`
}
