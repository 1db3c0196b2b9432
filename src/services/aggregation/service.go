// Package aggregation turns the flat record stream into the dashboard's view models.
// Every function is pure: the same (staff, records) always yields the same output.
package aggregation

import (
	"time"

	"campus-check-dashboard/src/models"
)

// DefaultGateCount จำนวนประตูในปัจจุบัน
const DefaultGateCount = 7

// DateLayout YYYY-MM-DD
const DateLayout = "2006-01-02"

// Summarize counts in and out records. Any other type is left out of both counts.
func Summarize(records []models.AttendanceRecord) models.Summary {
	var s models.Summary
	for _, r := range records {
		switch r.Type {
		case models.RecordIn:
			s.Entries++
		case models.RecordOut:
			s.Exits++
		}
	}
	return s
}

// ByDate groups records by the calendar date of CreatedAt as seen in loc. A nil loc
// keeps the offset the record was stamped with; pass time.Local to date records in the
// viewer's zone, the way a browser dashboard formats them. Buckets come out in
// first-seen order.
func ByDate(records []models.AttendanceRecord, loc *time.Location) []models.DateBucket {
	buckets := []models.DateBucket{}
	index := make(map[string]int)

	for _, r := range records {
		t := r.CreatedAt
		if loc != nil {
			t = t.In(loc)
		}
		date := t.Format(DateLayout)

		i, ok := index[date]
		if !ok {
			i = len(buckets)
			index[date] = i
			buckets = append(buckets, models.DateBucket{Date: date})
		}

		switch r.Type {
		case models.RecordIn:
			buckets[i].Entries++
		case models.RecordOut:
			buckets[i].Exits++
		}
	}
	return buckets
}

// ByGate returns one bucket per gate 1..gateCount, zero-filled. Records on gates
// outside that range are not counted.
func ByGate(records []models.AttendanceRecord, gateCount int) []models.GateBucket {
	if gateCount <= 0 {
		return []models.GateBucket{}
	}
	buckets := make([]models.GateBucket, gateCount)
	for i := range buckets {
		buckets[i].Gate = i + 1
	}

	for _, r := range records {
		if r.Gate < 1 || r.Gate > gateCount {
			continue
		}
		b := &buckets[r.Gate-1]
		switch r.Type {
		case models.RecordIn:
			b.Entries++
		case models.RecordOut:
			b.Exits++
		}
	}
	return buckets
}

// ByStaff counts every record per staff member regardless of type, in staff order.
func ByStaff(staff []models.StaffMember, records []models.AttendanceRecord) []models.StaffAttendance {
	counts := make(map[models.ID]int, len(staff))
	for _, r := range records {
		counts[r.StaffID]++
	}

	out := make([]models.StaffAttendance, 0, len(staff))
	for _, s := range staff {
		out = append(out, models.StaffAttendance{Staff: s, Count: counts[s.ID]})
	}
	return out
}

type Options struct {
	GateCount int
	Location  *time.Location
}

// Build computes every view model for one fetch cycle.
func Build(staff []models.StaffMember, records []models.AttendanceRecord, opts Options) models.DashboardView {
	summary := Summarize(records)
	return models.DashboardView{
		Summary: summary,
		Donut:   summary.Slices(),
		ByDate:  ByDate(records, opts.Location),
		ByGate:  ByGate(records, opts.GateCount),
		ByStaff: ByStaff(staff, records),
	}
}

// Empty view shown before the first successful fetch.
func Empty(gateCount int) models.DashboardView {
	return Build(nil, nil, Options{GateCount: gateCount})
}
