package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ID ตัวระบุจากเซิร์ฟเวอร์ รับได้ทั้งตัวเลขและสตริงใน JSON
// IDs compare as strings, so the number 1 and the string "1" are the same staff member.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(normalizeNumber(n))
	return nil
}

// normalizeNumber gives 1, 1.0 and 1e0 the same spelling so they match each other.
func normalizeNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (id ID) String() string { return string(id) }

// StaffMember security staff assigned to a gate
type StaffMember struct {
	ID           ID     `json:"id"`
	FirstName    string `json:"firstName"`
	AssignedGate int    `json:"assignedGate"`
}

// StaffResponse body of GET /staff/
type StaffResponse struct {
	Staff []StaffMember `json:"staff"`
}
