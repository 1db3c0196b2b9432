package models

// DateBucket one point of the line chart. Keys follow the chart categories.
type DateBucket struct {
	Date    string `json:"date" example:"2024-01-01"`
	Entries int    `json:"Entradas"`
	Exits   int    `json:"Salidas"`
}

type GateBucket struct {
	Gate    int `json:"gate"`
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
}

type StaffAttendance struct {
	Staff StaffMember `json:"staff"`
	Count int         `json:"count"`
}

type Summary struct {
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
}

// ChartSlice donut chart segment
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Slices ข้อมูลสำหรับ donut chart (Entradas / Salidas)
func (s Summary) Slices() []ChartSlice {
	return []ChartSlice{
		{Name: "Entradas", Value: s.Entries},
		{Name: "Salidas", Value: s.Exits},
	}
}

// DashboardView every view model the dashboard renders, computed once per fetch cycle
type DashboardView struct {
	CycleID string            `json:"cycleId,omitempty"`
	Summary Summary           `json:"summary"`
	Donut   []ChartSlice      `json:"donut"`
	ByDate  []DateBucket      `json:"byDate"`
	ByGate  []GateBucket      `json:"byGate"`
	ByStaff []StaffAttendance `json:"byStaff"`
}
