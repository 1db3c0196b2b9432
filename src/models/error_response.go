package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// DashboardResponse body of GET /dashboard
type DashboardResponse struct {
	DashboardView
	Error string `json:"error,omitempty"`
}
