package models

// Credentials ใช้เฉพาะตอน login ไม่มีการเก็บลง storage
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginPayload body sent to the campus-check server
type LoginPayload struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SessionState string

const (
	Unauthenticated SessionState = "unauthenticated"
	Authenticated   SessionState = "authenticated"
)
