package models

// Response is the envelope used by the auth and user-management endpoints.
// Error carries diagnostic detail on storage failures and is omitted from
// ordinary outcomes.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse is the bare error body returned by the members and projects
// endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
