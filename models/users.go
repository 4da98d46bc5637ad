package models

// User represents a login account in the system. Passwords are stored and
// compared in plaintext, matching the historical behavior of the data this
// service inherits. TeamLeaderID and Division are weak references that may
// point at nothing; readers must tolerate that.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	Password     string `json:"password,omitempty" bson:"password,omitempty"`
	Role         Role   `json:"role" bson:"role"`
	Name         string `json:"name" bson:"name"`
	Department   string `json:"department" bson:"department"`
	TeamLeaderID string `json:"teamLeaderId,omitempty" bson:"teamLeaderId,omitempty"`
	Division     string `json:"division,omitempty" bson:"division,omitempty"`
}

// Sanitized returns a copy of the user with the password stripped, suitable
// for API responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// PublicUser is the projection returned by login and the user-management
// endpoints.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Public returns the login projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role, Name: u.Name}
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRequest is the payload for creating or updating a user. Empty fields
// in an update keep their stored values.
type UserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
