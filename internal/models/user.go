package models

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of account kinds the service knows about. The raw
// strings mirror the role enum used by the remote API.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "job_seeker"
)

// ParseRole converts a raw string to a Role, returning an error for unknown
// values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleEmployer, RoleJobSeeker:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the identity record returned by the auth endpoints. HasProfile is
// the server-maintained flag saying whether a role profile exists yet; the
// route guard keys off it.
type User struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	HasProfile bool   `json:"profile"`
}

// MarshalBinary lets a User go straight into binary-safe stores.
func (u User) MarshalBinary() ([]byte, error) {
	return json.Marshal(u)
}

func (u *User) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, u)
}

// Session is the authenticated identity of the current user.
// IsAuthenticated is true exactly when User is non-nil.
type Session struct {
	User            *User
	IsAuthenticated bool
}
