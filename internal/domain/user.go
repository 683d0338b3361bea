package domain

import "time"

// User represents an authenticated user of the system. The identity provider
// owns the profile; the application treats it as read-only. JSON names follow
// the hosted provider's user object.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email_id"`
	OrgID        string    `json:"org_id,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
