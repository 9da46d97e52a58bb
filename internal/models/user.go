package models

import "time"

// User is a registered account. Usernames are unique and case-sensitive.
// Passwords are stored and compared in plain text; this is the demo
// posture of the system, not an oversight.
type User struct {
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckPassword compares the supplied password byte-for-byte.
func (u *User) CheckPassword(p string) bool {
	return u.Password == p
}
