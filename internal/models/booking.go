package models

import "time"

// Booking represents a reservation of one room by one user. A room has at
// most one booking at a time; a user may hold many.
type Booking struct {
	ID         string    `json:"id"`
	RoomNumber int       `json:"room_number"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}
