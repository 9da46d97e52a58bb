package store

import (
	"hotel-reservation/internal/models"
)

// Store defines the interface for database operations.
type Store interface {
	// Room catalog methods
	SaveRoom(room *models.Room) error
	GetRoomByNumber(number int) (*models.Room, error)
	ListAvailableRooms() ([]*models.Room, error)
	MarkRoomBooked(number int) error
	MarkRoomVacant(number int) error
	CountRooms() (int, error)

	// Account methods
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)

	// Booking ledger methods
	CreateBooking(booking *models.Booking) error
	GetBookingForRoom(roomNumber int) (*models.Booking, error)
	ListBookingsForUser(username string) ([]*models.Booking, error)
	DeleteBooking(id string) error

	Close() error
}
