package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"hotel-reservation/internal/logger"
	"hotel-reservation/internal/models"
	"hotel-reservation/internal/store"
)

// ReservationService is the single entry point for the console front end.
// It tracks the current session: at most one logged-in user, set by a
// successful Login and kept until the process exits. There is no logout.
type ReservationService struct {
	logger  *logger.Logger
	store   store.Store
	billing BillingStrategy
	current *models.User
}

func NewReservationService(l *logger.Logger, st store.Store, billing BillingStrategy) *ReservationService {
	if billing == nil {
		billing = StandardBill
	}
	return &ReservationService{
		logger:  l,
		store:   st,
		billing: billing,
	}
}

// Signup registers a new account. Usernames are case-sensitive and must be
// unique; the password is stored as supplied.
func (s *ReservationService) Signup(username, password string) error {
	user := &models.User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateUser(user); err != nil {
		s.logger.Warn("Signup rejected", logger.User(username), logger.Error(err))
		return err
	}
	s.logger.Info("User signed up", logger.Action("signup"), logger.User(username))
	return nil
}

// Login authenticates and, on success, makes the account the session's
// current user. A failed login leaves the session untouched.
func (s *ReservationService) Login(username, password string) bool {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		s.logger.Error("Login lookup failed", logger.User(username), logger.Error(err))
		return false
	}
	if user == nil || !user.CheckPassword(password) {
		s.logger.Warn("Login failed", logger.Action("login"), logger.User(username))
		return false
	}

	s.current = user
	s.logger.Info("Login successful", logger.Action("login"), logger.User(username))
	return true
}

// CurrentUser returns the logged-in user, or nil for an anonymous session.
func (s *ReservationService) CurrentUser() *models.User {
	return s.current
}

// ListAvailableRooms returns the free rooms in ascending room number order.
// No authentication required.
func (s *ReservationService) ListAvailableRooms() ([]*models.Room, error) {
	rooms, err := s.store.ListAvailableRooms()
	if err != nil {
		return nil, fmt.Errorf("list available rooms: %w", err)
	}
	return rooms, nil
}

// Book reserves a room for the current user.
func (s *ReservationService) Book(roomNumber int) error {
	if s.current == nil {
		return models.ErrNotLoggedIn
	}
	if _, err := s.store.GetRoomByNumber(roomNumber); err != nil {
		return err
	}
	if err := s.store.MarkRoomBooked(roomNumber); err != nil {
		return err
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		RoomNumber: roomNumber,
		Username:   s.current.Username,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateBooking(booking); err != nil {
		// Keep the flag consistent with the ledger.
		if verr := s.store.MarkRoomVacant(roomNumber); verr != nil {
			s.logger.Error("Failed to release room after booking error", logger.Room(roomNumber), logger.Error(verr))
		}
		return fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Room booked", logger.Action("book"), logger.Room(roomNumber), logger.User(s.current.Username))
	return nil
}

// Cancel releases a room held by the current user. A room held by anyone
// else, or not held at all, fails with ErrNotYourBooking.
func (s *ReservationService) Cancel(roomNumber int) error {
	if s.current == nil {
		return models.ErrNotLoggedIn
	}
	if _, err := s.store.GetRoomByNumber(roomNumber); err != nil {
		return err
	}

	booking, err := s.store.GetBookingForRoom(roomNumber)
	if err != nil {
		return fmt.Errorf("look up booking: %w", err)
	}
	if booking == nil || booking.Username != s.current.Username {
		return models.ErrNotYourBooking
	}

	if err := s.store.DeleteBooking(booking.ID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if err := s.store.MarkRoomVacant(roomNumber); err != nil {
		return fmt.Errorf("mark room vacant: %w", err)
	}

	s.logger.Info("Booking cancelled", logger.Action("cancel"), logger.Room(roomNumber), logger.User(s.current.Username))
	return nil
}

// CalculateBill quotes a stay in the given room. No authentication or
// booking required; it is a pure catalog query.
func (s *ReservationService) CalculateBill(roomNumber, nights int) (models.Cents, error) {
	room, err := s.store.GetRoomByNumber(roomNumber)
	if err != nil {
		return 0, err
	}
	amount, err := s.billing(room, nights)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Bill calculated", logger.Room(roomNumber), logger.Nights(nights), logger.Amount(amount.String()))
	return amount, nil
}

// MyBookings returns the current user's booked room numbers in booking
// order. An empty result is valid, not an error.
func (s *ReservationService) MyBookings() ([]int, error) {
	if s.current == nil {
		return nil, models.ErrNotLoggedIn
	}

	bookings, err := s.store.ListBookingsForUser(s.current.Username)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	numbers := make([]int, 0, len(bookings))
	for _, booking := range bookings {
		numbers = append(numbers, booking.RoomNumber)
	}
	return numbers, nil
}
