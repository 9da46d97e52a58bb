package models

import "errors"

// Domain errors. All of them are recoverable: the caller reports them to
// the operator and keeps going.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotLoggedIn       = errors.New("no user logged in")
	ErrRoomNotFound      = errors.New("room number not found")
	ErrRoomAlreadyBooked = errors.New("room already booked")
	ErrNotYourBooking    = errors.New("room is not booked by you")
	ErrInvalidStayLength = errors.New("stay length must be at least one night")
	ErrUnknownRoomType   = errors.New("unknown room type")
)
