package models

import "fmt"

// RoomType determines a room's nightly rate and any per-stay fees.
type RoomType string

const (
	RoomTypeDeluxe RoomType = "deluxe"
	RoomTypeSuite  RoomType = "suite"
)

// ParseRoomType validates a room type read from configuration.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomTypeDeluxe, RoomTypeSuite:
		return RoomType(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownRoomType)
}

// NightlyRate returns the fixed per-night rate for the type.
func (t RoomType) NightlyRate() Cents {
	switch t {
	case RoomTypeSuite:
		return 30000
	default:
		return 15000
	}
}

// StayFee returns the flat per-stay service fee for the type.
// Only suites carry one.
func (t RoomType) StayFee() Cents {
	if t == RoomTypeSuite {
		return 10000
	}
	return 0
}

// Label returns the display name used in room listings.
func (t RoomType) Label() string {
	if t == RoomTypeSuite {
		return "Suite"
	}
	return "Deluxe"
}

// Room represents a bookable unit in the hotel catalog.
type Room struct {
	Number    int      `json:"number"`
	Type      RoomType `json:"type"`
	Available bool     `json:"available"`
}

// String renders the listing line shown to the operator,
// e.g. "Deluxe Room 1, Price: $150.00, Available: Yes".
func (r *Room) String() string {
	avail := "No"
	if r.Available {
		avail = "Yes"
	}
	return fmt.Sprintf("%s Room %d, Price: $%s, Available: %s", r.Type.Label(), r.Number, r.Type.NightlyRate(), avail)
}
