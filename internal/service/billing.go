package service

import (
	"hotel-reservation/internal/models"
)

// BillingStrategy computes the total charge for a stay. It is injected
// into the reservation service so billing policy stays swappable without
// touching the booking logic.
type BillingStrategy func(room *models.Room, nights int) (models.Cents, error)

// StandardBill charges the nightly rate for every night plus the room
// type's flat per-stay fee. Stays shorter than one night are rejected.
func StandardBill(room *models.Room, nights int) (models.Cents, error) {
	if nights <= 0 {
		return 0, models.ErrInvalidStayLength
	}
	return models.Cents(int64(nights))*room.Type.NightlyRate() + room.Type.StayFee(), nil
}
