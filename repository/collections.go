package repository

import "errors"

const (
	BookingCollection   = "bookings"
	UserCollection      = "users"
	CabinCollection     = "cabins"
	TreatmentCollection = "treatments"
)

// ErrNotFound is returned when a lookup or update matches no document.
var ErrNotFound = errors.New("document not found")
