package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	StatusPending  BookingStatus = "PENDING"
	StatusAccepted BookingStatus = "ACCEPTED"
	StatusRejected BookingStatus = "REJECTED"
)

func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return s, true
	}
	return "", false
}

type Booking struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	User         *UserSummary       `json:"user,omitempty" bson:"-"`
	CheckInDate  time.Time          `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate time.Time          `json:"checkOutDate" bson:"checkOutDate"`
	Description  string             `json:"description" bson:"description"`
	Status       BookingStatus      `json:"status" bson:"status"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BookingDetails is a sparse update: nil fields are left untouched,
// a non-nil empty Description is written as "".
type BookingDetails struct {
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Description  *string
}

func (d BookingDetails) IsEmpty() bool {
	return d.CheckInDate == nil && d.CheckOutDate == nil && d.Description == nil
}

// BookingPatch is what the repository writes with $set.
type BookingPatch struct {
	Status       *BookingStatus
	IsActive     *bool
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Description  *string
}

type SortKey struct {
	Field      string
	Descending bool
}

// BookingQuery describes which bookings a listing wants. UserIDs distinguishes
// nil (no constraint) from an empty slice (nothing can match).
type BookingQuery struct {
	UserID       *primitive.ObjectID
	UserIDs      []primitive.ObjectID
	Search       string
	Status       BookingStatus
	ActiveOnly   bool
	CheckInFrom  *time.Time
	CheckInTo    *time.Time
	CheckOutFrom *time.Time
	Sort         []SortKey
}
