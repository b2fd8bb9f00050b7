package events

import (
	"context"
	"time"

	"WellnessHub/models"
)

const (
	BookingCreated        = "booking.created"
	BookingStatusChanged  = "booking.status_changed"
	BookingDetailsUpdated = "booking.details_updated"
	BookingDeleted        = "booking.deleted"
)

type BookingEvent struct {
	Type           string               `json:"type"`
	BookingID      string               `json:"bookingId"`
	UserID         string               `json:"userId"`
	Status         models.BookingStatus `json:"status"`
	PreviousStatus models.BookingStatus `json:"previousStatus,omitempty"`
	CheckInDate    time.Time            `json:"checkInDate"`
	CheckOutDate   time.Time            `json:"checkOutDate"`
	OccurredAt     time.Time            `json:"occurredAt"`
}

func NewBookingEvent(eventType string, b *models.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:         eventType,
		BookingID:    b.ID.Hex(),
		UserID:       b.UserID.Hex(),
		Status:       b.Status,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		OccurredAt:   at,
	}
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
