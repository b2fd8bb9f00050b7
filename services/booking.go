package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"WellnessHub/apierror"
	"WellnessHub/cache"
	"WellnessHub/events"
	"WellnessHub/metrics"
	"WellnessHub/models"
	"WellnessHub/role"
	"WellnessHub/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Find(ctx context.Context, q models.BookingQuery, page models.PageRequest) ([]models.Booking, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.BookingPatch) (*models.Booking, error)
	RejectStalePending(ctx context.Context, before time.Time) ([]primitive.ObjectID, error)
}

type CreateBookingInput struct {
	CheckInDate  string
	CheckOutDate string
	Description  string
}

// BookingDetailsInput carries raw date strings; nil means "leave unchanged".
type BookingDetailsInput struct {
	CheckInDate  *string
	CheckOutDate *string
	Description  *string
}

type BookingListFilter struct {
	Search    string
	StartDate string
	EndDate   string
}

type BookingService struct {
	store     BookingStore
	cache     cache.Cache
	publisher events.Publisher
	now       func() time.Time
}

func NewBookingService(store BookingStore, c cache.Cache, publisher events.Publisher) *BookingService {
	if c == nil {
		c = cache.Noop{}
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &BookingService{store: store, cache: c, publisher: publisher, now: time.Now}
}

/*
* Parse both dates
* Reject a stay that ends before it starts
* Persist as PENDING and active
 */
func (s *BookingService) Create(ctx context.Context, actor models.Actor, in CreateBookingInput) (*models.Booking, error) {
	checkIn, _, err := util.ParseDateTime(in.CheckInDate)
	if err != nil {
		return nil, apierror.BadRequest(util.INVALID_DATE, "checkInDate")
	}
	checkOut, _, err := util.ParseDateTime(in.CheckOutDate)
	if err != nil {
		return nil, apierror.BadRequest(util.INVALID_DATE, "checkOutDate")
	}
	if checkOut.Before(checkIn) {
		return nil, apierror.BadRequest(util.CHECKOUT_BEFORE_CHECKIN)
	}
	booking := &models.Booking{
		UserID:       actor.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Description:  in.Description,
		Status:       models.StatusPending,
		IsActive:     true,
	}
	if err := s.store.Insert(ctx, booking); err != nil {
		log.Println("Error from Insert booking: ", err)
		return nil, err
	}
	s.publish(ctx, events.BookingCreated, booking, "")
	return booking, nil
}

// GetByID returns the booking even when it has been soft deleted.
func (s *BookingService) GetByID(ctx context.Context, actor models.Actor, rawID string) (*models.Booking, error) {
	id, err := parseObjectID(rawID, util.INVALID_BOOKING_ID)
	if err != nil {
		return nil, err
	}
	booking, err := s.cached(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(actor, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

/*
* Admin listing over active bookings
* search narrows to owners whose first or last name matches
* endDate given as a bare date covers that whole day
 */
func (s *BookingService) List(ctx context.Context, filter BookingListFilter, page models.PageRequest) (models.Paginated[models.Booking], error) {
	q := models.BookingQuery{ActiveOnly: true, Search: filter.Search}
	if filter.StartDate != "" {
		from, _, err := util.ParseDateTime(filter.StartDate)
		if err != nil {
			return models.Paginated[models.Booking]{}, apierror.BadRequest(util.INVALID_DATE, "startDate")
		}
		q.CheckInFrom = &from
	}
	if filter.EndDate != "" {
		to, dateOnly, err := util.ParseDateTime(filter.EndDate)
		if err != nil {
			return models.Paginated[models.Booking]{}, apierror.BadRequest(util.INVALID_DATE, "endDate")
		}
		if dateOnly {
			_, to = util.DayBounds(to)
		}
		q.CheckInTo = &to
	}
	return s.find(ctx, q, page)
}

func (s *BookingService) MyBookings(ctx context.Context, actor models.Actor, page models.PageRequest) (models.Paginated[models.Booking], error) {
	q := models.BookingQuery{
		UserID:     &actor.ID,
		ActiveOnly: true,
		Sort:       []models.SortKey{{Field: "checkInDate"}},
	}
	return s.find(ctx, q, page)
}

// CheckedInForDoctor lists accepted stays whose window overlaps today.
func (s *BookingService) CheckedInForDoctor(ctx context.Context, page models.PageRequest) (models.Paginated[models.Booking], error) {
	start, end := util.DayBounds(s.now())
	q := models.BookingQuery{
		Status:       models.StatusAccepted,
		ActiveOnly:   true,
		CheckInTo:    &end,
		CheckOutFrom: &start,
		Sort:         []models.SortKey{{Field: "checkOutDate"}},
	}
	return s.find(ctx, q, page)
}

func (s *BookingService) Today(ctx context.Context, actor models.Actor, page models.PageRequest) (models.Paginated[models.Booking], error) {
	return s.checkingInOn(ctx, actor, s.now(), page)
}

func (s *BookingService) Tomorrow(ctx context.Context, actor models.Actor, page models.PageRequest) (models.Paginated[models.Booking], error) {
	return s.checkingInOn(ctx, actor, s.now().UTC().AddDate(0, 0, 1), page)
}

func (s *BookingService) checkingInOn(ctx context.Context, actor models.Actor, day time.Time, page models.PageRequest) (models.Paginated[models.Booking], error) {
	start, end := util.DayBounds(day)
	q := models.BookingQuery{
		UserID:      &actor.ID,
		ActiveOnly:  true,
		CheckInFrom: &start,
		CheckInTo:   &end,
		Sort:        []models.SortKey{{Field: "checkInDate"}},
	}
	return s.find(ctx, q, page)
}

/*
* Validate the target status
* Re-setting the current status is a no-op
* Anything outside the transition table is a conflict
 */
func (s *BookingService) SetStatus(ctx context.Context, rawID, rawStatus string) (*models.Booking, error) {
	id, err := parseObjectID(rawID, util.INVALID_BOOKING_ID)
	if err != nil {
		return nil, err
	}
	target, ok := models.ParseBookingStatus(rawStatus)
	if !ok {
		return nil, apierror.BadRequest(util.INVALID_BOOKING_STATUS, rawStatus)
	}
	current, err := s.active(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == target {
		return current, nil
	}
	if !CanTransition(current.Status, target) {
		return nil, apierror.Conflict(fmt.Sprintf(util.ILLEGAL_STATUS_TRANSITION, current.Status, target))
	}
	updated, err := s.store.Update(ctx, id, models.BookingPatch{Status: &target})
	if err != nil {
		return nil, notFound(err, util.BOOKING_NOT_FOUND)
	}
	s.invalidate(ctx, id)
	metrics.BookingTransitions.WithLabelValues(string(current.Status), string(target)).Inc()
	s.publish(ctx, events.BookingStatusChanged, updated, current.Status)
	return updated, nil
}

func (s *BookingService) UpdateDetails(ctx context.Context, actor models.Actor, rawID string, in BookingDetailsInput) (*models.Booking, error) {
	id, err := parseObjectID(rawID, util.INVALID_BOOKING_ID)
	if err != nil {
		return nil, err
	}
	details, err := parseDetails(in)
	if err != nil {
		return nil, err
	}
	if details.IsEmpty() {
		return nil, apierror.BadRequest(util.EMPTY_BOOKING_UPDATE)
	}
	current, err := s.active(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(actor, current); err != nil {
		return nil, err
	}
	checkIn, checkOut := current.CheckInDate, current.CheckOutDate
	if details.CheckInDate != nil {
		checkIn = *details.CheckInDate
	}
	if details.CheckOutDate != nil {
		checkOut = *details.CheckOutDate
	}
	if checkOut.Before(checkIn) {
		return nil, apierror.BadRequest(util.CHECKOUT_BEFORE_CHECKIN)
	}
	updated, err := s.store.Update(ctx, id, models.BookingPatch{
		CheckInDate:  details.CheckInDate,
		CheckOutDate: details.CheckOutDate,
		Description:  details.Description,
	})
	if err != nil {
		return nil, notFound(err, util.BOOKING_NOT_FOUND)
	}
	s.invalidate(ctx, id)
	s.publish(ctx, events.BookingDetailsUpdated, updated, "")
	return updated, nil
}

// SoftDelete marks the booking inactive. Deleting an inactive booking again succeeds.
func (s *BookingService) SoftDelete(ctx context.Context, actor models.Actor, rawID string) error {
	id, err := parseObjectID(rawID, util.INVALID_BOOKING_ID)
	if err != nil {
		return err
	}
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return notFound(err, util.BOOKING_NOT_FOUND)
	}
	if err := ensureOwner(actor, current); err != nil {
		return err
	}
	if !current.IsActive {
		return nil
	}
	inactive := false
	updated, err := s.store.Update(ctx, id, models.BookingPatch{IsActive: &inactive})
	if err != nil {
		return notFound(err, util.BOOKING_NOT_FOUND)
	}
	s.invalidate(ctx, id)
	s.publish(ctx, events.BookingDeleted, updated, "")
	return nil
}

// RejectStalePending rejects PENDING bookings whose check-in day has already passed.
func (s *BookingService) RejectStalePending(ctx context.Context) (int, error) {
	startOfToday, _ := util.DayBounds(s.now())
	ids, err := s.store.RejectStalePending(ctx, startOfToday)
	if err != nil {
		log.Println("Error from RejectStalePending: ", err)
		return 0, err
	}
	for _, id := range ids {
		s.invalidate(ctx, id)
	}
	if len(ids) > 0 {
		metrics.StaleBookingsRejected.Add(float64(len(ids)))
		metrics.BookingTransitions.WithLabelValues(string(models.StatusPending), string(models.StatusRejected)).Add(float64(len(ids)))
	}
	return len(ids), nil
}

func (s *BookingService) find(ctx context.Context, q models.BookingQuery, page models.PageRequest) (models.Paginated[models.Booking], error) {
	page = page.Normalize()
	bookings, total, err := s.store.Find(ctx, q, page)
	if err != nil {
		log.Println("Error from Find bookings: ", err)
		return models.Paginated[models.Booking]{}, err
	}
	return models.NewPaginated(bookings, total, page), nil
}

// active loads from the store, never the cache, and hides soft-deleted bookings.
func (s *BookingService) active(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.BOOKING_NOT_FOUND)
	}
	if !booking.IsActive {
		return nil, apierror.NotFound(util.BOOKING_NOT_FOUND)
	}
	return booking, nil
}

func (s *BookingService) cached(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	key := cache.BookingKey + id.Hex()
	var booking models.Booking
	hit, err := s.cache.Get(ctx, key, &booking)
	if err != nil {
		log.Println("Error from cache Get: ", err)
	}
	if hit {
		return &booking, nil
	}
	found, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.BOOKING_NOT_FOUND)
	}
	if err := s.cache.Set(ctx, key, found); err != nil {
		log.Println("Error from cache Set: ", err)
	}
	return found, nil
}

func (s *BookingService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.Delete(ctx, cache.BookingKey+id.Hex()); err != nil {
		log.Println("Error from cache Delete: ", err)
	}
}

// publish is best effort; a broker outage never fails the request.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *models.Booking, previous models.BookingStatus) {
	event := events.NewBookingEvent(eventType, booking, s.now().UTC())
	event.PreviousStatus = previous
	if err := s.publisher.Publish(ctx, eventType, event); err != nil {
		log.Println("Error publishing", eventType, "for booking", booking.ID.Hex(), err)
	}
}

func ensureOwner(actor models.Actor, booking *models.Booking) error {
	if actor.Role == role.User && booking.UserID != actor.ID {
		return apierror.Forbidden(util.NOT_BOOKING_OWNER)
	}
	return nil
}

func parseDetails(in BookingDetailsInput) (models.BookingDetails, error) {
	details := models.BookingDetails{Description: in.Description}
	if in.CheckInDate != nil {
		t, _, err := util.ParseDateTime(*in.CheckInDate)
		if err != nil {
			return details, apierror.BadRequest(util.INVALID_DATE, "checkInDate")
		}
		details.CheckInDate = &t
	}
	if in.CheckOutDate != nil {
		t, _, err := util.ParseDateTime(*in.CheckOutDate)
		if err != nil {
			return details, apierror.BadRequest(util.INVALID_DATE, "checkOutDate")
		}
		details.CheckOutDate = &t
	}
	return details, nil
}
