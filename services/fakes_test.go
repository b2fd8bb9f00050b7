package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"WellnessHub/models"
	"WellnessHub/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookingStore evaluates BookingQuery in memory the way the Mongo filter does.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]models.Booking
	users    map[primitive.ObjectID]models.UserSummary
	order    []primitive.ObjectID
	clock    time.Time
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		bookings: map[primitive.ObjectID]models.Booking{},
		users:    map[primitive.ObjectID]models.UserSummary{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeBookingStore) addUser(first, last string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.users[id] = models.UserSummary{ID: id, FirstName: first, LastName: last, Email: strings.ToLower(first) + "@example.com"}
	return id
}

func (f *fakeBookingStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeBookingStore) Insert(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = f.tick()
	b.UpdatedAt = b.CreatedAt
	f.bookings[b.ID] = *b
	f.order = append(f.order, b.ID)
	return nil
}

func (f *fakeBookingStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return f.populated(b), nil
}

func (f *fakeBookingStore) populated(b models.Booking) *models.Booking {
	if u, ok := f.users[b.UserID]; ok {
		b.User = &u
	}
	return &b
}

func (f *fakeBookingStore) Find(_ context.Context, q models.BookingQuery, page models.PageRequest) ([]models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if q.Search != "" {
		matched := []primitive.ObjectID{}
		needle := strings.ToLower(q.Search)
		for id, u := range f.users {
			if strings.Contains(strings.ToLower(u.FirstName), needle) || strings.Contains(strings.ToLower(u.LastName), needle) {
				matched = append(matched, id)
			}
		}
		q.UserIDs = matched
	}
	var out []models.Booking
	for _, id := range f.order {
		b := f.bookings[id]
		if f.matches(b, q) {
			out = append(out, *f.populated(b))
		}
	}
	sortBookings(out, q.Sort)
	total := int64(len(out))
	start := int(page.Skip())
	if start > len(out) {
		start = len(out)
	}
	end := start + page.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeBookingStore) matches(b models.Booking, q models.BookingQuery) bool {
	if q.ActiveOnly && !b.IsActive {
		return false
	}
	if q.UserID != nil && b.UserID != *q.UserID {
		return false
	}
	if q.UserIDs != nil {
		found := false
		for _, id := range q.UserIDs {
			if id == b.UserID {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if q.Status != "" && b.Status != q.Status {
		return false
	}
	if q.CheckInFrom != nil && b.CheckInDate.Before(*q.CheckInFrom) {
		return false
	}
	if q.CheckInTo != nil && b.CheckInDate.After(*q.CheckInTo) {
		return false
	}
	if q.CheckOutFrom != nil && b.CheckOutDate.Before(*q.CheckOutFrom) {
		return false
	}
	return true
}

func sortBookings(bookings []models.Booking, keys []models.SortKey) {
	if len(keys) == 0 {
		keys = []models.SortKey{{Field: "createdAt", Descending: true}}
	}
	field := func(b models.Booking, name string) time.Time {
		switch name {
		case "checkInDate":
			return b.CheckInDate
		case "checkOutDate":
			return b.CheckOutDate
		}
		return b.CreatedAt
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		for _, k := range keys {
			a, b := field(bookings[i], k.Field), field(bookings[j], k.Field)
			if a.Equal(b) {
				continue
			}
			if k.Descending {
				return a.After(b)
			}
			return a.Before(b)
		}
		return false
	})
}

func (f *fakeBookingStore) Update(_ context.Context, id primitive.ObjectID, patch models.BookingPatch) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.IsActive != nil {
		b.IsActive = *patch.IsActive
	}
	if patch.CheckInDate != nil {
		b.CheckInDate = *patch.CheckInDate
	}
	if patch.CheckOutDate != nil {
		b.CheckOutDate = *patch.CheckOutDate
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	b.UpdatedAt = f.tick()
	f.bookings[id] = b
	return f.populated(b), nil
}

func (f *fakeBookingStore) RejectStalePending(_ context.Context, before time.Time) ([]primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []primitive.ObjectID
	for _, id := range f.order {
		b := f.bookings[id]
		if b.IsActive && b.Status == models.StatusPending && b.CheckInDate.Before(before) {
			b.Status = models.StatusRejected
			f.bookings[id] = b
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// memoryCache is a map-backed cache.Cache that records deletions.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]any
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]any{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if b, ok := v.(*models.Booking); ok {
		*(dest.(*models.Booking)) = *b
	}
	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	failed bool
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	if p.failed {
		return context.DeadlineExceeded
	}
	return nil
}
