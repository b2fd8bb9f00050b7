package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
		{26, 5, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	p := PageRequest{}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(0), p.Skip())

	p = PageRequest{Page: 3, Limit: 20}.Normalize()
	assert.Equal(t, int64(40), p.Skip())

	p = PageRequest{Page: 1, Limit: 500}.Normalize()
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestNewPaginatedNeverReturnsNilData(t *testing.T) {
	page := NewPaginated[Booking](nil, 0, PageRequest{Page: 1, Limit: 10})
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Meta.TotalPages)
}

func TestParseBookingStatus(t *testing.T) {
	s, ok := ParseBookingStatus("accepted")
	assert.True(t, ok)
	assert.Equal(t, StatusAccepted, s)

	_, ok = ParseBookingStatus("RESCHEDULE")
	assert.False(t, ok)
}

func TestBookingDetailsIsEmpty(t *testing.T) {
	assert.True(t, BookingDetails{}.IsEmpty())
	empty := ""
	assert.False(t, BookingDetails{Description: &empty}.IsEmpty())
}
