package migrations

import (
	"testing"

	"WellnessHub/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexModelsCoverUniqueFields(t *testing.T) {
	idx := indexModels()

	email := idx[repository.UserCollection][0]
	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, email.Keys)
	assert.True(t, *email.Options.Unique)

	cabin := idx[repository.CabinCollection][0]
	assert.True(t, *cabin.Options.Unique)

	names := map[string]bool{}
	for _, m := range idx[repository.BookingCollection] {
		names[*m.Options.Name] = true
	}
	assert.True(t, names["userId_checkInDate"])
	assert.True(t, names["status_stay_window"])
}

func TestStepsOrder(t *testing.T) {
	got := make([]string, 0, len(steps))
	for _, s := range steps {
		got = append(got, s.name)
	}
	assert.Equal(t, []string{"backfill booking status", "rename legacy is_active", "ensure indexes"}, got)
}
