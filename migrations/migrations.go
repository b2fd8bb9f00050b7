package migrations

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type step struct {
	name string
	run  func(ctx context.Context, database *mongo.Database) error
}

// steps run in order; each one is safe to repeat.
var steps = []step{
	{"backfill booking status", BackfillBookingStatus},
	{"rename legacy is_active", RenameLegacyActiveFlag},
	{"ensure indexes", EnsureIndexes},
}

func Run(database *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	for _, s := range steps {
		if err := s.run(ctx, database); err != nil {
			log.Fatal("Migration failed (", s.name, "): ", err)
		}
	}
}
