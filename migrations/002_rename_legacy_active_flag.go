package migrations

import (
	"context"
	"log"

	"WellnessHub/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var softDeletable = []string{
	repository.BookingCollection,
	repository.CabinCollection,
	repository.UserCollection,
}

// RenameLegacyActiveFlag moves is_active to isActive where only the old field exists.
func RenameLegacyActiveFlag(ctx context.Context, database *mongo.Database) error {
	filter := bson.M{"is_active": bson.M{"$exists": true}, "isActive": bson.M{"$exists": false}}
	for _, name := range softDeletable {
		result, err := database.Collection(name).UpdateMany(ctx, filter, bson.M{"$rename": bson.M{"is_active": "isActive"}})
		if err != nil {
			return err
		}
		log.Printf("Migration applied: %d %s documents renamed is_active\n", result.ModifiedCount, name)
	}
	return nil
}
