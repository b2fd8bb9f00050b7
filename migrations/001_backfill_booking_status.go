package migrations

import (
	"context"
	"log"

	"WellnessHub/models"
	"WellnessHub/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	missingStatus = bson.M{"$or": bson.A{
		bson.M{"status": bson.M{"$exists": false}},
		bson.M{"status": ""},
	}}
	missingActive = bson.M{"isActive": bson.M{"$exists": false}, "is_active": bson.M{"$exists": false}}
)

// BackfillBookingStatus gives old bookings the PENDING default and an active flag.
func BackfillBookingStatus(ctx context.Context, database *mongo.Database) error {
	bookings := database.Collection(repository.BookingCollection)
	result, err := bookings.UpdateMany(ctx, missingStatus, bson.M{"$set": bson.M{"status": string(models.StatusPending)}})
	if err != nil {
		return err
	}
	log.Printf("Migration applied: %d bookings given status %s\n", result.ModifiedCount, models.StatusPending)

	result, err = bookings.UpdateMany(ctx, missingActive, bson.M{"$set": bson.M{"isActive": true}})
	if err != nil {
		return err
	}
	log.Printf("Migration applied: %d bookings marked active\n", result.ModifiedCount)
	return nil
}
