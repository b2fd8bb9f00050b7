package migrations

import (
	"context"
	"log"

	"WellnessHub/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		repository.UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("role_createdAt")},
		},
		repository.CabinCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetName("name_unique")},
		},
		repository.TreatmentCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetName("name_unique")},
		},
		repository.BookingCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "checkInDate", Value: 1}}, Options: options.Index().SetName("userId_checkInDate")},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "checkInDate", Value: 1}, {Key: "checkOutDate", Value: 1}}, Options: options.Index().SetName("status_stay_window")},
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("isActive_createdAt")},
		},
	}
}

func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for name, specs := range indexModels() {
		created, err := database.Collection(name).Indexes().CreateMany(ctx, specs)
		if err != nil {
			return err
		}
		log.Printf("Migration applied: indexes %v on %s\n", created, name)
	}
	return nil
}
