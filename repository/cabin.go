package repository

import (
	"context"
	"errors"
	"time"

	"WellnessHub/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CabinRepository struct {
	cabins *mongo.Collection
}

func NewCabinRepository(database *mongo.Database) *CabinRepository {
	return &CabinRepository{cabins: database.Collection(CabinCollection)}
}

func (r *CabinRepository) Insert(ctx context.Context, cabin *models.Cabin) error {
	now := time.Now().UTC()
	cabin.CreatedAt = now
	cabin.UpdatedAt = now
	res, err := db.CreateOne(ctx, r.cabins, cabin)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cabin.ID = id
	}
	return nil
}

func (r *CabinRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cabin, error) {
	var cabin models.Cabin
	if err := db.FindOne(ctx, r.cabins, bson.M{"_id": id}, &cabin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cabin, nil
}

// NameTaken reports whether another cabin already uses name.
func (r *CabinRepository) NameTaken(ctx context.Context, name string, except *primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": name}
	if except != nil {
		filter["_id"] = bson.M{"$ne": *except}
	}
	n, err := r.cabins.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CabinRepository) FindActive(ctx context.Context, page models.PageRequest) ([]models.Cabin, int64, error) {
	sort := bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}
	return findPage[models.Cabin](ctx, r.cabins, bson.M{"isActive": true}, sort, page, nil)
}

func (r *CabinRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.CabinPatch) (*models.Cabin, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		set["imageURL"] = *patch.ImageURL
	}
	return r.set(ctx, id, set)
}

func (r *CabinRepository) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Cabin, error) {
	return r.set(ctx, id, bson.M{"isActive": false, "updatedAt": time.Now().UTC()})
}

func (r *CabinRepository) set(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Cabin, error) {
	res, err := db.UpdateOne(ctx, r.cabins, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}
