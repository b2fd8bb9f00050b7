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

type TreatmentRepository struct {
	treatments *mongo.Collection
}

func NewTreatmentRepository(database *mongo.Database) *TreatmentRepository {
	return &TreatmentRepository{treatments: database.Collection(TreatmentCollection)}
}

func (r *TreatmentRepository) Insert(ctx context.Context, treatment *models.Treatment) error {
	now := time.Now().UTC()
	treatment.CreatedAt = now
	treatment.UpdatedAt = now
	res, err := db.CreateOne(ctx, r.treatments, treatment)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		treatment.ID = id
	}
	return nil
}

func (r *TreatmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Treatment, error) {
	var treatment models.Treatment
	if err := db.FindOne(ctx, r.treatments, bson.M{"_id": id}, &treatment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *TreatmentRepository) NameTaken(ctx context.Context, name string, except *primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": name}
	if except != nil {
		filter["_id"] = bson.M{"$ne": *except}
	}
	n, err := r.treatments.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TreatmentRepository) Find(ctx context.Context, page models.PageRequest) ([]models.Treatment, int64, error) {
	sort := bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}
	return findPage[models.Treatment](ctx, r.treatments, bson.M{}, sort, page, nil)
}

func (r *TreatmentRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.TreatmentPatch) (*models.Treatment, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.Resources != nil {
		set["resources"] = *patch.Resources
	}
	if patch.Benefits != nil {
		set["benefits"] = *patch.Benefits
	}
	if patch.ImgURL != nil {
		set["imgUrl"] = *patch.ImgURL
	}
	res, err := db.UpdateOne(ctx, r.treatments, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the document and returns what was removed.
func (r *TreatmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Treatment, error) {
	treatment, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := db.DeleteOne(ctx, r.treatments, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, ErrNotFound
	}
	return treatment, nil
}
