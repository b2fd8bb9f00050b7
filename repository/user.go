package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"WellnessHub/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	withoutPassword   = bson.M{"password": 0}
	summaryProjection = bson.M{
		"firstName":   1,
		"lastName":    1,
		"email":       1,
		"address":     1,
		"idCard":      1,
		"description": 1,
	}
)

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{users: database.Collection(UserCollection)}
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	res, err := db.CreateOne(ctx, r.users, user)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindCredentials is FindByEmail with the password hash kept, for login only.
func (r *UserRepository) FindCredentials(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := db.FindOne(ctx, r.users, bson.M{"email": email}, &user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := db.FindOne(ctx, r.users, filter, &user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

func (r *UserRepository) Find(ctx context.Context, q models.UserQuery, page models.PageRequest) ([]models.User, int64, error) {
	filter := bson.M{}
	if len(q.Roles) == 1 {
		filter["role"] = string(q.Roles[0])
	} else if len(q.Roles) > 1 {
		roles := make([]string, 0, len(q.Roles))
		for _, rl := range q.Roles {
			roles = append(roles, rl.String())
		}
		filter["role"] = bson.M{"$in": roles}
	}
	sort := bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}
	return findPage[models.User](ctx, r.users, filter, sort, page, withoutPassword)
}

func (r *UserRepository) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	res, err := db.UpdateOne(ctx, r.users, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

/*
* Case-insensitive substring match on firstName or lastName
* Always returns a non-nil slice so an empty result constrains bookings to nothing
 */
func (r *UserRepository) SearchIDsByName(ctx context.Context, search string) ([]primitive.ObjectID, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(search)), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"firstName": pattern},
		bson.M{"lastName": pattern},
	}}
	cursor, err := r.users.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *UserRepository) Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	out := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetProjection(summaryProjection))
	if err != nil {
		return nil, err
	}
	var rows []models.UserSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}
