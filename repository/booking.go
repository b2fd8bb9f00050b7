package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"WellnessHub/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	bookings *mongo.Collection
	users    *UserRepository
}

func NewBookingRepository(database *mongo.Database, users *UserRepository) *BookingRepository {
	return &BookingRepository{
		bookings: database.Collection(BookingCollection),
		users:    users,
	}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	res, err := db.CreateOne(ctx, r.bookings, booking)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = id
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := db.FindOne(ctx, r.bookings, bson.M{"_id": id}, &booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	one := []models.Booking{booking}
	if err := r.populate(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

/*
* Resolve a name search into the matching owner ids first
* Build the filter and run page + count
* Attach the owner projection to every booking on the page
 */
func (r *BookingRepository) Find(ctx context.Context, q models.BookingQuery, page models.PageRequest) ([]models.Booking, int64, error) {
	if q.Search != "" {
		ids, err := r.users.SearchIDsByName(ctx, q.Search)
		if err != nil {
			log.Println("Error from SearchIDsByName: ", err)
			return nil, 0, err
		}
		if q.UserIDs != nil {
			ids = keepCommon(q.UserIDs, ids)
		}
		q.UserIDs = ids
	}
	bookings, total, err := findPage[models.Booking](ctx, r.bookings, BookingFilter(q), SortSpec(q.Sort), page, nil)
	if err != nil {
		log.Println("Error from findPage(bookings): ", err)
		return nil, 0, err
	}
	if err := r.populate(ctx, bookings); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.BookingPatch) (*models.Booking, error) {
	update := bson.M{"$set": BookingSet(patch, time.Now().UTC())}
	res, err := db.UpdateOne(ctx, r.bookings, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// RejectStalePending moves active PENDING bookings whose check-in is before
// the given instant to REJECTED and returns the ids it touched.
func (r *BookingRepository) RejectStalePending(ctx context.Context, before time.Time) ([]primitive.ObjectID, error) {
	filter := bson.M{
		"status":      string(models.StatusPending),
		"isActive":    true,
		"checkInDate": bson.M{"$lt": before},
	}
	cursor, err := r.bookings.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	/*
	* Re-check status in the update so a booking accepted in between is left alone
	 */
	update := bson.M{"$set": BookingSet(models.BookingPatch{Status: ptr(models.StatusRejected)}, time.Now().UTC())}
	_, err = db.UpdateMany(ctx, r.bookings, bson.M{
		"_id":    bson.M{"$in": ids},
		"status": string(models.StatusPending),
	}, update, nil)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *BookingRepository) populate(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	seen := make(map[primitive.ObjectID]struct{}, len(bookings))
	ids := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		ids = append(ids, b.UserID)
	}
	owners, err := r.users.Summaries(ctx, ids)
	if err != nil {
		log.Println("Error from Summaries while populating bookings: ", err)
		return err
	}
	for i := range bookings {
		if owner, ok := owners[bookings[i].UserID]; ok {
			owner := owner
			bookings[i].User = &owner
		}
	}
	return nil
}

func keepCommon(a, b []primitive.ObjectID) []primitive.ObjectID {
	in := make(map[primitive.ObjectID]struct{}, len(a))
	for _, id := range a {
		in[id] = struct{}{}
	}
	out := []primitive.ObjectID{}
	for _, id := range b {
		if _, ok := in[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
