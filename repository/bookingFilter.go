package repository

import (
	"time"

	"WellnessHub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var defaultBookingSort = []models.SortKey{{Field: "createdAt", Descending: true}}

/*
* Translate a BookingQuery into a Mongo filter
* UserIDs == nil leaves userId unconstrained, an empty slice matches nothing
* When both UserID and UserIDs are set only their intersection can match
 */
func BookingFilter(q models.BookingQuery) bson.M {
	filter := bson.M{}
	if q.ActiveOnly {
		filter["isActive"] = true
	}
	switch {
	case q.UserIDs != nil:
		ids := q.UserIDs
		if q.UserID != nil {
			ids = intersectIDs(ids, *q.UserID)
		}
		filter["userId"] = bson.M{"$in": ids}
	case q.UserID != nil:
		filter["userId"] = *q.UserID
	}
	if q.Status != "" {
		filter["status"] = string(q.Status)
	}
	checkIn := bson.M{}
	if q.CheckInFrom != nil {
		checkIn["$gte"] = *q.CheckInFrom
	}
	if q.CheckInTo != nil {
		checkIn["$lte"] = *q.CheckInTo
	}
	if len(checkIn) > 0 {
		filter["checkInDate"] = checkIn
	}
	if q.CheckOutFrom != nil {
		filter["checkOutDate"] = bson.M{"$gte": *q.CheckOutFrom}
	}
	return filter
}

func intersectIDs(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, candidate := range ids {
		if candidate == id {
			return []primitive.ObjectID{id}
		}
	}
	return []primitive.ObjectID{}
}

// SortSpec keeps the caller's ordering; createdAt descending when none is given.
func SortSpec(keys []models.SortKey) bson.D {
	if len(keys) == 0 {
		keys = defaultBookingSort
	}
	sort := make(bson.D, 0, len(keys)+1)
	for _, k := range keys {
		dir := 1
		if k.Descending {
			dir = -1
		}
		sort = append(sort, bson.E{Key: k.Field, Value: dir})
	}
	// stable paging across equal sort values
	return append(sort, bson.E{Key: "_id", Value: 1})
}

func BookingSet(patch models.BookingPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}
	if patch.CheckInDate != nil {
		set["checkInDate"] = *patch.CheckInDate
	}
	if patch.CheckOutDate != nil {
		set["checkOutDate"] = *patch.CheckOutDate
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	return set
}
