package services

import (
	"errors"
	"strings"

	"WellnessHub/apierror"
	"WellnessHub/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(raw, message string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, apierror.BadRequest(message)
	}
	return id, nil
}

// notFound turns repository.ErrNotFound into a typed 404 and passes anything else through.
func notFound(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apierror.NotFound(message)
	}
	return err
}
