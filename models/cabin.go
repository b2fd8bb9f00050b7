package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cabin struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CabinPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageURL"`
}

func (p CabinPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.ImageURL == nil
}
