package models

import (
	"time"

	"WellnessHub/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	Email       string             `json:"email" bson:"email"`
	Password    string             `json:"-" bson:"password,omitempty"`
	Role        role.Role          `json:"role" bson:"role"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	IDCard      string             `json:"idCard,omitempty" bson:"idCard,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the owner projection attached to bookings on read.
type UserSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName"`
	Email       string             `json:"email" bson:"email"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	IDCard      string             `json:"idCard,omitempty" bson:"idCard,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

type UserQuery struct {
	Roles []role.Role
}

type StaffInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Address     string
	IDCard      string
	Description string
}

// Actor is the authenticated caller attached by the auth middleware.
type Actor struct {
	ID   primitive.ObjectID
	Role role.Role
}
