package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Treatment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Duration    int                `json:"duration" bson:"duration"`
	Resources   []string           `json:"resources" bson:"resources"`
	Benefits    []string           `json:"benefits" bson:"benefits"`
	ImgURL      string             `json:"imgUrl,omitempty" bson:"imgUrl,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type TreatmentPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Duration    *int      `json:"duration"`
	Resources   *[]string `json:"resources"`
	Benefits    *[]string `json:"benefits"`
	ImgURL      *string   `json:"imgUrl"`
}

func (p TreatmentPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Duration == nil &&
		p.Resources == nil && p.Benefits == nil && p.ImgURL == nil
}
