package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Application struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Program    string             `bson:"program" json:"program"`
	Experience string             `bson:"experience" json:"experience"`
	Motivation string             `bson:"motivation" json:"motivation"`
	Resume     string             `bson:"resume" json:"resume"` // stored path or URL, empty when not uploaded
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
