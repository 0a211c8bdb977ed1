package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Company   string             `bson:"company" json:"company"`
	Quote     string             `bson:"quote" json:"quote"`
	Badges    []string           `bson:"badges" json:"badges"`
	Rating    int                `bson:"rating" json:"rating"`
	LinkedIn  string             `bson:"linkedin" json:"linkedin"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
