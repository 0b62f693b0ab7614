package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderLine struct {
	Name     string `bson:"name" json:"name"`
	Price    int    `bson:"price" json:"price"`
	Category string `bson:"category" json:"category"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Ref       string             `bson:"ref" json:"ref"`
	Email     string             `bson:"email" json:"email"`
	Lines     []OrderLine        `bson:"lines" json:"lines"`
	Total     int                `bson:"total" json:"total"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
