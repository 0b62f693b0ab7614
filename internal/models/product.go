package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product est le document tel qu'il existe dans l'une des six collections
// du catalogue. Les collections n'ont pas de schéma commun : price est
// parfois un nombre, parfois une chaîne. catalog.CoercePrice s'en charge.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price interface{}        `bson:"price" json:"price"`
	Brand string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
