package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Uname    string             `bson:"uname" json:"uname,omitempty"`
	Cart     []CartEntry        `bson:"cart" json:"cart"`
}
