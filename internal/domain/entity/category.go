package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is static reference data used for browsing.
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
