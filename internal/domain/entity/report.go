package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report flags a product for moderation. Any user may file one; a
// moderator deletes it.
type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID     string             `bson:"productId" json:"productId"`
	ProductName   string             `bson:"productName,omitempty" json:"productName,omitempty"`
	ReporterEmail string             `bson:"reporterEmail" json:"reporterEmail"`
	Reason        string             `bson:"reason,omitempty" json:"reason,omitempty"`
}
