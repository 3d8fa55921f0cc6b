package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ProductStatusAvailable = "available"
	ProductStatusSold      = "sold"
)

// Product is a second-hand listing. Status only moves available -> sold,
// and only through payment confirmation. Advertising is a one-way
// promotional flag with no toggle-off path.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Category      string             `bson:"category" json:"category"`
	ReselPrice    float64            `bson:"reselPrice" json:"reselPrice"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	SellerEmail   string             `bson:"sellerEmail" json:"sellerEmail"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	YearsOfUse    string             `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	PostedAt      string             `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Advertising   bool               `bson:"advertising,omitempty" json:"advertising,omitempty"`
	Verified      bool               `bson:"verified,omitempty" json:"verified,omitempty"`
}
