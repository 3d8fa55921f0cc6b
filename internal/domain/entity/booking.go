package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves a product for a buyer pending payment. ProductID holds
// the hex id of the booked product. Paid flips false -> true exactly once,
// together with the transaction id, at payment confirmation.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName   string             `bson:"productName" json:"productName"`
	ProductID     string             `bson:"productId" json:"productId"`
	BuyerName     string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	SellerEmail   string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
