package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is an account record. The email is the unique identifier; the role
// is assigned at signup and never self-escalates. Verified only applies to
// sellers.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"`
	Verified bool               `bson:"verified,omitempty" json:"verified,omitempty"`
}
