package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored on a user account. The role is an explicit claim assigned at
// signup; authorization decisions read it from the record, never from the
// email address.
const (
	UserRoleAdmin = "admin"
	UserRoleGuest = "guest"
)

// User is an authentication account in the users collection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	HPassword string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
