package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member represents a gym member document in the members collection.
//
// MemberID mirrors the document id. It is assigned together with the id in a
// single insert and never changes afterwards.
type Member struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID  string             `bson:"memberId" json:"memberId"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Package   string             `bson:"package" json:"package"`
	StartDate string             `bson:"startDate" json:"startDate"` // calendar date, YYYY-MM-DD
	Amount    float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// MemberUpdate carries the mutable member fields for an update. MemberID and
// CreatedAt are deliberately absent.
type MemberUpdate struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Package   string `json:"package"`
	StartDate string `json:"startDate"`
}
