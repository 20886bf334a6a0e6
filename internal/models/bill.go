package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill statuses.
const (
	BillStatusPaid   = "paid"
	BillStatusUnpaid = "unpaid"
)

// Bill represents a billing record in the bills collection. MemberID refers
// to the owning member; bills are not removed when the member is deleted.
type Bill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID  string             `bson:"memberId" json:"memberId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Status    string             `bson:"status" json:"status"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"` // calendar date, optional
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// DisplayDate returns the explicit bill date, falling back to the server
// creation timestamp when none was recorded.
func (b *Bill) DisplayDate() string {
	if b.Date != "" {
		return b.Date
	}
	return b.CreatedAt.Format("2006-01-02")
}
