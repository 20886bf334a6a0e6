package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gymms/portal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BillService struct {
	collection *mongo.Collection
}

func NewBillService(db *mongo.Database) *BillService {
	return &BillService{collection: db.Collection("bills")}
}

// CreateBill inserts a billing record with a server-assigned creation
// timestamp. The timestamp doubles as the fallback display date and the sort
// key for listings.
func (s *BillService) CreateBill(ctx context.Context, bill *models.Bill) (string, error) {
	bill.ID = primitive.NewObjectID()
	bill.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, bill); err != nil {
		return "", fmt.Errorf("create bill: %w", err)
	}
	return bill.ID.Hex(), nil
}

// ListBillsForMember returns the member's bills ordered newest-first by
// creation time.
func (s *BillService) ListBillsForMember(ctx context.Context, memberID string) ([]models.Bill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.collection.Find(ctx, bson.M{"memberId": memberID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cur.Close(ctx)

	var bills []models.Bill
	if err := cur.All(ctx, &bills); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return bills, nil
}
