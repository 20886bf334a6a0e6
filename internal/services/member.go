package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gymms/portal/internal/models"
	"github.com/gymms/portal/internal/portal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// memberListCap bounds every member listing. Lists beyond the cap are
// silently truncated; there is no pagination.
const memberListCap = 50

// Sortable member list fields. Unknown fields fall back to name.
var memberSortFields = map[string]string{
	"name":      "name",
	"phone":     "phone",
	"package":   "package",
	"startDate": "startDate",
	"createdAt": "created_at",
}

type MemberService struct {
	collection *mongo.Collection
}

func NewMemberService(db *mongo.Database) *MemberService {
	return &MemberService{collection: db.Collection("members")}
}

// AddMember inserts a new member. The document id and the mirrored memberId
// are assigned together in a single write, so a member is never readable
// without its identifier.
func (s *MemberService) AddMember(ctx context.Context, member *models.Member) (string, error) {
	id := primitive.NewObjectID()
	member.ID = id
	member.MemberID = id.Hex()
	member.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, member); err != nil {
		return "", fmt.Errorf("add member: %w", err)
	}
	return id.Hex(), nil
}

// UpdateMember applies the mutable fields to an existing member. The
// memberId mirror is immutable and never part of the update.
func (s *MemberService) UpdateMember(ctx context.Context, id string, u models.MemberUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"name":      u.Name,
		"phone":     u.Phone,
		"package":   u.Package,
		"startDate": u.StartDate,
	}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// DeleteMember removes a member document. Bills referencing the member are
// left in place.
func (s *MemberService) DeleteMember(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

// ListMembers returns up to 50 members ordered by the requested field and
// direction.
func (s *MemberService) ListMembers(ctx context.Context, sortField, sortDir string) ([]models.Member, error) {
	field, ok := memberSortFields[sortField]
	if !ok {
		field = "name"
	}
	dir := 1
	if sortDir == "desc" {
		dir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: dir}}).
		SetLimit(memberListCap)

	cur, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// FindMemberByNameAndID matches a member by exact equality on both name and
// memberId. Zero matches yield portal.ErrMemberNotFound; if duplicates
// exist, the first result the store returns is used.
func (s *MemberService) FindMemberByNameAndID(ctx context.Context, name, memberID string) (*models.Member, error) {
	var member models.Member
	err := s.collection.FindOne(ctx, bson.M{"name": name, "memberId": memberID}).Decode(&member)
	if err == mongo.ErrNoDocuments {
		return nil, portal.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("member lookup: %w", err)
	}
	return &member, nil
}
