package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gymms/portal/internal/models"
	"github.com/gymms/portal/internal/portal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type UserService struct {
	collection *mongo.Collection
	validate   *validator.Validate
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{
		collection: db.Collection("users"),
		validate:   validator.New(),
	}
}

// DefaultRole seeds the role claim for a new account. The naming convention
// is consulted exactly once, here at signup; every later authorization
// decision reads the stored claim.
func DefaultRole(email string) string {
	if strings.HasPrefix(email, "admin@") || strings.HasSuffix(email, "@mygym.com") {
		return models.UserRoleAdmin
	}
	return models.UserRoleGuest
}

// Signup creates an account with a bcrypt-hashed password and an explicit
// role claim.
func (s *UserService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, portal.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, portal.ErrWeakPassword
	}

	err := s.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, portal.ErrEmailInUse
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("signup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		HPassword: string(hash),
		Role:      DefaultRole(email),
		CreatedAt: time.Now(),
	}
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return user, nil
}

// Login verifies credentials against the stored account.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, portal.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HPassword), []byte(password)); err != nil {
		return nil, portal.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser fetches an account by its id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var user models.User
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, portal.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
