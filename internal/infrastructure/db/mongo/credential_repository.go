package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

const credentialCollection = "driver_credentials"

// CredentialRepository stores the auth provider's password credentials.
// It backs the local IdentityProvider; the rest of the system never
// touches this collection.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(credentialCollection)}
}

type mongoCredential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
}

// Create inserts a credential and returns the assigned id. A duplicate
// email maps to domain.ErrAccountExists (unique index on email).
func (r *CredentialRepository) Create(ctx context.Context, email, passwordHash string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoCredential{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Unix(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrAccountExists
		}
		return "", fmt.Errorf("insert credential: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert credential: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByEmail returns the credential id and password hash for an email.
// An unknown email maps to domain.ErrInvalidCredentials so callers
// cannot distinguish a missing account from a wrong password.
func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCredential
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("find credential: %w", err)
	}
	return mc.ID.Hex(), mc.PasswordHash, nil
}

// EnsureIndexes creates the unique email index.
func (r *CredentialRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
