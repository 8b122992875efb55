package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

const profileCollection = "driver_information"

// ProfileRepository stores the mirrored driver profile rows. The _id is
// the provider-issued user id, not a Mongo ObjectID, so lookups by
// session identity are direct.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoProfile struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Fullname     string `bson:"fullname"`
	Phone        string `bson:"phone,omitempty"`
	VehicleMake  string `bson:"vehicle_make,omitempty"`
	VehicleModel string `bson:"vehicle_model,omitempty"`
	VehicleYear  int    `bson:"vehicle_year,omitempty"`
	LicensePlate string `bson:"license_plate,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
}

// Insert writes the mirror row created on signup.
func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProfile{
		ID:           profile.ID,
		Email:        profile.Email,
		Fullname:     profile.Fullname,
		Phone:        profile.Phone,
		VehicleMake:  profile.Vehicle.Make,
		VehicleModel: profile.Vehicle.Model,
		VehicleYear:  profile.Vehicle.Year,
		LicensePlate: profile.Vehicle.LicensePlate,
		CreatedAt:    profile.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// FindByID fetches a profile by provider-issued user id.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &domain.Profile{
		ID:       mp.ID,
		Email:    mp.Email,
		Fullname: mp.Fullname,
		Phone:    mp.Phone,
		Vehicle: domain.Vehicle{
			Make:         mp.VehicleMake,
			Model:        mp.VehicleModel,
			Year:         mp.VehicleYear,
			LicensePlate: mp.LicensePlate,
		},
		CreatedAt: unixToTime(mp.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
