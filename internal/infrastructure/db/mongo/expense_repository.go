package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

const expenseCollection = "driver_expenses"

// ExpenseRepository stores expense rows scoped by driver id.
type ExpenseRepository struct {
	coll *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{coll: db.Collection(expenseCollection)}
}

type mongoExpense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	DriverID    string             `bson:"driver_id"`
	Date        time.Time          `bson:"date"`
	Category    string             `bson:"category"`
	Amount      float64            `bson:"amount"`
	Description string             `bson:"description,omitempty"`
	Receipt     string             `bson:"receipt,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Insert persists a record and returns it with the assigned id.
func (r *ExpenseRepository) Insert(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoExpense{
		DriverID:    expense.DriverID,
		Date:        expense.Date,
		Category:    string(expense.Category),
		Amount:      expense.Amount,
		Description: expense.Description,
		Receipt:     expense.Receipt,
		CreatedAt:   expense.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	stored := *expense
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

// ListByDriver returns every record for the driver in store-default order.
func (r *ExpenseRepository) ListByDriver(ctx context.Context, driverID string) ([]domain.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"driver_id": driverID})
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Expense
	for cur.Next(ctx) {
		var me mongoExpense
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode expense: %w", err)
		}
		out = append(out, domain.Expense{
			ID:          me.ID.Hex(),
			DriverID:    me.DriverID,
			Date:        me.Date,
			Category:    domain.ExpenseCategory(me.Category),
			Amount:      me.Amount,
			Description: me.Description,
			Receipt:     me.Receipt,
			CreatedAt:   me.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the owner-id index used by every list query.
func (r *ExpenseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "driver_id", Value: 1}},
	})
	return err
}
