package mongo

import (
	"context"
	"fmt"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const merchOrdersCollection = "merch_orders"

type merchOrderRepository struct {
	collection *mongo.Collection
}

func NewMerchOrderRepository(db *mongo.Database) database.MerchOrderRepository {
	return &merchOrderRepository{collection: db.Collection(merchOrdersCollection)}
}

func (r *merchOrderRepository) Create(ctx context.Context, order *entity.MerchOrder) error {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to insert merch order: %w", err)
	}

	id, err := insertedObjectID(res)
	if err != nil {
		return err
	}

	order.ID = id
	return nil
}

func insertedObjectID(res *mongo.InsertOneResult) (primitive.ObjectID, error) {
	if res == nil {
		return primitive.NilObjectID, entity.ErrNoInsertedID
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, entity.ErrNoInsertedID
	}
	return id, nil
}

// GetAll returns orders newest first.
func (r *merchOrderRepository) GetAll(ctx context.Context) ([]*entity.MerchOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query merch orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]*entity.MerchOrder, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode merch orders: %w", err)
	}

	return orders, nil
}
