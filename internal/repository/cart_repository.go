package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{
		collection: db.Collection("carts"),
	}
}

func (c *cartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := c.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateCartItem
		}
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (c *cartRepository) GetItem(ctx context.Context, itemName, buyerEmail string) (*domain.CartItem, error) {
	var item domain.CartItem

	filter := bson.M{"item_name": itemName, "buyer_email": buyerEmail}
	err := c.collection.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return &item, nil
}

func (c *cartRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.CartItem, error) {
	filter := bson.M{"buyer_email": buyerEmail}
	cursor, err := c.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

// AdjustItem moves quantity and price by the given deltas with a single
// $inc. The increment happens store-side, never as read-modify-write in
// application code, so concurrent adjustments cannot lose updates.
func (c *cartRepository) AdjustItem(ctx context.Context, itemName, buyerEmail string, quantityDelta int, priceDelta float64) error {
	filter := bson.M{"item_name": itemName, "buyer_email": buyerEmail}
	update := bson.M{
		"$inc": bson.M{
			"quantity": quantityDelta,
			"price":    priceDelta,
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := c.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to adjust cart item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (c *cartRepository) RemoveItem(ctx context.Context, id primitive.ObjectID) error {
	result, err := c.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearForBuyer deletes every line the buyer has. Idempotent: clearing an
// empty cart succeeds with a zero count.
func (c *cartRepository) ClearForBuyer(ctx context.Context, buyerEmail string) (int64, error) {
	result, err := c.collection.DeleteMany(ctx, bson.M{"buyer_email": buyerEmail})
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return result.DeletedCount, nil
}

func (c *cartRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "item_name", Value: 1},
				{Key: "buyer_email", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "buyer_email", Value: 1}},
		},
	}

	_, err := c.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create cart indexes: %w", err)
	}
	return nil
}
