package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solestyle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemExists   = errors.New("item already in cart")
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{collection: db.Collection("carts")}
}

func (r *CartRepository) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart

	filter := bson.M{"userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&cart)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// GetOrCreate returns the user's cart, inserting an empty one if none
// exists. The upsert makes concurrent first reads converge on a single
// document.
func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	now := time.Now()

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"items":     []models.CartItem{},
			"createdAt": now,
			"updatedAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cart models.Cart
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart); err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	return &cart, nil
}

// IncrementItem bumps the quantity of an existing line item by one.
// Reports whether a matching line item was found.
func (r *CartRepository) IncrementItem(ctx context.Context, userID, productID string) (bool, error) {
	filter := bson.M{
		"userId":          userID,
		"items.productId": productID,
	}
	update := bson.M{
		"$inc": bson.M{"items.$.quantity": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to increment item: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// PushItem appends a new line item with quantity 1, creating the cart
// on first use. The $ne guard keeps productId unique within a cart: a
// concurrent push of the same product misses the filter, falls into
// the upsert, and trips the unique userId index instead of appending a
// duplicate. Callers see that race as ErrItemExists and should retry
// the increment path.
func (r *CartRepository) PushItem(ctx context.Context, userID, productID string) error {
	now := time.Now()

	filter := bson.M{
		"userId":          userID,
		"items.productId": bson.M{"$ne": productID},
	}
	update := bson.M{
		"$push":        bson.M{"items": models.CartItem{ProductID: productID, Quantity: 1}},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrItemExists
		}
		return fmt.Errorf("failed to add item: %w", err)
	}

	return nil
}

// PullItem removes the line item matching productID; absent items are
// a no-op. Fails with ErrCartNotFound when the user has no cart.
func (r *CartRepository) PullItem(ctx context.Context, userID, productID string) error {
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"productId": productID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}

	return nil
}
