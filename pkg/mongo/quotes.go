package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"everafterpress.ca/stationery/api/pkg/models"
)

const quotesCollection = "quotes"

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrQuoteNotOrderable = errors.New("quote is not in saved status")
	ErrQuoteNotDeletable = errors.New("ordered quotes cannot be deleted")
)

// CreateQuote persists a freshly built quote snapshot. The document is
// written once; only the status field ever changes afterwards.
func CreateQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	collection := GetCollection(quotesCollection)

	result, err := collection.InsertOne(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quote: %w", err)
	}
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		quote.ID = oid
	}
	return quote, nil
}

func GetQuoteByID(ctx context.Context, id bson.ObjectID) (*models.Quote, error) {
	collection := GetCollection(quotesCollection)

	var quote models.Quote
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// GetQuotesByUser returns one page of a user's quotes, newest first,
// along with the total count for pagination headers.
func GetQuotesByUser(ctx context.Context, userID string, page, limit int) ([]models.Quote, int64, error) {
	collection := GetCollection(quotesCollection)
	filter := bson.M{"user_id": userID}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, 0, fmt.Errorf("failed to decode quotes: %w", err)
	}
	return quotes, total, nil
}

// MarkQuoteOrdered performs the saved -> ordered transition. The status
// filter makes the transition atomic: an already-ordered quote is left
// untouched and reported as not orderable.
func MarkQuoteOrdered(ctx context.Context, id bson.ObjectID) (*models.Quote, error) {
	collection := GetCollection(quotesCollection)

	filter := bson.M{"_id": id, "status": models.QuoteStatusSaved}
	update := bson.M{"$set": bson.M{
		"status":     models.QuoteStatusOrdered,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var quote models.Quote
	err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&quote)
	if err == nil {
		return &quote, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	// Distinguish a missing quote from one already ordered.
	if _, lookupErr := GetQuoteByID(ctx, id); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, ErrQuoteNotOrderable
}

// DeleteQuote removes a saved quote. Ordered quotes are retained as the
// record backing the checkout deposit line.
func DeleteQuote(ctx context.Context, id bson.ObjectID) error {
	collection := GetCollection(quotesCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id, "status": models.QuoteStatusSaved})
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	if result.DeletedCount == 1 {
		return nil
	}

	if _, lookupErr := GetQuoteByID(ctx, id); lookupErr != nil {
		return lookupErr
	}
	return ErrQuoteNotDeletable
}
