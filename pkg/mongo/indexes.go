package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"everafterpress.ca/stationery/api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Quotes Collection Indexes
	// Index 1: Compound index for the "my quotes" listing, newest first
	{
		CollectionName: quotesCollection,
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_quote_user_created"),
		},
	},
	// Index 2: Status filter for the order-transition path
	{
		CollectionName: quotesCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_quote_status"),
		},
	},
	// Index 3: Quote numbers are user-facing references and must be unique
	{
		CollectionName: quotesCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "quote_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_quote_number_unique"),
		},
	},
}

func EnsureIndexesOnStartup() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	for _, idx := range requiredIndexes {
		collection := GetCollection(idx.CollectionName)
		name, err := collection.Indexes().CreateOne(ctx, idx.IndexModel)
		if err != nil {
			log.Fatalf("Failed to create index on %s: %v", idx.CollectionName, err)
		}
		log.Printf("Ensured index %s on %s", name, idx.CollectionName)
	}
}
