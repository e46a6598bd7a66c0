// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	oauthstatestore "github.com/orma-ai/ormasite/internal/app/store/oauthstate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// ConnectDB establishes the MongoDB connection used by all stores.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		OrmaMongoClient:   client,
		OrmaMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the stores rely on. Index creation is
// idempotent, so running it on every startup is safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.OrmaMongoDatabase

	type spec struct {
		coll    string
		indexes []mongo.IndexModel
	}

	specs := []spec{
		{
			coll: "users",
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
		{
			coll: "case_studies",
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "slug", Value: 1}}},
				{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}}},
			},
		},
		{
			coll: "leads",
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "created_at", Value: -1}}},
				{Keys: bson.D{{Key: "status", Value: 1}}},
			},
		},
		{
			coll: "faqs",
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}}},
			},
		},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.coll).Indexes().CreateMany(ctx, s.indexes); err != nil {
			return fmt.Errorf("create indexes for %s: %w", s.coll, err)
		}
	}

	// OAuth state tokens carry their own unique + TTL indexes.
	if err := oauthstatestore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("create indexes for oauth states: %w", err)
	}

	logger.Info("MongoDB indexes ensured")
	return nil
}
