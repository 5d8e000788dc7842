package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MembersCollection is the collection holding member documents.
const MembersCollection = "members"

// EnsureIndexes creates the indexes the service relies on. The unique
// email index is the sole arbiter of duplicate signups; the service
// never pre-checks before inserting.
func EnsureIndexes(ctx context.Context, db *Mongo, logger *zap.Logger) error {
	if db == nil || db.Database == nil {
		logger.Warn("no mongo database available; skipping index creation")
		return nil
	}

	members := db.Collection(MembersCollection)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	names, err := members.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create member indexes: %w", err)
	}
	logger.Info("ensured member indexes", zap.Strings("indexes", names))
	return nil
}
