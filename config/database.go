package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database wraps the Mongo client and the application database. It is
// constructed once in main and handed to every controller; nothing in the
// codebase reaches for a package-level handle.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewDatabase() *Database {
	return &Database{}
}

// Connect dials MongoDB and pings it. Safe to call once at startup.
func (d *Database) Connect(ctx context.Context, uri, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	d.client = client
	d.db = client.Database(name)
	return nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Close(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the write paths rely on. Duplicate
// slug/email/phone inserts surface as driver duplicate-key errors.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"products":      {{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique}},
		"categories":    {{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique}},
		"subcategories": {{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique}},
		"admins":        {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		"riders": {
			{Keys: bson.D{{Key: "phone", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		},
	}

	for coll, models := range indexes {
		if _, err := d.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
