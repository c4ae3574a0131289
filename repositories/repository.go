package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the operation set controllers depend on. Repository is the
// mongo-backed implementation; tests substitute stubs.
type Store[T any] interface {
	FindAll(ctx context.Context, filter bson.M, opts FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error)
	UpdateOne(ctx context.Context, filter bson.M, update interface{}, upsert bool) (*mongo.UpdateResult, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update interface{}) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, filter bson.M, update interface{}) (int64, error)
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Exists(ctx context.Context, filter bson.M) (bool, error)
	Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error)
}

// Repository is the generic data access layer: a fixed operation set over a
// single collection. It never interprets driver errors; validation, cast and
// duplicate-key failures propagate unchanged for the controllers to classify.
type Repository[T any] struct {
	coll *mongo.Collection
}

var _ Store[struct{}] = (*Repository[struct{}])(nil)

func NewRepository[T any](coll *mongo.Collection) *Repository[T] {
	return &Repository[T]{coll: coll}
}

// FindOptions windows and shapes a FindAll. A zero Limit means no window:
// the full matching set is returned.
type FindOptions struct {
	Select bson.M
	Sort   bson.D
	Skip   int64
	Limit  int64
}

func (r *Repository[T]) FindAll(ctx context.Context, filter bson.M, opts FindOptions) ([]T, error) {
	findOpts := options.Find()
	if opts.Select != nil {
		findOpts.SetProjection(opts.Select)
	}
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// FindOne returns mongo.ErrNoDocuments when nothing matches; callers
// translate that into a 404.
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *Repository[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid, nil
	}
	return primitive.NilObjectID, nil
}

func (r *Repository[T]) UpdateOne(ctx context.Context, filter bson.M, update interface{}, upsert bool) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
}

func (r *Repository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update interface{}) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (r *Repository[T]) UpdateMany(ctx context.Context, filter bson.M, update interface{}) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *Repository[T]) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *Repository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

func (r *Repository[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository[T]) Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error) {
	return r.coll.Distinct(ctx, field, filter)
}
