// Package mongostore implements store.Store against MongoDB.
//
// Identifiers are ObjectID hex strings stored as the _id value, so the
// API surface always sees a plain string id regardless of backend.
package mongostore

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *log.Logger

	articles *articles
	events   *events
	media    *media
	results  *results
	sponsors *sponsors
}

func New(client *mongo.Client, db *mongo.Database, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{
		client: client,
		db:     db,
		logger: logger,

		articles: &articles{col: db.Collection("articles")},
		events:   &events{col: db.Collection("events")},
		media:    &media{col: db.Collection("media")},
		results:  &results{col: db.Collection("results")},
		sponsors: &sponsors{col: db.Collection("sponsors")},
	}

	if err := s.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureIndexes backs the per-resource default sorts and equality
// filters. Failures are logged and returned, matching startup-fatal
// handling in the caller.
func (s *Store) ensureIndexes(ctx context.Context) error {
	byCollection := map[*mongo.Collection][]mongo.IndexModel{
		s.articles.col: {
			{Keys: bson.D{{Key: "publishedAt", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "featured", Value: 1}}},
		},
		s.events.col: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		s.media.col: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "type", Value: 1}}},
		},
		s.results.col: {
			{Keys: bson.D{{Key: "year", Value: -1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		s.sponsors.col: {
			{Keys: bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "active", Value: 1}}},
		},
	}

	for col, indexes := range byCollection {
		if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
			s.logger.Printf("failed to create indexes on %s: %v", col.Name(), err)
			return err
		}
	}
	return nil
}

func (s *Store) Articles() store.Articles { return s.articles }
func (s *Store) Events() store.Events     { return s.events }
func (s *Store) Media() store.Media       { return s.media }
func (s *Store) Results() store.Results   { return s.results }
func (s *Store) Sponsors() store.Sponsors { return s.sponsors }

func (s *Store) Stats(ctx context.Context) (content.Stats, error) {
	var stats content.Stats
	counts := []struct {
		col *mongo.Collection
		dst *int64
	}{
		{s.articles.col, &stats.Articles},
		{s.events.col, &stats.Events},
		{s.media.col, &stats.Media},
		{s.results.col, &stats.Results},
		{s.sponsors.col, &stats.Sponsors},
	}
	for _, c := range counts {
		n, err := c.col.CountDocuments(ctx, bson.M{})
		if err != nil {
			return content.Stats{}, fmt.Errorf("count %s: %w", c.col.Name(), err)
		}
		*c.dst = n
	}
	return stats, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// newID mints an identifier in the shape the document store natively
// uses, rendered as the canonical string the API emits.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// checkID validates identifier syntax before it reaches a query.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	*createdAt = now
	*updatedAt = now
}

// findPage runs the count + find pair behind every list endpoint and
// wraps the result in the pagination envelope.
func findPage[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D, q content.ListQuery) ([]T, content.Page, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, content.Page{}, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, content.Page{}, err
	}

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, content.Page{}, err
	}
	return items, content.NewPage(q.Page, q.Limit, total), nil
}

// getOne fetches a single record by its canonical string id.
func getOne[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var item T
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// updateOne applies a $set document and returns the updated record.
func updateOne[T any](ctx context.Context, col *mongo.Collection, id string, set bson.M) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	set["updatedAt"] = time.Now().UTC().Truncate(time.Millisecond)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item T
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// deleteOne removes a record and returns it so callers can clean up
// any uploaded file it referenced.
func deleteOne[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var item T
	err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
