package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"olympiad-cms/internal/content"
)

type media struct {
	col *mongo.Collection
}

func (m *media) List(ctx context.Context, q content.MediaQuery) ([]content.MediaItem, content.Page, error) {
	q.Normalize()

	filter := bson.M{}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if q.Search != "" {
		filter["$or"] = searchOr(q.Search, "title", "description")["$or"]
	}

	sortBy := bson.D{{Key: "createdAt", Value: -1}}
	return findPage[content.MediaItem](ctx, m.col, filter, sortBy, q.ListQuery)
}

func (m *media) Get(ctx context.Context, id string) (*content.MediaItem, error) {
	return getOne[content.MediaItem](ctx, m.col, id)
}

func (m *media) Create(ctx context.Context, item *content.MediaItem) error {
	item.ID = newID()
	stamp(&item.CreatedAt, &item.UpdatedAt)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	_, err := m.col.InsertOne(ctx, item)
	return err
}

func (m *media) Delete(ctx context.Context, id string) (*content.MediaItem, error) {
	return deleteOne[content.MediaItem](ctx, m.col, id)
}
