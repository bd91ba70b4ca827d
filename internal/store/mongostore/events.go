package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"olympiad-cms/internal/content"
)

type events struct {
	col *mongo.Collection
}

func (e *events) List(ctx context.Context, q content.EventQuery) ([]content.Event, content.Page, error) {
	q.Normalize()

	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Upcoming {
		filter["date"] = bson.M{"$gte": startOfToday()}
	}
	if q.Search != "" {
		filter["$or"] = searchOr(q.Search,
			"title.en", "title.mn", "description.en", "description.mn")["$or"]
	}

	sortBy := bson.D{{Key: "date", Value: 1}}
	return findPage[content.Event](ctx, e.col, filter, sortBy, q.ListQuery)
}

func (e *events) Get(ctx context.Context, id string) (*content.Event, error) {
	return getOne[content.Event](ctx, e.col, id)
}

func (e *events) Create(ctx context.Context, ev *content.Event) error {
	ev.ID = newID()
	stamp(&ev.CreatedAt, &ev.UpdatedAt)
	_, err := e.col.InsertOne(ctx, ev)
	return err
}

func (e *events) Update(ctx context.Context, id string, u content.EventUpdate) (*content.Event, error) {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.TimeOfDay != nil {
		set["time"] = *u.TimeOfDay
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Participants != nil {
		set["participants"] = *u.Participants
	}
	return updateOne[content.Event](ctx, e.col, id, set)
}

func (e *events) Delete(ctx context.Context, id string) (*content.Event, error) {
	return deleteOne[content.Event](ctx, e.col, id)
}
