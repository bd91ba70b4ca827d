package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"olympiad-cms/internal/content"
)

type results struct {
	col *mongo.Collection
}

func (r *results) List(ctx context.Context, q content.ResultQuery) ([]content.Result, content.Page, error) {
	q.Normalize()

	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Year != 0 {
		filter["year"] = q.Year
	}
	if q.Search != "" {
		filter["$or"] = searchOr(q.Search, "title.en", "title.mn")["$or"]
	}

	sortBy := bson.D{{Key: "year", Value: -1}, {Key: "date", Value: -1}}
	return findPage[content.Result](ctx, r.col, filter, sortBy, q.ListQuery)
}

func (r *results) Get(ctx context.Context, id string) (*content.Result, error) {
	return getOne[content.Result](ctx, r.col, id)
}

func (r *results) Create(ctx context.Context, res *content.Result) error {
	res.ID = newID()
	stamp(&res.CreatedAt, &res.UpdatedAt)
	if res.Rankings == nil {
		res.Rankings = []content.Ranking{}
	}
	_, err := r.col.InsertOne(ctx, res)
	return err
}

func (r *results) Update(ctx context.Context, id string, u content.ResultUpdate) (*content.Result, error) {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Year != nil {
		set["year"] = *u.Year
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Rankings != nil {
		set["rankings"] = *u.Rankings
	}
	return updateOne[content.Result](ctx, r.col, id, set)
}

func (r *results) Delete(ctx context.Context, id string) (*content.Result, error) {
	return deleteOne[content.Result](ctx, r.col, id)
}
