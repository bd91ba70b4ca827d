package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"olympiad-cms/internal/content"
)

type sponsors struct {
	col *mongo.Collection
}

func (s *sponsors) List(ctx context.Context, q content.SponsorQuery) ([]content.Sponsor, content.Page, error) {
	q.Normalize()

	filter := bson.M{}
	if q.Tier != "" {
		filter["tier"] = q.Tier
	}
	if q.Active != nil {
		filter["active"] = *q.Active
	}

	sortBy := bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}
	return findPage[content.Sponsor](ctx, s.col, filter, sortBy, q.ListQuery)
}

func (s *sponsors) Get(ctx context.Context, id string) (*content.Sponsor, error) {
	return getOne[content.Sponsor](ctx, s.col, id)
}

func (s *sponsors) Create(ctx context.Context, sp *content.Sponsor) error {
	sp.ID = newID()
	stamp(&sp.CreatedAt, &sp.UpdatedAt)
	_, err := s.col.InsertOne(ctx, sp)
	return err
}

func (s *sponsors) Update(ctx context.Context, id string, u content.SponsorUpdate) (*content.Sponsor, error) {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Website != nil {
		set["website"] = *u.Website
	}
	if u.Logo != nil {
		set["logo"] = *u.Logo
	}
	if u.Tier != nil {
		set["tier"] = *u.Tier
	}
	if u.Active != nil {
		set["active"] = *u.Active
	}
	if u.Order != nil {
		set["order"] = *u.Order
	}
	return updateOne[content.Sponsor](ctx, s.col, id, set)
}

func (s *sponsors) Delete(ctx context.Context, id string) (*content.Sponsor, error) {
	return deleteOne[content.Sponsor](ctx, s.col, id)
}
