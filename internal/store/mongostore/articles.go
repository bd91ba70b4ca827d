package mongostore

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"olympiad-cms/internal/content"
)

type articles struct {
	col *mongo.Collection
}

func (a *articles) List(ctx context.Context, q content.ArticleQuery) ([]content.Article, content.Page, error) {
	q.Normalize()

	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}
	if q.Search != "" {
		filter["$or"] = searchOr(q.Search,
			"title.en", "title.mn", "content.en", "content.mn")["$or"]
	}

	sortBy := bson.D{{Key: "publishedAt", Value: -1}}
	return findPage[content.Article](ctx, a.col, filter, sortBy, q.ListQuery)
}

func (a *articles) Categories(ctx context.Context) ([]string, error) {
	values, err := a.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (a *articles) Get(ctx context.Context, id string) (*content.Article, error) {
	return getOne[content.Article](ctx, a.col, id)
}

func (a *articles) Create(ctx context.Context, art *content.Article) error {
	art.ID = newID()
	stamp(&art.CreatedAt, &art.UpdatedAt)
	if art.Tags == nil {
		art.Tags = []string{}
	}
	_, err := a.col.InsertOne(ctx, art)
	return err
}

func (a *articles) Update(ctx context.Context, id string, u content.ArticleUpdate) (*content.Article, error) {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Summary != nil {
		set["summary"] = *u.Summary
	}
	if u.Content != nil {
		set["content"] = *u.Content
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Author != nil {
		set["author"] = *u.Author
	}
	if u.PublishedAt != nil {
		set["publishedAt"] = *u.PublishedAt
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Tags != nil {
		set["tags"] = *u.Tags
	}
	if u.Featured != nil {
		set["featured"] = *u.Featured
	}
	return updateOne[content.Article](ctx, a.col, id, set)
}

func (a *articles) Delete(ctx context.Context, id string) (*content.Article, error) {
	return deleteOne[content.Article](ctx, a.col, id)
}
