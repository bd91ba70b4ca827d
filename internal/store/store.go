// Package store defines the storage contract the HTTP layer talks to.
// Two implementations exist: mongostore (document) and sqlstore
// (relational, libsql); one is selected by configuration at startup.
package store

import (
	"context"
	"errors"

	"olympiad-cms/internal/content"
)

var (
	// ErrNotFound means no record exists for the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID means the identifier is malformed for the backing
	// store. Only the document store reports this; the relational
	// store lets malformed ids fall through to ErrNotFound.
	ErrInvalidID = errors.New("invalid id")
)

type Articles interface {
	List(ctx context.Context, q content.ArticleQuery) ([]content.Article, content.Page, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*content.Article, error)
	Create(ctx context.Context, a *content.Article) error
	Update(ctx context.Context, id string, u content.ArticleUpdate) (*content.Article, error)
	Delete(ctx context.Context, id string) (*content.Article, error)
}

type Events interface {
	List(ctx context.Context, q content.EventQuery) ([]content.Event, content.Page, error)
	Get(ctx context.Context, id string) (*content.Event, error)
	Create(ctx context.Context, e *content.Event) error
	Update(ctx context.Context, id string, u content.EventUpdate) (*content.Event, error)
	Delete(ctx context.Context, id string) (*content.Event, error)
}

// Media has no Update: the REST surface exposes no PUT for media items.
type Media interface {
	List(ctx context.Context, q content.MediaQuery) ([]content.MediaItem, content.Page, error)
	Get(ctx context.Context, id string) (*content.MediaItem, error)
	Create(ctx context.Context, m *content.MediaItem) error
	Delete(ctx context.Context, id string) (*content.MediaItem, error)
}

type Results interface {
	List(ctx context.Context, q content.ResultQuery) ([]content.Result, content.Page, error)
	Get(ctx context.Context, id string) (*content.Result, error)
	Create(ctx context.Context, r *content.Result) error
	Update(ctx context.Context, id string, u content.ResultUpdate) (*content.Result, error)
	Delete(ctx context.Context, id string) (*content.Result, error)
}

type Sponsors interface {
	List(ctx context.Context, q content.SponsorQuery) ([]content.Sponsor, content.Page, error)
	Get(ctx context.Context, id string) (*content.Sponsor, error)
	Create(ctx context.Context, s *content.Sponsor) error
	Update(ctx context.Context, id string, u content.SponsorUpdate) (*content.Sponsor, error)
	Delete(ctx context.Context, id string) (*content.Sponsor, error)
}

// Store aggregates the per-resource stores plus cross-cutting ops.
type Store interface {
	Articles() Articles
	Events() Events
	Media() Media
	Results() Results
	Sponsors() Sponsors

	Stats(ctx context.Context) (content.Stats, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
