package httpapi_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

// fakeStore is an in-memory store.Store used by the handler tests. It
// mirrors the contract: integer-shaped ids, ErrInvalidID for anything
// else, normalized queries, resource-specific default sorts.
type fakeStore struct {
	seq int

	articles *fakeArticles
	events   *fakeEvents
	media    *fakeMedia
	results  *fakeResults
	sponsors *fakeSponsors
}

func newFakeStore() *fakeStore {
	s := &fakeStore{}
	s.articles = &fakeArticles{parent: s}
	s.events = &fakeEvents{parent: s}
	s.media = &fakeMedia{parent: s}
	s.results = &fakeResults{parent: s}
	s.sponsors = &fakeSponsors{parent: s}
	return s
}

func (s *fakeStore) Articles() store.Articles  { return s.articles }
func (s *fakeStore) Events() store.Events      { return s.events }
func (s *fakeStore) Media() store.Media        { return s.media }
func (s *fakeStore) Results() store.Results    { return s.results }
func (s *fakeStore) Sponsors() store.Sponsors  { return s.sponsors }
func (s *fakeStore) Ping(context.Context) error  { return nil }
func (s *fakeStore) Close(context.Context) error { return nil }

func (s *fakeStore) Stats(context.Context) (content.Stats, error) {
	return content.Stats{
		Articles: int64(len(s.articles.items)),
		Events:   int64(len(s.events.items)),
		Media:    int64(len(s.media.items)),
		Results:  int64(len(s.results.items)),
		Sponsors: int64(len(s.sponsors.items)),
	}, nil
}

func (s *fakeStore) nextID() string {
	s.seq++
	return strconv.Itoa(s.seq)
}

func checkFakeID(id string) error {
	if _, err := strconv.Atoi(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

func matchSearch(q string, fields ...string) bool {
	needle := strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, q content.ListQuery) []T {
	start := q.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + q.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

func stampFake(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}

// ---- articles ----

type fakeArticles struct {
	parent *fakeStore
	items  []content.Article
	err    error // forces a store failure when set
}

func (f *fakeArticles) List(_ context.Context, q content.ArticleQuery) ([]content.Article, content.Page, error) {
	if f.err != nil {
		return nil, content.Page{}, f.err
	}
	q.Normalize()

	filtered := []content.Article{}
	for _, a := range f.items {
		if q.Category != "" && a.Category != q.Category {
			continue
		}
		if q.Featured != nil && a.Featured != *q.Featured {
			continue
		}
		if q.Search != "" && !matchSearch(q.Search, a.Title.EN, a.Title.MN, a.Content.EN, a.Content.MN) {
			continue
		}
		filtered = append(filtered, a)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
	})
	page := content.NewPage(q.Page, q.Limit, int64(len(filtered)))
	return paginate(filtered, q.ListQuery), page, nil
}

func (f *fakeArticles) Categories(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, a := range f.items {
		if a.Category != "" && !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeArticles) Get(_ context.Context, id string) (*content.Article, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeArticles) Create(_ context.Context, a *content.Article) error {
	if f.err != nil {
		return f.err
	}
	a.ID = f.parent.nextID()
	stampFake(&a.CreatedAt, &a.UpdatedAt)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	f.items = append(f.items, *a)
	return nil
}

func (f *fakeArticles) Update(ctx context.Context, id string, u content.ArticleUpdate) (*content.Article, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		a := &f.items[i]
		if u.Title != nil {
			a.Title = *u.Title
		}
		if u.Summary != nil {
			a.Summary = *u.Summary
		}
		if u.Content != nil {
			a.Content = *u.Content
		}
		if u.Category != nil {
			a.Category = *u.Category
		}
		if u.Author != nil {
			a.Author = *u.Author
		}
		if u.PublishedAt != nil {
			a.PublishedAt = *u.PublishedAt
		}
		if u.Image != nil {
			a.Image = *u.Image
		}
		if u.Tags != nil {
			a.Tags = *u.Tags
		}
		if u.Featured != nil {
			a.Featured = *u.Featured
		}
		a.UpdatedAt = time.Now().UTC()
		out := *a
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeArticles) Delete(_ context.Context, id string) (*content.Article, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			a := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

// ---- events ----

type fakeEvents struct {
	parent *fakeStore
	items  []content.Event
}

func (f *fakeEvents) List(_ context.Context, q content.EventQuery) ([]content.Event, content.Page, error) {
	q.Normalize()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	filtered := []content.Event{}
	for _, e := range f.items {
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		if q.Upcoming && e.Date.Before(today) {
			continue
		}
		if q.Search != "" && !matchSearch(q.Search, e.Title.EN, e.Title.MN, e.Description.EN, e.Description.MN) {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})
	page := content.NewPage(q.Page, q.Limit, int64(len(filtered)))
	return paginate(filtered, q.ListQuery), page, nil
}

func (f *fakeEvents) Get(_ context.Context, id string) (*content.Event, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			e := f.items[i]
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeEvents) Create(_ context.Context, e *content.Event) error {
	e.ID = f.parent.nextID()
	stampFake(&e.CreatedAt, &e.UpdatedAt)
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeEvents) Update(_ context.Context, id string, u content.EventUpdate) (*content.Event, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		e := &f.items[i]
		if u.Title != nil {
			e.Title = *u.Title
		}
		if u.Description != nil {
			e.Description = *u.Description
		}
		if u.Date != nil {
			e.Date = *u.Date
		}
		if u.TimeOfDay != nil {
			e.TimeOfDay = *u.TimeOfDay
		}
		if u.Location != nil {
			e.Location = *u.Location
		}
		if u.Category != nil {
			e.Category = *u.Category
		}
		if u.Image != nil {
			e.Image = *u.Image
		}
		if u.Participants != nil {
			e.Participants = *u.Participants
		}
		e.UpdatedAt = time.Now().UTC()
		out := *e
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeEvents) Delete(_ context.Context, id string) (*content.Event, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			e := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

// ---- media ----

type fakeMedia struct {
	parent *fakeStore
	items  []content.MediaItem
}

func (f *fakeMedia) List(_ context.Context, q content.MediaQuery) ([]content.MediaItem, content.Page, error) {
	q.Normalize()

	filtered := []content.MediaItem{}
	for _, m := range f.items {
		if q.Type != "" && m.Type != q.Type {
			continue
		}
		if q.Search != "" && !matchSearch(q.Search, m.Title, m.Description) {
			continue
		}
		filtered = append(filtered, m)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	page := content.NewPage(q.Page, q.Limit, int64(len(filtered)))
	return paginate(filtered, q.ListQuery), page, nil
}

func (f *fakeMedia) Get(_ context.Context, id string) (*content.MediaItem, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			m := f.items[i]
			return &m, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeMedia) Create(_ context.Context, m *content.MediaItem) error {
	m.ID = f.parent.nextID()
	stampFake(&m.CreatedAt, &m.UpdatedAt)
	if m.Tags == nil {
		m.Tags = []string{}
	}
	f.items = append(f.items, *m)
	return nil
}

func (f *fakeMedia) Delete(_ context.Context, id string) (*content.MediaItem, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			m := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &m, nil
		}
	}
	return nil, store.ErrNotFound
}

// ---- results ----

type fakeResults struct {
	parent *fakeStore
	items  []content.Result
}

func (f *fakeResults) List(_ context.Context, q content.ResultQuery) ([]content.Result, content.Page, error) {
	q.Normalize()

	filtered := []content.Result{}
	for _, r := range f.items {
		if q.Category != "" && r.Category != q.Category {
			continue
		}
		if q.Year != 0 && r.Year != q.Year {
			continue
		}
		if q.Search != "" && !matchSearch(q.Search, r.Title.EN, r.Title.MN) {
			continue
		}
		filtered = append(filtered, r)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Year != filtered[j].Year {
			return filtered[i].Year > filtered[j].Year
		}
		return filtered[i].Date.After(filtered[j].Date)
	})
	page := content.NewPage(q.Page, q.Limit, int64(len(filtered)))
	return paginate(filtered, q.ListQuery), page, nil
}

func (f *fakeResults) Get(_ context.Context, id string) (*content.Result, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			r := f.items[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeResults) Create(_ context.Context, r *content.Result) error {
	r.ID = f.parent.nextID()
	stampFake(&r.CreatedAt, &r.UpdatedAt)
	if r.Rankings == nil {
		r.Rankings = []content.Ranking{}
	}
	f.items = append(f.items, *r)
	return nil
}

func (f *fakeResults) Update(_ context.Context, id string, u content.ResultUpdate) (*content.Result, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		r := &f.items[i]
		if u.Title != nil {
			r.Title = *u.Title
		}
		if u.Description != nil {
			r.Description = *u.Description
		}
		if u.Year != nil {
			r.Year = *u.Year
		}
		if u.Date != nil {
			r.Date = *u.Date
		}
		if u.Category != nil {
			r.Category = *u.Category
		}
		if u.Rankings != nil {
			r.Rankings = *u.Rankings
		}
		r.UpdatedAt = time.Now().UTC()
		out := *r
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeResults) Delete(_ context.Context, id string) (*content.Result, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			r := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

// ---- sponsors ----

type fakeSponsors struct {
	parent *fakeStore
	items  []content.Sponsor
}

func (f *fakeSponsors) List(_ context.Context, q content.SponsorQuery) ([]content.Sponsor, content.Page, error) {
	q.Normalize()

	filtered := []content.Sponsor{}
	for _, sp := range f.items {
		if q.Tier != "" && sp.Tier != q.Tier {
			continue
		}
		if q.Active != nil && sp.Active != *q.Active {
			continue
		}
		filtered = append(filtered, sp)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Order != filtered[j].Order {
			return filtered[i].Order < filtered[j].Order
		}
		return filtered[i].Name < filtered[j].Name
	})
	page := content.NewPage(q.Page, q.Limit, int64(len(filtered)))
	return paginate(filtered, q.ListQuery), page, nil
}

func (f *fakeSponsors) Get(_ context.Context, id string) (*content.Sponsor, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			sp := f.items[i]
			return &sp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeSponsors) Create(_ context.Context, sp *content.Sponsor) error {
	sp.ID = f.parent.nextID()
	stampFake(&sp.CreatedAt, &sp.UpdatedAt)
	f.items = append(f.items, *sp)
	return nil
}

func (f *fakeSponsors) Update(_ context.Context, id string, u content.SponsorUpdate) (*content.Sponsor, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		sp := &f.items[i]
		if u.Name != nil {
			sp.Name = *u.Name
		}
		if u.Description != nil {
			sp.Description = *u.Description
		}
		if u.Website != nil {
			sp.Website = *u.Website
		}
		if u.Logo != nil {
			sp.Logo = *u.Logo
		}
		if u.Tier != nil {
			sp.Tier = *u.Tier
		}
		if u.Active != nil {
			sp.Active = *u.Active
		}
		if u.Order != nil {
			sp.Order = *u.Order
		}
		sp.UpdatedAt = time.Now().UTC()
		out := *sp
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeSponsors) Delete(_ context.Context, id string) (*content.Sponsor, error) {
	if err := checkFakeID(id); err != nil {
		return nil, err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			sp := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &sp, nil
		}
	}
	return nil, store.ErrNotFound
}
