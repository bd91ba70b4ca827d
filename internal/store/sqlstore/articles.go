package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

const articleColumns = `id, title_en, title_mn, summary_en, summary_mn,
	content_en, content_mn, category, author, published_at, image, tags,
	featured, created_at, updated_at`

type articles struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (content.Article, error) {
	var (
		a           content.Article
		id          int64
		publishedAt string
		tags        string
		featured    int
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(&id,
		&a.Title.EN, &a.Title.MN,
		&a.Summary.EN, &a.Summary.MN,
		&a.Content.EN, &a.Content.MN,
		&a.Category, &a.Author, &publishedAt, &a.Image, &tags,
		&featured, &createdAt, &updatedAt)
	if err != nil {
		return content.Article{}, err
	}
	a.ID = formatID(id)
	a.PublishedAt = decodeTime(publishedAt)
	a.Tags = decodeStrings(tags)
	a.Featured = featured != 0
	a.CreatedAt = decodeTime(createdAt)
	a.UpdatedAt = decodeTime(updatedAt)
	return a, nil
}

func (r *articles) List(ctx context.Context, q content.ArticleQuery) ([]content.Article, content.Page, error) {
	q.Normalize()

	c := &conds{}
	if q.Category != "" {
		c.add("category = ?", q.Category)
	}
	if q.Featured != nil {
		c.add("featured = ?", boolInt(*q.Featured))
	}
	if q.Search != "" {
		c.addSearch(q.Search, "title_en", "title_mn", "content_en", "content_mn")
	}

	total, err := countRows(ctx, r.db, "articles", c)
	if err != nil {
		return nil, content.Page{}, err
	}

	query := "SELECT " + articleColumns + " FROM articles" + c.where() +
		" ORDER BY published_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(c.args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, content.Page{}, err
	}
	defer rows.Close()

	items := []content.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, content.Page{}, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Page{}, err
	}
	return items, content.NewPage(q.Page, q.Limit, total), nil
}

func (r *articles) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM articles WHERE category != '' ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *articles) Get(ctx context.Context, id string) (*content.Article, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE id = ?", n)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articles) Create(ctx context.Context, a *content.Article) error {
	ts := now()
	if a.Tags == nil {
		a.Tags = []string{}
	}
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO articles
		(title_en, title_mn, summary_en, summary_mn, content_en, content_mn,
		 category, author, published_at, image, tags, featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		a.Title.EN, a.Title.MN, a.Summary.EN, a.Summary.MN,
		a.Content.EN, a.Content.MN, a.Category, a.Author,
		encodeTime(a.PublishedAt), a.Image, encodeJSON(a.Tags),
		boolInt(a.Featured), ts, ts).Scan(&id)
	if err != nil {
		return err
	}
	a.ID = formatID(id)
	a.CreatedAt = decodeTime(ts)
	a.UpdatedAt = a.CreatedAt
	return nil
}

func (r *articles) Update(ctx context.Context, id string, u content.ArticleUpdate) (*content.Article, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s := &sets{}
	if u.Title != nil {
		s.add("title_en", u.Title.EN)
		s.add("title_mn", u.Title.MN)
	}
	if u.Summary != nil {
		s.add("summary_en", u.Summary.EN)
		s.add("summary_mn", u.Summary.MN)
	}
	if u.Content != nil {
		s.add("content_en", u.Content.EN)
		s.add("content_mn", u.Content.MN)
	}
	if u.Category != nil {
		s.add("category", *u.Category)
	}
	if u.Author != nil {
		s.add("author", *u.Author)
	}
	if u.PublishedAt != nil {
		s.add("published_at", encodeTime(*u.PublishedAt))
	}
	if u.Image != nil {
		s.add("image", *u.Image)
	}
	if u.Tags != nil {
		s.add("tags", encodeJSON(*u.Tags))
	}
	if u.Featured != nil {
		s.add("featured", boolInt(*u.Featured))
	}
	s.add("updated_at", now())

	res, err := r.db.ExecContext(ctx,
		"UPDATE articles SET "+s.clause()+" WHERE id = ?",
		append(s.args, n)...)
	if err != nil {
		return nil, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *articles) Delete(ctx context.Context, id string) (*content.Article, error) {
	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, _ := parseID(id)
	if _, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", n); err != nil {
		return nil, err
	}
	return a, nil
}
