package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

const mediaColumns = `id, title, description, category, type, file,
	original_name, size, mime_type, tags, created_at, updated_at`

type media struct {
	db *sql.DB
}

func scanMedia(row rowScanner) (content.MediaItem, error) {
	var (
		m         content.MediaItem
		id        int64
		tags      string
		createdAt string
		updatedAt string
	)
	err := row.Scan(&id, &m.Title, &m.Description, &m.Category, &m.Type,
		&m.File, &m.OriginalName, &m.Size, &m.MimeType, &tags,
		&createdAt, &updatedAt)
	if err != nil {
		return content.MediaItem{}, err
	}
	m.ID = formatID(id)
	m.Tags = decodeStrings(tags)
	m.CreatedAt = decodeTime(createdAt)
	m.UpdatedAt = decodeTime(updatedAt)
	return m, nil
}

func (r *media) List(ctx context.Context, q content.MediaQuery) ([]content.MediaItem, content.Page, error) {
	q.Normalize()

	c := &conds{}
	if q.Type != "" {
		c.add("type = ?", q.Type)
	}
	if q.Search != "" {
		c.addSearch(q.Search, "title", "description")
	}

	total, err := countRows(ctx, r.db, "media", c)
	if err != nil {
		return nil, content.Page{}, err
	}

	query := "SELECT " + mediaColumns + " FROM media" + c.where() +
		" ORDER BY created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(c.args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, content.Page{}, err
	}
	defer rows.Close()

	items := []content.MediaItem{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, content.Page{}, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Page{}, err
	}
	return items, content.NewPage(q.Page, q.Limit, total), nil
}

func (r *media) Get(ctx context.Context, id string) (*content.MediaItem, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+mediaColumns+" FROM media WHERE id = ?", n)
	m, err := scanMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *media) Create(ctx context.Context, m *content.MediaItem) error {
	ts := now()
	if m.Tags == nil {
		m.Tags = []string{}
	}
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO media
		(title, description, category, type, file, original_name, size,
		 mime_type, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		m.Title, m.Description, m.Category, m.Type, m.File,
		m.OriginalName, m.Size, m.MimeType, encodeJSON(m.Tags), ts, ts).Scan(&id)
	if err != nil {
		return err
	}
	m.ID = formatID(id)
	m.CreatedAt = decodeTime(ts)
	m.UpdatedAt = m.CreatedAt
	return nil
}

func (r *media) Delete(ctx context.Context, id string) (*content.MediaItem, error) {
	m, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, _ := parseID(id)
	if _, err := r.db.ExecContext(ctx, "DELETE FROM media WHERE id = ?", n); err != nil {
		return nil, err
	}
	return m, nil
}
