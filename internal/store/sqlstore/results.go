package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

const resultColumns = `id, title_en, title_mn, description_en, description_mn,
	year, date, category, rankings, created_at, updated_at`

type results struct {
	db *sql.DB
}

func scanResult(row rowScanner) (content.Result, error) {
	var (
		res       content.Result
		id        int64
		date      string
		rankings  string
		createdAt string
		updatedAt string
	)
	err := row.Scan(&id,
		&res.Title.EN, &res.Title.MN,
		&res.Description.EN, &res.Description.MN,
		&res.Year, &date, &res.Category, &rankings,
		&createdAt, &updatedAt)
	if err != nil {
		return content.Result{}, err
	}
	res.ID = formatID(id)
	res.Date = decodeTime(date)
	res.Rankings = []content.Ranking{}
	_ = json.Unmarshal([]byte(rankings), &res.Rankings)
	res.CreatedAt = decodeTime(createdAt)
	res.UpdatedAt = decodeTime(updatedAt)
	return res, nil
}

func (r *results) List(ctx context.Context, q content.ResultQuery) ([]content.Result, content.Page, error) {
	q.Normalize()

	c := &conds{}
	if q.Category != "" {
		c.add("category = ?", q.Category)
	}
	if q.Year != 0 {
		c.add("year = ?", q.Year)
	}
	if q.Search != "" {
		c.addSearch(q.Search, "title_en", "title_mn")
	}

	total, err := countRows(ctx, r.db, "results", c)
	if err != nil {
		return nil, content.Page{}, err
	}

	query := "SELECT " + resultColumns + " FROM results" + c.where() +
		" ORDER BY year DESC, date DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(c.args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, content.Page{}, err
	}
	defer rows.Close()

	items := []content.Result{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, content.Page{}, err
		}
		items = append(items, res)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Page{}, err
	}
	return items, content.NewPage(q.Page, q.Limit, total), nil
}

func (r *results) Get(ctx context.Context, id string) (*content.Result, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+resultColumns+" FROM results WHERE id = ?", n)
	res, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *results) Create(ctx context.Context, res *content.Result) error {
	ts := now()
	if res.Rankings == nil {
		res.Rankings = []content.Ranking{}
	}
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO results
		(title_en, title_mn, description_en, description_mn, year, date,
		 category, rankings, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		res.Title.EN, res.Title.MN, res.Description.EN, res.Description.MN,
		res.Year, encodeTime(res.Date), res.Category,
		encodeJSON(res.Rankings), ts, ts).Scan(&id)
	if err != nil {
		return err
	}
	res.ID = formatID(id)
	res.CreatedAt = decodeTime(ts)
	res.UpdatedAt = res.CreatedAt
	return nil
}

func (r *results) Update(ctx context.Context, id string, u content.ResultUpdate) (*content.Result, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s := &sets{}
	if u.Title != nil {
		s.add("title_en", u.Title.EN)
		s.add("title_mn", u.Title.MN)
	}
	if u.Description != nil {
		s.add("description_en", u.Description.EN)
		s.add("description_mn", u.Description.MN)
	}
	if u.Year != nil {
		s.add("year", *u.Year)
	}
	if u.Date != nil {
		s.add("date", encodeTime(*u.Date))
	}
	if u.Category != nil {
		s.add("category", *u.Category)
	}
	if u.Rankings != nil {
		s.add("rankings", encodeJSON(*u.Rankings))
	}
	s.add("updated_at", now())

	res, err := r.db.ExecContext(ctx,
		"UPDATE results SET "+s.clause()+" WHERE id = ?",
		append(s.args, n)...)
	if err != nil {
		return nil, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *results) Delete(ctx context.Context, id string) (*content.Result, error) {
	res, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, _ := parseID(id)
	if _, err := r.db.ExecContext(ctx, "DELETE FROM results WHERE id = ?", n); err != nil {
		return nil, err
	}
	return res, nil
}
