package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

const eventColumns = `id, title_en, title_mn, description_en, description_mn,
	date, time_of_day, location_en, location_mn, category, image,
	participants, created_at, updated_at`

type events struct {
	db *sql.DB
}

func scanEvent(row rowScanner) (content.Event, error) {
	var (
		e         content.Event
		id        int64
		date      string
		createdAt string
		updatedAt string
	)
	err := row.Scan(&id,
		&e.Title.EN, &e.Title.MN,
		&e.Description.EN, &e.Description.MN,
		&date, &e.TimeOfDay,
		&e.Location.EN, &e.Location.MN,
		&e.Category, &e.Image, &e.Participants,
		&createdAt, &updatedAt)
	if err != nil {
		return content.Event{}, err
	}
	e.ID = formatID(id)
	e.Date = decodeTime(date)
	e.CreatedAt = decodeTime(createdAt)
	e.UpdatedAt = decodeTime(updatedAt)
	return e, nil
}

func (r *events) List(ctx context.Context, q content.EventQuery) ([]content.Event, content.Page, error) {
	q.Normalize()

	c := &conds{}
	if q.Category != "" {
		c.add("category = ?", q.Category)
	}
	if q.Upcoming {
		c.add("date >= ?", startOfToday())
	}
	if q.Search != "" {
		c.addSearch(q.Search, "title_en", "title_mn", "description_en", "description_mn")
	}

	total, err := countRows(ctx, r.db, "events", c)
	if err != nil {
		return nil, content.Page{}, err
	}

	query := "SELECT " + eventColumns + " FROM events" + c.where() +
		" ORDER BY date ASC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(c.args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, content.Page{}, err
	}
	defer rows.Close()

	items := []content.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, content.Page{}, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Page{}, err
	}
	return items, content.NewPage(q.Page, q.Limit, total), nil
}

func (r *events) Get(ctx context.Context, id string) (*content.Event, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id = ?", n)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *events) Create(ctx context.Context, e *content.Event) error {
	ts := now()
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO events
		(title_en, title_mn, description_en, description_mn, date, time_of_day,
		 location_en, location_mn, category, image, participants, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		e.Title.EN, e.Title.MN, e.Description.EN, e.Description.MN,
		encodeTime(e.Date), e.TimeOfDay, e.Location.EN, e.Location.MN,
		e.Category, e.Image, e.Participants, ts, ts).Scan(&id)
	if err != nil {
		return err
	}
	e.ID = formatID(id)
	e.CreatedAt = decodeTime(ts)
	e.UpdatedAt = e.CreatedAt
	return nil
}

func (r *events) Update(ctx context.Context, id string, u content.EventUpdate) (*content.Event, error) {
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
	if u.Date != nil {
		s.add("date", encodeTime(*u.Date))
	}
	if u.TimeOfDay != nil {
		s.add("time_of_day", *u.TimeOfDay)
	}
	if u.Location != nil {
		s.add("location_en", u.Location.EN)
		s.add("location_mn", u.Location.MN)
	}
	if u.Category != nil {
		s.add("category", *u.Category)
	}
	if u.Image != nil {
		s.add("image", *u.Image)
	}
	if u.Participants != nil {
		s.add("participants", *u.Participants)
	}
	s.add("updated_at", now())

	res, err := r.db.ExecContext(ctx,
		"UPDATE events SET "+s.clause()+" WHERE id = ?",
		append(s.args, n)...)
	if err != nil {
		return nil, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *events) Delete(ctx context.Context, id string) (*content.Event, error) {
	e, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, _ := parseID(id)
	if _, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", n); err != nil {
		return nil, err
	}
	return e, nil
}
