package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

const sponsorColumns = `id, name, description, website, logo, tier,
	active, display_order, created_at, updated_at`

type sponsors struct {
	db *sql.DB
}

func scanSponsor(row rowScanner) (content.Sponsor, error) {
	var (
		sp        content.Sponsor
		id        int64
		active    int
		createdAt string
		updatedAt string
	)
	err := row.Scan(&id, &sp.Name, &sp.Description, &sp.Website, &sp.Logo,
		&sp.Tier, &active, &sp.Order, &createdAt, &updatedAt)
	if err != nil {
		return content.Sponsor{}, err
	}
	sp.ID = formatID(id)
	sp.Active = active != 0
	sp.CreatedAt = decodeTime(createdAt)
	sp.UpdatedAt = decodeTime(updatedAt)
	return sp, nil
}

func (r *sponsors) List(ctx context.Context, q content.SponsorQuery) ([]content.Sponsor, content.Page, error) {
	q.Normalize()

	c := &conds{}
	if q.Tier != "" {
		c.add("tier = ?", q.Tier)
	}
	if q.Active != nil {
		c.add("active = ?", boolInt(*q.Active))
	}

	total, err := countRows(ctx, r.db, "sponsors", c)
	if err != nil {
		return nil, content.Page{}, err
	}

	query := "SELECT " + sponsorColumns + " FROM sponsors" + c.where() +
		" ORDER BY display_order ASC, name ASC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(c.args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, content.Page{}, err
	}
	defer rows.Close()

	items := []content.Sponsor{}
	for rows.Next() {
		sp, err := scanSponsor(rows)
		if err != nil {
			return nil, content.Page{}, err
		}
		items = append(items, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, content.Page{}, err
	}
	return items, content.NewPage(q.Page, q.Limit, total), nil
}

func (r *sponsors) Get(ctx context.Context, id string) (*content.Sponsor, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sponsorColumns+" FROM sponsors WHERE id = ?", n)
	sp, err := scanSponsor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *sponsors) Create(ctx context.Context, sp *content.Sponsor) error {
	ts := now()
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO sponsors
		(name, description, website, logo, tier, active, display_order,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		sp.Name, sp.Description, sp.Website, sp.Logo, sp.Tier,
		boolInt(sp.Active), sp.Order, ts, ts).Scan(&id)
	if err != nil {
		return err
	}
	sp.ID = formatID(id)
	sp.CreatedAt = decodeTime(ts)
	sp.UpdatedAt = sp.CreatedAt
	return nil
}

func (r *sponsors) Update(ctx context.Context, id string, u content.SponsorUpdate) (*content.Sponsor, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s := &sets{}
	if u.Name != nil {
		s.add("name", *u.Name)
	}
	if u.Description != nil {
		s.add("description", *u.Description)
	}
	if u.Website != nil {
		s.add("website", *u.Website)
	}
	if u.Logo != nil {
		s.add("logo", *u.Logo)
	}
	if u.Tier != nil {
		s.add("tier", *u.Tier)
	}
	if u.Active != nil {
		s.add("active", boolInt(*u.Active))
	}
	if u.Order != nil {
		s.add("display_order", *u.Order)
	}
	s.add("updated_at", now())

	res, err := r.db.ExecContext(ctx,
		"UPDATE sponsors SET "+s.clause()+" WHERE id = ?",
		append(s.args, n)...)
	if err != nil {
		return nil, err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, store.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *sponsors) Delete(ctx context.Context, id string) (*content.Sponsor, error) {
	sp, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, _ := parseID(id)
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sponsors WHERE id = ?", n); err != nil {
		return nil, err
	}
	return sp, nil
}
