// Package sqlstore implements store.Store against a libsql/sqld
// database (sqlite dialect) through database/sql.
//
// Bilingual fields map to paired *_en/*_mn columns; list-valued fields
// (tags, rankings, members) are stored as JSON text. Identifiers are
// integer primary keys rendered as strings at the API boundary.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL DEFAULT '',
	title_mn TEXT NOT NULL DEFAULT '',
	summary_en TEXT NOT NULL DEFAULT '',
	summary_mn TEXT NOT NULL DEFAULT '',
	content_en TEXT NOT NULL DEFAULT '',
	content_mn TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	author TEXT NOT NULL DEFAULT '',
	published_at TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	featured INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL DEFAULT '',
	title_mn TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_mn TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL DEFAULT '',
	time_of_day TEXT NOT NULL DEFAULT '',
	location_en TEXT NOT NULL DEFAULT '',
	location_mn TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT '',
	participants INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS media (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT '',
	file TEXT NOT NULL DEFAULT '',
	original_name TEXT NOT NULL DEFAULT '',
	size INTEGER NOT NULL DEFAULT 0,
	mime_type TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL DEFAULT '',
	title_mn TEXT NOT NULL DEFAULT '',
	description_en TEXT NOT NULL DEFAULT '',
	description_mn TEXT NOT NULL DEFAULT '',
	year INTEGER NOT NULL DEFAULT 0,
	date TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	rankings TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS sponsors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	logo TEXT NOT NULL DEFAULT '',
	tier TEXT NOT NULL DEFAULT '',
	active INTEGER NOT NULL DEFAULT 1,
	display_order INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

type Store struct {
	db     *sql.DB
	logger *log.Logger

	articles *articles
	events   *events
	media    *media
	results  *results
	sponsors *sponsors
}

func New(ctx context.Context, db *sql.DB, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{db: db, logger: logger}
	s.articles = &articles{db: db}
	s.events = &events{db: db}
	s.media = &media{db: db}
	s.results = &results{db: db}
	s.sponsors = &sponsors{db: db}

	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			s.logger.Printf("failed to apply schema statement: %v", err)
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Articles() store.Articles { return s.articles }
func (s *Store) Events() store.Events     { return s.events }
func (s *Store) Media() store.Media       { return s.media }
func (s *Store) Results() store.Results   { return s.results }
func (s *Store) Sponsors() store.Sponsors { return s.sponsors }

func (s *Store) Stats(ctx context.Context) (content.Stats, error) {
	var stats content.Stats
	counts := []struct {
		table string
		dst   *int64
	}{
		{"articles", &stats.Articles},
		{"events", &stats.Events},
		{"media", &stats.Media},
		{"results", &stats.Results},
		{"sponsors", &stats.Sponsors},
	}
	for _, c := range counts {
		row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table)
		if err := row.Scan(c.dst); err != nil {
			return content.Stats{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return stats, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

// conds accumulates WHERE fragments and their bind arguments.
type conds struct {
	clauses []string
	args    []any
}

func (c *conds) add(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// addSearch adds a case-insensitive substring OR-match over columns.
func (c *conds) addSearch(q string, columns ...string) {
	likes := make([]string, 0, len(columns))
	needle := "%" + strings.ToLower(q) + "%"
	for _, col := range columns {
		likes = append(likes, "lower("+col+") LIKE ?")
		c.args = append(c.args, needle)
	}
	c.clauses = append(c.clauses, "("+strings.Join(likes, " OR ")+")")
}

func (c *conds) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// sets accumulates UPDATE assignments.
type sets struct {
	assign []string
	args   []any
}

func (s *sets) add(column string, value any) {
	s.assign = append(s.assign, column+" = ?")
	s.args = append(s.args, value)
}

func (s *sets) clause() string {
	return strings.Join(s.assign, ", ")
}

func countRows(ctx context.Context, db *sql.DB, table string, c *conds) (int64, error) {
	var total int64
	row := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+c.where(), c.args...)
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// parseID maps the canonical string id onto the integer key. Malformed
// ids are indistinguishable from missing rows here, matching the
// store's native not-found signaling.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n < 1 {
		return 0, store.ErrNotFound
	}
	return n, nil
}

func formatID(n int64) string {
	return strconv.FormatInt(n, 10)
}

// timeLayout is fixed-width UTC so stored values order
// lexicographically and date comparisons can happen in SQL.
const timeLayout = "2006-01-02T15:04:05.000Z"

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return time.Time{}
		}
	}
	return t
}

func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	_ = json.Unmarshal([]byte(s), &out)
	return out
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func now() string {
	return encodeTime(time.Now())
}

// startOfToday is the "upcoming" boundary; encoded times order
// lexicographically, so the comparison happens in SQL.
func startOfToday() string {
	n := time.Now().UTC()
	return encodeTime(time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC))
}
