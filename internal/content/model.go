package content

import (
	"errors"
	"time"
)

// Media item types.
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaOther = "other"
)

// Sponsor tiers, in display precedence order.
var SponsorTiers = []string{"gold", "silver", "bronze", "supporter"}

type Article struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       Bilingual `bson:"title" json:"title"`
	Summary     Bilingual `bson:"summary" json:"summary"`
	Content     Bilingual `bson:"content" json:"content"`
	Category    string    `bson:"category" json:"category"`
	Author      string    `bson:"author" json:"author"`
	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Tags        []string  `bson:"tags" json:"tags"`
	Featured    bool      `bson:"featured" json:"featured"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (a *Article) Validate() error {
	if a.Title.Empty() {
		return errors.New("title is required")
	}
	if a.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

type Event struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        Bilingual `bson:"title" json:"title"`
	Description  Bilingual `bson:"description" json:"description"`
	Date         time.Time `bson:"date" json:"date"`
	TimeOfDay    string    `bson:"time,omitempty" json:"time,omitempty"`
	Location     Bilingual `bson:"location" json:"location"`
	Category     string    `bson:"category" json:"category"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	Participants int       `bson:"participants" json:"participants"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (e *Event) Validate() error {
	if e.Title.Empty() {
		return errors.New("title is required")
	}
	if e.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

type MediaItem struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Category     string    `bson:"category" json:"category"`
	Type         string    `bson:"type" json:"type"`
	File         string    `bson:"file" json:"file"`
	OriginalName string    `bson:"originalName" json:"originalName"`
	Size         int64     `bson:"size" json:"size"`
	MimeType     string    `bson:"mimeType" json:"mimeType"`
	Tags         []string  `bson:"tags" json:"tags"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (m *MediaItem) Validate() error {
	if m.Title == "" {
		return errors.New("title is required")
	}
	if m.File == "" {
		return errors.New("file is required")
	}
	return nil
}

// Ranking is one row of a competition result table, ordered by rank.
type Ranking struct {
	Rank    int      `bson:"rank" json:"rank"`
	Team    string   `bson:"team" json:"team"`
	Score   float64  `bson:"score" json:"score"`
	Members []string `bson:"members,omitempty" json:"members,omitempty"`
	Prize   string   `bson:"prize,omitempty" json:"prize,omitempty"`
}

type Result struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       Bilingual `bson:"title" json:"title"`
	Description Bilingual `bson:"description" json:"description"`
	Year        int       `bson:"year" json:"year"`
	Date        time.Time `bson:"date" json:"date"`
	Category    string    `bson:"category" json:"category"`
	Rankings    []Ranking `bson:"rankings" json:"rankings"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (r *Result) Validate() error {
	if r.Title.Empty() {
		return errors.New("title is required")
	}
	if r.Year == 0 {
		return errors.New("year is required")
	}
	return nil
}

type Sponsor struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	Logo        string    `bson:"logo,omitempty" json:"logo,omitempty"`
	Tier        string    `bson:"tier" json:"tier"`
	Active      bool      `bson:"active" json:"active"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (s *Sponsor) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Tier == "" {
		return errors.New("tier is required")
	}
	return nil
}

// Stats holds per-resource record counts for the admin dashboard.
type Stats struct {
	Articles int64 `json:"articles"`
	Events   int64 `json:"events"`
	Media    int64 `json:"media"`
	Results  int64 `json:"results"`
	Sponsors int64 `json:"sponsors"`
}
