package content

import "time"

// Update payloads carry optional fields; nil means "leave unchanged".
// A bilingual field, when present, replaces the stored {en, mn} object
// whole; partial nested updates are not supported.

type ArticleUpdate struct {
	Title       *Bilingual `json:"title"`
	Summary     *Bilingual `json:"summary"`
	Content     *Bilingual `json:"content"`
	Category    *string    `json:"category"`
	Author      *string    `json:"author"`
	PublishedAt *time.Time `json:"publishedAt"`
	Image       *string    `json:"-"`
	Tags        *[]string  `json:"tags"`
	Featured    *bool      `json:"featured"`
}

type EventUpdate struct {
	Title        *Bilingual `json:"title"`
	Description  *Bilingual `json:"description"`
	Date         *time.Time `json:"date"`
	TimeOfDay    *string    `json:"time"`
	Location     *Bilingual `json:"location"`
	Category     *string    `json:"category"`
	Image        *string    `json:"-"`
	Participants *int       `json:"participants"`
}

type ResultUpdate struct {
	Title       *Bilingual `json:"title"`
	Description *Bilingual `json:"description"`
	Year        *int       `json:"year"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	Rankings    *[]Ranking `json:"rankings"`
}

type SponsorUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Logo        *string `json:"-"`
	Tier        *string `json:"tier"`
	Active      *bool   `json:"active"`
	Order       *int    `json:"order"`
}
