package games

import "time"

// Game represents a catalog entry.
type Game struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	ReleaseDate time.Time `json:"release_date"`
	Developer   string    `json:"developer"`
	CreatedAt   time.Time `json:"created_at"`
}
