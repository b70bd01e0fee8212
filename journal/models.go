package journal

import "time"

// Entry represents a journal entry. Owner-identifying fields (username,
// email) are populated only by the listing queries that join users.
type Entry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      *string   `json:"mood"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
}
