package journal

// CreateEntryRequest is the payload for creating an entry. Mood and tags
// are optional.
type CreateEntryRequest struct {
	Title   string   `json:"title" validate:"required" example:"First day"`
	Content string   `json:"content" validate:"required" example:"Started the new job today."`
	Mood    *string  `json:"mood,omitempty" example:"excited"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdateEntryRequest is the payload for a partial update. Nil fields keep
// their stored values (merge semantics).
type UpdateEntryRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Mood    *string  `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// DeletedEntry is the minimal projection returned after a deletion.
type DeletedEntry struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
