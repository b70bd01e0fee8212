package games

import (
	"time"

	"github.com/user/journal-go/apperror"
)

// dateLayout is the wire format for release dates.
const dateLayout = "2006-01-02"

// CreateGameRequest is the payload for adding a game. All fields are
// required; the release date uses YYYY-MM-DD.
type CreateGameRequest struct {
	Title       string `json:"title" validate:"required" example:"Hollow Knight"`
	Genre       string `json:"genre" validate:"required" example:"Metroidvania"`
	ReleaseDate string `json:"release_date" validate:"required" example:"2017-02-24"`
	Developer   string `json:"developer" validate:"required" example:"Team Cherry"`
}

// ParseReleaseDate validates and parses the release date field.
func (r CreateGameRequest) ParseReleaseDate() (time.Time, error) {
	t, err := time.Parse(dateLayout, r.ReleaseDate)
	if err != nil {
		return time.Time{}, apperror.NewValidationError("Invalid release_date, expected YYYY-MM-DD", err)
	}
	return t, nil
}

// UpdateGameRequest is the payload for a partial update. Nil fields keep
// their stored values.
type UpdateGameRequest struct {
	Title       *string `json:"title,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	ReleaseDate *string `json:"release_date,omitempty"`
	Developer   *string `json:"developer,omitempty"`
}

// ParseReleaseDate parses the optional release date. It returns nil when
// the field was omitted.
func (r UpdateGameRequest) ParseReleaseDate() (*time.Time, error) {
	if r.ReleaseDate == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *r.ReleaseDate)
	if err != nil {
		return nil, apperror.NewValidationError("Invalid release_date, expected YYYY-MM-DD", err)
	}
	return &t, nil
}

// DeletedGame is the minimal projection returned after a deletion.
type DeletedGame struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
