package users

// UpdateRoleRequest is the payload for changing a user's role. The value
// is validated against the closed role set by the service.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required" example:"admin"`
}

// Stats summarizes a user's journal activity.
type Stats struct {
	UserID     int `json:"user_id"`
	EntryCount int `json:"entry_count"`
}

// DeletedUser is the minimal projection returned after a deletion, for
// confirmation only.
type DeletedUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
