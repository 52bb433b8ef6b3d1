package common

// UserResult is the outward projection of a stored user. It has no credential
// field, so the hash cannot leak into a response by construction.
type UserResult struct {
	UserID          int64   `json:"user_id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profile_image_url"`
}
