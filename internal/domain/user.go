package domain

// User is an author identity. Users are created at seed time only and
// are read-only through the API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
