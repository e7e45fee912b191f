package domain

// User is a persisted login identity. Sessions are JWTs issued against
// this record; the password hash never serializes.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
}
