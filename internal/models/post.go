package models

// Post is an anonymous forum entry.
type Post struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Text   string `json:"text"`
	Up     int    `json:"up"`
}
