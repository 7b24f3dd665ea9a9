package domain

// Note is a free-form note optionally linked to a session id.
// Notes are upserted by id; new ids are prepended to keep the list
// most-recent-first.
type Note struct {
	Content string `json:"content"`
	Date    string `json:"date"`
	ID      string `json:"id"`
	Session string `json:"session,omitempty"`
	Title   string `json:"title"`
}
