package model

// LogEntry is a daily standup entry owned by a single user.
type LogEntry struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	Yesterday string `json:"yesterday"`
	Today     string `json:"today"`
	Blocker   string `json:"blocker"`
}

// LogEntryRequest is the body for adding or updating a log entry. An
// update replaces all four content fields, so all four are required.
type LogEntryRequest struct {
	Date      string `json:"date" validate:"required"`
	Yesterday string `json:"yesterday" validate:"required"`
	Today     string `json:"today" validate:"required"`
	Blocker   string `json:"blocker" validate:"required"`
}
