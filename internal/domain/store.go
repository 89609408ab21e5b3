package domain

import "time"

// StoredWord is a persisted vocabulary entry in the local word store.
// Word is unique within the store; inserting a duplicate is rejected with
// ErrAlreadyExists rather than overwritten.
type StoredWord struct {
	ID             int64     `json:"id"`
	Word           string    `json:"word"`
	SourceLanguage string    `json:"source_language"`
	DateAdded      time.Time `json:"date_added"`
	Favorite       bool      `json:"favorite"`
}
