package models

import "time"

type Post struct {
	ID      string    // Opaque unique identifier (UUID)
	Title   string    // Post title
	Body    string    // Post body, sanitized before storage
	Created time.Time // Creation date, never mutated
	// Author reference; empty AuthorID means the post predates
	// authentication and nobody may edit or delete it.
	AuthorID   string
	AuthorName string // Denormalized author display name
}

// HasAuthor reports whether the post carries an author reference.
func (p *Post) HasAuthor() bool {
	return p.AuthorID != ""
}
