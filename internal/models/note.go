// Package models defines the domain types for bloggy.
package models

import "github.com/83bytes/bloggy/internal/frontmatter"

// Note represents a parsed markdown file in the notes directory.
type Note struct {
	Path        string // relative to the notes root
	AbsPath     string
	Frontmatter frontmatter.Mapping
	Body        string
	Public      bool
	Now         bool
}

// LinkRef is an inline markdown link extracted from a note body.
type LinkRef struct {
	Text   string
	Target string
}
