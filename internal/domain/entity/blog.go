package entity

import (
	"time"
)

// Blog represents a single blog post on the portfolio site
type Blog struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Slug       string    `bson:"slug" json:"slug"`
	Excerpt    *string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content    string    `bson:"content" json:"content"`
	CoverImage *string   `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Author     string    `bson:"author" json:"author"`
	Tags       []string  `bson:"tags" json:"tags"`
	Published  bool      `bson:"published" json:"published"`
	Views      int       `bson:"views" json:"views"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
