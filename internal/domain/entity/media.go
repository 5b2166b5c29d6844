package entity

import (
	"time"
)

// Media represents an uploaded cover image stored in the blob bucket.
// The record is metadata only; the bytes live in GridFS under FileName.
type Media struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	FileName     string    `bson:"file_name" json:"file_name"`
	OriginalName string    `bson:"original_name" json:"original_name"`
	ContentType  string    `bson:"content_type" json:"content_type"`
	Size         int64     `bson:"size" json:"size"`
	URL          string    `bson:"url" json:"url"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
