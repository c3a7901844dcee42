package domain

import "time"

// MediaFile is the metadata record for one uploaded file. The record and
// the bytes on disk are kept consistent by compensating cleanup: a file
// whose metadata insert fails is deleted again.
type MediaFile struct {
	Filename         string    `json:"filename" bson:"filename"`
	OriginalFilename string    `json:"original_filename" bson:"original_filename"`
	ContentType      string    `json:"content_type" bson:"content_type"`
	Size             int64     `json:"size" bson:"size"`
	URL              string    `json:"url" bson:"url"`
	UploadedBy       string    `json:"uploaded_by" bson:"uploaded_by"`
	UploadedAt       time.Time `json:"uploaded_at" bson:"uploaded_at"`
}
