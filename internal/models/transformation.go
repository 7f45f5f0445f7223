package models

import "time"

// Transformation pairs a source photo with the generated puppy image.
// Records are immutable once stored; the repository evicts the oldest rows
// past the history cap.
type Transformation struct {
	ID             string `gorm:"primaryKey;size:32" json:"id"` // epoch-millis string
	OriginalURI    string `gorm:"size:1024;not null" json:"originalUri"`
	TransformedURI string `gorm:"size:1024;not null" json:"transformedUri"`
	Timestamp      int64  `gorm:"not null;index:idx_transformation_timestamp" json:"timestamp"` // epoch millis
	CreatedAt      time.Time
}
