package models

import "time"

// SeenPosting records a posting identifier that was successfully reported.
// Identifier equality is by value; the posting's content is never stored.
type SeenPosting struct {
	Key        string `gorm:"primaryKey"`
	ReportedAt time.Time
}
