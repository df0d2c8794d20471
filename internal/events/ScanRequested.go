package events

import "github.com/avinsharma/job-scout/internal/domain/models"

var ScanRequestedTopic = "ScanRequestedEvent"

// ScanRequested is published by the bot when a user asks for on-demand
// results from a single source.
type ScanRequested struct {
	ChatID int64
	Source models.Source
}
