package events

import "github.com/avinsharma/job-scout/internal/domain/models"

var ScanCompletedTopic = "ScanCompletedEvent"

type ScanCompleted struct {
	ChatID   int64
	Source   models.Source
	Postings []models.AnnotatedPosting
}
