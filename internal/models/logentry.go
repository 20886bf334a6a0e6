package models

import "time"

// LogEntry is a persisted log record in the logs collection.
type LogEntry struct {
	Level     string         `bson:"level" json:"level"`
	Message   string         `bson:"message" json:"message"`
	Meta      map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}
