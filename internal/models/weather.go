package models

import "time"

// WeatherRecord is a single environmental observation for a zone.
// Records are append-only: once stored they are never updated or deleted.
type WeatherRecord struct {
	ID          string    `json:"id"`
	Zone        string    `json:"zone"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Rainfall    string    `json:"rainfall"` // categorical or numeric, kept as text
	Wind        string    `json:"wind"`
	RecordedAt  time.Time `json:"timestamp"`
}
