package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/forestshield/forestshield-be/internal/models"
)

// WeatherServiceProvider defines the interface for weather record services.
type WeatherServiceProvider interface {
	CreateRecord(ctx context.Context, zone string, temperature, humidity float64, rainfall, wind string) (models.WeatherRecord, error)
	ListRecords(ctx context.Context) ([]models.WeatherRecord, error)
}

// WeatherService provides business logic for environmental observations.
type WeatherService struct {
	db *sql.DB
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(db *sql.DB) *WeatherService {
	return &WeatherService{db: db}
}

// CreateRecord stores a new observation with a server-assigned timestamp.
func (s *WeatherService) CreateRecord(ctx context.Context, zone string, temperature, humidity float64, rainfall, wind string) (models.WeatherRecord, error) {
	record := models.WeatherRecord{
		ID:          uuid.New().String(),
		Zone:        zone,
		Temperature: temperature,
		Humidity:    humidity,
		Rainfall:    rainfall,
		Wind:        wind,
		RecordedAt:  time.Now().UTC(),
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO weather_records (id, zone, temperature, humidity, rainfall, wind, recorded_at) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.WeatherRecord{}, err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, record.ID, record.Zone, record.Temperature, record.Humidity, record.Rainfall, record.Wind, record.RecordedAt)
	if err != nil {
		return models.WeatherRecord{}, err
	}
	return record, nil
}

// ListRecords retrieves all observations, most recent first.
func (s *WeatherService) ListRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, zone, temperature, humidity, rainfall, wind, recorded_at FROM weather_records ORDER BY recorded_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.WeatherRecord{}
	for rows.Next() {
		var record models.WeatherRecord
		if err := rows.Scan(&record.ID, &record.Zone, &record.Temperature, &record.Humidity, &record.Rainfall, &record.Wind, &record.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
