package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SensorKind identifies a physiological sensor stream.
// @Description Sensor stream kind: HEART_RATE, HRV, SPO2 or RESPIRATORY_RATE.
type SensorKind string

const (
	// SensorHeartRate is heart rate in beats per minute
	SensorHeartRate SensorKind = "HEART_RATE"
	// SensorHRV is heart rate variability (SDNN) in milliseconds
	SensorHRV SensorKind = "HRV"
	// SensorSpO2 is blood oxygen saturation in percent
	SensorSpO2 SensorKind = "SPO2"
	// SensorRespiratoryRate is respiratory rate in breaths per minute
	SensorRespiratoryRate SensorKind = "RESPIRATORY_RATE"
)

var sensorAliases = map[string]SensorKind{
	"HEART_RATE":        SensorHeartRate,
	"HEARTRATE":         SensorHeartRate,
	"HR":                SensorHeartRate,
	"HRV":               SensorHRV,
	"SDNN":              SensorHRV,
	"SPO2":              SensorSpO2,
	"OXYGEN_SATURATION": SensorSpO2,
	"RESPIRATORY_RATE":  SensorRespiratoryRate,
	"RESP_RATE":         SensorRespiratoryRate,
	"BREATHING_RATE":    SensorRespiratoryRate,
}

// ParseSensorKind resolves a raw provider kind string to its canonical
// value. Matching is case-insensitive and tolerant of provider aliases.
func ParseSensorKind(raw string) (SensorKind, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if kind, ok := sensorAliases[key]; ok {
		return kind, nil
	}
	return "", ErrInvalidSensor
}

// Valid reports whether the kind is one of the four canonical streams.
func (k SensorKind) Valid() bool {
	switch k {
	case SensorHeartRate, SensorHRV, SensorSpO2, SensorRespiratoryRate:
		return true
	}
	return false
}

// SensorSample is a single timestamped sensor reading, the value the
// derivation engine works on.
type SensorSample struct {
	Timestamp time.Time
	Value     float64
}

// SensorReading is the stored form of a sensor sample.
type SensorReading struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_sensor_readings_user_kind_at;uniqueIndex:idx_sensor_readings_dedup" json:"user_id"`
	Kind       SensorKind `gorm:"type:varchar(20);not null;index:idx_sensor_readings_user_kind_at;uniqueIndex:idx_sensor_readings_dedup" json:"kind"`
	RecordedAt time.Time  `gorm:"not null;index:idx_sensor_readings_user_kind_at;uniqueIndex:idx_sensor_readings_dedup" json:"recorded_at"`
	Value      float64    `gorm:"not null" json:"value"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SensorReading) TableName() string {
	return "sensor_readings"
}

// ToSample converts the stored row to the engine value.
func (r *SensorReading) ToSample() SensorSample {
	return SensorSample{
		Timestamp: r.RecordedAt,
		Value:     r.Value,
	}
}

// SensorSampleInput is one sensor reading in a batch ingestion request.
// @Description A single sensor reading.
type SensorSampleInput struct {
	// Sensor stream kind (canonical names and common aliases accepted)
	Kind string `json:"kind" validate:"required,sensorkind" example:"HEART_RATE"`
	// Reading timestamp in RFC3339 format
	RecordedAt time.Time `json:"recorded_at" validate:"required" example:"2024-03-14T02:10:00Z"`
	// Reading value; SpO2 may be sent as a 0-1 fraction and is stored as percent
	Value float64 `json:"value" validate:"gt=0" example:"54.0"`
}
