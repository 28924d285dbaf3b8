package domain

import "time"

// UserSettings is the per-user setup blob (location, transport, age group).
// It is read and written wholesale; every optional field has a default so a
// blob written by an older client still validates.
type UserSettings struct {
	UserLocation string    `json:"userLocation"`
	Transport    string    `json:"transport"`
	AgeGroup     string    `json:"ageGroup"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	DefaultLocation  = "不明"
	DefaultAgeGroup  = "80代"
	DefaultTransport = "車"
)

// ApplyDefaults fills every empty optional field.
func (s *UserSettings) ApplyDefaults() {
	if s.UserLocation == "" {
		s.UserLocation = DefaultLocation
	}
	if s.Transport == "" {
		s.Transport = DefaultTransport
	}
	if s.AgeGroup == "" {
		s.AgeGroup = DefaultAgeGroup
	}
}

var ageGroups = map[string]bool{"60代": true, "70代": true, "80代": true, "90代": true}

var transports = map[string]bool{"徒歩": true, "自転車": true, "車": true}

// Validate rejects values outside the fixed option sets. Defaults must have
// been applied first.
func (s UserSettings) Validate() error {
	if !ageGroups[s.AgeGroup] {
		return &ValidationError{Message: "年代の指定が正しくありません"}
	}
	if !transports[s.Transport] {
		return &ValidationError{Message: "移動手段の指定が正しくありません"}
	}
	return nil
}
