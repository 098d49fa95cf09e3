package model

type Category string

const (
	CategoryDevelopment Category = "development"
	CategoryTesting     Category = "testing"
	CategoryStaging     Category = "staging"
	CategoryProduction  Category = "production"
	CategoryUnknown     Category = "unknown"
)

type Status string

const (
	StatusRunning Status = "running"
	StatusStopped Status = "stopped"
	StatusError   Status = "error"
	StatusUnknown Status = "unknown"
)

// FilterAll matches every value of a filter dimension.
const FilterAll = "all"

var Categories = []Category{CategoryDevelopment, CategoryTesting, CategoryStaging, CategoryProduction}

var Statuses = []Status{StatusRunning, StatusStopped, StatusError, StatusUnknown}

// ServerRecord is one deployed server image as returned by the inventory API.
// Records are read-only snapshots, the dashboard never mutates them.
type ServerRecord struct {
	ID            string   `json:"id"`
	Customer      string   `json:"customer"`
	ImageName     string   `json:"imageName"`
	Version       string   `json:"version"`
	ServerAddress string   `json:"serverAddress"`
	Responsible   string   `json:"responsible"`
	Category      Category `json:"category"`
	Status        Status   `json:"status,omitempty"`
}

// NormalizedCategory returns the category, or CategoryUnknown when it is absent or unrecognized.
func (s ServerRecord) NormalizedCategory() Category {
	switch s.Category {
	case CategoryDevelopment, CategoryTesting, CategoryStaging, CategoryProduction:
		return s.Category
	default:
		return CategoryUnknown
	}
}

// NormalizedStatus returns the status, or StatusUnknown when it is absent or unrecognized.
func (s ServerRecord) NormalizedStatus() Status {
	switch s.Status {
	case StatusRunning, StatusStopped, StatusError, StatusUnknown:
		return s.Status
	default:
		return StatusUnknown
	}
}
