package models

import "time"

// Barangay is read-only reference data for the administrative areas reports
// are filed against.
type Barangay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	District  string    `gorm:"size:100" json:"district,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Barangay) TableName() string {
	return "barangays"
}
