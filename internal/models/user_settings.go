package models

import "time"

// Theme values accepted by UserSettings.Theme.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Image quality values accepted by UserSettings.ImageQuality.
const (
	QualityStandard = "standard"
	QualityHigh     = "high"
)

type UserSettings struct {
	ID           uint   `gorm:"primaryKey" json:"-"` // single-row table (ID=1)
	DisplayName  string `gorm:"size:120;not null" json:"displayName"`
	Theme        string `gorm:"not null;default:system" json:"theme"` // "light" | "dark" | "system"
	AutoSave     bool   `gorm:"not null;default:true" json:"autoSave"`
	ImageQuality string `gorm:"not null;default:standard" json:"imageQuality"` // "standard" | "high"
	UpdatedAt    time.Time
}

// DefaultUserSettings returns the settings object used when nothing has been
// persisted yet or the stored row cannot be read.
func DefaultUserSettings() *UserSettings {
	return &UserSettings{
		ID:           1,
		DisplayName:  "Dog Lover",
		Theme:        ThemeSystem,
		AutoSave:     true,
		ImageQuality: QualityStandard,
	}
}
