package db

import "time"

// Service is one entry of the service portfolio. IsActive gates public
// visibility and IsFeatured gates inclusion in the home-page preview.
type Service struct {
	ID           string `gorm:"primaryKey;size:36"`
	Title        string `gorm:"size:150;not null"`
	Description  string `gorm:"type:text"`
	IconName     string `gorm:"size:50"`
	DisplayOrder int    `gorm:"default:0"`
	IsActive     bool   `gorm:"default:true"`
	IsFeatured   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the table name aligned with the hosted schema.
func (Service) TableName() string {
	return "services"
}

// Highlight is one selling point shown on the home page.
type Highlight struct {
	ID           string `gorm:"primaryKey;size:36"`
	Title        string `gorm:"size:150;not null"`
	Description  string `gorm:"type:text"`
	IconName     string `gorm:"size:50"`
	DisplayOrder int    `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the table name aligned with the hosted schema.
func (Highlight) TableName() string {
	return "home_highlights"
}

// CompanyValue is one corporate value shown on the about page.
type CompanyValue struct {
	ID           string `gorm:"primaryKey;size:36"`
	Title        string `gorm:"size:150;not null"`
	Description  string `gorm:"type:text"`
	IconName     string `gorm:"size:50"`
	DisplayOrder int    `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the table name aligned with the hosted schema.
func (CompanyValue) TableName() string {
	return "company_values"
}
