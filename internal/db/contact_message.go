package db

import "time"

// ContactMessage is an append-only submission from the public contact form.
// The submitter has no further access after creation; only the admin toggles
// IsRead or deletes rows.
type ContactMessage struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:150;not null"`
	Email     string `gorm:"size:150;not null"`
	Message   string `gorm:"type:text;not null"`
	IsRead    bool   `gorm:"default:false"`
	CreatedAt time.Time
}

// TableName keeps the table name aligned with the hosted schema.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
