package models

import "time"

// IdentityRecord is one saved identity document. Rows are created by the save
// step after human review and never updated or deleted afterwards.
type IdentityRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"not null" json:"fullName"`
	IDNumber    string    `gorm:"uniqueIndex;not null" json:"idNumber"`
	DateOfBirth string    `gorm:"not null" json:"dateOfBirth"`
	ExpiryDate  *string   `json:"expiryDate"`
	Address     *string   `json:"address"`
	PhotoURL    *string   `json:"photoUrl"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (IdentityRecord) TableName() string {
	return "identity_records"
}

// ExtractedFields holds the normalized fields pulled out of a document image.
// It is never persisted as-is; the browser holds it until the user reviews and
// submits it through the save step. Simulated marks values produced by the
// local generator instead of a real extraction.
type ExtractedFields struct {
	FullName    *string `json:"fullName"`
	IDNumber    *string `json:"idNumber"`
	DateOfBirth *string `json:"dateOfBirth"`
	ExpiryDate  *string `json:"expiryDate"`
	Address     *string `json:"address"`
	Simulated   bool    `json:"simulated"`
}

// NewRecord is the input to RecordStore.Insert.
type NewRecord struct {
	FullName    string
	IDNumber    string
	DateOfBirth string
	ExpiryDate  *string
	Address     *string
}
