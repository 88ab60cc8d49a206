package models

// Database model for the game awards.
// The same award name can appear multiple times with different years and types.
type Award struct {
	ID            uint    `gorm:"primaryKey"`
	AwardName     string  `gorm:"type:varchar(255);not null;index"`
	AwardYear     int     `gorm:"not null;index"`
	AwardType     string  `gorm:"type:varchar(100);not null;index"`
	AwardCategory *string `gorm:"type:varchar(255)"`
	Url           *string `gorm:"type:text"`
}
