package models

// Database model for the game designers.
type Designer struct {
	ID   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Url  *string `gorm:"type:text"`
}

// Database model for the game artists.
type Artist struct {
	ID   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Url  *string `gorm:"type:text"`
}

// Database model for the game publishers.
type Publisher struct {
	ID   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Url  *string `gorm:"type:text"`
}
