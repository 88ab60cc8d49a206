package models

// Database model for the game mechanics.
type Mechanic struct {
	ID   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Url  *string `gorm:"type:text"`
}

// Database model for the game categories.
type Category struct {
	ID   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Url  *string `gorm:"type:text"`
}

// Database model for the game genres.
// Genres are joined to games through the genre rankings.
type Genre struct {
	ID   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Url  *string `gorm:"type:text"`
}
