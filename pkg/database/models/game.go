package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Database model for the board game information.
// All columns besides the id and names are nullable: absence means "not ranked/rated".
type Game struct {
	ID           uint    `gorm:"primaryKey"`
	BggId        int     `gorm:"uniqueIndex;not null"`
	PrimaryName  string  `gorm:"type:varchar(255);not null;index"`
	JapaneseName *string `gorm:"type:varchar(255);index"`
	YearReleased *int
	ImageUrl     *string `gorm:"type:text"`

	// Rating and ranking data.
	AvgRating     *decimal.Decimal `gorm:"type:numeric(4,2)"`
	RatingsCount  *int
	CommentsCount *int
	RankOverall   *int `gorm:"index"`

	// Play information.
	MinPlayers  *int
	MaxPlayers  *int
	MinPlaytime *int
	MaxPlaytime *int
	MinAge      *int
	Weight      *decimal.Decimal `gorm:"type:numeric(4,2)"`

	CreatedAt *time.Time
	UpdatedAt *time.Time

	// Associations, all populated by the external loader.
	Designers        []Designer            `gorm:"many2many:game_designers"`
	Artists          []Artist              `gorm:"many2many:game_artists"`
	Publishers       []Publisher           `gorm:"many2many:game_publishers"`
	Mechanics        []Mechanic            `gorm:"many2many:game_mechanics"`
	Categories       []Category            `gorm:"many2many:game_categories"`
	Awards           []Award               `gorm:"many2many:game_awards"`
	GenreRanks       []GameGenreRank       `gorm:"foreignKey:GameId"`
	BestPlayerCounts []GameBestPlayerCount `gorm:"foreignKey:GameId"`
}

// Database model for a game position within a single genre ranking.
type GameGenreRank struct {
	GameId      uint `gorm:"primaryKey;autoIncrement:false"`
	GenreId     uint `gorm:"primaryKey;autoIncrement:false"`
	RankInGenre *int

	Genre Genre `gorm:"foreignKey:GenreId"`
}

// Database model for a recommended player count of a game.
// A game can have multiple best player counts.
type GameBestPlayerCount struct {
	GameId      uint `gorm:"primaryKey;autoIncrement:false"`
	PlayerCount int  `gorm:"primaryKey;autoIncrement:false"`
}
