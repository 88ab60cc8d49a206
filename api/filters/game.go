package filters

import "strings"

const maxSearchLimit = 100

// GameSearchParams holds the query parameters for the game search.
// Numeric filters are pointers so a supplied zero is distinguishable
// from an absent parameter.
type GameSearchParams struct {
	Name string `form:"name"`

	YearMin *int `form:"yearMin"`
	YearMax *int `form:"yearMax"`

	PlayerCount     *int `form:"playerCount"`
	BestPlayerCount *int `form:"bestPlayerCount"`
	MinPlaytime     *int `form:"minPlaytime"`
	MaxPlaytime     *int `form:"maxPlaytime"`
	MinAge          *int `form:"minAge"`

	MinRating *float64 `form:"minRating"`
	MaxRank   *int     `form:"maxRank"`

	WeightMin        *float64 `form:"weightMin"`
	WeightMax        *float64 `form:"weightMax"`
	RatingsCountMin  *int     `form:"ratingsCountMin"`
	RatingsCountMax  *int     `form:"ratingsCountMax"`
	CommentsCountMin *int     `form:"commentsCountMin"`
	CommentsCountMax *int     `form:"commentsCountMax"`

	// Comma-separated name lists.
	Designers  string `form:"designers"`
	Artists    string `form:"artists"`
	Publishers string `form:"publishers"`
	Mechanics  string `form:"mechanics"`
	Categories string `form:"categories"`
	Awards     string `form:"awards"`

	Genre string `form:"genre"`

	// Compound award filter, independent from the Awards name list.
	AwardYear *int   `form:"awardYear"`
	AwardName string `form:"awardName"`
	AwardType string `form:"awardType"`

	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=20" binding:"omitempty,min=1"`
}

// GameSearchFilter is the typed filter handed to the repository.
// Every non-nil/non-empty field contributes exactly one conjunct.
type GameSearchFilter struct {
	Name string

	YearMin *int
	YearMax *int

	PlayerCount     *int
	BestPlayerCount *int
	MinPlaytime     *int
	MaxPlaytime     *int
	MinAge          *int

	MinRating *float64
	MaxRank   *int

	WeightMin        *float64
	WeightMax        *float64
	RatingsCountMin  *int
	RatingsCountMax  *int
	CommentsCountMin *int
	CommentsCountMax *int

	DesignerNames  []string
	ArtistNames    []string
	PublisherNames []string
	MechanicNames  []string
	CategoryNames  []string
	AwardNames     []string

	GenreName string

	AwardYear *int
	AwardName string
	AwardType string

	Page  int
	Limit int
}

// AsFilter converts the bound query parameters into the typed filter.
func (q *GameSearchParams) AsFilter() *GameSearchFilter {
	// Set to the default maximum.
	// Could use max on the form, but that would return a error.
	if q.Limit > maxSearchLimit {
		q.Limit = maxSearchLimit
	}

	return &GameSearchFilter{
		Name: strings.TrimSpace(q.Name),

		YearMin: q.YearMin,
		YearMax: q.YearMax,

		PlayerCount:     q.PlayerCount,
		BestPlayerCount: q.BestPlayerCount,
		MinPlaytime:     q.MinPlaytime,
		MaxPlaytime:     q.MaxPlaytime,
		MinAge:          q.MinAge,

		MinRating: q.MinRating,
		MaxRank:   q.MaxRank,

		WeightMin:        q.WeightMin,
		WeightMax:        q.WeightMax,
		RatingsCountMin:  q.RatingsCountMin,
		RatingsCountMax:  q.RatingsCountMax,
		CommentsCountMin: q.CommentsCountMin,
		CommentsCountMax: q.CommentsCountMax,

		DesignerNames:  splitList(q.Designers),
		ArtistNames:    splitList(q.Artists),
		PublisherNames: splitList(q.Publishers),
		MechanicNames:  splitList(q.Mechanics),
		CategoryNames:  splitList(q.Categories),
		AwardNames:     splitList(q.Awards),

		GenreName: strings.TrimSpace(q.Genre),

		AwardYear: q.AwardYear,
		AwardName: strings.TrimSpace(q.AwardName),
		AwardType: strings.TrimSpace(q.AwardType),

		Page:  q.Page,
		Limit: q.Limit,
	}
}

// splitList splits a comma-separated parameter, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
