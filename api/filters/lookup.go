package filters

// LookupParams holds the optional substring search of the entity lookups.
type LookupParams struct {
	Search string `form:"search"`
}

// GameNameParams holds the search term for the game name suggestions.
// The service treats an empty or whitespace-only term as "no suggestions".
type GameNameParams struct {
	Search string `form:"search"`
}
