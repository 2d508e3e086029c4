package meeting

import "strings"

// venueQueries maps a user-facing venue type hint to the places search term.
var venueQueries = map[string]string{
	"cafe":       "cafe",
	"coffee":     "coffee",
	"restaurant": "restaurant",
	"brunch":     "brunch",
	"dinner":     "restaurant",
	"bar":        "bar",
	"park":       "park",
	"museum":     "museum",
	"library":    "library",
	"mall":       "shopping mall",
	"gym":        "gym",
}

const defaultVenueQuery = "restaurant"

// venueQueryFor translates a venue type hint into a search term. Unknown
// non-empty hints pass through verbatim; an absent hint falls back to the
// default.
func venueQueryFor(venueType *string) string {
	if venueType == nil {
		return defaultVenueQuery
	}
	key := strings.ToLower(strings.TrimSpace(*venueType))
	if key == "" {
		return defaultVenueQuery
	}
	if q, ok := venueQueries[key]; ok {
		return q
	}
	return key
}
