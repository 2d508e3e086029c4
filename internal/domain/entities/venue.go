package entities

// VenueLocation holds the normalized address fields of a venue.
type VenueLocation struct {
	Address          string  `json:"address,omitempty"`
	Locality         string  `json:"locality,omitempty"`
	Region           string  `json:"region,omitempty"`
	Country          string  `json:"country,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	Lat              float64 `json:"lat,omitempty"`
	Lng              float64 `json:"lng,omitempty"`
}

// Venue is a candidate place returned by the external places search,
// normalized to a common shape. Venues are derived data: fetched fresh on
// each suggestions request and never persisted, except as the finalized
// snapshot on a meeting.
type Venue struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Location       VenueLocation `json:"location"`
	Categories     []string      `json:"categories"`
	DistanceMeters int           `json:"distance"`
	Website        string        `json:"website,omitempty"`
	Tel            string        `json:"tel,omitempty"`
}
