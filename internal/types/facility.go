package types

// Candidate is a place record as reported by a place source, before ranking.
// A source supplies either Coordinates or a pre-formatted Distance.
type Candidate struct {
	Name        string  `json:"name"`
	Address     string  `json:"address,omitempty"`
	Coordinates *Coords `json:"coordinates,omitempty"`
	Distance    string  `json:"distance,omitempty"`
	// IsOpen is nil when the source has no real-time status
	IsOpen *bool `json:"isOpen,omitempty"`
}

// Facility is a ranked place returned to the caller
type Facility struct {
	Name    string `json:"name" example:"City Hospital"`
	Address string `json:"address" example:"123 Health St, Downtown"`
	IsOpen  bool   `json:"isOpen" example:"true"`
	// OpenStatusKnown is false when IsOpen was defaulted. Treat IsOpen as advisory either way.
	OpenStatusKnown bool    `json:"openStatusKnown" example:"false"`
	Distance        string  `json:"distance" example:"2.30 km"`
	DistanceKm      float64 `json:"distanceKm" example:"2.3"`
	Coordinates     *Coords `json:"coordinates,omitempty"`
}

// Bool returns a pointer to b, for optional status fields
func Bool(b bool) *bool {
	return &b
}
