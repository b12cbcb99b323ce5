package places

// OpeningHours mirrors the places-search opening_hours block
type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}

// Result is one place as returned by a places search
type Result struct {
	Name         string        `json:"name"`
	Address      string        `json:"address,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
	Distance     string        `json:"distance,omitempty"`
}

func openNow(b bool) *OpeningHours {
	return &OpeningHours{OpenNow: &b}
}
