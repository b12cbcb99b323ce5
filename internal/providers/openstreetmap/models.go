package openstreetmap

// LookupAddress is the addressdetails block of a reverse lookup
type LookupAddress struct {
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	County        string `json:"county"`
	StateDistrict string `json:"state_district"`
	State         string `json:"state"`
	ISO31662Lvl4  string `json:"ISO3166-2-lvl4"`
	Postcode      string `json:"postcode"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

type LookupAPIResponse struct {
	PlaceId     int           `json:"place_id"`
	Licence     string        `json:"licence"`
	OsmType     string        `json:"osm_type"`
	OsmId       int           `json:"osm_id"`
	Lat         string        `json:"lat"`
	Lon         string        `json:"lon"`
	Class       string        `json:"class"`
	Type        string        `json:"type"`
	PlaceRank   int           `json:"place_rank"`
	Importance  float64       `json:"importance"`
	Addresstype string        `json:"addresstype"`
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	Address     LookupAddress `json:"address"`
	Boundingbox []string      `json:"boundingbox"`
	Error       string        `json:"error,omitempty"`
}

// Locality returns the most specific settlement name in the address
func (a LookupAddress) Locality() string {
	for _, name := range []string{a.Suburb, a.City, a.Town, a.Village} {
		if name != "" {
			return name
		}
	}
	return ""
}
