package overpass

// Center is the computed centre of a way or relation, present with "out center"
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is a single OSM object in an interpreter response
type Element struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

// Position returns the element's coordinate. Ways only carry a centre.
func (e Element) Position() (lat, lon float64, ok bool) {
	if e.Type == "node" || e.Center == nil {
		return e.Lat, e.Lon, e.Type == "node"
	}
	return e.Center.Lat, e.Center.Lon, true
}

type APIResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Remark    string    `json:"remark,omitempty"`
	Elements  []Element `json:"elements"`
}
