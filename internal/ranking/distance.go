package ranking

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"medi-assist/internal/types"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

var ErrMalformedDistance = errors.New("malformed distance")

// Haversine returns the great-circle distance in kilometres between a and b.
// Ellipsoidal flattening is ignored.
func Haversine(a, b types.Coords) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatDistance renders km for display, e.g. "2.30 km"
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

// ParseDistance reads the leading numeral of a pre-formatted distance such as
// "2.3 km", "850 m" or "1,200 m" and returns it in kilometres. A missing unit
// means km. Any other unit is malformed.
func ParseDistance(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDistance, s)
	}

	numeral, ok := stripGroupSeparators(s[:end])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDistance, s)
	}
	value, err := strconv.ParseFloat(numeral, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDistance, s)
	}

	unit := ""
	if fields := strings.Fields(strings.ToLower(s[end:])); len(fields) > 0 {
		unit = fields[0]
	}
	switch unit {
	case "", "km":
		return value, nil
	case "m", "meter", "meters", "metre", "metres":
		return value / 1000, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit in %q", ErrMalformedDistance, s)
	}
}

// stripGroupSeparators removes thousands separators from an integer part
// such as "1,200.5". Every group after a comma must be exactly three digits.
func stripGroupSeparators(numeral string) (string, bool) {
	if !strings.Contains(numeral, ",") {
		return numeral, true
	}
	intPart, frac, hasFrac := strings.Cut(numeral, ".")
	if strings.Contains(frac, ",") {
		return "", false
	}
	groups := strings.Split(intPart, ",")
	lead := strings.TrimLeft(groups[0], "+-")
	if lead == "" || len(lead) > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
	}
	out := strings.Join(groups, "")
	if hasFrac {
		out += "." + frac
	}
	return out, true
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
