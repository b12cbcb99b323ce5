// Package openhours evaluates a subset of the OpenStreetMap opening_hours
// syntax: "24/7", and semicolon-separated rules made of an optional weekday
// selector followed by time ranges or "off". Public and school holiday rules
// are ignored. Anything else is reported as unknown.
package openhours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var ErrUnsupported = errors.New("unsupported opening_hours syntax")

var weekdays = map[string]int{
	"mo": 0, "tu": 1, "we": 2, "th": 3, "fr": 4, "sa": 5, "su": 6,
}

// interval is [start, end) in minutes from local midnight. end may exceed one
// day for ranges that run past midnight.
type interval struct {
	start, end int
}

// Schedule is a parsed weekly timetable, indexed Monday first
type Schedule struct {
	days [7][]interval
}

// Parse reads an opening_hours value
func Parse(value string) (*Schedule, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty", ErrUnsupported)
	}

	s := &Schedule{}
	if value == "24/7" {
		for d := range s.days {
			s.days[d] = []interval{{0, minutesPerDay}}
		}
		return s, nil
	}

	applied := false
	for _, rule := range strings.Split(value, ";") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		days, ranges, skip, err := parseRule(rule)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		// a later rule replaces the schedule of the days it names
		for d := range days {
			if days[d] {
				s.days[d] = ranges
			}
		}
		applied = true
	}
	if !applied {
		return nil, fmt.Errorf("%w: no usable rules in %q", ErrUnsupported, value)
	}
	return s, nil
}

// IsOpen reports whether the schedule is open at the wall-clock time of t
func (s *Schedule) IsOpen(t time.Time) bool {
	day := (int(t.Weekday()) + 6) % 7
	minute := t.Hour()*60 + t.Minute()

	for _, iv := range s.days[day] {
		if minute >= iv.start && minute < iv.end {
			return true
		}
	}
	// ranges from yesterday that run past midnight
	prev := (day + 6) % 7
	for _, iv := range s.days[prev] {
		if iv.end > minutesPerDay && minute+minutesPerDay >= iv.start && minute+minutesPerDay < iv.end {
			return true
		}
	}
	return false
}

// Evaluate parses value and checks it at t. known is false when value cannot be
// evaluated, in which case open carries no information.
func Evaluate(value string, t time.Time) (open, known bool) {
	s, err := Parse(value)
	if err != nil {
		return false, false
	}
	return s.IsOpen(t), true
}

func parseRule(rule string) (days [7]bool, ranges []interval, skip bool, err error) {
	fields := strings.Fields(rule)

	selector := ""
	if len(fields) > 0 && isDaySelector(fields[0]) {
		selector = fields[0]
		fields = fields[1:]
	}

	if selector != "" && isHolidaySelector(selector) {
		return days, nil, true, nil
	}

	if selector == "" {
		for d := range days {
			days[d] = true
		}
	} else if days, err = parseDays(selector); err != nil {
		return days, nil, false, err
	}

	rest := strings.ToLower(strings.Join(fields, ""))
	switch rest {
	case "":
		// days without times are open all day
		return days, []interval{{0, minutesPerDay}}, false, nil
	case "off", "closed":
		return days, []interval{}, false, nil
	}

	for _, part := range strings.Split(rest, ",") {
		iv, err := parseRange(part)
		if err != nil {
			return days, nil, false, err
		}
		ranges = append(ranges, iv)
	}
	return days, ranges, false, nil
}

func isDaySelector(field string) bool {
	if len(field) < 2 {
		return false
	}
	switch strings.ToLower(field) {
	case "off", "closed":
		return false
	}
	c := field[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isHolidaySelector(selector string) bool {
	upper := strings.ToUpper(selector)
	return strings.HasPrefix(upper, "PH") || strings.HasPrefix(upper, "SH")
}

func parseDays(selector string) ([7]bool, error) {
	var days [7]bool
	for _, item := range strings.Split(selector, ",") {
		from, to, isRange := strings.Cut(item, "-")
		start, ok := weekdays[strings.ToLower(from)]
		if !ok {
			return days, fmt.Errorf("%w: weekday %q", ErrUnsupported, from)
		}
		if !isRange {
			days[start] = true
			continue
		}
		end, ok := weekdays[strings.ToLower(to)]
		if !ok {
			return days, fmt.Errorf("%w: weekday %q", ErrUnsupported, to)
		}
		// ranges may wrap, e.g. Fr-Mo
		for d := start; ; d = (d + 1) % 7 {
			days[d] = true
			if d == end {
				break
			}
		}
	}
	return days, nil
}

func parseRange(part string) (interval, error) {
	from, to, ok := strings.Cut(part, "-")
	if !ok {
		return interval{}, fmt.Errorf("%w: time range %q", ErrUnsupported, part)
	}
	start, err := parseClock(from)
	if err != nil {
		return interval{}, err
	}
	end, err := parseClock(to)
	if err != nil {
		return interval{}, err
	}
	if start >= minutesPerDay {
		return interval{}, fmt.Errorf("%w: start %q", ErrUnsupported, from)
	}
	if end <= start {
		end += minutesPerDay
	}
	return interval{start: start, end: end}, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(mm) != 2 {
		return 0, fmt.Errorf("%w: time %q", ErrUnsupported, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: time %q", ErrUnsupported, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: time %q", ErrUnsupported, s)
	}
	return h*60 + m, nil
}
