package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone of a coordinate
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	// LocalTime converts t to the wall-clock time at the coordinate
	LocalTime(latitude, longitude float64, t time.Time) (time.Time, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F

	mu        sync.RWMutex
	locations map[string]*time.Location
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf loads its polygon data into memory once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder:    finder,
			locations: make(map[string]*time.Location),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "Asia/Kolkata" or "Europe/London"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

func (s *service) LocalTime(latitude, longitude float64, t time.Time) (time.Time, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Time{}, err
	}

	loc, err := s.location(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// location caches loaded zones; time.LoadLocation reads tzdata on every call
func (s *service) location(name string) (*time.Location, error) {
	s.mu.RLock()
	loc, ok := s.locations[name]
	s.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}

	s.mu.Lock()
	s.locations[name] = loc
	s.mu.Unlock()
	return loc, nil
}
