package timezone

import (
	"testing"
	"time"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Bengaluru, India",
			latitude:  12.9716,
			longitude: 77.5946,
			want:      "Asia/Kolkata",
		},
		{
			name:      "Kathmandu, Nepal",
			latitude:  27.7172,
			longitude: 85.3240,
			want:      "Asia/Kathmandu",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_LocalTime(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	utc := time.Date(2026, 3, 2, 4, 0, 0, 0, time.UTC)

	// India is UTC+05:30 with no daylight saving
	got, err := svc.LocalTime(12.9716, 77.5946, utc)
	if err != nil {
		t.Fatalf("LocalTime() error = %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Errorf("LocalTime() = %s, want 09:30 local", got.Format("15:04"))
	}
	if !got.Equal(utc) {
		t.Errorf("LocalTime() changed the instant: %v != %v", got, utc)
	}
}
