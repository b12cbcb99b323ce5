package openstreetmap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Lookup(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"place_id": 1234,
			"name": "Shivajinagar",
			"display_name": "Shivajinagar, Bengaluru, Karnataka, India",
			"address": {
				"suburb": "Shivajinagar",
				"city": "Bengaluru",
				"state": "Karnataka",
				"country": "India",
				"country_code": "in"
			}
		}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "medi-assist-test", testLogger())
	resp, err := client.Lookup(context.Background(), 12.9716, 77.5946)
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}

	if gotUA != "medi-assist-test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "medi-assist-test")
	}
	for _, want := range []string{"lat=12.971600", "lon=77.594600", "format=json"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if resp.Name != "Shivajinagar" {
		t.Errorf("Name = %q, want %q", resp.Name, "Shivajinagar")
	}
	if resp.Address.Locality() != "Shivajinagar" {
		t.Errorf("Locality() = %q, want %q", resp.Address.Locality(), "Shivajinagar")
	}
	if resp.Address.CountryCode != "in" {
		t.Errorf("CountryCode = %q, want %q", resp.Address.CountryCode, "in")
	}
}

func TestClient_Lookup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{"server error", http.StatusServiceUnavailable, "busy", "status 503"},
		{"malformed json", http.StatusOK, "{", "failed to decode"},
		{"api error", http.StatusOK, `{"error":"Unable to geocode"}`, "Unable to geocode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "", testLogger()).Lookup(context.Background(), 0, 0)
			if err == nil {
				t.Fatal("Lookup() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Lookup() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestLookupAddress_Locality(t *testing.T) {
	tests := []struct {
		name string
		addr LookupAddress
		want string
	}{
		{"suburb first", LookupAddress{Suburb: "Adyar", City: "Chennai"}, "Adyar"},
		{"city", LookupAddress{City: "Pune"}, "Pune"},
		{"village", LookupAddress{Village: "Khandala"}, "Khandala"},
		{"none", LookupAddress{State: "Goa"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Locality(); got != tt.want {
				t.Errorf("Locality() = %q, want %q", got, tt.want)
			}
		})
	}
}
