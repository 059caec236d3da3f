package reports_test

import (
	"testing"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"
)

func TestMapsSearchURL(t *testing.T) {
	got := reports.MapsSearchURL(6.4336, 100.1951)
	if got != "https://www.google.com/maps/search/?api=1&query=6.4336,100.1951" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestMapsDirectionsURL(t *testing.T) {
	dest := types.Coordinate{Latitude: 6.44, Longitude: 100.2}

	got := reports.MapsDirectionsURL(&types.Coordinate{Latitude: 6.4, Longitude: 100.1}, dest)
	want := "https://www.google.com/maps/dir/?api=1&destination=6.44%2C100.2&origin=6.4%2C100.1"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}

	got = reports.MapsDirectionsURL(nil, dest)
	want = "https://www.google.com/maps/dir/?api=1&destination=6.44%2C100.2"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}
