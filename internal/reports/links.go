package reports

import (
	"net/url"
	"strconv"

	"wastetrack/pkg/types"
)

const (
	mapsSearchURL     = "https://www.google.com/maps/search/"
	mapsDirectionsURL = "https://www.google.com/maps/dir/"
)

// MapsSearchURL opens a coordinate in an external mapping application.
func MapsSearchURL(lat, lon float64) string {
	return mapsSearchURL + "?api=1&query=" + formatCoordinate(lat, lon)
}

// MapsDirectionsURL routes from the current location to a selected point.
// A nil origin lets the mapping application use the device location.
func MapsDirectionsURL(origin *types.Coordinate, destination types.Coordinate) string {
	v := url.Values{}
	v.Set("api", "1")
	v.Set("destination", formatCoordinate(destination.Latitude, destination.Longitude))
	if origin != nil {
		v.Set("origin", formatCoordinate(origin.Latitude, origin.Longitude))
	}
	return mapsDirectionsURL + "?" + v.Encode()
}

func formatCoordinate(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
