package reports

import (
	"fmt"

	"wastetrack/pkg/types"
)

// Pins converts report views to map pins. Views missing either coordinate
// never become pins, even though they still show up in the schedule list.
func Pins(views []*types.ReportView) []*types.MapPin {
	pins := make([]*types.MapPin, 0, len(views))
	for _, v := range views {
		if !v.HasCoordinates() {
			continue
		}

		lat, lon := *v.Latitude, *v.Longitude
		pins = append(pins, &types.MapPin{
			ResidentID:  v.ResidentID,
			ReportID:    v.ReportID,
			ShortID:     v.ShortID,
			District:    v.District,
			Issue:       v.Issue,
			Latitude:    lat,
			Longitude:   lon,
			Title:       fmt.Sprintf("Issue: %s", v.Issue),
			Description: fmt.Sprintf("ID Report: %s", v.ShortID),
			SearchURL:   MapsSearchURL(lat, lon),
		})
	}
	return pins
}

// MapState is what the map surface renders. Without a device location the
// map stays in its loading state; pins are still computed.
type MapState struct {
	District types.District    `json:"district"`
	Location *types.Coordinate `json:"location,omitempty"`
	Loading  bool              `json:"loading"`
	Pins     []*types.MapPin   `json:"pins"`
}

func NewMapState(district types.District, location *types.Coordinate, views []*types.ReportView) *MapState {
	return &MapState{
		District: district,
		Location: location,
		Loading:  location == nil,
		Pins:     Pins(views),
	}
}
