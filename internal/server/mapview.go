package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"
)

const permissionDenied = "denied"

func (s *Service) handleMap(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	data := &types.MapPageData{
		BasePageData: types.BasePageData{Title: "Map"},
		Districts:    types.Districts(),
		District:     types.DistrictAll,
		Loading:      true,
		Pins:         make([]*types.MapPin, 0),
	}

	var query types.MapQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		log.WithError(err).Debug("ignoring undecodable map query")
	}

	if strings.TrimSpace(query.District) != "" {
		district, err := types.ParseDistrict(query.District)
		if err != nil {
			data.Flash = errorFlash(err)
			s.renderMap(w, r, data)
			return
		}
		data.District = district
	}

	var location *types.Coordinate
	switch {
	case query.Permission == permissionDenied:
		data.Flash = errorFlash(types.ErrLocationPermissionDenied)
	case query.Latitude != nil && query.Longitude != nil:
		location = &types.Coordinate{Latitude: *query.Latitude, Longitude: *query.Longitude}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	views, err := s.query.FetchPending(ctx, data.District)
	if err != nil {
		log.WithError(err).WithField("district", data.District).Error("failed to fetch pending reports for map")
		data.Flash = errorFlash(err)
		views = nil
	}

	state := reports.NewMapState(data.District, location, views)
	data.Location = state.Location
	data.Loading = state.Loading
	data.Pins = state.Pins

	s.renderMap(w, r, data)
}

func (s *Service) renderMap(w http.ResponseWriter, r *http.Request, data *types.MapPageData) {
	if err := s.renderTemplate(w, r, "page.map", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render map page")
		s.internalServerError(w)
	}
}

func (s *Service) handleMapLocation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/map", types.ErrInvalidNavigation)
		return
	}

	lat, lon := r.Form.Get("lat"), r.Form.Get("lon")
	if strings.TrimSpace(lat) == "" || strings.TrimSpace(lon) == "" {
		s.redirectWithError(w, r, "/map", types.ErrInvalidNavigation)
		return
	}

	var query types.LocationQuery
	if err := decoder.Decode(&query, r.Form); err != nil {
		s.requestLogger(r).WithError(err).Debug("invalid location query")
		s.redirectWithError(w, r, "/map", types.ErrInvalidNavigation)
		return
	}

	selected := types.Coordinate{Latitude: query.Latitude, Longitude: query.Longitude}

	var current *types.Coordinate
	if query.FromLatitude != nil && query.FromLongitude != nil {
		current = &types.Coordinate{Latitude: *query.FromLatitude, Longitude: *query.FromLongitude}
	}

	data := &types.LocationPageData{
		BasePageData:  types.BasePageData{Title: "Location"},
		Selected:      selected,
		Current:       current,
		SearchURL:     reports.MapsSearchURL(selected.Latitude, selected.Longitude),
		DirectionsURL: reports.MapsDirectionsURL(current, selected),
	}

	if err := s.renderTemplate(w, r, "page.location", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render location page")
		s.internalServerError(w)
	}
}
