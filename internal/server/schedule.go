package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"
)

func (s *Service) handleSchedule(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	data := &types.SchedulePageData{
		BasePageData: types.BasePageData{Title: "Schedule"},
		Districts:    types.Districts(),
		District:     s.defaultDistrict(),
		Rows:         make([]*types.ScheduleRow, 0),
	}

	var query types.ScheduleQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		log.WithError(err).Debug("ignoring undecodable schedule query")
	}

	if strings.TrimSpace(query.District) != "" {
		district, err := types.ParseDistrict(query.District)
		if err != nil || district.IsAll() {
			data.Flash = errorFlash(types.ErrUnknownDistrict)
			s.renderSchedule(w, r, data)
			return
		}
		data.District = district
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	views, err := s.query.FetchPending(ctx, data.District)
	if err != nil {
		log.WithError(err).WithField("district", data.District).Error("failed to fetch pending reports")
		data.Flash = errorFlash(err)
		s.renderSchedule(w, r, data)
		return
	}

	for _, v := range views {
		row := &types.ScheduleRow{
			Label:     fmt.Sprintf("%s - %s", v.Issue, v.ShortID),
			View:      v,
			SubmitURL: submitPath(v.ResidentID, v.ReportID),
		}
		if v.HasCoordinates() {
			row.SearchURL = reports.MapsSearchURL(*v.Latitude, *v.Longitude)
		}
		data.Rows = append(data.Rows, row)
	}

	s.renderSchedule(w, r, data)
}

func (s *Service) renderSchedule(w http.ResponseWriter, r *http.Request, data *types.SchedulePageData) {
	if err := s.renderTemplate(w, r, "page.schedule", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render schedule page")
		s.internalServerError(w)
	}
}

func submitPath(residentID, reportID string) string {
	return fmt.Sprintf("/residents/%s/reports/%s/submit", url.PathEscape(residentID), url.PathEscape(reportID))
}
