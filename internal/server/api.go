package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"
)

type apiError struct {
	Error reports.Notification `json:"error"`
}

type reportsResponse struct {
	Seq     uint64              `json:"seq"`
	Reports []*types.ReportView `json:"reports"`
}

type pinsResponse struct {
	Seq  uint64          `json:"seq"`
	Pins []*types.MapPin `json:"pins"`
}

func (s *Service) handleAPIReports(w http.ResponseWriter, r *http.Request) {
	query, district, err := s.decodeReportsQuery(r, s.defaultDistrict())
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	views, err := s.fetchPending(r, district)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, reportsResponse{Seq: query.Seq, Reports: views})
}

func (s *Service) handleAPIPins(w http.ResponseWriter, r *http.Request) {
	query, district, err := s.decodeReportsQuery(r, types.DistrictAll)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	views, err := s.fetchPending(r, district)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, pinsResponse{Seq: query.Seq, Pins: reports.Pins(views)})
}

func (s *Service) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report, err := s.loader.LoadReport(ctx, r.PathValue("residentID"), r.PathValue("reportID"))
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, report)
}

func (s *Service) handleAPIComplete(w http.ResponseWriter, r *http.Request) {
	input, cleanup, err := s.parseCompletion(w, r, r.PathValue("residentID"), r.PathValue("reportID"))
	if err != nil {
		s.writeAPIError(w, r, errors.Join(types.ErrInvalidSubmission, err))
		return
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.config.WriteTimeoutSec)*time.Second)
	defer cancel()

	completion, err := s.completer.CompleteReport(ctx, input)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, completion)
}

func (s *Service) decodeReportsQuery(r *http.Request, fallback types.District) (*types.ReportsQuery, types.District, error) {
	var query types.ReportsQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		return nil, "", errors.Join(types.ErrValidation, err)
	}

	if strings.TrimSpace(query.District) == "" {
		return &query, fallback, nil
	}

	district, err := types.ParseDistrict(query.District)
	if err != nil {
		return nil, "", err
	}

	return &query, district, nil
}

func (s *Service) fetchPending(r *http.Request, district types.District) ([]*types.ReportView, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	return s.query.FetchPending(ctx, district)
}

func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to encode response")
	}
}

func (s *Service) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := s.requestLogger(r).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("api request failed")
	} else {
		entry.Debug("api request rejected")
	}

	s.writeJSON(w, r, status, apiError{Error: reports.NotificationFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrInvalidNavigation):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrSubmissionDeclined):
		return http.StatusConflict
	case errors.Is(err, types.ErrUploadFailed), errors.Is(err, types.ErrFetchFailed), errors.Is(err, types.ErrWriteFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
