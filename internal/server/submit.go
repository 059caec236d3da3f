package server

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"

	"github.com/sirupsen/logrus"
)

const submitSuccessMessage = "Report submitted successfully!"

func (s *Service) handleGetSubmit(w http.ResponseWriter, r *http.Request) {
	residentID := r.PathValue("residentID")
	reportID := r.PathValue("reportID")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report, err := s.loader.LoadReport(ctx, residentID, reportID)
	if err != nil {
		s.requestLogger(r).WithError(err).WithFields(logrus.Fields{
			"resident_id": residentID,
			"report_id":   reportID,
		}).Error("failed to load report")
		s.redirectWithError(w, r, "/schedule", err)
		return
	}

	data := &types.SubmitPageData{
		BasePageData: types.BasePageData{Title: "Update Status"},
		ResidentID:   report.ResidentID,
		ReportID:     report.ID,
		IssueLabel:   reports.IssueLabel(report),
		ActionURL:    submitPath(report.ResidentID, report.ID),
	}

	s.renderSubmit(w, r, data)
}

func (s *Service) handlePostSubmit(w http.ResponseWriter, r *http.Request) {
	residentID := r.PathValue("residentID")
	reportID := r.PathValue("reportID")
	back := submitPath(residentID, reportID)
	log := s.requestLogger(r).WithFields(logrus.Fields{
		"resident_id": residentID,
		"report_id":   reportID,
	})

	input, cleanup, err := s.parseCompletion(w, r, residentID, reportID)
	if err != nil {
		log.WithError(err).Debug("invalid submit form")
		s.redirectWithError(w, r, back, types.ErrInvalidSubmission)
		return
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.config.WriteTimeoutSec)*time.Second)
	defer cancel()

	_, err = s.completer.CompleteReport(ctx, input)
	switch {
	case errors.Is(err, types.ErrSubmissionDeclined):
		data := &types.SubmitPageData{
			BasePageData: types.BasePageData{Title: "Update Status"},
			ResidentID:   residentID,
			ReportID:     reportID,
			Weight:       input.Weight,
			ActionURL:    back,
			Confirming:   true,

			// Browsers never refill a file input, so the photo has to be
			// chosen again before the confirmed POST.
			ReattachPhoto: input.Photo != nil,
		}
		if report, lerr := s.loader.LoadReport(ctx, residentID, reportID); lerr == nil {
			data.IssueLabel = reports.IssueLabel(report)
		}
		s.renderSubmit(w, r, data)
	case err != nil:
		log.WithError(err).Error("failed to complete report")
		s.redirectWithError(w, r, back, err)
	default:
		s.redirectWithNotice(w, r, "/", "Success", submitSuccessMessage)
	}
}

func (s *Service) renderSubmit(w http.ResponseWriter, r *http.Request, data *types.SubmitPageData) {
	if err := s.renderTemplate(w, r, "page.submit", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render submit page")
		s.internalServerError(w)
	}
}

// parseCompletion reads the multipart submit form shared by the HTML and JSON
// surfaces. The returned cleanup closes the uploaded file.
func (s *Service) parseCompletion(w http.ResponseWriter, r *http.Request, residentID, reportID string) (reports.CompleteReportInput, func(), error) {
	input := reports.CompleteReportInput{ResidentID: residentID, ReportID: reportID}
	cleanup := func() {}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxPhotoBytes+(1<<20))
	if err := r.ParseMultipartForm(s.config.MaxPhotoBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return input, cleanup, err
	}
	if r.Form == nil {
		if err := r.ParseForm(); err != nil {
			return input, cleanup, err
		}
	}

	var submission types.SubmitForm
	if err := decoder.Decode(&submission, r.Form); err != nil {
		return input, cleanup, err
	}
	input.Weight = submission.Weight
	input.Confirmed = submission.Confirmed()

	file, header, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return input, cleanup, err
	default:
		input.Photo = photoFromUpload(file, header)
		cleanup = func() { _ = file.Close() }
	}

	return input, cleanup, nil
}

func photoFromUpload(file multipart.File, header *multipart.FileHeader) *types.Photo {
	return &types.Photo{
		Body:        file,
		ContentType: header.Header.Get("Content-Type"),
		FileName:    header.Filename,
		Size:        header.Size,
	}
}
