package reports

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"wastetrack/pkg/types"

	"github.com/sirupsen/logrus"
)

type CompleteReportInput struct {
	ResidentID string
	ReportID   string
	Weight     string
	Photo      *types.Photo

	// Confirmed records the answer to the "submit this report?" prompt.
	Confirmed bool
}

type Completer struct {
	reports ReportStore
	photos  PhotoStore
	logger  logrus.FieldLogger
	now     func() time.Time
}

var _ ReportCompleter = (*Completer)(nil)

type CompleterOption func(*Completer)

func WithClock(now func() time.Time) CompleterOption {
	return func(c *Completer) {
		c.now = now
	}
}

func NewCompleter(reports ReportStore, photos PhotoStore, logger logrus.FieldLogger, opts ...CompleterOption) *Completer {
	c := &Completer{
		reports: reports,
		photos:  photos,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CompleteReport moves a report to Success. A supplied photo is uploaded
// first; if that fails the report is left untouched. There is no status
// guard, so completing an already completed report writes again.
func (c *Completer) CompleteReport(ctx context.Context, input CompleteReportInput) (*types.ReportCompletion, error) {
	residentID := strings.TrimSpace(input.ResidentID)
	reportID := strings.TrimSpace(input.ReportID)
	if residentID == "" || reportID == "" {
		return nil, types.ErrInvalidNavigation
	}

	weight := strings.TrimSpace(input.Weight)
	if weight == "" {
		return nil, types.ErrWeightRequired
	}

	if !input.Confirmed {
		return nil, types.ErrSubmissionDeclined
	}

	now := c.now()
	entry := c.logger.WithFields(logrus.Fields{
		"resident_id": residentID,
		"report_id":   reportID,
	})

	var photoURL string
	if input.Photo != nil && input.Photo.Body != nil {
		key := PhotoKey(residentID, now, input.Photo)

		url, err := c.photos.UploadPhoto(ctx, key, input.Photo.Body, photoContentType(input.Photo))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrUploadFailed, err)
		}

		entry.WithField("key", key).Debug("uploaded completion photo")
		photoURL = url
	}

	completion := &types.ReportCompletion{
		WeightWaste:    weight,
		PicAfterPickup: photoURL,
		Status:         types.ReportStatusSuccess,
		DateCollection: now,
	}

	err := c.reports.CompleteReport(ctx, residentID, reportID, completion)
	if err != nil {
		if errors.Is(err, types.ErrReportNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", types.ErrReportNotFound, residentID, reportID)
		}
		return nil, fmt.Errorf("%w: %w", types.ErrWriteFailed, err)
	}

	entry.Info("report completed")

	return completion, nil
}

// PhotoKey namespaces an upload by resident and upload time:
// reports/{residentID}/{unixMillis}{ext}.
func PhotoKey(residentID string, at time.Time, photo *types.Photo) string {
	return fmt.Sprintf("reports/%s/%d%s", residentID, at.UnixMilli(), photoExtension(photo))
}

func photoExtension(photo *types.Photo) string {
	switch strings.ToLower(photoContentType(photo)) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ".jpg"
	}
}

func photoContentType(photo *types.Photo) string {
	if ct := strings.TrimSpace(photo.ContentType); ct != "" && ct != "application/octet-stream" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err == nil {
			return mediaType
		}
	}

	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(photo.FileName))); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err == nil {
			return mediaType
		}
	}

	return "image/jpeg"
}
