package types

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrLocationPermissionDenied = errors.New("location permission denied")
	ErrFetchFailed              = errors.New("fetch failed")
	ErrWriteFailed              = errors.New("write failed")
	ErrUploadFailed             = errors.New("upload failed")
	ErrReportNotFound           = errors.New("report not found")
	ErrInvalidNavigation        = errors.New("invalid navigation parameters")
	ErrSubmissionDeclined       = errors.New("submission declined")

	ErrWeightRequired  = fmt.Errorf("%w: weight is required", ErrValidation)
	ErrUnknownDistrict = fmt.Errorf("%w: unknown district", ErrValidation)

	// ErrInvalidSubmission covers submit forms that could not be read, such
	// as an oversized photo or a broken multipart body.
	ErrInvalidSubmission = fmt.Errorf("%w: invalid submission form", ErrValidation)
)
