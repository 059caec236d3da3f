package reports

import (
	"errors"

	"wastetrack/pkg/types"
)

// Notification is the single modal message a surface shows for a failure.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NotificationFor maps an error to its category's notification. Unknown
// errors get a generic message.
func NotificationFor(err error) Notification {
	switch {
	case errors.Is(err, types.ErrLocationPermissionDenied):
		return Notification{Title: "Permission Denied", Message: "Location permission is required to use this feature."}
	case errors.Is(err, types.ErrWeightRequired):
		return Notification{Title: "Error", Message: "Please enter the weight."}
	case errors.Is(err, types.ErrUnknownDistrict):
		return Notification{Title: "Error", Message: "Please select a valid district."}
	case errors.Is(err, types.ErrInvalidSubmission):
		return Notification{Title: "Error", Message: "The submission could not be read. Check the weight and photo size and try again."}
	case errors.Is(err, types.ErrValidation):
		return Notification{Title: "Error", Message: "Invalid request. Please check the values and try again."}
	case errors.Is(err, types.ErrInvalidNavigation):
		return Notification{Title: "Error", Message: "Invalid parameters. Please try again."}
	case errors.Is(err, types.ErrSubmissionDeclined):
		return Notification{Title: "Cancelled", Message: "The report was not submitted."}
	case errors.Is(err, types.ErrReportNotFound):
		return Notification{Title: "Error", Message: "No such document found!"}
	case errors.Is(err, types.ErrUploadFailed):
		return Notification{Title: "Error", Message: "Image upload failed."}
	case errors.Is(err, types.ErrWriteFailed):
		return Notification{Title: "Error", Message: "Failed to submit report."}
	case errors.Is(err, types.ErrFetchFailed):
		return Notification{Title: "Error", Message: "Failed to fetch reports."}
	default:
		return Notification{Title: "Error", Message: "Something went wrong. Please try again."}
	}
}
