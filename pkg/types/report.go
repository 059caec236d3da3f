package types

import (
	"io"
	"time"
)

type ReportStatus string

const (
	ReportStatusPending ReportStatus = "Pending"
	ReportStatusSuccess ReportStatus = "Success"
)

// ShortIDLength is how many leading characters of a report key are shown
// in lists, pins and issue labels.
const ShortIDLength = 5

type Resident struct {
	ID        string    `db:"id" json:"id"`
	Name      *string   `db:"name" json:"name,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Report is nested under exactly one Resident. (ResidentID, ID) is the
// composite key and never changes once created.
type Report struct {
	ResidentID string       `db:"resident_id" json:"residentId"`
	ID         string       `db:"id" json:"id"`
	District   District     `db:"district" json:"district"`
	Issue      string       `db:"issue" json:"issue"`
	Latitude   *float64     `db:"latitude" json:"latitude,omitempty"`
	Longitude  *float64     `db:"longitude" json:"longitude,omitempty"`
	Status     ReportStatus `db:"status" json:"status"`

	// Written only by the Pending -> Success transition.
	WeightWaste    *string    `db:"weightwaste" json:"weightwaste,omitempty"`
	PicAfterPickup *string    `db:"picafterpickup" json:"picafterpickup,omitempty"`
	DateCollection *time.Time `db:"date_collection" json:"date_collection,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (r *Report) ShortID() string {
	return ShortID(r.ID)
}

func (r *Report) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// ShortID truncates a report key for display.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// ReportFilter holds the equality predicates applied to one resident's
// reports. A nil District means no district predicate.
type ReportFilter struct {
	Status   ReportStatus
	District *District
}

// ReportView is the flattened, denormalized row the query service returns.
type ReportView struct {
	ResidentID string       `json:"residentId"`
	ReportID   string       `json:"reportId"`
	ShortID    string       `json:"shortId"`
	District   District     `json:"district"`
	Issue      string       `json:"issue"`
	Latitude   *float64     `json:"latitude,omitempty"`
	Longitude  *float64     `json:"longitude,omitempty"`
	Status     ReportStatus `json:"status"`
}

func NewReportView(r *Report) *ReportView {
	return &ReportView{
		ResidentID: r.ResidentID,
		ReportID:   r.ID,
		ShortID:    r.ShortID(),
		District:   r.District,
		Issue:      r.Issue,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Status:     r.Status,
	}
}

func (v *ReportView) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// ReportCompletion is the field-level update applied on completion.
type ReportCompletion struct {
	WeightWaste    string       `db:"weightwaste" json:"weightwaste"`
	PicAfterPickup string       `db:"picafterpickup" json:"picafterpickup"`
	Status         ReportStatus `db:"status" json:"status"`
	DateCollection time.Time    `db:"date_collection" json:"date_collection"`
}

// Photo is a completion photo as handed over by the camera or library picker.
type Photo struct {
	Body        io.Reader
	ContentType string
	FileName    string
	Size        int64
}
