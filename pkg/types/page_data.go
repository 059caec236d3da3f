package types

type FlashKind string

const (
	FlashNotice FlashKind = "notice"
	FlashError  FlashKind = "error"
)

// Flash is a one-shot notification carried across a redirect.
type Flash struct {
	Kind    FlashKind
	Title   string
	Message string
}

type FlashSetter interface {
	SetFlash(flash *Flash)
}

type BasePageData struct {
	Title string
	Flash *Flash
}

func (d *BasePageData) SetFlash(flash *Flash) {
	d.Flash = flash
}

type HomePageData struct {
	BasePageData
	Districts []District
}

type ScheduleRow struct {
	Label     string
	View      *ReportView
	SearchURL string
	SubmitURL string
}

type SchedulePageData struct {
	BasePageData
	Districts []District
	District  District
	Rows      []*ScheduleRow
}

type MapPageData struct {
	BasePageData
	Districts []District
	District  District
	Location  *Coordinate
	Loading   bool
	Pins      []*MapPin
}

type LocationPageData struct {
	BasePageData
	Selected      Coordinate
	Current       *Coordinate
	SearchURL     string
	DirectionsURL string
}

type SubmitPageData struct {
	BasePageData
	ResidentID string
	ReportID   string
	IssueLabel string
	Weight     string
	ActionURL  string

	// Confirming is set when the form came back without confirmation.
	Confirming bool

	// ReattachPhoto is set when the unconfirmed POST carried a photo that
	// was discarded.
	ReattachPhoto bool
}

type ScheduleQuery struct {
	District string `form:"district"`
}

// MapQuery carries the device state reported by the client.
type MapQuery struct {
	District   string   `form:"district"`
	Latitude   *float64 `form:"lat"`
	Longitude  *float64 `form:"lon"`
	Permission string   `form:"permission"`
}

type LocationQuery struct {
	Latitude      float64  `form:"lat"`
	Longitude     float64  `form:"lon"`
	FromLatitude  *float64 `form:"from_lat"`
	FromLongitude *float64 `form:"from_lon"`
}

type SubmitForm struct {
	Weight  string `form:"weight"`
	Confirm string `form:"confirm"`
}

func (f *SubmitForm) Confirmed() bool {
	return f.Confirm == "yes"
}

type ReportsQuery struct {
	District string `form:"district"`
	Seq      uint64 `form:"seq"`
}
