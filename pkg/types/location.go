package types

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type MapPin struct {
	ResidentID  string   `json:"residentId"`
	ReportID    string   `json:"reportId"`
	ShortID     string   `json:"shortId"`
	District    District `json:"district"`
	Issue       string   `json:"issue"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SearchURL   string   `json:"searchUrl"`
}
