package server

import (
	"net/http"

	"wastetrack/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "Home"},
		Districts:    types.Districts(),
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.requestLogger(r).WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (s *Service) defaultDistrict() types.District {
	district, err := types.ParseDistrict(s.config.DefaultDistrict)
	if err != nil || district.IsAll() {
		return types.DistrictArau
	}
	return district
}
