package server

import (
	"net/http"

	"wastetrack/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	if setter, ok := data.(types.FlashSetter); ok {
		if flash := s.popFlash(w, r); flash != nil {
			setter.SetFlash(flash)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}
