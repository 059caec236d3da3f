package server

import (
	"net/http"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"
)

func (s *Service) setFlash(w http.ResponseWriter, flash *types.Flash) {
	encoded, err := s.flash.Encode(s.config.FlashCookieName, flash)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode flash cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.FlashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   !s.config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
		Path:     "/",
	})
}

// popFlash reads and clears the flash cookie.
func (s *Service) popFlash(w http.ResponseWriter, r *http.Request) *types.Flash {
	cookie, err := r.Cookie(s.config.FlashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.FlashCookieName,
		Value:    "",
		HttpOnly: true,
		MaxAge:   -1,
		Path:     "/",
	})

	var flash types.Flash
	if err := s.flash.Decode(s.config.FlashCookieName, cookie.Value, &flash); err != nil {
		s.logger.WithError(err).Debug("discarding undecodable flash cookie")
		return nil
	}

	return &flash
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, path, title, message string) {
	s.setFlash(w, &types.Flash{Kind: types.FlashNotice, Title: title, Message: message})
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	n := reports.NotificationFor(err)
	s.setFlash(w, &types.Flash{Kind: types.FlashError, Title: n.Title, Message: n.Message})
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func errorFlash(err error) *types.Flash {
	n := reports.NotificationFor(err)
	return &types.Flash{Kind: types.FlashError, Title: n.Title, Message: n.Message}
}
