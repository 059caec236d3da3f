package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	query     reports.QueryService
	completer reports.ReportCompleter
	loader    reports.ReportLoader
	templates *template.Template

	flash *securecookie.SecureCookie

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	query reports.QueryService,
	completer reports.ReportCompleter,
	loader reports.ReportLoader,
) (*Service, error) {
	mux := flow.New()

	hashKey, blockKey := flashKeys(config, logger)

	s := &Service{
		logger:    logger,
		config:    config,
		query:     query,
		completer: completer,
		loader:    loader,
		flash:     securecookie.New(hashKey, blockKey),

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.RequestID)
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/schedule", s.handleSchedule, http.MethodGet)
	r.HandleFunc("/map", s.handleMap, http.MethodGet)
	r.HandleFunc("/map/location", s.handleMapLocation, http.MethodGet)

	r.HandleFunc("/residents/:residentID/reports/:reportID/submit", s.handleGetSubmit, http.MethodGet)
	r.HandleFunc("/residents/:residentID/reports/:reportID/submit", s.handlePostSubmit, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.JSONContentType)

		r.HandleFunc("/api/reports", s.handleAPIReports, http.MethodGet)
		r.HandleFunc("/api/pins", s.handleAPIPins, http.MethodGet)
		r.HandleFunc("/api/residents/:residentID/reports/:reportID", s.handleAPIReport, http.MethodGet)
		r.HandleFunc("/api/residents/:residentID/reports/:reportID/complete", s.handleAPIComplete, http.MethodPost)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"dict": func(values ...any) (map[string]any, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			out := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", values[i])
				}
				out[key] = values[i+1]
			}
			return out, nil
		},
		"coord": func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// flashKeys decodes the configured cookie keys. Missing keys are generated,
// which invalidates flash cookies across restarts.
func flashKeys(config *types.Config, logger *logrus.Logger) ([]byte, []byte) {
	hashKey, _ := base64.StdEncoding.DecodeString(config.FlashHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.FlashBlockKey)

	if len(hashKey) == 0 {
		logger.Warn("FLASH_HASH_KEY not set, generating an ephemeral key")
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return hashKey, blockKey
}
