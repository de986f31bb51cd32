package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/silver-dev/resume-checker/internal/config"
	"github.com/silver-dev/resume-checker/internal/domain"
	"github.com/silver-dev/resume-checker/internal/usecase"
)

// templateCacheControl is sent with graded bundled templates; their content
// only changes on deploy so clients may cache results for a week.
const templateCacheControl = "public, max-age=604800"

// Server aggregates handler dependencies.
type Server struct {
	Cfg      config.Config
	Grades   *usecase.GradeService
	Feedback *usecase.FeedbackService
	Ready    func(ctx context.Context) error

	fetcher *http.Client
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, grades *usecase.GradeService, feedback *usecase.FeedbackService, ready func(ctx context.Context) error) *Server {
	return &Server{
		Cfg:      cfg,
		Grades:   grades,
		Feedback: feedback,
		Ready:    ready,
		fetcher: &http.Client{
			Timeout:   cfg.FetchTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GradeHandler grades a resume submitted as a multipart upload, a remote URL
// or a bundled template path.
func (s *Server) GradeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := s.resolveSource(w, r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		res, err := s.Grades.Grade(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if req.Kind == domain.SourceTemplate {
			w.Header().Set("Cache-Control", templateCacheControl)
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// resolveSource turns the incoming request into a GradeRequest. Priority:
// a url query parameter (template path or remote URL) wins over the body.
func (s *Server) resolveSource(w http.ResponseWriter, r *http.Request) (domain.GradeRequest, error) {
	if rawURL := r.URL.Query().Get("url"); rawURL != "" {
		if key, ok := templateKey(rawURL); ok {
			data, err := s.readTemplate(key)
			if err != nil {
				return domain.GradeRequest{}, err
			}
			return domain.GradeRequest{Source: data, Kind: domain.SourceTemplate, TemplateKey: key}, nil
		}
		data, err := s.fetchRemote(r.Context(), rawURL)
		if err != nil {
			return domain.GradeRequest{}, err
		}
		return domain.GradeRequest{Source: data, Kind: domain.SourceRemote}, nil
	}

	if r.Method != http.MethodPost {
		return domain.GradeRequest{}, fmt.Errorf("%w: grading uploads requires POST", domain.ErrNotFound)
	}
	data, err := s.readUpload(w, r)
	if err != nil {
		return domain.GradeRequest{}, err
	}
	return domain.GradeRequest{Source: data, Kind: domain.SourceUpload}, nil
}

// templateKey reports whether rawURL addresses a bundled template and
// returns its normalized key.
func templateKey(rawURL string) (string, bool) {
	p := path.Clean(strings.TrimPrefix(rawURL, "/"))
	if !strings.HasPrefix(p, "templates/") {
		return "", false
	}
	return p, true
}

// readTemplate loads a bundled template PDF from the assets directory. The
// key is already path.Clean'ed, so traversal cannot escape the assets root.
func (s *Server) readTemplate(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Cfg.AssetsDir, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: unknown template %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: read template: %v", domain.ErrInternal, err)
	}
	return data, nil
}

// fetchRemote downloads a resume from an absolute http(s) URL, capped at the
// upload size limit.
func (s *Server) fetchRemote(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: url must be absolute http(s)", domain.ErrInvalidArgument)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	resp, err := s.fetcher.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch resume url: %v", domain.ErrInvalidArgument, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: resume url returned status %d", domain.ErrInvalidArgument, resp.StatusCode)
	}

	maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read resume url body: %v", domain.ErrInvalidArgument, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: resume exceeds %dMB limit", domain.ErrInvalidArgument, s.Cfg.MaxUploadMB)
	}
	return data, nil
}

// readUpload extracts the resume file from a multipart body.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		return nil, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument)
	}
	maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("%w: parse multipart form: %v", domain.ErrInvalidArgument, err)
	}
	file, _, err := r.FormFile("resume")
	if err != nil {
		return nil, fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument)
	}
	defer func() { _ = file.Close() }()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read resume file: %v", domain.ErrInvalidArgument, err)
	}
	return data, nil
}

type feedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FeedbackHandler forwards user feedback about a grading result by email.
// The response envelope uses success/message instead of the error shape so
// the form UI can render it directly.
func (s *Server) FeedbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, err := s.parseFeedback(w, r)
		if err == nil {
			err = s.Feedback.Submit(r.Context(), fb)
		}
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrInvalidArgument) {
				status = http.StatusBadRequest
			}
			LoggerFrom(r).Error("feedback submission failed", slogErr(err))
			writeJSON(w, status, feedbackResponse{Success: false, Message: publicMessage(err)})
			return
		}
		writeJSON(w, http.StatusOK, feedbackResponse{Success: true})
	}
}

func (s *Server) parseFeedback(w http.ResponseWriter, r *http.Request) (domain.Feedback, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		return domain.Feedback{}, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument)
	}
	maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return domain.Feedback{}, fmt.Errorf("%w: parse multipart form: %v", domain.ErrInvalidArgument, err)
	}

	fb := domain.Feedback{
		Description: r.FormValue("description"),
		Grade:       r.FormValue("grade"),
		URL:         r.FormValue("url"),
	}
	var err error
	if fb.RedFlags, err = parseFlagList(r.FormValue("red_flags")); err != nil {
		return domain.Feedback{}, err
	}
	if fb.YellowFlags, err = parseFlagList(r.FormValue("yellow_flags")); err != nil {
		return domain.Feedback{}, err
	}

	if file, _, ferr := r.FormFile("resume"); ferr == nil {
		defer func() { _ = file.Close() }()
		if fb.Resume, err = io.ReadAll(file); err != nil {
			return domain.Feedback{}, fmt.Errorf("%w: read resume file: %v", domain.ErrInvalidArgument, err)
		}
	}
	return fb, nil
}

// parseFlagList decodes a JSON string array form field; empty means no flags.
func parseFlagList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var flags []string
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return nil, fmt.Errorf("%w: flags must be a JSON string array: %v", domain.ErrInvalidArgument, err)
	}
	return flags, nil
}

// ReadyzHandler reports readiness of the grading dependencies.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Ready != nil {
			if err := s.Ready(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "reason": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
