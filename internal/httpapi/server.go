// Package httpapi exposes the score report over plain HTTP with JSON
// bodies and chart images.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/godilite/score-report/internal/chart"
	"github.com/godilite/score-report/internal/input"
	"github.com/godilite/score-report/internal/reference"
	"github.com/godilite/score-report/internal/service"
	"github.com/godilite/score-report/pkg/metrics"
)

const maxBodyBytes = 1 << 20

// ReportService is the part of the core the HTTP layer needs.
type ReportService interface {
	BuildReport(scores []service.SubjectScore) (service.AnalysisReport, error)
	Analyze(scores []service.SubjectScore) (service.Analysis, error)
}

// ChartRenderer draws report charts.
type ChartRenderer interface {
	Comparison(w io.Writer, report service.AnalysisReport, format chart.Format) error
	Percentile(w io.Writer, report service.AnalysisReport, format chart.Format) error
}

type Handler struct {
	report  ReportService
	charts  ChartRenderer
	metrics *metrics.Manager
	logger  *zap.Logger
}

// NewHandler wires the routes. A nil metrics manager disables /metrics and
// request accounting.
func NewHandler(report ReportService, charts ChartRenderer, m *metrics.Manager, logger *zap.Logger) *Handler {
	if report == nil {
		panic("nil ReportService provided to NewHandler")
	}
	if charts == nil {
		charts = chart.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		report:  report,
		charts:  charts,
		metrics: m,
		logger:  logger.Named("http-handler"),
	}
}

// Router returns the mux router serving every route.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.metricsMiddleware)

	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.HandleFunc("/v1/report", h.analyze).Methods(http.MethodPost)
	r.HandleFunc("/v1/charts/{kind:comparison|percentile}", h.renderChart).Methods(http.MethodPost)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics.Handler()).Methods(http.MethodGet)
	}
	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	scores, err := readScores(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	analysis, err := h.report.Analyze(scores)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) renderChart(w http.ResponseWriter, r *http.Request) {
	format, err := chart.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	scores, err := readScores(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	report, err := h.report.BuildReport(scores)
	if err != nil {
		h.writeError(w, err)
		return
	}

	draw := h.charts.Comparison
	if mux.Vars(r)["kind"] == "percentile" {
		draw = h.charts.Percentile
	}

	var buf bytes.Buffer
	if err := draw(&buf, report, format); err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("write chart", zap.Error(err))
	}
}

func readScores(r *http.Request) ([]service.SubjectScore, error) {
	return input.ReadScores(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, input.ErrMalformed),
		errors.Is(err, service.ErrValidation),
		errors.Is(err, chart.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, chart.ErrNoData):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, reference.ErrConfiguration):
		h.logger.Error("reference data misconfigured", zap.Error(err))
	default:
		h.logger.Error("unexpected error", zap.Error(err))
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		h.metrics.RecordHTTPRequest(route, r.Method, strconv.Itoa(rec.status), time.Since(start))
	})
}
