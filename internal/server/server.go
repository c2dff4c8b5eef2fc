// Package server exposes the mortgage calculator over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type handler struct {
	logger        *zap.Logger
	calculator    *mortgage.Calculator
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the schedule API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	maxUploadSize := cfg.UploadSizeBytes()
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		calculator:    mortgage.NewCalculator(logger),
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/schedule", h.handleSchedule)
		r.Post("/schedule/upload", h.handleUpload)
		r.Get("/version", h.handleVersion)
	})

	return r
}

// Serve runs the API on cfg.Address until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(logger, cfg, version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "server.Serve"),
			zap.String("address", cfg.Address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server", zap.String("op", "server.Serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

type scheduleResponse struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Segments   []loans.RateSegment `json:"segments"`
	Summary    loans.Summary       `json:"summary"`
	Rows       loans.Schedule      `json:"rows"`
	Yearly     []loans.YearBalance `json:"yearly"`
	Boundaries []int               `json:"boundaries"`
	CSV        string              `json:"csv"`
	Warnings   []string            `json:"warnings,omitempty"`
	Duration   string              `json:"duration"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "server.handleSchedule"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var cfg config.Configuration
	if err := decoder.Decode(&cfg); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}
	cfg.Mortgage.Normalize()

	h.runCalculation(w, r, &cfg, start, op)
}

func (h *handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "server.handleUpload"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.runCalculation(w, r, cfg, start, op)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) runCalculation(w http.ResponseWriter, r *http.Request, cfg *config.Configuration, start time.Time, op string) {
	result, err := h.calculator.Calculate(cfg.Mortgage)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, loans.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.respondError(w, r, status, err.Error(), op)
		return
	}

	csvData, err := output.CsvString(result)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	response := scheduleResponse{
		ID:         result.ID,
		Type:       result.Type,
		Segments:   result.Segments,
		Summary:    result.Summary,
		Rows:       result.Schedule,
		Yearly:     result.Yearly,
		Boundaries: result.Boundaries,
		CSV:        csvData,
		Warnings:   cfg.ValidateConfiguration(),
		Duration:   elapsed.String(),
	}

	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.String("id", result.ID),
		zap.Int("rows", len(response.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("schedule request failed",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("handled request",
				zap.String("op", "server.requestLogger"),
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
