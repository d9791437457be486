// Package server implements the remote persistence boundary the ledger posts
// to: a small HTTP service that validates and stores the saved record set.
package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tdnguyen/sales-ledger/internal/entity"
)

var (
	saveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_save_requests_total",
		Help: "Save requests by outcome.",
	}, []string{"outcome"})

	savedRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sales_saved_rows_total",
		Help: "Rows accepted by the save endpoint.",
	})
)

// Service handles the sales save API.
type Service struct {
	repo   SalesRepository
	schema map[string]any
	logger *slog.Logger
}

func NewService(repo SalesRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		schema: BuildSalesJSONSchema(),
		logger: logger,
	}
}

// Router builds the gin engine with the API and metrics routes registered.
func (s *Service) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/sales", s.SaveSales)
		api.GET("/sales", s.ListSales)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// SaveSales validates the posted record array and replaces the stored batch.
// The response envelope always carries a status field; the client decides
// success solely on status == "success".
func (s *Service) SaveSales(c *gin.Context) {
	start := time.Now()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		saveRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "unreadable body"})
		return
	}

	if err := ValidateJSONAgainstSchema(s.schema, body); err != nil {
		saveRequests.WithLabelValues("invalid").Inc()
		s.logger.Warn("save.payload_invalid", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	var records []entity.Record
	if err := json.Unmarshal(body, &records); err != nil {
		saveRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "malformed record array"})
		return
	}

	batchID, err := s.repo.ReplaceBatch(c.Request.Context(), records)
	if err != nil {
		saveRequests.WithLabelValues("storage_error").Inc()
		s.logger.Error("save.storage_error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "storage failure"})
		return
	}

	saveRequests.WithLabelValues("success").Inc()
	savedRows.Add(float64(len(records)))
	s.logger.Info("save.ok",
		"batch_id", batchID.String(),
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ListSales returns the most recently saved batch.
func (s *Service) ListSales(c *gin.Context) {
	records, err := s.repo.LatestBatch(c.Request.Context())
	if err != nil {
		s.logger.Error("list.storage_error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "storage failure"})
		return
	}
	if records == nil {
		records = []entity.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "sales": records})
}
