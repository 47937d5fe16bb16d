// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/crossrec/internal/catalog"
	"github.com/tomtom215/crossrec/internal/recommend"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "crossrec-api"

// defaultMaxBodyBytes bounds POST bodies.
const defaultMaxBodyBytes = 1 << 20

// Recommender is the engine surface the handlers need. *recommend.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Categories() []catalog.CategoryInfo
	CatalogVersion() uint64
	Stats() recommend.Stats
}

// Handler serves the public HTTP endpoints.
type Handler struct {
	engine       Recommender
	version      string
	maxBodyBytes int64
}

// NewHandler creates a handler backed by engine. version is shown on the banner.
func NewHandler(engine Recommender, version string) *Handler {
	return &Handler{
		engine:       engine,
		version:      version,
		maxBodyBytes: defaultMaxBodyBytes,
	}
}

// Root handles GET / with a service banner.
// @Summary Service banner
// @Description Returns the service name and build version
// @Tags Core
// @Produce json
// @Success 200 {object} BannerResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, BannerResponse{
		Message: "Crossrec Recommendation API",
		Version: h.version,
	})
}

// Categories handles GET /categories.
// @Summary List categories
// @Description Lists the categories of the active catalog in catalog order
// @Tags Catalog
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /categories [get]
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	infos := h.engine.Categories()

	resp := CategoriesResponse{
		Categories:  make([]string, len(infos)),
		Description: "Available content categories for recommendations",
		Details:     make([]CategoryDetail, len(infos)),
	}
	for i, info := range infos {
		resp.Categories[i] = string(info.Name)
		resp.Details[i] = CategoryDetail{
			Name:        string(info.Name),
			DisplayName: info.DisplayName,
			ItemCount:   info.ItemCount,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /health. It reads engine state only and reports the
// engine's request and result-cache counters.
// @Summary Health check
// @Description Reports catalog state and engine counters. Returns 503 while no catalog is loaded.
// @Tags Core
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	infos := h.engine.Categories()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = string(info.Name)
	}

	stats := h.engine.Stats()
	resp := HealthResponse{
		Status:         "healthy",
		Service:        ServiceName,
		CatalogVersion: h.engine.CatalogVersion(),
		Categories:     names,
		Stats:          &stats,
	}

	status := http.StatusOK
	if resp.CatalogVersion == 0 {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
