// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package api

import "github.com/tomtom215/crossrec/internal/recommend"

// RecommendRequest is the POST /recommend body. Blank preferences and the
// category names are checked again by the engine against the live catalog.
type RecommendRequest struct {
	SourceCategory string   `json:"source_category" validate:"required,notblank,max=64"`
	TargetCategory string   `json:"target_category" validate:"required,notblank,max=64"`
	Preferences    []string `json:"preferences" validate:"required,dive,max=500"`

	// Limit of zero or less selects the configured default.
	Limit int `json:"limit"`
}

// RecommendationItem is one ranked item in a response.
type RecommendationItem struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	Genre           string                 `json:"genre,omitempty"`
	Rating          *float64               `json:"rating,omitempty"`
	Year            *int                   `json:"year,omitempty"`
	SimilarityScore float64                `json:"similarity_score"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// RecommendResponse is the POST /recommend result.
type RecommendResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	SourceCategory  string               `json:"source_category"`
	TargetCategory  string               `json:"target_category"`
	TotalCount      int                  `json:"total_count"`
}

// CategoryDetail describes one category.
type CategoryDetail struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ItemCount   int    `json:"item_count"`
}

// CategoriesResponse is the GET /categories result.
type CategoriesResponse struct {
	Categories  []string         `json:"categories"`
	Description string           `json:"description"`
	Details     []CategoryDetail `json:"details"`
}

// HealthResponse is the GET /health result.
type HealthResponse struct {
	Status         string   `json:"status"`
	Service        string   `json:"service"`
	CatalogVersion uint64   `json:"catalog_version"`
	Categories     []string `json:"categories"`

	// Stats holds engine request and result-cache counters.
	Stats *recommend.Stats `json:"stats,omitempty"`
}

// BannerResponse is the GET / result.
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
