// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/crossrec/internal/logging"
	"github.com/tomtom215/crossrec/internal/recommend"
	"github.com/tomtom215/crossrec/internal/validation"
)

// Recommend handles POST /recommend.
//
// Malformed JSON is a 400 BAD_REQUEST; a body that fails struct or engine
// validation is a 400 VALIDATION_ERROR; a timeout is a 503 with Retry-After.
// @Summary Cross-category recommendations
// @Description Ranks items of the target category against free-text preferences from the source category
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Recommendation request"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} APIResponse
// @Failure 413 {object} APIResponse
// @Failure 429 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "Request body too large", nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON request body", nil)
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		SourceCategory: req.SourceCategory,
		TargetCategory: req.TargetCategory,
		Preferences:    req.Preferences,
		Limit:          req.Limit,
		RequestID:      logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("source_category", resp.SourceCategory).
		Str("target_category", resp.TargetCategory).
		Int("preferences", len(req.Preferences)).
		Int("returned", resp.TotalCount).
		Bool("cache_hit", resp.Metadata.CacheHit).
		Msg("recommendations generated")

	writeJSON(w, http.StatusOK, toRecommendResponse(resp))
}

// toRecommendResponse flattens engine results into the wire shape.
func toRecommendResponse(resp *recommend.Response) RecommendResponse {
	out := RecommendResponse{
		Recommendations: make([]RecommendationItem, len(resp.Recommendations)),
		SourceCategory:  resp.SourceCategory,
		TargetCategory:  resp.TargetCategory,
		TotalCount:      resp.TotalCount,
	}

	for i := range resp.Recommendations {
		rec := &resp.Recommendations[i]
		item := rec.Item

		meta := make(map[string]interface{}, len(item.Metadata)+2)
		for k, v := range item.Metadata {
			meta[k] = v
		}
		meta["matched_preference"] = rec.MatchedPreference
		if rec.AnchorItemID != "" {
			meta["anchor_item"] = rec.AnchorItemID
		}

		out.Recommendations[i] = RecommendationItem{
			ID:              item.ID,
			Title:           item.Title,
			Description:     item.Description,
			Genre:           item.Genre,
			Rating:          item.Rating,
			Year:            item.Year,
			SimilarityScore: rec.Score,
			Metadata:        meta,
		}
	}
	return out
}
