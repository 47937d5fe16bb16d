// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/crossrec/internal/catalog"
	"github.com/tomtom215/crossrec/internal/recommend"
)

// fakeRecommender records the last request and returns canned results.
type fakeRecommender struct {
	resp    *recommend.Response
	err     error
	last    recommend.Request
	calls   int
	infos   []catalog.CategoryInfo
	version uint64
	stats   recommend.Stats
}

func (f *fakeRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeRecommender) Categories() []catalog.CategoryInfo {
	return f.infos
}

func (f *fakeRecommender) CatalogVersion() uint64 {
	return f.version
}

func (f *fakeRecommender) Stats() recommend.Stats {
	return f.stats
}

func newFake() *fakeRecommender {
	year := 1937
	rating := 4.3
	hobbit := &catalog.Item{
		ID:       "book_1",
		Title:    "The Hobbit",
		Genre:    "Fantasy",
		Year:     &year,
		Rating:   &rating,
		Metadata: map[string]any{"author": "Tolkien"},
	}
	return &fakeRecommender{
		resp: &recommend.Response{
			Recommendations: []recommend.ScoredItem{
				{Item: hobbit, Score: 0.93, MatchedPreference: "fantasy"},
			},
			SourceCategory: "movies",
			TargetCategory: "books",
			TotalCount:     1,
		},
		infos: []catalog.CategoryInfo{
			{Name: "movies", DisplayName: "Movies", ItemCount: 8},
			{Name: "books", DisplayName: "Books", ItemCount: 8},
		},
		version: 1,
	}
}

func postRecommend(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Recommend(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *APIError {
	t.Helper()
	var env APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (body %s)", err, w.Body.String())
	}
	if env.Success {
		t.Error("error envelope has success=true")
	}
	if env.Error == nil {
		t.Fatalf("error envelope has no error: %s", w.Body.String())
	}
	return env.Error
}

func TestHandler_Recommend(t *testing.T) {
	fake := newFake()
	h := NewHandler(fake, "test")

	w := postRecommend(t, h, `{"source_category":"movies","target_category":"books","preferences":["fantasy"],"limit":3}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp RecommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalCount != 1 || len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, total %d", len(resp.Recommendations), resp.TotalCount)
	}

	got := resp.Recommendations[0]
	if got.ID != "book_1" || got.Title != "The Hobbit" {
		t.Errorf("item = %s %q", got.ID, got.Title)
	}
	if got.SimilarityScore != 0.93 {
		t.Errorf("similarity_score = %v, want 0.93", got.SimilarityScore)
	}
	if got.Year == nil || *got.Year != 1937 {
		t.Errorf("year = %v, want 1937", got.Year)
	}
	if got.Metadata["matched_preference"] != "fantasy" {
		t.Errorf("matched_preference = %v", got.Metadata["matched_preference"])
	}
	if got.Metadata["author"] != "Tolkien" {
		t.Errorf("author metadata = %v", got.Metadata["author"])
	}

	if fake.last.Limit != 3 || fake.last.TargetCategory != "books" {
		t.Errorf("engine request = %+v", fake.last)
	}
}

func TestHandler_Recommend_DoesNotMutateItemMetadata(t *testing.T) {
	fake := newFake()
	h := NewHandler(fake, "test")

	postRecommend(t, h, `{"source_category":"movies","target_category":"books","preferences":["fantasy"]}`)

	if _, ok := fake.resp.Recommendations[0].Item.Metadata["matched_preference"]; ok {
		t.Error("catalog item metadata was modified")
	}
}

func TestHandler_Recommend_BadRequests(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{"source_category":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"wrong type", `{"source_category":"movies","target_category":"books","preferences":"fantasy"}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"missing target", `{"source_category":"movies","preferences":["fantasy"]}`, http.StatusBadRequest, ErrCodeValidation},
		{"blank source", `{"source_category":"  ","target_category":"books","preferences":["fantasy"]}`, http.StatusBadRequest, ErrCodeValidation},
		{"missing preferences", `{"source_category":"movies","target_category":"books"}`, http.StatusBadRequest, ErrCodeValidation},
		{"overlong preference", `{"source_category":"movies","target_category":"books","preferences":["` + strings.Repeat("a", 501) + `"]}`, http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFake()
			h := NewHandler(fake, "test")

			w := postRecommend(t, h, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if apiErr := decodeError(t, w); apiErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", apiErr.Code, tt.wantCode)
			}
			if fake.calls != 0 {
				t.Errorf("engine called %d times for a rejected body", fake.calls)
			}
		})
	}
}

func TestHandler_Recommend_BodyTooLarge(t *testing.T) {
	h := NewHandler(newFake(), "test")
	h.maxBodyBytes = 64

	body := `{"source_category":"movies","target_category":"books","preferences":["` + strings.Repeat("x", 200) + `"]}`
	w := postRecommend(t, h, body)

	if w.Code != http.StatusRequestEntityTooLarge && w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 413 or 400", w.Code)
	}
	decodeError(t, w)
}

func TestHandler_Recommend_EngineErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantCode       string
		wantRetryAfter bool
	}{
		{
			name:       "validation",
			err:        &recommend.ValidationError{Field: "target_category", Message: `unknown category "podcasts"`},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
		},
		{
			name:           "timeout",
			err:            &recommend.TimeoutError{Stage: "score", Err: context.DeadlineExceeded},
			wantStatus:     http.StatusServiceUnavailable,
			wantCode:       ErrCodeRequestTimeout,
			wantRetryAfter: true,
		},
		{
			name:           "no catalog",
			err:            recommend.ErrNoCatalog,
			wantStatus:     http.StatusServiceUnavailable,
			wantCode:       ErrCodeUnavailable,
			wantRetryAfter: true,
		},
		{
			name:       "client canceled",
			err:        fmt.Errorf("rank canceled: %w", context.Canceled),
			wantStatus: statusClientClosedRequest,
			wantCode:   ErrCodeCanceled,
		},
		{
			name:       "internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFake()
			fake.err = tt.err
			h := NewHandler(fake, "test")

			w := postRecommend(t, h, `{"source_category":"movies","target_category":"podcasts","preferences":["fantasy"]}`)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			apiErr := decodeError(t, w)
			if apiErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", apiErr.Code, tt.wantCode)
			}
			if got := w.Header().Get("Retry-After") != ""; got != tt.wantRetryAfter {
				t.Errorf("Retry-After present = %v, want %v", got, tt.wantRetryAfter)
			}
			if tt.wantCode == ErrCodeInternalError && strings.Contains(apiErr.Message, "boom") {
				t.Error("internal error message leaked to the client")
			}
		})
	}
}

func TestHandler_ValidationDetailsNameField(t *testing.T) {
	fake := newFake()
	fake.err = &recommend.ValidationError{Field: "target_category", Message: "unknown"}
	h := NewHandler(fake, "test")

	w := postRecommend(t, h, `{"source_category":"movies","target_category":"podcasts","preferences":["x"]}`)

	var raw struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw.Error.Details["field"] != "target_category" {
		t.Errorf("details = %v", raw.Error.Details)
	}
}

func TestHandler_Categories(t *testing.T) {
	h := NewHandler(newFake(), "test")
	w := httptest.NewRecorder()
	h.Categories(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp CategoriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Join(resp.Categories, ",") != "movies,books" {
		t.Errorf("categories = %v", resp.Categories)
	}
	if resp.Description == "" {
		t.Error("description is empty")
	}
	if len(resp.Details) != 2 || resp.Details[1].DisplayName != "Books" || resp.Details[1].ItemCount != 8 {
		t.Errorf("details = %+v", resp.Details)
	}
}

func TestHandler_Health(t *testing.T) {
	fake := newFake()
	h := NewHandler(fake, "test")

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" || resp.Service != ServiceName || resp.CatalogVersion != 1 {
		t.Errorf("health = %+v", resp)
	}

	fake.stats = recommend.Stats{Requests: 7, CacheHits: 3, CacheMisses: 4, CacheEvictions: 2, CacheEntries: 2}
	w = httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	resp = HealthResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Stats == nil || *resp.Stats != fake.stats {
		t.Errorf("stats = %+v, want %+v", resp.Stats, fake.stats)
	}

	fake.version = 0
	fake.infos = nil
	w = httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status without catalog = %d, want 503", w.Code)
	}
}

func TestHandler_Root(t *testing.T) {
	h := NewHandler(newFake(), "1.2.3")
	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp BannerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Version != "1.2.3" || resp.Message == "" {
		t.Errorf("banner = %+v", resp)
	}
}
