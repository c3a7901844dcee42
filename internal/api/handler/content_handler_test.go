package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

type stubServiceRepo struct {
	records    []domain.Service
	lastActive *bool
	created    *domain.Service
	updatedID  string
	deletedID  string
}

func (r *stubServiceRepo) List(_ context.Context, onlyActive bool) ([]domain.Service, error) {
	r.lastActive = &onlyActive
	out := []domain.Service{}
	for _, rec := range r.records {
		if !onlyActive || rec.Active {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	for _, rec := range r.records {
		if rec.ID.Hex() == id {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubServiceRepo) Create(_ context.Context, record domain.Service) (*domain.Service, error) {
	record.ID = primitive.NewObjectID()
	r.records = append(r.records, record)
	r.created = &record
	return &record, nil
}

func (r *stubServiceRepo) Update(_ context.Context, id string, patch ports.Patch) error {
	if len(patch.Changes()) == 0 {
		return domain.ErrEmptyUpdate
	}
	r.updatedID = id
	return nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	r.deletedID = id
	return nil
}

type memoryCache struct {
	entries map[string][]byte
	hits    int
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return payload, ok
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte) {
	c.entries[key] = payload
}

func (c *memoryCache) Invalidate(_ context.Context, key string) {
	delete(c.entries, key)
	c.deletes++
}

func newContentContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func serviceRecord(active bool) domain.Service {
	return domain.Service{
		ID:     primitive.NewObjectID(),
		Title:  domain.MultilingualText{UA: "Опалення", RU: "Отопление", EN: "Heating"},
		Active: active,
	}
}

func TestContentHandler_ListPublic_FiltersInactive(t *testing.T) {
	repo := &stubServiceRepo{records: []domain.Service{serviceRecord(true), serviceRecord(false)}}
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, nil, "services", "Service")

	c, rec := newContentContext(t, http.MethodGet, "/api/services", "")
	if err := h.ListPublic(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastActive == nil || !*repo.lastActive {
		t.Fatalf("public list must request active records only")
	}

	var records []domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 active record, got %d", len(records))
	}
}

func TestContentHandler_ListPublic_CachesResponse(t *testing.T) {
	repo := &stubServiceRepo{records: []domain.Service{serviceRecord(true)}}
	cache := newMemoryCache()
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, cache, "services", "Service")

	c, first := newContentContext(t, http.MethodGet, "/api/services", "")
	if err := h.ListPublic(c); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if _, ok := cache.entries["services"]; !ok {
		t.Fatalf("response not cached")
	}

	// Drain the repo; the second read must come from the cache.
	repo.records = nil
	c, second := newContentContext(t, http.MethodGet, "/api/services", "")
	if err := h.ListPublic(c); err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", cache.hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached response differs from original")
	}
}

func TestContentHandler_ListAll_IncludesInactive(t *testing.T) {
	repo := &stubServiceRepo{records: []domain.Service{serviceRecord(true), serviceRecord(false)}}
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, nil, "services", "Service")

	c, rec := newContentContext(t, http.MethodGet, "/api/admin/services", "")
	if err := h.ListAll(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var records []domain.Service
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestContentHandler_Create_InvalidatesCache(t *testing.T) {
	repo := &stubServiceRepo{}
	cache := newMemoryCache()
	cache.entries["services"] = []byte("[]")
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, cache, "services", "Service")

	body := `{
		"title": {"ua": "Опалення", "ru": "Отопление", "en": "Heating"},
		"description": {"ua": "а", "ru": "б", "en": "c"},
		"icon": "flame",
		"order": 1,
		"active": true
	}`
	c, rec := newContentContext(t, http.MethodPost, "/api/services", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if repo.created == nil || repo.created.ID.IsZero() {
		t.Fatalf("record not stored")
	}
	if _, ok := cache.entries["services"]; ok {
		t.Fatalf("cache not invalidated on create")
	}
}

func TestContentHandler_Create_ValidatesMultilingual(t *testing.T) {
	repo := &stubServiceRepo{}
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, nil, "services", "Service")

	// Missing the english title.
	body := `{
		"title": {"ua": "Опалення", "ru": "Отопление"},
		"description": {"ua": "а", "ru": "б", "en": "c"},
		"icon": "flame"
	}`
	c, _ := newContentContext(t, http.MethodPost, "/api/services", body)
	err := h.Create(c)
	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("invalid record stored")
	}
}

func TestContentHandler_Update_PartialPatch(t *testing.T) {
	repo := &stubServiceRepo{}
	cache := newMemoryCache()
	cache.entries["services"] = []byte("[]")
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, cache, "services", "Service")

	c, rec := newContentContext(t, http.MethodPut, "/api/services/abc", `{"active": false}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if repo.updatedID != "abc" {
		t.Fatalf("repository not called: %q", repo.updatedID)
	}
	if _, ok := cache.entries["services"]; ok {
		t.Fatalf("cache not invalidated on update")
	}
}

func TestContentHandler_Delete(t *testing.T) {
	repo := &stubServiceRepo{}
	cache := newMemoryCache()
	cache.entries["services"] = []byte("[]")
	h := NewContentHandler[domain.Service, domain.ServicePatch](repo, cache, "services", "Service")

	c, rec := newContentContext(t, http.MethodDelete, "/api/services/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if repo.deletedID != "abc" {
		t.Fatalf("repository not called: %q", repo.deletedID)
	}
	if cache.deletes == 0 {
		t.Fatalf("cache not invalidated on delete")
	}
}
