package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/komfort-city/site-backend/internal/api/metrics"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

// ContentHandler serves one content type's route family. All six types
// share this implementation; per-type behavior lives in the repository's
// collection policy, the record type T, and the patch type P.
type ContentHandler[T any, P ports.Patch] struct {
	repo  ports.ContentRepository[T]
	cache ports.ContentCache // nil disables caching
	name  string             // collection name: cache key, metric label
	label string             // human label used in response messages
}

func NewContentHandler[T any, P ports.Patch](
	repo ports.ContentRepository[T],
	cache ports.ContentCache,
	name, label string,
) *ContentHandler[T, P] {
	return &ContentHandler[T, P]{repo: repo, cache: cache, name: name, label: label}
}

// ListPublic returns active records in display order. Responses are
// served from the cache when possible; a cache failure falls through to
// the store.
func (h *ContentHandler[T, P]) ListPublic(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx, h.name); ok {
			metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
			return c.JSONBlob(http.StatusOK, payload)
		}
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	records, err := h.repo.List(ctx, true)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if h.cache != nil {
		h.cache.Set(ctx, h.name, payload)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// ListAll returns every record, inactive included. Admin only.
func (h *ContentHandler[T, P]) ListAll(c echo.Context) error {
	records, err := h.repo.List(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get returns a single record by id. Admin only.
func (h *ContentHandler[T, P]) Get(c echo.Context) error {
	record, err := h.repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Create stores a new record and returns it with its assigned id and
// server-stamped timestamps.
func (h *ContentHandler[T, P]) Create(c echo.Context) error {
	var record T
	if err := c.Bind(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.repo.Create(c.Request().Context(), record)
	if err != nil {
		return err
	}

	h.invalidate(c)
	metrics.ContentWritesTotal.WithLabelValues(h.name, "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update: only fields present in the request
// body change. A set multilingual field must arrive complete in all
// three languages.
func (h *ContentHandler[T, P]) Update(c echo.Context) error {
	var patch P
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.repo.Update(c.Request().Context(), c.Param("id"), patch); err != nil {
		return err
	}

	h.invalidate(c)
	metrics.ContentWritesTotal.WithLabelValues(h.name, "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: h.label + " updated successfully", Success: true})
}

// Delete removes a record. Hard delete; content has no dependents.
func (h *ContentHandler[T, P]) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	h.invalidate(c)
	metrics.ContentWritesTotal.WithLabelValues(h.name, "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: h.label + " deleted successfully", Success: true})
}

func (h *ContentHandler[T, P]) invalidate(c echo.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request().Context(), h.name)
	}
}
