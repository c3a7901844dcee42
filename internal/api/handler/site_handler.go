package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/komfort-city/site-backend/internal/api/metrics"
	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

const siteCacheKey = "site_info"

// SiteHandler serves the singleton company-details document.
type SiteHandler struct {
	repo  ports.SiteRepository
	cache ports.ContentCache // nil disables caching
}

func NewSiteHandler(repo ports.SiteRepository, cache ports.ContentCache) *SiteHandler {
	return &SiteHandler{repo: repo, cache: cache}
}

// Get returns the company contact details.
//
// @Summary      Site information
// @Tags         public
// @Produce      json
// @Success      200  {object}  domain.SiteInfo
// @Router       /api/site-info [get]
func (h *SiteHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx, siteCacheKey); ok {
			metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
			return c.JSONBlob(http.StatusOK, payload)
		}
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	info, err := h.repo.Get(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return err
	}
	if h.cache != nil {
		h.cache.Set(ctx, siteCacheKey, payload)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// Update applies a partial update to the site document.
//
// @Summary      Update site information
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.SiteInfoPatch  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/site-info [put]
func (h *SiteHandler) Update(c echo.Context) error {
	var patch domain.SiteInfoPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.repo.Update(c.Request().Context(), patch); err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request().Context(), siteCacheKey)
	}
	metrics.ContentWritesTotal.WithLabelValues("site_info", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Site information updated successfully", Success: true})
}
