package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/komfort-city/site-backend/internal/api/metrics"
	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

// LeadHandler serves the public contact form and the admin triage endpoints.
type LeadHandler struct {
	leadService ports.LeadService
}

func NewLeadHandler(leadService ports.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type contactRequest struct {
	ObjectType  string   `json:"object_type"  validate:"required,oneof=production office hotel medical residential educational warehouse agriculture"`
	Area        float64  `json:"area"         validate:"required,gt=0"`
	CurrentFuel string   `json:"current_fuel" validate:"required,oneof=gas electricity solid central none"`
	Needs       []string `json:"needs"        validate:"required,min=1"`
	Timeline    string   `json:"timeline"     validate:"required,oneof=urgent normal planned future"`
	Name        string   `json:"name"         validate:"required"`
	Phone       string   `json:"phone"        validate:"required"`
	Email       string   `json:"email"        validate:"required,email"`
	Message     string   `json:"message"`
}

type contactResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id"`
}

type leadUpdateRequest struct {
	Status *domain.LeadStatus `json:"status" validate:"omitempty,oneof=new in_progress completed rejected"`
	Notes  *string            `json:"notes"`
}

// Submit accepts a contact-form submission. The stored lead always
// starts in status "new" regardless of the request body.
//
// @Summary      Submit contact form
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact-form [post]
func (h *LeadHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadService.Submit(c.Request().Context(), ports.SubmitLeadInput{
		ObjectType:  req.ObjectType,
		Area:        req.Area,
		CurrentFuel: req.CurrentFuel,
		Needs:       req.Needs,
		Timeline:    req.Timeline,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Message:     req.Message,
	})
	if err != nil {
		return err
	}

	metrics.LeadsSubmittedTotal.WithLabelValues(req.ObjectType).Inc()

	return c.JSON(http.StatusCreated, contactResponse{
		Message: "Дякуємо! Ваша заявка відправлена. Ми зв'яжемося з вами найближчим часом.",
		Success: true,
		LeadID:  lead.ID.Hex(),
	})
}

// List returns leads newest first, optionally filtered by status.
//
// @Summary      List leads
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        limit   query     int     false  "Maximum results"
// @Success      200     {array}   domain.Lead
// @Failure      400     {object}  map[string]string
// @Router       /api/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	status := domain.LeadStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown lead status")
	}

	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	leads, err := h.leadService.List(c.Request().Context(), status, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

// Get returns a single lead.
//
// @Summary      Get lead
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lead id"
// @Success      200  {object}  domain.Lead
// @Failure      404  {object}  map[string]string
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	lead, err := h.leadService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateStatus changes a lead's triage status and/or notes.
//
// @Summary      Update lead status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead id"
// @Param        body  body      leadUpdateRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/leads/{id}/status [put]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	var req leadUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := domain.LeadPatch{Status: req.Status, Notes: req.Notes}
	if err := h.leadService.UpdateStatus(c.Request().Context(), c.Param("id"), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Lead updated successfully", Success: true})
}

// Stats returns the per-status lead breakdown.
//
// @Summary      Lead statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.LeadStats
// @Router       /api/leads/stats [get]
func (h *LeadHandler) Stats(c echo.Context) error {
	stats, err := h.leadService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Dashboard returns headline numbers across leads and content.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *LeadHandler) Dashboard(c echo.Context) error {
	stats, err := h.leadService.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
