package ports

import (
	"context"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// SubmitLeadInput is the contact-form DTO passed from the transport
// layer. It deliberately has no status field: public submissions always
// enter triage as "new".
type SubmitLeadInput struct {
	ObjectType  string
	Area        float64
	CurrentFuel string
	Needs       []string
	Timeline    string
	Name        string
	Phone       string
	Email       string
	Message     string
}

// LeadRepository persists contact-form leads.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	// List returns leads newest first, optionally filtered by status
	// (empty status = all), capped at limit.
	List(ctx context.Context, status domain.LeadStatus, limit int64) ([]domain.Lead, error)
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, id string, patch domain.LeadPatch) error
	// Count counts leads with the given status; empty status counts all.
	Count(ctx context.Context, status domain.LeadStatus) (int64, error)
}

// LeadService implements lead intake and triage.
type LeadService interface {
	Submit(ctx context.Context, in SubmitLeadInput) (*domain.Lead, error)
	List(ctx context.Context, status domain.LeadStatus, limit int64) ([]domain.Lead, error)
	Get(ctx context.Context, id string) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, id string, patch domain.LeadPatch) error
	Stats(ctx context.Context) (*domain.LeadStats, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
