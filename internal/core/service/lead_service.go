package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

const defaultLeadListLimit = 100

// LeadService implements contact-form intake and admin triage.
type LeadService struct {
	repo   ports.LeadRepository
	census ports.ContentCensus
	logger zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, census ports.ContentCensus, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, census: census, logger: logger}
}

// Submit stores a public contact-form submission. The stored status is
// always "new" regardless of anything the client sent.
func (s *LeadService) Submit(ctx context.Context, in ports.SubmitLeadInput) (*domain.Lead, error) {
	now := time.Now().UTC()
	lead := &domain.Lead{
		ObjectType:  in.ObjectType,
		Area:        in.Area,
		CurrentFuel: in.CurrentFuel,
		Needs:       in.Needs,
		Timeline:    in.Timeline,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Message:     in.Message,
		Status:      domain.LeadNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, lead)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store lead")
		return nil, err
	}

	s.logger.Info().Str("object_type", in.ObjectType).Str("timeline", in.Timeline).Msg("lead submitted")
	return created, nil
}

func (s *LeadService) List(ctx context.Context, status domain.LeadStatus, limit int64) ([]domain.Lead, error) {
	if limit <= 0 {
		limit = defaultLeadListLimit
	}
	return s.repo.List(ctx, status, limit)
}

func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus applies a triage patch (status and/or notes). Only fields
// present in the patch are written.
func (s *LeadService) UpdateStatus(ctx context.Context, id string, patch domain.LeadPatch) error {
	if len(patch.Changes()) == 0 {
		return domain.ErrEmptyUpdate
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	if patch.Status != nil {
		s.logger.Info().Str("lead_id", id).Str("status", string(*patch.Status)).Msg("lead status updated")
	}
	return nil
}

// Stats returns the per-status breakdown. The five counts are separate
// queries; concurrent submissions between them can make the parts
// disagree with Total, which is accepted.
func (s *LeadService) Stats(ctx context.Context) (*domain.LeadStats, error) {
	stats := &domain.LeadStats{}

	counts := []struct {
		status domain.LeadStatus
		dst    *int64
	}{
		{domain.LeadNew, &stats.New},
		{domain.LeadInProgress, &stats.InProgress},
		{domain.LeadCompleted, &stats.Completed},
		{domain.LeadRejected, &stats.Rejected},
		{"", &stats.Total},
	}
	for _, c := range counts {
		n, err := s.repo.Count(ctx, c.status)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return stats, nil
}

// DashboardStats aggregates headline numbers for the admin dashboard.
func (s *LeadService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	var err error
	if stats.TotalLeads, err = s.repo.Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.NewLeads, err = s.repo.Count(ctx, domain.LeadNew); err != nil {
		return nil, err
	}
	if stats.CompletedProjects, err = s.census.CountContent(ctx, "projects", true); err != nil {
		return nil, err
	}
	if stats.ActiveServices, err = s.census.CountContent(ctx, "services", true); err != nil {
		return nil, err
	}
	if stats.TotalContentItems, err = s.census.CountAllContent(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
