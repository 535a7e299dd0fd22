package v1

import (
	"context"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
)

type ContentService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context, scope domain.ListScope) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint, scope domain.DeleteScope) error
	RestoreEvent(ctx context.Context, id uint) (domain.Event, error)

	CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	ListTeamMembers(ctx context.Context, scope domain.ListScope) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint, scope domain.DeleteScope) error
	RestoreTeamMember(ctx context.Context, id uint) (domain.TeamMember, error)

	CreateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	ListTestimonials(ctx context.Context, scope domain.ListScope) ([]domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint, scope domain.DeleteScope) error
	RestoreTestimonial(ctx context.Context, id uint) (domain.Testimonial, error)

	CreateMinistryRegistration(ctx context.Context, registration domain.MinistryRegistration) (domain.MinistryRegistration, error)
	ListMinistryRegistrations(ctx context.Context, scope domain.ListScope) ([]domain.MinistryRegistration, error)
	ApproveMinistryRegistration(ctx context.Context, id uint) (domain.MinistryRegistration, error)
	DeleteMinistryRegistration(ctx context.Context, id uint, scope domain.DeleteScope) error
	RestoreMinistryRegistration(ctx context.Context, id uint) (domain.MinistryRegistration, error)
}

// ContentHandler serves the four dual-deletable content kinds; the
// per-kind endpoints live in their own files.
type ContentHandler struct {
	svc ContentService
}

func NewContentHandler(svc ContentService) *ContentHandler {
	return &ContentHandler{
		svc: svc,
	}
}
