package service

import (
	"context"
	"fmt"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
)

var ErrContentNotFound = repository.ErrContentNotFound

type ContentRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	FindEventByID(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context, scope domain.ListScope) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	SetEventVisibility(ctx context.Context, id uint, visibility domain.Visibility) error
	DeleteEvent(ctx context.Context, id uint) error

	CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	FindTeamMemberByID(ctx context.Context, id uint) (domain.TeamMember, error)
	ListTeamMembers(ctx context.Context, scope domain.ListScope) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	SetTeamMemberVisibility(ctx context.Context, id uint, visibility domain.Visibility) error
	DeleteTeamMember(ctx context.Context, id uint) error

	CreateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	FindTestimonialByID(ctx context.Context, id uint) (domain.Testimonial, error)
	ListTestimonials(ctx context.Context, scope domain.ListScope) ([]domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error)
	SetTestimonialVisibility(ctx context.Context, id uint, visibility domain.Visibility) error
	DeleteTestimonial(ctx context.Context, id uint) error

	CreateMinistryRegistration(ctx context.Context, registration domain.MinistryRegistration) (domain.MinistryRegistration, error)
	FindMinistryRegistrationByID(ctx context.Context, id uint) (domain.MinistryRegistration, error)
	ListMinistryRegistrations(ctx context.Context, scope domain.ListScope) ([]domain.MinistryRegistration, error)
	UpdateMinistryRegistration(ctx context.Context, registration domain.MinistryRegistration) (domain.MinistryRegistration, error)
	SetMinistryRegistrationVisibility(ctx context.Context, id uint, visibility domain.Visibility) error
	DeleteMinistryRegistration(ctx context.Context, id uint) error
}

// ContentService owns the dual-scope lifecycle shared by events, team
// members, testimonials and ministry registrations. A dashboard delete only
// flips the visibility state; a "both" delete removes the record, which is
// the only way content leaves the public site.
type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{
		repo: repo,
	}
}

func (s *ContentService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Visibility = domain.VisibilityVisible

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.CreateEvent -> %w", err)
	}

	return created, nil
}

func (s *ContentService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	return event, nil
}

func (s *ContentService) ListEvents(ctx context.Context, scope domain.ListScope) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	return events, nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindEventByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	// Visibility only changes through the lifecycle commands.
	event.Visibility = existing.Visibility

	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.UpdateEvent -> %w", err)
	}

	return updated, nil
}

// DeleteEvent applies the caller's explicit choice of scope: hide from the
// dashboard only, or remove the record everywhere.
func (s *ContentService) DeleteEvent(ctx context.Context, id uint, scope domain.DeleteScope) error {
	if scope == domain.DeleteBoth {
		if err := s.repo.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("s.repo.DeleteEvent -> %w", err)
		}

		return nil
	}

	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	if err = s.repo.SetEventVisibility(ctx, id, event.Visibility.HideFromDashboard()); err != nil {
		return fmt.Errorf("s.repo.SetEventVisibility -> %w", err)
	}

	return nil
}

func (s *ContentService) RestoreEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	if err = s.repo.SetEventVisibility(ctx, id, event.Visibility.Restore()); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.SetEventVisibility -> %w", err)
	}

	event.Visibility = event.Visibility.Restore()

	return event, nil
}

func (s *ContentService) CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	member.Visibility = domain.VisibilityVisible

	created, err := s.repo.CreateTeamMember(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.CreateTeamMember -> %w", err)
	}

	return created, nil
}

func (s *ContentService) ListTeamMembers(ctx context.Context, scope domain.ListScope) ([]domain.TeamMember, error) {
	members, err := s.repo.ListTeamMembers(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTeamMembers -> %w", err)
	}

	return members, nil
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	existing, err := s.repo.FindTeamMemberByID(ctx, member.ID)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.FindTeamMemberByID -> %w", err)
	}

	member.Visibility = existing.Visibility

	updated, err := s.repo.UpdateTeamMember(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.UpdateTeamMember -> %w", err)
	}

	return updated, nil
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id uint, scope domain.DeleteScope) error {
	if scope == domain.DeleteBoth {
		if err := s.repo.DeleteTeamMember(ctx, id); err != nil {
			return fmt.Errorf("s.repo.DeleteTeamMember -> %w", err)
		}

		return nil
	}

	member, err := s.repo.FindTeamMemberByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindTeamMemberByID -> %w", err)
	}

	if err = s.repo.SetTeamMemberVisibility(ctx, id, member.Visibility.HideFromDashboard()); err != nil {
		return fmt.Errorf("s.repo.SetTeamMemberVisibility -> %w", err)
	}

	return nil
}

func (s *ContentService) RestoreTeamMember(ctx context.Context, id uint) (domain.TeamMember, error) {
	member, err := s.repo.FindTeamMemberByID(ctx, id)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.FindTeamMemberByID -> %w", err)
	}

	if err = s.repo.SetTeamMemberVisibility(ctx, id, member.Visibility.Restore()); err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.SetTeamMemberVisibility -> %w", err)
	}

	member.Visibility = member.Visibility.Restore()

	return member, nil
}

func (s *ContentService) CreateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	testimonial.Visibility = domain.VisibilityVisible

	created, err := s.repo.CreateTestimonial(ctx, testimonial)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.CreateTestimonial -> %w", err)
	}

	return created, nil
}

func (s *ContentService) ListTestimonials(ctx context.Context, scope domain.ListScope) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.ListTestimonials(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTestimonials -> %w", err)
	}

	return testimonials, nil
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	existing, err := s.repo.FindTestimonialByID(ctx, testimonial.ID)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.FindTestimonialByID -> %w", err)
	}

	testimonial.Visibility = existing.Visibility

	updated, err := s.repo.UpdateTestimonial(ctx, testimonial)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.UpdateTestimonial -> %w", err)
	}

	return updated, nil
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id uint, scope domain.DeleteScope) error {
	if scope == domain.DeleteBoth {
		if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
			return fmt.Errorf("s.repo.DeleteTestimonial -> %w", err)
		}

		return nil
	}

	testimonial, err := s.repo.FindTestimonialByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindTestimonialByID -> %w", err)
	}

	if err = s.repo.SetTestimonialVisibility(ctx, id, testimonial.Visibility.HideFromDashboard()); err != nil {
		return fmt.Errorf("s.repo.SetTestimonialVisibility -> %w", err)
	}

	return nil
}

func (s *ContentService) RestoreTestimonial(ctx context.Context, id uint) (domain.Testimonial, error) {
	testimonial, err := s.repo.FindTestimonialByID(ctx, id)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.FindTestimonialByID -> %w", err)
	}

	if err = s.repo.SetTestimonialVisibility(ctx, id, testimonial.Visibility.Restore()); err != nil {
		return domain.Testimonial{}, fmt.Errorf("s.repo.SetTestimonialVisibility -> %w", err)
	}

	testimonial.Visibility = testimonial.Visibility.Restore()

	return testimonial, nil
}

func (s *ContentService) CreateMinistryRegistration(ctx context.Context, registration domain.MinistryRegistration) (domain.MinistryRegistration, error) {
	registration.Visibility = domain.VisibilityVisible
	registration.IsApproved = false

	created, err := s.repo.CreateMinistryRegistration(ctx, registration)
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("s.repo.CreateMinistryRegistration -> %w", err)
	}

	return created, nil
}

func (s *ContentService) ListMinistryRegistrations(ctx context.Context, scope domain.ListScope) ([]domain.MinistryRegistration, error) {
	registrations, err := s.repo.ListMinistryRegistrations(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMinistryRegistrations -> %w", err)
	}

	return registrations, nil
}

func (s *ContentService) ApproveMinistryRegistration(ctx context.Context, id uint) (domain.MinistryRegistration, error) {
	registration, err := s.repo.FindMinistryRegistrationByID(ctx, id)
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("s.repo.FindMinistryRegistrationByID -> %w", err)
	}

	registration.IsApproved = true

	updated, err := s.repo.UpdateMinistryRegistration(ctx, registration)
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("s.repo.UpdateMinistryRegistration -> %w", err)
	}

	return updated, nil
}

func (s *ContentService) DeleteMinistryRegistration(ctx context.Context, id uint, scope domain.DeleteScope) error {
	if scope == domain.DeleteBoth {
		if err := s.repo.DeleteMinistryRegistration(ctx, id); err != nil {
			return fmt.Errorf("s.repo.DeleteMinistryRegistration -> %w", err)
		}

		return nil
	}

	registration, err := s.repo.FindMinistryRegistrationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindMinistryRegistrationByID -> %w", err)
	}

	if err = s.repo.SetMinistryRegistrationVisibility(ctx, id, registration.Visibility.HideFromDashboard()); err != nil {
		return fmt.Errorf("s.repo.SetMinistryRegistrationVisibility -> %w", err)
	}

	return nil
}

func (s *ContentService) RestoreMinistryRegistration(ctx context.Context, id uint) (domain.MinistryRegistration, error) {
	registration, err := s.repo.FindMinistryRegistrationByID(ctx, id)
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("s.repo.FindMinistryRegistrationByID -> %w", err)
	}

	if err = s.repo.SetMinistryRegistrationVisibility(ctx, id, registration.Visibility.Restore()); err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("s.repo.SetMinistryRegistrationVisibility -> %w", err)
	}

	registration.Visibility = registration.Visibility.Restore()

	return registration, nil
}
