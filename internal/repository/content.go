package repository

import (
	"context"
	"fmt"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository/dao"
)

var ErrContentNotFound = dao.ErrContentNotFound

type ContentDAO interface {
	InsertEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	FindEventByID(ctx context.Context, id uint) (dao.Event, error)
	FindEventsByVisibility(ctx context.Context, visibilities []string) ([]dao.Event, error)
	SaveEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	SetEventVisibility(ctx context.Context, id uint, visibility string) error
	DeleteEvent(ctx context.Context, id uint) error

	InsertTeamMember(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	FindTeamMemberByID(ctx context.Context, id uint) (dao.TeamMember, error)
	FindTeamMembersByVisibility(ctx context.Context, visibilities []string) ([]dao.TeamMember, error)
	SaveTeamMember(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	SetTeamMemberVisibility(ctx context.Context, id uint, visibility string) error
	DeleteTeamMember(ctx context.Context, id uint) error

	InsertTestimonial(ctx context.Context, testimonial dao.Testimonial) (dao.Testimonial, error)
	FindTestimonialByID(ctx context.Context, id uint) (dao.Testimonial, error)
	FindTestimonialsByVisibility(ctx context.Context, visibilities []string) ([]dao.Testimonial, error)
	SaveTestimonial(ctx context.Context, testimonial dao.Testimonial) (dao.Testimonial, error)
	SetTestimonialVisibility(ctx context.Context, id uint, visibility string) error
	DeleteTestimonial(ctx context.Context, id uint) error

	InsertMinistryRegistration(ctx context.Context, registration dao.MinistryRegistration) (dao.MinistryRegistration, error)
	FindMinistryRegistrationByID(ctx context.Context, id uint) (dao.MinistryRegistration, error)
	FindMinistryRegistrationsByVisibility(ctx context.Context, visibilities []string) ([]dao.MinistryRegistration, error)
	SaveMinistryRegistration(ctx context.Context, registration dao.MinistryRegistration) (dao.MinistryRegistration, error)
	SetMinistryRegistrationVisibility(ctx context.Context, id uint, visibility string) error
	DeleteMinistryRegistration(ctx context.Context, id uint) error
}

type ContentRepository struct {
	dao ContentDAO
}

func NewContentRepository(dao ContentDAO) *ContentRepository {
	return &ContentRepository{
		dao: dao,
	}
}

// scopeVisibilities maps a listing scope to the visibility states it covers.
func scopeVisibilities(scope domain.ListScope) []string {
	switch scope {
	case domain.ScopeDashboard:
		return []string{string(domain.VisibilityVisible)}
	case domain.ScopeDeleted:
		return []string{string(domain.VisibilityDashboardHidden)}
	default:
		return []string{string(domain.VisibilityVisible), string(domain.VisibilityDashboardHidden)}
	}
}

func (r *ContentRepository) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.InsertEvent(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.InsertEvent -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *ContentRepository) FindEventByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindEventByID -> %w", err)
	}

	return eventDAOToDomain(found), nil
}

func (r *ContentRepository) ListEvents(ctx context.Context, scope domain.ListScope) ([]domain.Event, error) {
	found, err := r.dao.FindEventsByVisibility(ctx, scopeVisibilities(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventsByVisibility -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDAOToDomain(e))
	}

	return events, nil
}

func (r *ContentRepository) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.SaveEvent(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.SaveEvent -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

func (r *ContentRepository) SetEventVisibility(ctx context.Context, id uint, visibility domain.Visibility) error {
	if err := r.dao.SetEventVisibility(ctx, id, string(visibility)); err != nil {
		return fmt.Errorf("r.dao.SetEventVisibility -> %w", err)
	}

	return nil
}

func (r *ContentRepository) DeleteEvent(ctx context.Context, id uint) error {
	if err := r.dao.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteEvent -> %w", err)
	}

	return nil
}

func (r *ContentRepository) CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	created, err := r.dao.InsertTeamMember(ctx, teamMemberDomainToDAO(member))
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.InsertTeamMember -> %w", err)
	}

	return teamMemberDAOToDomain(created), nil
}

func (r *ContentRepository) FindTeamMemberByID(ctx context.Context, id uint) (domain.TeamMember, error) {
	found, err := r.dao.FindTeamMemberByID(ctx, id)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.FindTeamMemberByID -> %w", err)
	}

	return teamMemberDAOToDomain(found), nil
}

func (r *ContentRepository) ListTeamMembers(ctx context.Context, scope domain.ListScope) ([]domain.TeamMember, error) {
	found, err := r.dao.FindTeamMembersByVisibility(ctx, scopeVisibilities(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTeamMembersByVisibility -> %w", err)
	}

	members := make([]domain.TeamMember, 0, len(found))
	for _, m := range found {
		members = append(members, teamMemberDAOToDomain(m))
	}

	return members, nil
}

func (r *ContentRepository) UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	updated, err := r.dao.SaveTeamMember(ctx, teamMemberDomainToDAO(member))
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.SaveTeamMember -> %w", err)
	}

	return teamMemberDAOToDomain(updated), nil
}

func (r *ContentRepository) SetTeamMemberVisibility(ctx context.Context, id uint, visibility domain.Visibility) error {
	if err := r.dao.SetTeamMemberVisibility(ctx, id, string(visibility)); err != nil {
		return fmt.Errorf("r.dao.SetTeamMemberVisibility -> %w", err)
	}

	return nil
}

func (r *ContentRepository) DeleteTeamMember(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTeamMember(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTeamMember -> %w", err)
	}

	return nil
}

func (r *ContentRepository) CreateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	created, err := r.dao.InsertTestimonial(ctx, testimonialDomainToDAO(testimonial))
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("r.dao.InsertTestimonial -> %w", err)
	}

	return testimonialDAOToDomain(created), nil
}

func (r *ContentRepository) FindTestimonialByID(ctx context.Context, id uint) (domain.Testimonial, error) {
	found, err := r.dao.FindTestimonialByID(ctx, id)
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("r.dao.FindTestimonialByID -> %w", err)
	}

	return testimonialDAOToDomain(found), nil
}

func (r *ContentRepository) ListTestimonials(ctx context.Context, scope domain.ListScope) ([]domain.Testimonial, error) {
	found, err := r.dao.FindTestimonialsByVisibility(ctx, scopeVisibilities(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTestimonialsByVisibility -> %w", err)
	}

	testimonials := make([]domain.Testimonial, 0, len(found))
	for _, t := range found {
		testimonials = append(testimonials, testimonialDAOToDomain(t))
	}

	return testimonials, nil
}

func (r *ContentRepository) UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) (domain.Testimonial, error) {
	updated, err := r.dao.SaveTestimonial(ctx, testimonialDomainToDAO(testimonial))
	if err != nil {
		return domain.Testimonial{}, fmt.Errorf("r.dao.SaveTestimonial -> %w", err)
	}

	return testimonialDAOToDomain(updated), nil
}

func (r *ContentRepository) SetTestimonialVisibility(ctx context.Context, id uint, visibility domain.Visibility) error {
	if err := r.dao.SetTestimonialVisibility(ctx, id, string(visibility)); err != nil {
		return fmt.Errorf("r.dao.SetTestimonialVisibility -> %w", err)
	}

	return nil
}

func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTestimonial(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTestimonial -> %w", err)
	}

	return nil
}

func (r *ContentRepository) CreateMinistryRegistration(ctx context.Context, registration domain.MinistryRegistration) (domain.MinistryRegistration, error) {
	created, err := r.dao.InsertMinistryRegistration(ctx, ministryRegistrationDomainToDAO(registration))
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("r.dao.InsertMinistryRegistration -> %w", err)
	}

	return ministryRegistrationDAOToDomain(created), nil
}

func (r *ContentRepository) FindMinistryRegistrationByID(ctx context.Context, id uint) (domain.MinistryRegistration, error) {
	found, err := r.dao.FindMinistryRegistrationByID(ctx, id)
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("r.dao.FindMinistryRegistrationByID -> %w", err)
	}

	return ministryRegistrationDAOToDomain(found), nil
}

func (r *ContentRepository) ListMinistryRegistrations(ctx context.Context, scope domain.ListScope) ([]domain.MinistryRegistration, error) {
	found, err := r.dao.FindMinistryRegistrationsByVisibility(ctx, scopeVisibilities(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindMinistryRegistrationsByVisibility -> %w", err)
	}

	registrations := make([]domain.MinistryRegistration, 0, len(found))
	for _, reg := range found {
		registrations = append(registrations, ministryRegistrationDAOToDomain(reg))
	}

	return registrations, nil
}

func (r *ContentRepository) UpdateMinistryRegistration(ctx context.Context, registration domain.MinistryRegistration) (domain.MinistryRegistration, error) {
	updated, err := r.dao.SaveMinistryRegistration(ctx, ministryRegistrationDomainToDAO(registration))
	if err != nil {
		return domain.MinistryRegistration{}, fmt.Errorf("r.dao.SaveMinistryRegistration -> %w", err)
	}

	return ministryRegistrationDAOToDomain(updated), nil
}

func (r *ContentRepository) SetMinistryRegistrationVisibility(ctx context.Context, id uint, visibility domain.Visibility) error {
	if err := r.dao.SetMinistryRegistrationVisibility(ctx, id, string(visibility)); err != nil {
		return fmt.Errorf("r.dao.SetMinistryRegistrationVisibility -> %w", err)
	}

	return nil
}

func (r *ContentRepository) DeleteMinistryRegistration(ctx context.Context, id uint) error {
	if err := r.dao.DeleteMinistryRegistration(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteMinistryRegistration -> %w", err)
	}

	return nil
}

func eventDomainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		EventType:            e.EventType,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		Location:             e.Location,
		ImageURL:             e.ImageURL,
		Participants:         e.Participants,
		IsFeatured:           e.IsFeatured,
		RegistrationRequired: e.RegistrationRequired,
		Visibility:           string(e.Visibility),
	}
}

func eventDAOToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		EventType:            e.EventType,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		Location:             e.Location,
		ImageURL:             e.ImageURL,
		Participants:         e.Participants,
		IsFeatured:           e.IsFeatured,
		RegistrationRequired: e.RegistrationRequired,
		Visibility:           domain.Visibility(e.Visibility),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func teamMemberDomainToDAO(m domain.TeamMember) dao.TeamMember {
	return dao.TeamMember{
		ID:            m.ID,
		Name:          m.Name,
		Position:      m.Position,
		Congregation:  m.Congregation,
		Quote:         m.Quote,
		ImageURL:      m.ImageURL,
		IsCouncil:     m.IsCouncil,
		PositionOrder: m.PositionOrder,
		Visibility:    string(m.Visibility),
	}
}

func teamMemberDAOToDomain(m dao.TeamMember) domain.TeamMember {
	return domain.TeamMember{
		ID:            m.ID,
		Name:          m.Name,
		Position:      m.Position,
		Congregation:  m.Congregation,
		Quote:         m.Quote,
		ImageURL:      m.ImageURL,
		IsCouncil:     m.IsCouncil,
		PositionOrder: m.PositionOrder,
		Visibility:    domain.Visibility(m.Visibility),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func testimonialDomainToDAO(t domain.Testimonial) dao.Testimonial {
	return dao.Testimonial{
		ID:         t.ID,
		Name:       t.Name,
		Position:   t.Position,
		Content:    t.Content,
		Rating:     t.Rating,
		IsFeatured: t.IsFeatured,
		Visibility: string(t.Visibility),
	}
}

func testimonialDAOToDomain(t dao.Testimonial) domain.Testimonial {
	return domain.Testimonial{
		ID:         t.ID,
		Name:       t.Name,
		Position:   t.Position,
		Content:    t.Content,
		Rating:     t.Rating,
		IsFeatured: t.IsFeatured,
		Visibility: domain.Visibility(t.Visibility),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func ministryRegistrationDomainToDAO(reg domain.MinistryRegistration) dao.MinistryRegistration {
	return dao.MinistryRegistration{
		ID:           reg.ID,
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Ministry:     reg.Ministry,
		Congregation: reg.Congregation,
		IsApproved:   reg.IsApproved,
		Visibility:   string(reg.Visibility),
	}
}

func ministryRegistrationDAOToDomain(reg dao.MinistryRegistration) domain.MinistryRegistration {
	return domain.MinistryRegistration{
		ID:           reg.ID,
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Ministry:     reg.Ministry,
		Congregation: reg.Congregation,
		IsApproved:   reg.IsApproved,
		Visibility:   domain.Visibility(reg.Visibility),
		CreatedAt:    reg.CreatedAt,
		UpdatedAt:    reg.UpdatedAt,
	}
}
