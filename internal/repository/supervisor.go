package repository

import (
	"context"
	"fmt"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository/dao"
)

var ErrSupervisorNotFound = dao.ErrSupervisorNotFound

type SupervisorDAO interface {
	FindByUsername(ctx context.Context, username string) (dao.Supervisor, error)
	FindByID(ctx context.Context, id uint) (dao.Supervisor, error)
	Save(ctx context.Context, supervisor dao.Supervisor) (dao.Supervisor, error)
}

type SupervisorRepository struct {
	dao SupervisorDAO
}

func NewSupervisorRepository(dao SupervisorDAO) *SupervisorRepository {
	return &SupervisorRepository{
		dao: dao,
	}
}

func (r *SupervisorRepository) FindByUsername(ctx context.Context, username string) (domain.Supervisor, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Supervisor{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return supervisorDAOToDomain(found), nil
}

func (r *SupervisorRepository) FindByID(ctx context.Context, id uint) (domain.Supervisor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Supervisor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return supervisorDAOToDomain(found), nil
}

func (r *SupervisorRepository) Update(ctx context.Context, supervisor domain.Supervisor) (domain.Supervisor, error) {
	updated, err := r.dao.Save(ctx, dao.Supervisor{
		ID:       supervisor.ID,
		Username: supervisor.Username,
		Password: supervisor.Password,
	})
	if err != nil {
		return domain.Supervisor{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return supervisorDAOToDomain(updated), nil
}

func supervisorDAOToDomain(s dao.Supervisor) domain.Supervisor {
	return domain.Supervisor{
		ID:        s.ID,
		Username:  s.Username,
		Password:  s.Password,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
