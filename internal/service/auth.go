package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
)

var (
	ErrSupervisorNotFound = repository.ErrSupervisorNotFound
	ErrWrongPassword      = errors.New("wrong password")
)

type SupervisorRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.Supervisor, error)
	FindByID(ctx context.Context, id uint) (domain.Supervisor, error)
	Update(ctx context.Context, supervisor domain.Supervisor) (domain.Supervisor, error)
}

// AuthService authenticates the dashboard supervisor. Session mechanics
// beyond issuing the bearer token live at the API layer.
type AuthService struct {
	repo SupervisorRepository
}

func NewAuthService(repo SupervisorRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Supervisor, error) {
	supervisor, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrSupervisorNotFound) {
			return domain.Supervisor{}, ErrSupervisorNotFound
		}

		return domain.Supervisor{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(supervisor.Password), []byte(password)); err != nil {
		return domain.Supervisor{}, ErrWrongPassword
	}

	return supervisor, nil
}

func (s *AuthService) GetSupervisor(ctx context.Context, id uint) (domain.Supervisor, error) {
	supervisor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Supervisor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return supervisor, nil
}

// ChangeCredentials re-checks the current password before replacing the
// username and/or password.
func (s *AuthService) ChangeCredentials(ctx context.Context, id uint, currentPassword, newUsername, newPassword string) (domain.Supervisor, error) {
	supervisor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Supervisor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(supervisor.Password), []byte(currentPassword)); err != nil {
		return domain.Supervisor{}, ErrWrongPassword
	}

	if newUsername != "" {
		supervisor.Username = newUsername
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return domain.Supervisor{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}
		supervisor.Password = string(hash)
	}

	updated, err := s.repo.Update(ctx, supervisor)
	if err != nil {
		return domain.Supervisor{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
