package usecase

import (
	"context"
	"errors"
	"strings"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

// AuthUseCase authenticates staff and manages staff accounts.
type AuthUseCase struct {
	staff repository.StaffRepository
}

func NewAuthUseCase(staff repository.StaffRepository) *AuthUseCase {
	return &AuthUseCase{staff: staff}
}

// Login verifies credentials. A missing user and a wrong password both map to
// ErrInvalidLogin so the response does not leak which one it was.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*model.StaffUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidLogin
	}
	user, err := uc.staff.FindByEmail(ctx, repository.NoTX, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, domain.ErrInvalidLogin
	}
	return user, nil
}

// CreateStaff registers a new staff account. Only admins may call this;
// the caller's role is checked here, not in the handler.
func (uc *AuthUseCase) CreateStaff(ctx context.Context, actor *model.StaffUser, email, name, role, password string) (*model.StaffUser, error) {
	if actor == nil || actor.Role != model.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if existing, err := uc.staff.FindByEmail(ctx, repository.NoTX, email); err == nil && !existing.IsZero() {
		return nil, domain.ErrAlreadyExists
	}
	user, err := model.NewStaffUser("", email, name, role, password)
	if err != nil {
		return nil, err
	}
	if err := uc.staff.Save(ctx, repository.NoTX, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) Get(ctx context.Context, id string) (*model.StaffUser, error) {
	return uc.staff.FindByID(ctx, repository.NoTX, id)
}

func (uc *AuthUseCase) List(ctx context.Context) ([]*model.StaffUser, error) {
	return uc.staff.List(ctx, repository.NoTX)
}
