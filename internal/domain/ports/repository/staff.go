package repository

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// StaffRepository is the port for staff user persistence.
type StaffRepository interface {
	Save(ctx context.Context, tx Tx, user *model.StaffUser) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.StaffUser, error)
	FindByEmail(ctx context.Context, tx Tx, email string) (*model.StaffUser, error)
	List(ctx context.Context, tx Tx) ([]*model.StaffUser, error)
}
