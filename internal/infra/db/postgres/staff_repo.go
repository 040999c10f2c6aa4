package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

var _ repository.StaffRepository = (*staffRepo)(nil)

type staffRepo struct {
	pool *pgxpool.Pool
}

func NewStaffRepo(pool *pgxpool.Pool) repository.StaffRepository {
	return &staffRepo{pool: pool}
}

func (r *staffRepo) Save(ctx context.Context, tx repository.Tx, u *model.StaffUser) error {
	const q = `
INSERT INTO staff_users (id, email, name, role, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  name = EXCLUDED.name,
  role = EXCLUDED.role,
  password_hash = EXCLUDED.password_hash;
`
	_, err := execSQL(ctx, r.pool, tx, q, u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.CreatedAt)
	return err
}

func (r *staffRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StaffUser, error) {
	return r.findOne(ctx, tx, `SELECT id, email, name, role, password_hash, created_at FROM staff_users WHERE id = $1;`, id)
}

func (r *staffRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.StaffUser, error) {
	return r.findOne(ctx, tx, `SELECT id, email, name, role, password_hash, created_at FROM staff_users WHERE email = $1;`, email)
}

func (r *staffRepo) findOne(ctx context.Context, tx repository.Tx, q string, arg interface{}) (*model.StaffUser, error) {
	row, err := pickRow(ctx, r.pool, tx, q, arg)
	if err != nil {
		return nil, err
	}
	var u model.StaffUser
	err = row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &u, nil
}

func (r *staffRepo) List(ctx context.Context, tx repository.Tx) ([]*model.StaffUser, error) {
	rows, err := queryRows(ctx, r.pool, tx,
		`SELECT id, email, name, role, password_hash, created_at FROM staff_users ORDER BY created_at ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.StaffUser{}
	for rows.Next() {
		var u model.StaffUser
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
