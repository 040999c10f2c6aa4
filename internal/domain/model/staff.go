package model

import (
	"strings"
	"time"

	"rocodes-admin/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// StaffUser is an authenticated member of the site staff.
type StaffUser struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

func NewStaffUser(id, email, name, role, password string) (*StaffUser, error) {
	if id == "" {
		id = uuid.NewString()
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || name == "" || password == "" {
		return nil, domain.ErrInvalidArgument
	}
	if role != RoleAdmin && role != RoleEditor {
		return nil, domain.ErrInvalidArgument
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &StaffUser{
		ID:           id,
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}, nil
}

func (u *StaffUser) IsZero() bool { return u == nil || u.ID == "" }

// CheckPassword verifies a candidate password against the stored bcrypt hash.
func (u *StaffUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HashPassword derives a bcrypt hash at the default cost. bcrypt caps input
// at 72 bytes; longer passwords are rejected with an error.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
