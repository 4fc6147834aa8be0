package postgres

import (
	"database/sql"
	"errors"

	"github.com/KunjShah95/gearguard/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetPasswordForEmail(email string) (string, string, error) {
	var passwordHash string
	var userID string
	query := `SELECT id, password_hash FROM users WHERE email = ? AND is_active = true`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", auth.ErrInvalidCredentials
		}
		return "", "", err
	}
	return passwordHash, userID, nil
}

func (r *Repository) GetUserByID(userID string) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, email, name, role FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserInactive
		}
		return nil, err
	}
	return &user, nil
}
