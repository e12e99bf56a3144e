package repositories

import (
	"database/sql"
	"errors"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain"
	"crm-backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the user plus their bcrypt password hash for login.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		user models.User
		hash string
	)
	err := r.db().QueryRow(
		`SELECT id, COALESCE(name,''), email, password_hash, role FROM users WHERE email=? LIMIT 1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "User", ID: email, Err: err}
	}
	return user, hash, err
}
