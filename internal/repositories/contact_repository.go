package repositories

import (
	"database/sql"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain/models"
)

type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ContactRepository) ListByAccount(accountID string) ([]models.Contact, error) {
	rows, err := r.db().Query(
		`SELECT id, account_id, COALESCE(first_name,''), COALESCE(last_name,''),
			COALESCE(email,''), COALESCE(phone,''), COALESCE(department,'')
		FROM sf_contacts WHERE account_id=? ORDER BY last_name ASC, first_name ASC, id ASC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Contact{}
	for rows.Next() {
		var ct models.Contact
		if err := rows.Scan(
			&ct.ID,
			&ct.AccountID,
			&ct.FirstName,
			&ct.LastName,
			&ct.Email,
			&ct.Phone,
			&ct.Department,
		); err != nil {
			return out, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}
