package repositories

import (
	"database/sql"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain/models"
)

type ActivityRepository struct {
	DB *sql.DB
}

func (r ActivityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ActivityRepository) ListByAccount(accountID string) ([]models.Activity, error) {
	rows, err := r.db().Query(
		`SELECT id, account_id, COALESCE(subject,''), COALESCE(description,''), activity_date
		FROM sf_activities WHERE account_id=? ORDER BY activity_date DESC, id ASC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		var (
			act  models.Activity
			date sql.NullTime
		)
		if err := rows.Scan(&act.ID, &act.AccountID, &act.Subject, &act.Description, &date); err != nil {
			return out, err
		}
		if date.Valid {
			t := date.Time
			act.ActivityDate = &t
		}
		out = append(out, act)
	}
	return out, rows.Err()
}
