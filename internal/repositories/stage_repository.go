package repositories

import (
	"database/sql"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain/models"
)

type StageRepository struct {
	DB *sql.DB
}

func (r StageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StageRepository) ListStages() ([]models.Stage, error) {
	rows, err := r.db().Query(
		`SELECT id, stage_name, COALESCE(sort_order,0) FROM opportunity_stages ORDER BY sort_order ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Stage{}
	for rows.Next() {
		var st models.Stage
		if err := rows.Scan(&st.ID, &st.StageName, &st.SortOrder); err != nil {
			return out, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
