package repositories

import (
	"database/sql"
	"strings"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain/models"
)

type OpportunityRepository struct {
	DB *sql.DB
}

func (r OpportunityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const opportunityColumns = `id, account_id, name, COALESCE(stage_name,''),
	amount, close_date, is_closed, is_won, assigned_se_user_id`

// ListByAccount returns the account's opportunities newest close date first.
// NULL close dates sort last; id breaks ties so pages are stable.
func (r OpportunityRepository) ListByAccount(accountID string) ([]models.Opportunity, error) {
	rows, err := r.db().Query(
		`SELECT `+opportunityColumns+` FROM sf_opportunities WHERE account_id=? ORDER BY close_date DESC, id ASC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOpportunities(rows)
}

// ListScoped returns opportunities across accounts, optionally restricted to
// one assigned SE. Used by the kanban board.
func (r OpportunityRepository) ListScoped(seFilter string) ([]models.Opportunity, error) {
	where := "1=1"
	args := []any{}
	if se := strings.TrimSpace(seFilter); se != "" {
		where = "assigned_se_user_id=?"
		args = append(args, se)
	}

	rows, err := r.db().Query(
		`SELECT `+opportunityColumns+` FROM sf_opportunities WHERE `+where+` ORDER BY close_date DESC, id ASC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOpportunities(rows)
}

func collectOpportunities(rows *sql.Rows) ([]models.Opportunity, error) {
	out := []models.Opportunity{}
	for rows.Next() {
		var (
			opp       models.Opportunity
			amount    sql.NullFloat64
			closeDate sql.NullTime
			seUserID  sql.NullString
		)
		if err := rows.Scan(
			&opp.ID,
			&opp.AccountID,
			&opp.Name,
			&opp.StageName,
			&amount,
			&closeDate,
			&opp.IsClosed,
			&opp.IsWon,
			&seUserID,
		); err != nil {
			return out, err
		}
		if amount.Valid {
			v := amount.Float64
			opp.Amount = &v
		}
		if closeDate.Valid {
			t := closeDate.Time
			opp.CloseDate = &t
		}
		if seUserID.Valid && seUserID.String != "" {
			s := seUserID.String
			opp.AssignedSEUserID = &s
		}
		out = append(out, opp)
	}
	return out, rows.Err()
}
