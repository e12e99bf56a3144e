package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain"
	"crm-backend/internal/domain/models"
)

type AccountRepository struct {
	DB *sql.DB
}

func (r AccountRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const accountColumns = `id, name, COALESCE(industry,''), COALESCE(type,''),
	COALESCE(billing_city,''), COALESCE(billing_state,''), COALESCE(billing_country,''),
	number_of_employees, annual_revenue, last_activity_date`

// accountFilter builds the shared predicate for List and Count so both run
// over the exact same row set. seFilter is a semi-join on assigned
// opportunities, not a row-multiplying join.
func accountFilter(search, seFilter string) (string, []any) {
	where := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(search); s != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if se := strings.TrimSpace(seFilter); se != "" {
		where = append(where, "id IN (SELECT DISTINCT account_id FROM sf_opportunities WHERE assigned_se_user_id=?)")
		args = append(args, se)
	}

	return strings.Join(where, " AND "), args
}

// List returns one page of accounts ordered by name.
func (r AccountRepository) List(search, seFilter string, limit, offset int) ([]models.Account, error) {
	where, args := accountFilter(search, seFilter)
	args = append(args, limit, offset)

	rows, err := r.db().Query(
		`SELECT `+accountColumns+` FROM sf_accounts WHERE `+where+` ORDER BY name ASC, id ASC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return out, err
		}
		out = append(out, acc)
	}
	return out, rows.Err()
}

// Count returns the pre-pagination total over the same predicate as List.
func (r AccountRepository) Count(search, seFilter string) (int, error) {
	where, args := accountFilter(search, seFilter)

	var total int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM sf_accounts WHERE `+where, args...).Scan(&total)
	return total, err
}

func (r AccountRepository) GetByID(id string) (models.Account, error) {
	row := r.db().QueryRow(`SELECT `+accountColumns+` FROM sf_accounts WHERE id=? LIMIT 1`, id)

	acc, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, domain.NotFoundError{Resource: "Account", ID: id, Err: err}
	}
	return acc, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		acc       models.Account
		employees sql.NullInt64
		revenue   sql.NullFloat64
		lastAct   sql.NullTime
	)
	err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.Industry,
		&acc.Type,
		&acc.BillingCity,
		&acc.BillingState,
		&acc.BillingCountry,
		&employees,
		&revenue,
		&lastAct,
	)
	if err != nil {
		return acc, err
	}
	if employees.Valid {
		n := int(employees.Int64)
		acc.NumberOfEmployees = &n
	}
	if revenue.Valid {
		v := revenue.Float64
		acc.AnnualRevenue = &v
	}
	if lastAct.Valid {
		t := lastAct.Time
		acc.LastActivityDate = &t
	}
	return acc, nil
}
