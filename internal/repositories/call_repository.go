package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "crm-backend/internal/config"
	"crm-backend/internal/domain/models"
)

type CallRepository struct {
	DB *sql.DB
}

func (r CallRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByAccount returns the account's calls newest first, including calls
// linked to one of the account's opportunities.
func (r CallRepository) ListByAccount(accountID string) ([]models.Call, error) {
	rows, err := r.db().Query(
		`SELECT id, account_id, opportunity_id, COALESCE(title,''), started,
			COALESCE(duration,0), COALESCE(media,''), COALESCE(participants,'[]')
		FROM gong_calls WHERE account_id=? ORDER BY started DESC, id ASC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Call{}
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			return out, err
		}
		out = append(out, call)
	}
	return out, rows.Err()
}

func callSearchFilter(q string) (string, []any) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(q); s != "" {
		where = append(where, "LOWER(c.title) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	return strings.Join(where, " AND "), args
}

// Search lists calls across accounts with joined display names.
func (r CallRepository) Search(q string, limit, offset int) ([]models.CallSummary, error) {
	where, args := callSearchFilter(q)
	args = append(args, limit, offset)

	rows, err := r.db().Query(
		`SELECT c.id, c.account_id, c.opportunity_id, COALESCE(c.title,''), c.started,
			COALESCE(c.duration,0), COALESCE(c.media,''), COALESCE(c.participants,'[]'),
			COALESCE(a.name,''), COALESCE(o.name,'')
		FROM gong_calls c
		LEFT JOIN sf_accounts a ON a.id=c.account_id
		LEFT JOIN sf_opportunities o ON o.id=c.opportunity_id
		WHERE `+where+` ORDER BY c.started DESC, c.id ASC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CallSummary{}
	for rows.Next() {
		var (
			sum          models.CallSummary
			accountID    sql.NullString
			oppID        sql.NullString
			participants []byte
		)
		if err := rows.Scan(
			&sum.ID,
			&accountID,
			&oppID,
			&sum.Title,
			&sum.Started,
			&sum.Duration,
			&sum.Media,
			&participants,
			&sum.AccountName,
			&sum.OpportunityName,
		); err != nil {
			return out, err
		}
		sum.AccountID = nullableString(accountID)
		sum.OpportunityID = nullableString(oppID)
		sum.Participants = decodeParticipants(participants)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (r CallRepository) CountSearch(q string) (int, error) {
	where, args := callSearchFilter(q)

	var total int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM gong_calls c WHERE `+where, args...).Scan(&total)
	return total, err
}

func scanCall(rows *sql.Rows) (models.Call, error) {
	var (
		call         models.Call
		accountID    sql.NullString
		oppID        sql.NullString
		participants []byte
	)
	err := rows.Scan(
		&call.ID,
		&accountID,
		&oppID,
		&call.Title,
		&call.Started,
		&call.Duration,
		&call.Media,
		&participants,
	)
	if err != nil {
		return call, err
	}
	call.AccountID = nullableString(accountID)
	call.OpportunityID = nullableString(oppID)
	call.Participants = decodeParticipants(participants)
	return call, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	return &s
}

// decodeParticipants tolerates malformed stored JSON; the sync pipeline owns
// that column and a bad row should not fail the whole listing.
func decodeParticipants(raw []byte) []models.CallParticipant {
	out := []models.CallParticipant{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []models.CallParticipant{}
	}
	return out
}
