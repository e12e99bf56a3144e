package repositories

import (
	"errors"
	"testing"

	"crm-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func accountTestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "industry", "type", "billing_city", "billing_state",
		"billing_country", "number_of_employees", "annual_revenue", "last_activity_date",
	})
}

func TestAccountListSearchAndSEFilterArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sf_accounts WHERE (.+)LOWER\\(name\\) LIKE (.+)SELECT DISTINCT account_id FROM sf_opportunities WHERE assigned_se_user_id").
		WithArgs("%acme%", "se-1", 10, 20).
		WillReturnRows(accountTestRows().AddRow("a-1", "Acme", "", "", "", "", "", nil, nil, nil))

	repo := AccountRepository{DB: db}
	got, err := repo.List("Acme", "se-1", 10, 20)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a-1" {
		t.Fatalf("unexpected rows: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountListEmptyResultIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sf_accounts WHERE").
		WithArgs(20, 0).
		WillReturnRows(accountTestRows())

	got, err := AccountRepository{DB: db}.List("", "", 20, 0)
	if err != nil {
		t.Fatalf("empty list should not error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestAccountCountSharesFilterPredicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sf_accounts WHERE (.+)LOWER\(name\) LIKE`).
		WithArgs("%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	total, err := AccountRepository{DB: db}.Count("acme", "")
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if total != 15 {
		t.Fatalf("total = %d, want 15", total)
	}
}

func TestAccountGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sf_accounts WHERE id=").
		WithArgs("missing-id").
		WillReturnRows(accountTestRows())

	_, err = AccountRepository{DB: db}.GetByID("missing-id")
	if err == nil {
		t.Fatalf("expected error for missing account")
	}
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}

	var nf domain.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "Account" || nf.ID != "missing-id" {
		t.Fatalf("NotFound payload wrong: %+v", nf)
	}
}
