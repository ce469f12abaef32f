package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	validatedAt := time.Now()
	rows := sqlmock.
		NewRows([]string{"credential", "account_id", "last_validated_at"}).
		AddRow("stored-jwt", "acc-42", validatedAt)

	mock.ExpectQuery("SELECT credential, account_id, last_validated_at").
		WillReturnRows(rows)

	session, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.Present {
		t.Error("restored session must be marked present")
	}
	if session.Credential != "stored-jwt" || session.AccountID != "acc-42" {
		t.Errorf("unexpected session: %+v", session)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT credential, account_id, last_validated_at").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got: %v", err)
	}
}

func TestSaveSession_Upserts(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	session := models.Session{
		Present:         true,
		Credential:      "fresh-jwt",
		AccountID:       "acc-42",
		LastValidatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO session").
		WithArgs(session.Credential, session.AccountID, session.LastValidatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClearSession_AbsentRowIsNoOp(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
