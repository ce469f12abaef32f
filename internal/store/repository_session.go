package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: log}
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	row := r.db.QueryRowContext(ctx, getSession)
	err := row.Scan(&session.Credential, &session.AccountID, &session.LastValidatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("get session: %w", err)
	}

	session.Present = true
	return session, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveSession,
		session.Credential, session.AccountID, session.LastValidatedAt)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, clearSession)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
