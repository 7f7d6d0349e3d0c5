package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) CreateSession(ctx context.Context, session Session) error {
	query := `
		INSERT INTO sessions (id, created_at, expires_at, user_id, admin)
		VALUES (:id, :created_at, :expires_at, :user_id, :admin)
	`

	if _, err := d.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (d *Database) GetSession(ctx context.Context, sessionID string) (*SessionWithUser, error) {
	query := `
		SELECT s.id, s.created_at, s.expires_at, s.user_id, s.admin,
			u.username, u.display_name, u.avatar_url, u.imported_at
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.id = $1 AND s.expires_at > now()
	`

	var session SessionWithUser
	if err := d.db.GetContext(ctx, &session, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	session.User.ID = session.UserID

	return &session, nil
}

func (d *Database) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (d *Database) DeleteExpiredSessions(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= now()"); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return nil
}

func (d *Database) UpsertUser(ctx context.Context, user User) error {
	query := `
		INSERT INTO users (id, username, display_name, avatar_url, imported_at)
		VALUES (:id, :username, :display_name, :avatar_url, now())
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			imported_at = now()
	`

	if _, err := d.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}
