package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ridness/clubbot/core/logger"
	"log/slog"
)

// PostgresStore persists members in the club_members table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// IsMember reports whether the chat has a committed member record.
func (s *PostgresStore) IsMember(ctx context.Context, chatID int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM club_members WHERE chat_id = $1)`, chatID)
	if err != nil {
		return false, fmt.Errorf("club: membership check failed: %w", err)
	}
	return exists, nil
}

// Find returns the member record for the chat, or nil when absent.
func (s *PostgresStore) Find(ctx context.Context, chatID int64) (*Member, error) {
	var m Member
	err := s.db.GetContext(ctx, &m,
		`SELECT chat_id, name, phone, email, joined_at FROM club_members WHERE chat_id = $1`, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("club: member lookup failed: %w", err)
	}
	return &m, nil
}

// Append inserts the member record. The primary key on chat_id enforces the
// uniqueness invariant at commit time: a concurrent duplicate loses the race,
// affects zero rows, and surfaces as ErrDuplicate. First writer wins.
func (s *PostgresStore) Append(ctx context.Context, m Member) error {
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO club_members (chat_id, name, phone, email, joined_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (chat_id) DO NOTHING`,
		m.ChatID, m.Name, m.Phone, m.Email, m.JoinedAt)
	if err != nil {
		return fmt.Errorf("club: member insert failed: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("club: member insert result: %w", err)
	}
	if rows == 0 {
		logger.Debug(ctx, "service.club", "member.duplicate",
			slog.Int64("chat_id", m.ChatID),
		)
		return ErrDuplicate
	}
	logger.Info(ctx, "service.club", "member.appended",
		slog.Int64("chat_id", m.ChatID),
	)
	return nil
}

// Count returns the number of enrolled members.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM club_members`); err != nil {
		return 0, fmt.Errorf("club: member count failed: %w", err)
	}
	return n, nil
}
