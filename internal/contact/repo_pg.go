package contact

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const messageColumns = `id, name, email, subject, message, read, created_at`

// List returns all messages, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetByID fetches one message.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Message, error) {
	var m Message
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Message{}, ErrNotFound
		}
		return Message{}, err
	}
	return m, nil
}

// Create inserts a new message.
func (r *PGRepo) Create(ctx context.Context, m Message) error {
	const query = `
INSERT INTO contact_messages (id, name, email, subject, message, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Read, m.CreatedAt)
	return err
}

// MarkRead flags one message as read.
func (r *PGRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE contact_messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a message.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// CountUnread counts messages not yet read.
func (r *PGRepo) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`).Scan(&count)
	return count, err
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
