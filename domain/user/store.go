package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := s.db.GetContext(ctx, &u,
		s.db.Rebind(`SELECT * FROM users WHERE email = ?`), email)
	return u, err
}

func (s *Store) ByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.db.GetContext(ctx, &u,
		s.db.Rebind(`SELECT * FROM users WHERE id = ?`), id)
	return u, err
}

func (s *Store) TokenVersion(ctx context.Context, id int64) (int64, error) {
	var v int64
	err := s.db.GetContext(ctx, &v,
		s.db.Rebind(`SELECT token_version FROM users WHERE id = ?`), id)
	return v, err
}

func (s *Store) Create(ctx context.Context, email, hashedPassword string, roleID int) (int64, error) {
	if s.db.DriverName() == "postgres" {
		var id int64
		err := s.db.GetContext(ctx, &id, s.db.Rebind(`
			INSERT INTO users (email, password, role_id) VALUES (?, ?, ?) RETURNING id`),
			email, hashedPassword, roleID)
		return id, err
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO users (email, password, role_id) VALUES (?, ?, ?)`),
		email, hashedPassword, roleID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePassword stores the new hash and bumps token_version so every
// previously issued token stops validating.
func (s *Store) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE users
		SET password = ?, token_version = token_version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`),
		hashedPassword, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// BumpTokenVersion invalidates all outstanding tokens for the user.
func (s *Store) BumpTokenVersion(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE users SET token_version = token_version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`), id)
	return err
}
