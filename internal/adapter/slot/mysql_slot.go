package slot

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pirayth/gardenshop/internal/usecase"
)

// MySQLSlot stores each session's serialized cart as one row of the
// cart_slots table:
//
//	CREATE TABLE cart_slots (
//	  session_id VARCHAR(64) PRIMARY KEY,
//	  payload    MEDIUMBLOB NOT NULL,
//	  updated_at TIMESTAMP NOT NULL
//	);
type MySQLSlot struct{ db *sql.DB }

func NewMySQLSlot(db *sql.DB) *MySQLSlot { return &MySQLSlot{db: db} }

func (s *MySQLSlot) Read(ctx context.Context, key string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT payload FROM cart_slots WHERE session_id=?`, key)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

func (s *MySQLSlot) Write(ctx context.Context, key string, raw []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO cart_slots (session_id,payload,updated_at) VALUES (?,?,NOW())
ON DUPLICATE KEY UPDATE payload=VALUES(payload), updated_at=NOW()`, key, raw)
	return err
}

var _ usecase.CartSlot = (*MySQLSlot)(nil)
