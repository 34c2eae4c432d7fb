package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo códigos de un solo uso sobre PostgreSQL.
type OTPRepo struct {
	q Querier
}

// NewOTPRepository construye el adaptador.
func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

// Save reemplaza el código del usuario y purga los vencidos.
func (r *OTPRepo) Save(ctx context.Context, c *entity.OTPCode) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM otp_codes WHERE expires_at < NOW()`); err != nil {
		return fmt.Errorf("purge otp: %w", err)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO otp_codes (user_id, code, expires_at, attempts) VALUES ($1, $2, $3, 0)
		ON CONFLICT (user_id) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at, attempts = 0`,
		c.UserID, c.Code, c.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save otp: %w", err)
	}
	return nil
}

func (r *OTPRepo) Get(ctx context.Context, userID int64) (*entity.OTPCode, error) {
	var c entity.OTPCode
	err := r.q.QueryRow(ctx, `SELECT user_id, code, expires_at, attempts FROM otp_codes WHERE user_id = $1`, userID).
		Scan(&c.UserID, &c.Code, &c.ExpiresAt, &c.Attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get otp: %w", err)
	}
	return &c, nil
}

func (r *OTPRepo) RegisterFailure(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `UPDATE otp_codes SET attempts = attempts + 1 WHERE user_id = $1 RETURNING attempts`, userID).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("otp failure: %w", err)
	}
	return n, nil
}

func (r *OTPRepo) Delete(ctx context.Context, userID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM otp_codes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete otp: %w", err)
	}
	return nil
}
