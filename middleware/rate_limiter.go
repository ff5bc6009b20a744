package middleware

import (
	"database/sql"
	"errors"
	"time"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig holds the configuration for per-IP rate limiting.
// Counters live in the ip_rate_limits table so limits survive restarts
// and hold across replicas sharing one database.
type RateLimiterConfig struct {
	MaxRequests   int
	Window        time.Duration
	BlockDuration time.Duration
	DB            *sqlx.DB
	Log           logger.Logger
}

// RateLimiterMiddleware limits requests per client IP using the database.
func RateLimiterMiddleware(cfg RateLimiterConfig) echo.MiddlewareFunc {
	limited := apperrors.NewTooManyRequests(apperrors.ErrCodeRateLimitExceeded,
		"Too many requests from this IP, please try again later")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			now := time.Now().UTC()
			ctx := c.Request().Context()

			tx, err := cfg.DB.BeginTxx(ctx, nil)
			if err != nil {
				return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
			}
			defer tx.Rollback()

			var row struct {
				RequestCount     int          `db:"request_count"`
				FirstRequestTime time.Time    `db:"first_request_time"`
				BlockedUntil     sql.NullTime `db:"blocked_until"`
			}
			err = tx.GetContext(ctx, &row,
				tx.Rebind(`SELECT request_count, first_request_time, blocked_until
					FROM ip_rate_limits WHERE ip_address = ?`), ip)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
			}

			switch {
			case errors.Is(err, sql.ErrNoRows):
				_, err = tx.ExecContext(ctx, tx.Rebind(`
					INSERT INTO ip_rate_limits (ip_address, request_count, first_request_time, last_request_time)
					VALUES (?, 1, ?, ?)`), ip, now, now)

			case row.BlockedUntil.Valid && row.BlockedUntil.Time.After(now):
				if err := tx.Commit(); err != nil {
					return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
				}
				return limited

			case now.Sub(row.FirstRequestTime) > cfg.Window:
				_, err = tx.ExecContext(ctx, tx.Rebind(`
					UPDATE ip_rate_limits
					SET request_count = 1, first_request_time = ?, last_request_time = ?, blocked_until = NULL
					WHERE ip_address = ?`), now, now, ip)

			case row.RequestCount >= cfg.MaxRequests:
				if _, err := tx.ExecContext(ctx, tx.Rebind(`
					UPDATE ip_rate_limits SET blocked_until = ? WHERE ip_address = ?`),
					now.Add(cfg.BlockDuration), ip); err != nil {
					return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
				}
				if err := tx.Commit(); err != nil {
					return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
				}
				cfg.Log.Warn("IP blocked by rate limiter", logger.RemoteIP(ip))
				return limited

			default:
				_, err = tx.ExecContext(ctx, tx.Rebind(`
					UPDATE ip_rate_limits
					SET request_count = request_count + 1, last_request_time = ?
					WHERE ip_address = ?`), now, ip)
			}
			if err != nil {
				return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
			}

			if err := tx.Commit(); err != nil {
				return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to check rate limit", err)
			}
			return next(c)
		}
	}
}
