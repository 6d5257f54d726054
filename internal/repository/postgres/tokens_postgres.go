package postgres

import (
	"context"

	"recordsapi/internal/model"
	"recordsapi/internal/repository"
)

// TokenPostgres is a PostgreSQL implementation of repository.TokenRepository.
type TokenPostgres struct {
	db repository.DBTX
}

// NewTokenPostgres creates a new TokenPostgres repository.
func NewTokenPostgres(db repository.DBTX) *TokenPostgres {
	return &TokenPostgres{db: db}
}

var _ repository.TokenRepository = (*TokenPostgres)(nil)

// Store inserts a token hash row for the actor.
func (r *TokenPostgres) Store(ctx context.Context, kind model.ActorKind, actorID int64, tokenHash string) error {
	const q = `INSERT INTO tokens (actor_kind, actor_id, token_hash) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, q, kind, actorID, tokenHash)
	return err
}

// Find returns the non-revoked token row matching the hash.
func (r *TokenPostgres) Find(ctx context.Context, tokenHash string) (*model.Token, error) {
	const q = `
		SELECT id, actor_kind, actor_id, token_hash, created_at, revoked_at
		FROM tokens
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	var t model.Token
	if err := r.db.QueryRowContext(ctx, q, tokenHash).Scan(
		&t.ID,
		&t.ActorKind,
		&t.ActorID,
		&t.TokenHash,
		&t.CreatedAt,
		&t.RevokedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// Revoke marks the token as revoked.
func (r *TokenPostgres) Revoke(ctx context.Context, tokenHash string) error {
	const q = `UPDATE tokens SET revoked_at = now() WHERE token_hash = $1 AND revoked_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, tokenHash)
	return err
}

// RevokeAllFor revokes every active token of the actor.
func (r *TokenPostgres) RevokeAllFor(ctx context.Context, kind model.ActorKind, actorID int64) error {
	const q = `UPDATE tokens SET revoked_at = now() WHERE actor_kind = $1 AND actor_id = $2 AND revoked_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, kind, actorID)
	return err
}
