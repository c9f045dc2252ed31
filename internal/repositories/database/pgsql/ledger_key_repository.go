package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
	"github.com/RishabhDevDogra/Ledger-X/internal/models"
)

type PgxLedgerKeyRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerKeyRepository creates a new repository for ledger key data.
func newPgxLedgerKeyRepository(pool *pgxpool.Pool) portsrepo.LedgerKeyRepositoryFacade {
	return &PgxLedgerKeyRepository{pool: pool}
}

// Ensure PgxLedgerKeyRepository implements portsrepo.LedgerKeyRepositoryFacade
var _ portsrepo.LedgerKeyRepositoryFacade = (*PgxLedgerKeyRepository)(nil)

func (r *PgxLedgerKeyRepository) SaveKey(ctx context.Context, key domain.LedgerKey) error {
	query := `
		INSERT INTO ledger_keys (key_id, key_name, encryption_key, created_at, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		key.KeyID, key.KeyName, key.EncryptionKey, key.CreatedAt, key.ExpiresAt, key.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger key %s: %w", key.KeyID, err)
	}
	return nil
}

func (r *PgxLedgerKeyRepository) FindKeyByID(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	query := `
		SELECT key_id, key_name, encryption_key, created_at, expires_at, is_active
		FROM ledger_keys WHERE key_id = $1;
	`
	return r.scanOneKey(r.pool.QueryRow(ctx, query, keyID))
}

func (r *PgxLedgerKeyRepository) ListKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	return r.listKeys(ctx, `
		SELECT key_id, key_name, encryption_key, created_at, expires_at, is_active
		FROM ledger_keys ORDER BY created_at, key_id;
	`)
}

func (r *PgxLedgerKeyRepository) ListActiveKeys(ctx context.Context, now time.Time) ([]domain.LedgerKey, error) {
	return r.listKeys(ctx, `
		SELECT key_id, key_name, encryption_key, created_at, expires_at, is_active
		FROM ledger_keys
		WHERE is_active AND (expires_at IS NULL OR expires_at > $1)
		ORDER BY created_at, key_id;
	`, now)
}

func (r *PgxLedgerKeyRepository) ListExpiredKeys(ctx context.Context, now time.Time) ([]domain.LedgerKey, error) {
	return r.listKeys(ctx, `
		SELECT key_id, key_name, encryption_key, created_at, expires_at, is_active
		FROM ledger_keys
		WHERE expires_at IS NOT NULL AND expires_at <= $1
		ORDER BY created_at, key_id;
	`, now)
}

func (r *PgxLedgerKeyRepository) UpdateKey(ctx context.Context, key domain.LedgerKey) error {
	query := `
		UPDATE ledger_keys SET key_name = $2, encryption_key = $3, expires_at = $4, is_active = $5
		WHERE key_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, key.KeyID, key.KeyName, key.EncryptionKey, key.ExpiresAt, key.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update ledger key %s: %w", key.KeyID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger key %s: %w", key.KeyID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLedgerKeyRepository) DeleteKey(ctx context.Context, keyID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ledger_keys WHERE key_id = $1;`, keyID)
	if err != nil {
		return false, fmt.Errorf("failed to delete ledger key %s: %w", keyID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxLedgerKeyRepository) scanOneKey(row pgx.Row) (*domain.LedgerKey, error) {
	var m models.LedgerKey
	err := row.Scan(&m.KeyID, &m.KeyName, &m.EncryptionKey, &m.CreatedAt, &m.ExpiresAt, &m.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query ledger key: %w", err)
	}
	key := toDomainKey(m)
	return &key, nil
}

func (r *PgxLedgerKeyRepository) listKeys(ctx context.Context, query string, args ...any) ([]domain.LedgerKey, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger keys: %w", err)
	}
	defer rows.Close()

	var keys []domain.LedgerKey
	for rows.Next() {
		var m models.LedgerKey
		if err := rows.Scan(&m.KeyID, &m.KeyName, &m.EncryptionKey, &m.CreatedAt, &m.ExpiresAt, &m.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan ledger key row: %w", err)
		}
		keys = append(keys, toDomainKey(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger key rows: %w", err)
	}
	return keys, nil
}

func toDomainKey(m models.LedgerKey) domain.LedgerKey {
	return domain.LedgerKey{
		KeyID:         m.KeyID,
		KeyName:       m.KeyName,
		EncryptionKey: m.EncryptionKey,
		CreatedAt:     m.CreatedAt,
		ExpiresAt:     m.ExpiresAt,
		IsActive:      m.IsActive,
	}
}
