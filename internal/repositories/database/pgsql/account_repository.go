package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
	"github.com/RishabhDevDogra/Ledger-X/internal/models"
)

const uniqueViolation = "23505"

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Code:        d.Code,
		Name:        d.Name,
		AccountType: string(d.AccountType),
		Balance:     d.Balance,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Balance:     m.Balance,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// SaveAccount inserts a new account. The unique index on code supplies the
// atomic duplicate check; a violation surfaces as apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, code, name, account_type, balance, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID, m.Code, m.Name, m.AccountType, m.Balance, m.IsActive, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: account with code %q already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, balance, is_active, created_at
		FROM accounts WHERE account_id = $1;
	`
	return r.scanOne(ctx, query, accountID)
}

func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, balance, is_active, created_at
		FROM accounts WHERE code = $1;
	`
	return r.scanOne(ctx, query, code)
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, balance, is_active, created_at
		FROM accounts ORDER BY code;
	`
	return r.scanMany(ctx, query)
}

func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, balance, is_active, created_at
		FROM accounts WHERE is_active ORDER BY code;
	`
	return r.scanMany(ctx, query)
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts SET name = $2, account_type = $3, balance = $4, is_active = $5
		WHERE account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, m.AccountID, m.Name, m.AccountType, m.Balance, m.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", m.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxAccountRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var m models.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&m.AccountID, &m.Code, &m.Name, &m.AccountType, &m.Balance, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) scanMany(ctx context.Context, query string) ([]domain.Account, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Code, &m.Name, &m.AccountType, &m.Balance, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
