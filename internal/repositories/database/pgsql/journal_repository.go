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

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

// Ensure PgxJournalRepository implements portsrepo.JournalEntryRepositoryFacade
var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry inserts the entry header and its lines in one database transaction,
// so a failed line insert leaves no partial entry behind.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	entryQuery := `
		INSERT INTO journal_entries (entry_id, description, reference_number, entry_date, is_posted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID, entry.Description, entry.ReferenceNumber, entry.EntryDate, entry.IsPosted, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", entry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, account_code, debit, credit, narration, line_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for i, line := range entry.Lines {
		m := toModelLine(entry.EntryID, i, line)
		_, err = tx.Exec(ctx, lineQuery,
			m.LineID, m.EntryID, m.AccountID, m.AccountCode, m.Debit, m.Credit, m.Narration, m.LineOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to save journal line %s: %w", line.LineID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, description, reference_number, entry_date, is_posted, created_at
		FROM journal_entries WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID, &m.Description, &m.ReferenceNumber, &m.EntryDate, &m.IsPosted, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query journal entry: %w", err)
	}

	lines, err := r.findLines(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := toDomainEntry(m, lines[entryID])
	return &entry, nil
}

func (r *PgxJournalRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return r.listEntries(ctx, `
		SELECT entry_id, description, reference_number, entry_date, is_posted, created_at
		FROM journal_entries ORDER BY created_at, entry_id;
	`)
}

func (r *PgxJournalRepository) ListPostedEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return r.listEntries(ctx, `
		SELECT entry_id, description, reference_number, entry_date, is_posted, created_at
		FROM journal_entries WHERE is_posted ORDER BY created_at, entry_id;
	`)
}

func (r *PgxJournalRepository) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.JournalEntry, error) {
	return r.listEntries(ctx, `
		SELECT entry_id, description, reference_number, entry_date, is_posted, created_at
		FROM journal_entries WHERE entry_date >= $1 AND entry_date <= $2
		ORDER BY created_at, entry_id;
	`, start, end)
}

func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `UPDATE journal_entries SET description = $2 WHERE entry_id = $1;`
	tag, err := r.pool.Exec(ctx, query, entry.EntryID, entry.Description)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry %s: %w", entry.EntryID, apperrors.ErrNotFound)
	}
	return nil
}

// MarkEntryPosted relies on the WHERE clause for the atomic already-posted
// check; zero rows affected means unknown id or already posted.
func (r *PgxJournalRepository) MarkEntryPosted(ctx context.Context, entryID string) (bool, error) {
	query := `UPDATE journal_entries SET is_posted = TRUE WHERE entry_id = $1 AND NOT is_posted;`
	tag, err := r.pool.Exec(ctx, query, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to post journal entry %s: %w", entryID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	// journal_lines rows go with the entry via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// toModelLine maps a blank account id to NULL; the column is a nullable UUID
// and the pgx codec cannot encode an empty string as one.
func toModelLine(entryID string, order int, l domain.JournalLine) models.JournalLine {
	m := models.JournalLine{
		LineID:      l.LineID,
		EntryID:     entryID,
		AccountCode: l.AccountCode,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Narration:   l.Narration,
		LineOrder:   order,
	}
	if l.AccountID != "" {
		accountID := l.AccountID
		m.AccountID = &accountID
	}
	return m
}

func toDomainLine(m models.JournalLine) domain.JournalLine {
	l := domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Narration:   m.Narration,
	}
	if m.AccountID != nil {
		l.AccountID = *m.AccountID
	}
	return l
}

func toDomainEntry(m models.JournalEntry, lines []domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		Description:     m.Description,
		ReferenceNumber: m.ReferenceNumber,
		EntryDate:       m.EntryDate,
		IsPosted:        m.IsPosted,
		CreatedAt:       m.CreatedAt,
		Lines:           lines,
	}
}

func (r *PgxJournalRepository) listEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var headers []models.JournalEntry
	ids := make([]string, 0)
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.EntryID, &m.Description, &m.ReferenceNumber, &m.EntryDate, &m.IsPosted, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, m := range headers {
		entries[i] = toDomainEntry(m, lines[m.EntryID])
	}
	return entries, nil
}

func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, account_code, debit, credit, narration
		FROM journal_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_order;
	`
	rows, err := r.pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	lines := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.AccountCode, &m.Debit, &m.Credit, &m.Narration); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines[m.EntryID] = append(lines[m.EntryID], toDomainLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return lines, nil
}
