package models

import "time"

// LedgerKey is the database row shape for an encryption-key metadata record.
type LedgerKey struct {
	KeyID         string     `db:"key_id"`
	KeyName       string     `db:"key_name"`
	EncryptionKey string     `db:"encryption_key"`
	CreatedAt     time.Time  `db:"created_at"`
	ExpiresAt     *time.Time `db:"expires_at"`
	IsActive      bool       `db:"is_active"`
}
