package domain

import "time"

// LedgerKey is an encryption-key metadata record. The key material is opaque random
// bytes, generated and stored but never applied to protect data in the current design.
type LedgerKey struct {
	KeyID         string     `json:"keyID"`         // Primary Key (UUID)
	KeyName       string     `json:"keyName"`       // Not Null
	EncryptionKey string     `json:"encryptionKey"` // base64 of 32 random bytes, replaced on rotation
	CreatedAt     time.Time  `json:"createdAt"`
	ExpiresAt     *time.Time `json:"expiresAt"` // Nullable; strictly in the future at creation
	IsActive      bool       `json:"isActive"`  // Default: true; one-way deactivation
}

// IsExpired reports whether the key carries an expiry that has passed.
// A key without an expiry never expires.
func (k *LedgerKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}
