package dto

import (
	"time"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
)

// CreateLedgerKeyRequest defines the data needed to create a new ledger key.
type CreateLedgerKeyRequest struct {
	KeyName   string     `json:"keyName" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"` // Optional; must be strictly in the future
}

// LedgerKeyResponse defines the data returned for a ledger key.
type LedgerKeyResponse struct {
	KeyID         string     `json:"keyID"`
	KeyName       string     `json:"keyName"`
	EncryptionKey string     `json:"encryptionKey"`
	CreatedAt     time.Time  `json:"createdAt"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	IsActive      bool       `json:"isActive"`
}

// ToLedgerKeyResponse converts a domain.LedgerKey to LedgerKeyResponse DTO
func ToLedgerKeyResponse(k *domain.LedgerKey) LedgerKeyResponse {
	return LedgerKeyResponse{
		KeyID:         k.KeyID,
		KeyName:       k.KeyName,
		EncryptionKey: k.EncryptionKey,
		CreatedAt:     k.CreatedAt,
		ExpiresAt:     k.ExpiresAt,
		IsActive:      k.IsActive,
	}
}

// ToLedgerKeyResponses converts a slice of domain.LedgerKey to DTOs
func ToLedgerKeyResponses(keys []domain.LedgerKey) []LedgerKeyResponse {
	res := make([]LedgerKeyResponse, len(keys))
	for i := range keys {
		res[i] = ToLedgerKeyResponse(&keys[i])
	}
	return res
}

// ListLedgerKeysResponse wraps the list of ledger keys.
type ListLedgerKeysResponse struct {
	Keys []LedgerKeyResponse `json:"keys"`
}
