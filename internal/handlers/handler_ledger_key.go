package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
	"github.com/RishabhDevDogra/Ledger-X/internal/middleware"
)

// ledgerKeyHandler handles HTTP requests related to ledger encryption keys.
type ledgerKeyHandler struct {
	keyService portssvc.LedgerKeySvcFacade
}

// newLedgerKeyHandler creates a new ledgerKeyHandler.
func newLedgerKeyHandler(ks portssvc.LedgerKeySvcFacade) *ledgerKeyHandler {
	return &ledgerKeyHandler{
		keyService: ks,
	}
}

// registerLedgerKeyRoutes registers routes related to ledger keys.
func registerLedgerKeyRoutes(rg *gin.RouterGroup, keyService portssvc.LedgerKeySvcFacade) {
	h := newLedgerKeyHandler(keyService)

	keys := rg.Group("/ledger-keys")
	{
		keys.POST("", h.createKey)
		keys.GET("", h.listKeys)
		keys.GET("/active", h.listActiveKeys)
		keys.GET("/expired", h.listExpiredKeys)
		keys.GET("/:keyID", h.getKey)
		keys.POST("/:keyID/rotate", h.rotateKey)
		keys.POST("/:keyID/deactivate", h.deactivateKey)
		keys.DELETE("/:keyID", h.deleteKey)
	}
}

// createKey godoc
// @Summary Create a ledger key
// @Description Creates an encryption-key record with freshly generated key material
// @Tags ledger-keys
// @Accept  json
// @Produce  json
// @Param   key body dto.CreateLedgerKeyRequest true "Key details"
// @Success 201 {object} dto.LedgerKeyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create ledger key"
// @Router /ledger-keys [post]
func (h *ledgerKeyHandler) createKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateKey", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	key, err := h.keyService.CreateKey(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating ledger key", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger key in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ledger key"})
		}
		return
	}

	logger.Info("Ledger key created successfully", slog.String("key_id", key.KeyID))
	c.Header("Location", "/api/v1/ledger-keys/"+key.KeyID)
	c.JSON(http.StatusCreated, dto.ToLedgerKeyResponse(key))
}

// getKey godoc
// @Summary Get a ledger key by ID
// @Description Retrieves a single encryption-key record
// @Tags ledger-keys
// @Produce  json
// @Param   keyID path string true "Key ID"
// @Success 200 {object} dto.LedgerKeyResponse
// @Failure 404 {object} map[string]string "Ledger key not found"
// @Failure 500 {object} map[string]string "Failed to retrieve ledger key"
// @Router /ledger-keys/{keyID} [get]
func (h *ledgerKeyHandler) getKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	keyID := c.Param("keyID")

	key, err := h.keyService.GetKeyByID(c.Request.Context(), keyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger key not found"})
		} else {
			logger.Error("Failed to get ledger key", slog.String("key_id", keyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger key"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerKeyResponse(key))
}

// listKeys godoc
// @Summary List all ledger keys
// @Description Retrieves every encryption-key record
// @Tags ledger-keys
// @Produce  json
// @Success 200 {object} dto.ListLedgerKeysResponse
// @Failure 500 {object} map[string]string "Failed to list ledger keys"
// @Router /ledger-keys [get]
func (h *ledgerKeyHandler) listKeys(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	keys, err := h.keyService.ListKeys(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ledger keys", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger keys"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerKeysResponse{Keys: dto.ToLedgerKeyResponses(keys)})
}

// listActiveKeys godoc
// @Summary List active ledger keys
// @Description Retrieves keys that are active and not past their expiry
// @Tags ledger-keys
// @Produce  json
// @Success 200 {object} dto.ListLedgerKeysResponse
// @Failure 500 {object} map[string]string "Failed to list ledger keys"
// @Router /ledger-keys/active [get]
func (h *ledgerKeyHandler) listActiveKeys(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	keys, err := h.keyService.ListActiveKeys(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list active ledger keys", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger keys"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerKeysResponse{Keys: dto.ToLedgerKeyResponses(keys)})
}

// listExpiredKeys godoc
// @Summary List expired ledger keys
// @Description Retrieves keys whose expiry timestamp has passed
// @Tags ledger-keys
// @Produce  json
// @Success 200 {object} dto.ListLedgerKeysResponse
// @Failure 500 {object} map[string]string "Failed to list ledger keys"
// @Router /ledger-keys/expired [get]
func (h *ledgerKeyHandler) listExpiredKeys(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	keys, err := h.keyService.ListExpiredKeys(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expired ledger keys", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger keys"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerKeysResponse{Keys: dto.ToLedgerKeyResponses(keys)})
}

// rotateKey godoc
// @Summary Rotate a ledger key
// @Description Regenerates the key material; name, expiry, and active flag are untouched
// @Tags ledger-keys
// @Produce  json
// @Param   keyID path string true "Key ID"
// @Success 200 {object} dto.LedgerKeyResponse
// @Failure 404 {object} map[string]string "Ledger key not found"
// @Failure 500 {object} map[string]string "Failed to rotate ledger key"
// @Router /ledger-keys/{keyID}/rotate [post]
func (h *ledgerKeyHandler) rotateKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	keyID := c.Param("keyID")

	key, err := h.keyService.RotateKey(c.Request.Context(), keyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger key not found"})
		} else {
			logger.Error("Failed to rotate ledger key", slog.String("key_id", keyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rotate ledger key"})
		}
		return
	}

	logger.Info("Ledger key rotated successfully", slog.String("key_id", keyID))
	c.JSON(http.StatusOK, dto.ToLedgerKeyResponse(key))
}

// deactivateKey godoc
// @Summary Deactivate a ledger key
// @Description Marks a key inactive; there is no reactivate operation
// @Tags ledger-keys
// @Produce  json
// @Param   keyID path string true "Key ID"
// @Success 200 {object} dto.LedgerKeyResponse
// @Failure 404 {object} map[string]string "Ledger key not found"
// @Failure 500 {object} map[string]string "Failed to deactivate ledger key"
// @Router /ledger-keys/{keyID}/deactivate [post]
func (h *ledgerKeyHandler) deactivateKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	keyID := c.Param("keyID")

	key, err := h.keyService.DeactivateKey(c.Request.Context(), keyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger key not found"})
		} else {
			logger.Error("Failed to deactivate ledger key", slog.String("key_id", keyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate ledger key"})
		}
		return
	}

	logger.Info("Ledger key deactivated", slog.String("key_id", keyID))
	c.JSON(http.StatusOK, dto.ToLedgerKeyResponse(key))
}

// deleteKey godoc
// @Summary Delete a ledger key
// @Description Removes an encryption-key record
// @Tags ledger-keys
// @Param   keyID path string true "Key ID"
// @Success 204 "Key deleted"
// @Failure 404 {object} map[string]string "Ledger key not found"
// @Failure 500 {object} map[string]string "Failed to delete ledger key"
// @Router /ledger-keys/{keyID} [delete]
func (h *ledgerKeyHandler) deleteKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	keyID := c.Param("keyID")

	deleted, err := h.keyService.DeleteKey(c.Request.Context(), keyID)
	if err != nil {
		logger.Error("Failed to delete ledger key", slog.String("key_id", keyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ledger key"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ledger key not found"})
		return
	}

	logger.Info("Ledger key deleted successfully", slog.String("key_id", keyID))
	c.Status(http.StatusNoContent)
}
