package api

import (
	"net/http"

	"shiba-faucet/internal/domain/asset"
	reqdto "shiba-faucet/internal/handler/dto/request"
	resdto "shiba-faucet/internal/handler/dto/response"
	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	assetCommands     commands.AssetCommands
	reconcileCommands commands.ReconcileCommands
}

func NewAdminHandler(
	assetCommands commands.AssetCommands,
	reconcileCommands commands.ReconcileCommands,
) *AdminHandler {
	return &AdminHandler{
		assetCommands:     assetCommands,
		reconcileCommands: reconcileCommands,
	}
}

// @Summary Upsert asset
// @Description Create or replace an asset registry entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertAssetRequest true "Asset definition"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/assets [put]
func (h *AdminHandler) UpsertAsset(c *gin.Context) {
	var req reqdto.UpsertAssetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.assetCommands.UpsertAsset(c.Request.Context(), req.ToCommand()); err != nil {
		if isAssetValidationErr(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate asset
// @Description Stop serving claims for an asset without deleting history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param symbol path string true "Asset symbol"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/assets/{symbol} [delete]
func (h *AdminHandler) DeactivateAsset(c *gin.Context) {
	if err := h.assetCommands.DeactivateAsset(c.Request.Context(), c.Param("symbol")); err != nil {
		switch {
		case errs.Is(err, commands.ErrAssetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Asset not found",
			})
		case errs.Is(err, asset.ErrInvalidSymbol):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid asset symbol",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Run reconciliation
// @Description Repair missing cooldowns and upgrade settled transfers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 401 {object} map[string]string
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.reconcileCommands.ReconcileClaims(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReconcileReport(report))
}

// Several of these sentinels arrive as marks on a lower-level error,
// so the check must be mark-aware.
func isAssetValidationErr(err error) bool {
	return errs.Is(err, asset.ErrInvalidSymbol) ||
		errs.Is(err, asset.ErrInvalidAmount) ||
		errs.Is(err, asset.ErrInvalidCooldown) ||
		errs.Is(err, asset.ErrEmptyName) ||
		errs.Is(err, asset.ErrEmptyPoolRef)
}
