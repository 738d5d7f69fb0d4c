package api

import (
	"net/http"

	resdto "shiba-faucet/internal/handler/dto/response"
	"shiba-faucet/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetQueries queries.AssetQueries
}

func NewAssetHandler(assetQueries queries.AssetQueries) *AssetHandler {
	return &AssetHandler{assetQueries: assetQueries}
}

// @Summary List assets
// @Description List active assets with claim amounts and cooldowns
// @Tags assets
// @Produce json
// @Success 200 {array} resdto.AssetResponse
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	views, err := h.assetQueries.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AssetResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromAssetView(v)
	}
	c.JSON(http.StatusOK, response)
}
