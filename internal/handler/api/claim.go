package api

import (
	"net/http"
	"strconv"

	reqdto "shiba-faucet/internal/handler/dto/request"
	resdto "shiba-faucet/internal/handler/dto/response"
	"shiba-faucet/internal/handler/middleware"
	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"

	"shiba-faucet/internal/domain/wallet"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimCommands commands.ClaimCommands
	claimQueries  queries.ClaimQueries
	assetQueries  queries.AssetQueries
	limiter       *middleware.RateLimiter
}

func NewClaimHandler(
	claimCommands commands.ClaimCommands,
	claimQueries queries.ClaimQueries,
	assetQueries queries.AssetQueries,
	limiter *middleware.RateLimiter,
) *ClaimHandler {
	return &ClaimHandler{
		claimCommands: claimCommands,
		claimQueries:  claimQueries,
		assetQueries:  assetQueries,
		limiter:       limiter,
	}
}

// @Summary Claim tokens
// @Description Request a faucet payout for a wallet and asset
// @Tags claims
// @Accept json
// @Produce json
// @Param request body reqdto.CreateClaimRequest true "Claim request"
// @Success 201 {object} resdto.ClaimCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]any
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var req reqdto.CreateClaimRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	addr, sym, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if !h.limiter.AllowWallet(addr.String()) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many requests for this wallet",
		})
		return
	}

	outcome, err := h.claimCommands.AttemptClaim(c.Request.Context(), addr, sym)
	if err != nil {
		// Sentinels arrive as marks on the underlying failure, so the
		// match has to be mark-aware.
		switch {
		case errs.Is(err, commands.ErrCooldownWriteAfterConfirm):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Claim confirmed but not fully recorded; retry later",
			})
		case errs.Is(err, commands.ErrLedgerUnavailable),
			errs.Is(err, commands.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	switch outcome.Kind {
	case commands.OutcomeSuccess:
		c.JSON(http.StatusCreated, resdto.FromClaimOutcome(addr.String(), sym.String(), outcome))
	case commands.OutcomeCooldownActive:
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Cooldown active",
			"detail": resdto.CooldownRejectionDetail{
				RemainingSeconds: int64(outcome.Remaining.Seconds()),
				NextEligibleAt:   outcome.NextEligibleAt,
			},
		})
	case commands.OutcomeUnsupportedAsset:
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unsupported asset",
		})
	case commands.OutcomeInsufficientPoolBalance:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Pool balance too low",
		})
	case commands.OutcomeTransferFailed:
		// The claim record survives the failed attempt; callers can
		// poll it in case the reconciler later upgrades the transfer.
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Transfer failed",
			"claimId": outcome.ClaimID,
		})
	case commands.OutcomeConcurrencyConflict:
		c.JSON(http.StatusConflict, gin.H{
			"error": "Claim is already being finalized",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get claim
// @Description Get claim by ID
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim ID format",
		})
		return
	}

	view, err := h.claimQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrClaimNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Claim not found",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}

// @Summary Wallet claim history
// @Description List a wallet's claims, most recent first
// @Tags wallets
// @Produce json
// @Param wallet path string true "Wallet address"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Router /wallets/{wallet}/claims [get]
func (h *ClaimHandler) GetWalletClaims(c *gin.Context) {
	addr, ok := h.parseWallet(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	views, err := h.claimQueries.HistoryFor(c.Request.Context(), addr, limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ClaimResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromClaimView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Wallet cooldown status
// @Description Report per-asset cooldown status for a wallet
// @Tags wallets
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {array} resdto.CooldownStatusResponse
// @Failure 400 {object} map[string]string
// @Router /wallets/{wallet}/cooldowns [get]
func (h *ClaimHandler) GetWalletCooldowns(c *gin.Context) {
	addr, ok := h.parseWallet(c)
	if !ok {
		return
	}

	views, err := h.assetQueries.WalletCooldowns(c.Request.Context(), addr)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CooldownStatusResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCooldownStatusView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ClaimHandler) parseWallet(c *gin.Context) (wallet.Address, bool) {
	addr, err := wallet.NewAddress(c.Param("wallet"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid wallet address",
		})
		return wallet.Address{}, false
	}
	return addr, true
}
