//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"shiba-faucet/internal/handler/api"
	resdto "shiba-faucet/internal/handler/dto/response"
	"shiba-faucet/internal/handler/middleware"
	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/errs"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/internal/usecase/queries"
	"shiba-faucet/tests/common/builder"
	"shiba-faucet/tests/common/httptest"
	"shiba-faucet/tests/common/testutil"
	commandsmock "shiba-faucet/tests/mock/commands"
	queriesmock "shiba-faucet/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClaimHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockClaimCommands *commandsmock.MockClaimCommands
	mockClaimQueries  *queriesmock.MockClaimQueries
	mockAssetQueries  *queriesmock.MockAssetQueries
	handler           *api.ClaimHandler
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClaimCommands = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.mockClaimQueries = queriesmock.NewMockClaimQueries(s.mockCtrl)
	s.mockAssetQueries = queriesmock.NewMockAssetQueries(s.mockCtrl)

	limiter := middleware.NewRateLimiter(config.RateLimitConfig{
		Window:         time.Minute,
		IPRequests:     0, // disabled
		WalletRequests: 0, // disabled
		MaxEntries:     16,
	}, clock.NewRealClock())

	s.handler = api.NewClaimHandler(s.mockClaimCommands, s.mockClaimQueries, s.mockAssetQueries, limiter)

	s.router.POST("/claims", s.handler.CreateClaim)
	s.router.GET("/claims/:id", s.handler.GetClaim)
	s.router.GET("/wallets/:wallet/claims", s.handler.GetWalletClaims)
	s.router.GET("/wallets/:wallet/cooldowns", s.handler.GetWalletCooldowns)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

// ================================================================================
// TestCreateClaim
// ================================================================================

func (s *ClaimHandlerTestSuite) TestCreateClaim() {
	url := "/claims"

	reqBody := builder.NewClaimBuilder().BuildCreateRequestDTO()
	successOutcome := builder.NewClaimBuilder().BuildSuccessOutcome()

	s.Run("success: returns 201 Created with claim details", func() {
		s.mockClaimCommands.EXPECT().AttemptClaim(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(successOutcome, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ClaimCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(successOutcome.ClaimID, response.ID)
		s.Equal(reqBody.Wallet, response.Wallet)
		s.Equal(reqBody.Asset, response.Asset)
		s.Equal(successOutcome.TransferRef, response.TransferRef)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing wallet", mutate: testutil.Field("wallet", nil)},
			{name: "missing asset", mutate: testutil.Field("asset", nil)},
			{name: "wallet without 0x prefix", mutate: testutil.Field("wallet", "00000000000000000000000000000000000000aa")},
			{name: "wallet too short", mutate: testutil.Field("wallet", "0xabc")},
			{name: "wallet with non-hex characters", mutate: testutil.Field("wallet", "0x00000000000000000000000000000000000000zz")},
			{name: "symbol with invalid characters", mutate: testutil.Field("asset", "SH!B")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("maps outcomes to proper statuses", func() {
		cases := []struct {
			name         string
			outcome      *commands.ClaimOutcome
			expectedCode int
		}{
			{
				name: "cooldown active",
				outcome: &commands.ClaimOutcome{
					Kind:           commands.OutcomeCooldownActive,
					Remaining:      30 * time.Minute,
					NextEligibleAt: time.Now().Add(30 * time.Minute),
				},
				expectedCode: http.StatusTooManyRequests,
			},
			{
				name:         "unsupported asset",
				outcome:      &commands.ClaimOutcome{Kind: commands.OutcomeUnsupportedAsset},
				expectedCode: http.StatusNotFound,
			},
			{
				name:         "insufficient pool balance",
				outcome:      &commands.ClaimOutcome{Kind: commands.OutcomeInsufficientPoolBalance},
				expectedCode: http.StatusServiceUnavailable,
			},
			{
				name:         "transfer failed",
				outcome:      &commands.ClaimOutcome{Kind: commands.OutcomeTransferFailed, ClaimID: uuid.New()},
				expectedCode: http.StatusBadGateway,
			},
			{
				name:         "concurrency conflict",
				outcome:      &commands.ClaimOutcome{Kind: commands.OutcomeConcurrencyConflict, ClaimID: uuid.New()},
				expectedCode: http.StatusConflict,
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockClaimCommands.EXPECT().AttemptClaim(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tc.outcome, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedCode, "")
			})
		}
	})

	s.Run("maps usecase errors to proper statuses", func() {
		// The orchestrator surfaces its sentinels as marks on the
		// underlying failure, so the table exercises the marked shape
		// as well as the bare one.
		cases := []struct {
			name         string
			commandErr   error
			expectedCode int
		}{
			{
				name:         "ledger unavailable marked on transport error",
				commandErr:   errs.Mark(errors.New("connection refused"), commands.ErrLedgerUnavailable),
				expectedCode: http.StatusServiceUnavailable,
			},
			{
				name:         "storage unavailable marked on db error",
				commandErr:   errs.Mark(errors.New("connection reset"), commands.ErrStorageUnavailable),
				expectedCode: http.StatusServiceUnavailable,
			},
			{
				name:         "bare storage sentinel",
				commandErr:   commands.ErrStorageUnavailable,
				expectedCode: http.StatusServiceUnavailable,
			},
			{
				name:         "cooldown write failed after confirm",
				commandErr:   errs.Mark(errors.New("write timeout"), commands.ErrCooldownWriteAfterConfirm),
				expectedCode: http.StatusServiceUnavailable,
			},
			{
				name:         "unexpected error",
				commandErr:   errors.New("boom"),
				expectedCode: http.StatusInternalServerError,
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockClaimCommands.EXPECT().AttemptClaim(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedCode, "")
			})
		}
	})

	s.Run("transfer failure reports the claim id for polling", func() {
		failed := &commands.ClaimOutcome{Kind: commands.OutcomeTransferFailed, ClaimID: uuid.New()}
		s.mockClaimCommands.EXPECT().AttemptClaim(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusBadGateway, rec.Code)
		var body struct {
			Error   string    `json:"error"`
			ClaimID uuid.UUID `json:"claimId"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(failed.ClaimID, body.ClaimID)
	})
}

func (s *ClaimHandlerTestSuite) TestCreateClaim_WalletRateLimit() {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{
		Window:         time.Minute,
		IPRequests:     0,
		WalletRequests: 2,
		MaxEntries:     16,
	}, clock.NewRealClock())
	handler := api.NewClaimHandler(s.mockClaimCommands, s.mockClaimQueries, s.mockAssetQueries, limiter)

	router := gin.New()
	router.POST("/claims", handler.CreateClaim)

	reqBody := builder.NewClaimBuilder().BuildCreateRequestDTO()
	successOutcome := builder.NewClaimBuilder().BuildSuccessOutcome()

	s.mockClaimCommands.EXPECT().AttemptClaim(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(successOutcome, nil).Times(2)

	for range 2 {
		rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/claims", reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
	}

	// Third request for the same wallet inside the window is throttled
	// before the usecase runs.
	rec := httptest.PerformRequest(s.T(), router, http.MethodPost, "/claims", reqBody, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Too many requests")
}

// ================================================================================
// TestGetClaim
// ================================================================================

func (s *ClaimHandlerTestSuite) TestGetClaim() {
	claimID := uuid.New()
	url := "/claims/" + claimID.String()

	returnView := builder.NewClaimBuilder().BuildView()
	returnView.ID = claimID

	s.Run("success: returns 200 OK with ClaimResponse", func() {
		s.mockClaimQueries.EXPECT().GetByID(gomock.Any(), claimID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(claimID, response.ID)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.Amount, response.Amount)
	})

	s.Run("error: 404 Not Found for unknown claim", func() {
		s.mockClaimQueries.EXPECT().GetByID(gomock.Any(), claimID).
			Return(nil, queries.ErrClaimNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Claim not found")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/claims/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid claim ID")
	})
}

// ================================================================================
// TestGetWalletClaims
// ================================================================================

func (s *ClaimHandlerTestSuite) TestGetWalletClaims() {
	walletAddr := "0x00000000000000000000000000000000000000aa"
	url := "/wallets/" + walletAddr + "/claims"

	s.Run("success: returns claim history", func() {
		views := []*queries.ClaimView{
			builder.NewClaimBuilder().WithWallet(walletAddr).BuildView(),
			builder.NewClaimBuilder().WithWallet(walletAddr).WithStatus("failed").BuildView(),
		}
		s.mockClaimQueries.EXPECT().HistoryFor(gomock.Any(), gomock.Any(), 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(walletAddr, response[0].Wallet)
	})

	s.Run("success: forwards the limit query parameter", func() {
		s.mockClaimQueries.EXPECT().HistoryFor(gomock.Any(), gomock.Any(), 5).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid wallet", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallets/nope/claims", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid wallet address")
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

// ================================================================================
// TestGetWalletCooldowns
// ================================================================================

func (s *ClaimHandlerTestSuite) TestGetWalletCooldowns() {
	walletAddr := "0x00000000000000000000000000000000000000aa"
	url := "/wallets/" + walletAddr + "/cooldowns"

	s.Run("success: returns per-asset cooldown status", func() {
		next := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		views := []*queries.CooldownStatusView{
			{Asset: "SHIB", Eligible: false, RemainingSeconds: 3600, NextEligibleAt: next},
			{Asset: "BONE", Eligible: true, RemainingSeconds: 0, NextEligibleAt: time.Now().UTC().Truncate(time.Second)},
		}
		s.mockAssetQueries.EXPECT().WalletCooldowns(gomock.Any(), gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CooldownStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.False(response[0].Eligible)
		s.Equal(int64(3600), response[0].RemainingSeconds)
		s.True(response[1].Eligible)
	})
}
