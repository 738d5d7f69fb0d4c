//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shiba-faucet/internal/domain/asset"
	"shiba-faucet/internal/handler/api"
	resdto "shiba-faucet/internal/handler/dto/response"
	"shiba-faucet/internal/handler/middleware"
	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/jwt"
	"shiba-faucet/internal/usecase/commands"
	"shiba-faucet/tests/common/authtest"
	"shiba-faucet/tests/common/builder"
	"shiba-faucet/tests/common/httptest"
	"shiba-faucet/tests/common/testutil"
	commandsmock "shiba-faucet/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockAssets    *commandsmock.MockAssetCommands
	mockReconcile *commandsmock.MockReconcileCommands
	adminCfg      config.AdminConfig
	jwtHelper     *authtest.JWTHelper
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAssets = commandsmock.NewMockAssetCommands(s.mockCtrl)
	s.mockReconcile = commandsmock.NewMockReconcileCommands(s.mockCtrl)

	s.adminCfg = config.AdminConfig{
		JWTSecret:     "test-secret-key",
		TokenDuration: "1h",
	}
	s.jwtHelper = authtest.NewJWTHelper(s.adminCfg)

	handler := api.NewAdminHandler(s.mockAssets, s.mockReconcile)
	auth := middleware.NewAuthMiddleware(jwt.NewService(s.adminCfg.JWTSecret, time.Hour))

	admin := s.router.Group("/admin", auth.RequireAdmin())
	admin.PUT("/assets", handler.UpsertAsset)
	admin.DELETE("/assets/:symbol", handler.DeactivateAsset)
	admin.POST("/reconcile", handler.Reconcile)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestUpsertAsset
// ================================================================================

func (s *AdminHandlerTestSuite) TestUpsertAsset() {
	url := "/admin/assets"

	reqBody := builder.NewAssetBuilder().BuildUpsertRequestDTO()
	token := s.jwtHelper.GenerateAdminToken(s.T())

	s.Run("success: returns 204 No Content", func() {
		s.mockAssets.EXPECT().UpsertAsset(gomock.Any(), reqBody.ToCommand()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing symbol", mutate: testutil.Field("symbol", nil)},
			{name: "missing claim amount", mutate: testutil.Field("claim_amount", nil)},
			{name: "zero cooldown", mutate: testutil.Field("cooldown_seconds", 0)},
			{name: "negative cooldown", mutate: testutil.Field("cooldown_seconds", -60)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockAssets.EXPECT().UpsertAsset(gomock.Any(), gomock.Any()).
			Return(asset.ErrInvalidAmount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 422 when the validation sentinel is a mark", func() {
		// Amount parsing marks the parse error rather than wrapping the
		// sentinel, so the handler's match must see through the mark.
		_, parseErr := asset.NewAmount("five")
		s.Require().Error(parseErr)
		s.mockAssets.EXPECT().UpsertAsset(gomock.Any(), gomock.Any()).
			Return(parseErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		s.mockAssets.EXPECT().UpsertAsset(gomock.Any(), gomock.Any()).
			Return(errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestDeactivateAsset
// ================================================================================

func (s *AdminHandlerTestSuite) TestDeactivateAsset() {
	token := s.jwtHelper.GenerateAdminToken(s.T())

	s.Run("success: returns 204 No Content", func() {
		s.mockAssets.EXPECT().DeactivateAsset(gomock.Any(), "SHIB").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/assets/SHIB", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown asset", func() {
		s.mockAssets.EXPECT().DeactivateAsset(gomock.Any(), "DOGE").
			Return(commands.ErrAssetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/assets/DOGE", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Asset not found")
	})

	s.Run("error: 400 Bad Request for invalid symbol", func() {
		s.mockAssets.EXPECT().DeactivateAsset(gomock.Any(), gomock.Any()).
			Return(asset.ErrInvalidSymbol).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/assets/bad!", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid asset symbol")
	})
}

// ================================================================================
// TestReconcile
// ================================================================================

func (s *AdminHandlerTestSuite) TestReconcile() {
	url := "/admin/reconcile"
	token := s.jwtHelper.GenerateAdminToken(s.T())

	s.Run("success: returns 200 OK with report counters", func() {
		s.mockReconcile.EXPECT().ReconcileClaims(gomock.Any()).
			Return(&commands.ReconcileReport{Scanned: 7, CooldownsRepaired: 3, ClaimsUpgraded: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, token)

		var response resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.Scanned)
		s.Equal(int64(3), response.CooldownsRepaired)
		s.Equal(int64(1), response.ClaimsUpgraded)
	})

	s.Run("error: 500 Internal Server Error when the pass fails", func() {
		s.mockReconcile.EXPECT().ReconcileClaims(gomock.Any()).
			Return(nil, commands.ErrStorageUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestAdminAuth
// ================================================================================

func (s *AdminHandlerTestSuite) TestAdminAuth() {
	url := "/admin/reconcile"

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized with garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 Forbidden for non-admin role", func() {
		svc := jwt.NewService(s.adminCfg.JWTSecret, time.Hour)
		token, err := svc.GenerateToken("viewer")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
