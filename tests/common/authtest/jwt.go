//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"shiba-faucet/internal/pkg/config"
	"shiba-faucet/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AdminConfig
}

func NewJWTHelper(cfg config.AdminConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.TokenDuration)
	require.NoError(t, err)

	svc := jwt.NewService(h.cfg.JWTSecret, duration)
	token, err := svc.GenerateToken(jwt.RoleAdmin)
	require.NoError(t, err)

	return token
}
