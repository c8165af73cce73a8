//go:build e2e

package authtest

import (
	"testing"
	"time"

	"bookingcore/internal/pkg/config"
	"bookingcore/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// DashboardToken mints a token the way the external auth service would,
// signed with the configured shared secret.
func DashboardToken(t *testing.T, cfg config.Config, businessID uuid.UUID) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(businessID, "owner")
	require.NoError(t, err, "failed to mint dashboard token")
	return token
}
