package bootstrap

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feims/feims/internal/config"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/session"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "15m"
	cfg.JWT.RefreshTokenExpiration = "168h"
	cfg.JWT.Issuer = "feims-test"
	return cfg
}

func TestBuildDependenciesWiresSessionManager(t *testing.T) {
	deps, err := BuildDependencies(testConfig(), &db.PostgresDB{}, zerolog.Nop())
	require.NoError(t, err)

	// The session manager must have an in-process owner: it is
	// constructed at startup over the same broadcaster the auth
	// service publishes to.
	require.NotNil(t, deps.SessionManager)
	require.NotNil(t, deps.SessionEvents)
	require.NotNil(t, deps.Services.AuthService)

	// Start installs the subscription and runs the signed-out initial
	// check without touching the store; Close releases it again.
	deps.SessionManager.Start(context.Background())
	assert.Equal(t, session.StateUnauthenticated, deps.SessionManager.State())
	deps.SessionManager.Close()
}

func TestBuildDependenciesRejectsBadDurations(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTokenExpiration = "soon"

	_, err := BuildDependencies(cfg, &db.PostgresDB{}, zerolog.Nop())
	assert.Error(t, err)
}
