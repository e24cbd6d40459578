//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/talentscout/internal/profile"
	"github.com/agenthands/talentscout/internal/upstream"
)

func TestResolveLiveProfile(t *testing.T) {
	cfg := liveConfig(t)

	providers := profile.Providers(cfg, upstream.NewHTTP(0))
	resolver := profile.NewResolver(providers, cfg.Profile.AttemptTimeout(), cfg.Profile.TotalTimeout(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res := resolver.Resolve(ctx, testUsername())
	t.Logf("resolved via %s after %d failed attempts", res.Source, len(res.Attempts))

	// No local server runs here, so the upstream candidate has to win.
	assert.True(t, res.Live, res.ErrorMessage())
	assert.NotEmpty(t, res.Profile.Person.Name)
}

func TestResolveUnknownUserFallsBack(t *testing.T) {
	cfg := liveConfig(t)

	providers := profile.Providers(cfg, upstream.NewHTTP(0))
	resolver := profile.NewResolver(providers, cfg.Profile.AttemptTimeout(), cfg.Profile.TotalTimeout(), nil)

	res := resolver.Resolve(context.Background(), "no-such-user-0000000000")

	assert.False(t, res.Live)
	assert.Equal(t, "fallback", res.Profile.Person.ID)
	assert.Error(t, res.Err)
}
