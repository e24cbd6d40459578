package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/agenthands/talentscout/internal/model"
	"github.com/agenthands/talentscout/internal/upstream"
)

var ErrAllSourcesFailed = errors.New("failed to fetch profile data from all endpoints")

// Resolution is the outcome of Resolve. Live is false when the profile is
// demo data, in which case Err holds the last failure for display.
type Resolution struct {
	Profile  model.ProfileData
	Source   string
	Live     bool
	Err      error
	Attempts []model.Attempt
}

func (r Resolution) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Resolver tries Providers in order and falls back to demo data once they
// are exhausted, or as soon as one answers with an unusable document.
// Attempts run one after another, never concurrently.
type Resolver struct {
	Providers      []Provider
	Fallback       FallbackProvider
	AttemptTimeout time.Duration
	TotalTimeout   time.Duration
	Logger         *zap.Logger
}

func NewResolver(providers []Provider, attemptTimeout, totalTimeout time.Duration, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		Providers:      providers,
		AttemptTimeout: attemptTimeout,
		TotalTimeout:   totalTimeout,
		Logger:         logger,
	}
}

// Resolve always returns a profile.
func (r *Resolver) Resolve(ctx context.Context, username string) Resolution {
	if r.TotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.TotalTimeout)
		defer cancel()
	}

	attempts := []model.Attempt{}
	var last, all error

	for _, p := range r.Providers {
		if err := ctx.Err(); err != nil {
			last = fmt.Errorf("profile resolution stopped before %s: %w", p.Name(), err)
			all = multierr.Append(all, last)
			break
		}

		data, err := r.attempt(ctx, p, username)
		if err == nil {
			r.Logger.Debug("profile resolved",
				zap.String("username", username),
				zap.String("source", p.Name()),
				zap.Int("failed_attempts", len(attempts)))
			return Resolution{
				Profile:  *data,
				Source:   p.Name(),
				Live:     true,
				Attempts: attempts,
			}
		}

		attempts = append(attempts, model.Attempt{
			Source: p.Name(),
			Status: upstream.StatusOf(err),
			Error:  err.Error(),
		})
		last = fmt.Errorf("%s: %w", p.Name(), err)
		all = multierr.Append(all, last)
		if errors.Is(err, ErrUnusableProfile) {
			break
		}
	}

	if last == nil {
		last = ErrAllSourcesFailed
	}
	r.Logger.Warn("all profile sources failed, serving demo data",
		zap.String("username", username),
		zap.Error(all))

	return Resolution{
		Profile:  r.Fallback.Profile(username),
		Source:   r.Fallback.Name(),
		Live:     false,
		Err:      last,
		Attempts: attempts,
	}
}

func (r *Resolver) attempt(ctx context.Context, p Provider, username string) (*model.ProfileData, error) {
	if r.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.AttemptTimeout)
		defer cancel()
	}
	return p.Attempt(ctx, username)
}
