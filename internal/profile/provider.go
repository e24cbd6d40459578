package profile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/agenthands/talentscout/internal/config"
	"github.com/agenthands/talentscout/internal/model"
	"github.com/agenthands/talentscout/internal/upstream"
)

// ErrUnusableProfile marks a source that answered 2xx with a body that
// cannot be read as a profile. The resolver stops at it.
var ErrUnusableProfile = errors.New("unusable profile document")

// Provider is one source a profile can be resolved from.
type Provider interface {
	Name() string
	Attempt(ctx context.Context, username string) (*model.ProfileData, error)
}

// HTTPProvider fetches a profile document from a URL template containing
// {username}.
type HTTPProvider struct {
	name     string
	template string
	headers  config.UpstreamConfig
	HTTP     *http.Client
}

func NewHTTPProvider(name, template string, headers config.UpstreamConfig, client *http.Client) *HTTPProvider {
	if name == "" {
		name = template
	}
	return &HTTPProvider{
		name:     name,
		template: template,
		headers:  headers,
		HTTP:     client,
	}
}

func (p *HTTPProvider) Name() string {
	return p.name
}

func (p *HTTPProvider) URL(username string) string {
	return strings.ReplaceAll(p.template, "{username}", url.PathEscape(username))
}

func (p *HTTPProvider) Attempt(ctx context.Context, username string) (*model.ProfileData, error) {
	target := p.URL(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	upstream.ApplyHeaders(req, p.headers)
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream.Drain(resp.Body)
		return nil, &upstream.StatusError{URL: target, Status: resp.StatusCode}
	}

	// From here on the source has answered, failures end the chain.
	body, err := upstream.ReadBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %w", ErrUnusableProfile, err)
	}
	data, err := Normalize(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnusableProfile, err)
	}
	return data, nil
}

// Providers builds the HTTP candidates named in cfg, in order. Relative
// URLs are resolved against the server's public URL and {upstream} expands
// to the upstream base URL.
func Providers(cfg *config.Config, client *http.Client) []Provider {
	public := strings.TrimRight(cfg.Server.PublicURL, "/")
	base := strings.TrimRight(cfg.Upstream.BaseURL, "/")

	providers := make([]Provider, 0, len(cfg.Profile.Candidates))
	for _, cand := range cfg.Profile.Candidates {
		u := strings.ReplaceAll(cand.URL, "{upstream}", base)
		if strings.HasPrefix(u, "/") {
			u = public + u
		}
		providers = append(providers, NewHTTPProvider(cand.Name, u, cfg.Upstream, client))
	}
	return providers
}
