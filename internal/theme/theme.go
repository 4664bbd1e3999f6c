// Package theme holds the platform branding shared by every output surface.
// It is explicitly initialized once at startup and only replaced wholesale
// by Refresh; there is no ambient mutable global to reach around it.
package theme

import (
	"context"
	"sync"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/api"
)

type fetcher interface {
	Settings(ctx context.Context) (api.Theme, error)
}

type Provider struct {
	mu      sync.RWMutex
	client  fetcher
	current api.Theme
	loaded  bool
}

// Init fetches the branding once and returns a provider exposing it.
func Init(ctx context.Context, client fetcher) (*Provider, error) {
	p := &Provider{client: client}
	if err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Current returns the last loaded branding record.
func (p *Provider) Current() api.Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Loaded reports whether a fetch has succeeded at least once.
func (p *Provider) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Refresh replaces the whole record; there are no partial updates. A failed
// refresh leaves the previous record in place.
func (p *Provider) Refresh(ctx context.Context) error {
	t, err := p.client.Settings(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.current = t
	p.loaded = true
	p.mu.Unlock()
	return nil
}
