package llm

import (
	"context"
	"sync"

	"github.com/tranhn/khtn/internal/store"
)

// reloadingProvider resolves configuration from the settings store on every
// request and rebuilds the orchestrator when the credential or preferred
// model changed. Lets the settings screen take effect without a restart.
type reloadingProvider struct {
	kv        store.KV
	eventRepo store.EventRepo

	mu    sync.Mutex
	cfg   Config
	inner Provider
}

// NewReloading wraps orchestrator construction behind settings-store lookups.
func NewReloading(kv store.KV, eventRepo store.EventRepo) Provider {
	return &reloadingProvider{kv: kv, eventRepo: eventRepo}
}

func (r *reloadingProvider) resolve(ctx context.Context) (Provider, error) {
	cfg, err := ResolveConfig(r.kv)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inner != nil && cfg.APIKey == r.cfg.APIKey && cfg.PreferredModel == r.cfg.PreferredModel {
		return r.inner, nil
	}

	inner, err := NewOrchestrator(ctx, cfg, r.eventRepo)
	if err != nil {
		return nil, err
	}
	r.cfg = cfg
	r.inner = inner
	return inner, nil
}

func (r *reloadingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	inner, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return inner.Generate(ctx, req)
}

func (r *reloadingProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	inner, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return inner.GenerateStream(ctx, req)
}

func (r *reloadingProvider) ModelID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inner != nil {
		return r.inner.ModelID()
	}
	return DefaultModel
}
