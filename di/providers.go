package di

import (
	"context"
	"sync"
	"sync/atomic"
)

// Provider produces instances for a container key.
type Provider interface {
	// Get produces an instance in the blocking convention.
	Get() (any, error)

	// GetContext produces an instance under the caller's context. A cached
	// provider waiting on its guard aborts with ctx.Err() on cancellation.
	GetContext(ctx context.Context) (any, error)
}

// cachedValue boxes the memoized instance so a legitimately nil result still
// marks the slot as filled.
type cachedValue struct {
	value any
}

// CachedProvider memoizes the first successful factory result and returns it
// on every later call. Initialization is double-checked: a lock-free fast
// path over an atomic slot, then a re-check under the guard of the calling
// convention.
//
// The two conventions use independent guards: a mutex for Get and a
// cancellable semaphore for GetContext. A Get racing a GetContext on a still
// empty provider can therefore invoke the factory once per convention;
// callers that mix conventions concurrently on one provider and need a
// single-invocation guarantee must serialize externally. Within one
// convention the factory completes at most once.
type CachedProvider struct {
	factory  *invocable
	instance atomic.Pointer[cachedValue]

	mu  sync.Mutex    // guards first-write on the blocking path
	sem chan struct{} // guards first-write on the context path
}

// NewCachedProvider creates a cached provider around a factory function.
// Accepted factory shapes are those of RegisterCached.
func NewCachedProvider(factory any) (*CachedProvider, error) {
	inv, err := newInvocable(factory)
	if err != nil {
		return nil, err
	}
	return newCachedProvider(inv), nil
}

func newCachedProvider(inv *invocable) *CachedProvider {
	return &CachedProvider{
		factory: inv,
		sem:     make(chan struct{}, 1),
	}
}

// Get returns the memoized instance, creating it on first use. A factory
// error leaves the slot empty and propagates unchanged.
func (p *CachedProvider) Get() (any, error) {
	if v := p.instance.Load(); v != nil {
		return v.value, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if v := p.instance.Load(); v != nil {
		return v.value, nil
	}

	value, err := p.factory.call(context.Background())
	if err != nil {
		return nil, err
	}
	p.instance.Store(&cachedValue{value: value})
	return value, nil
}

// GetContext returns the memoized instance, creating it on first use under
// ctx. Cancellation while waiting for the guard, or a factory error, leaves
// the slot empty so a later call retries.
func (p *CachedProvider) GetContext(ctx context.Context) (any, error) {
	if v := p.instance.Load(); v != nil {
		return v.value, nil
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-p.sem }()

	if v := p.instance.Load(); v != nil {
		return v.value, nil
	}

	value, err := p.factory.call(ctx)
	if err != nil {
		return nil, err
	}
	p.instance.Store(&cachedValue{value: value})
	return value, nil
}

// initialized reports whether the memoized slot is filled.
func (p *CachedProvider) initialized() bool {
	return p.instance.Load() != nil
}

// TransientProvider invokes its factory on every call. It holds no state and
// needs no locking; whether consecutive results are distinct objects is up to
// the factory.
type TransientProvider struct {
	factory *invocable
}

// NewTransientProvider creates a transient provider around a factory
// function. Accepted factory shapes are those of RegisterTransient.
func NewTransientProvider(factory any) (*TransientProvider, error) {
	inv, err := newInvocable(factory)
	if err != nil {
		return nil, err
	}
	return &TransientProvider{factory: inv}, nil
}

// Get invokes the factory in the blocking convention.
func (p *TransientProvider) Get() (any, error) {
	return p.factory.call(context.Background())
}

// GetContext invokes the factory under the caller's context.
func (p *TransientProvider) GetContext(ctx context.Context) (any, error) {
	return p.factory.call(ctx)
}
