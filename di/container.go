package di

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/dikit/errors"
	"github.com/kbukum/dikit/logger"
)

// Lifetime determines how a provider produces instances.
type Lifetime string

const (
	// LifetimeCached providers run their factory once and memoize the result.
	LifetimeCached Lifetime = "cached"
	// LifetimeTransient providers run their factory on every resolution.
	LifetimeTransient Lifetime = "transient"
)

// Container defines the interface for a dependency injection container.
type Container interface {
	// RegisterCached binds key to a cached provider built from factory and
	// indexes the factory's result type. A prior binding for the same key or
	// type is replaced.
	RegisterCached(key string, factory any) error

	// RegisterTransient binds key to a transient provider built from factory
	// and indexes the factory's result type.
	RegisterTransient(key string, factory any) error

	// Resolve returns the instance bound to key in the blocking convention.
	Resolve(key string) (any, error)

	// ResolveContext returns the instance bound to key under the caller's
	// context.
	ResolveContext(ctx context.Context, key string) (any, error)

	// ResolveType resolves by the type a factory was registered with.
	ResolveType(t reflect.Type) (any, error)

	// ResolveTypeContext resolves by type under the caller's context.
	ResolveTypeContext(ctx context.Context, t reflect.Type) (any, error)

	// Registrations returns info about all bindings for introspection.
	Registrations() []RegistrationInfo

	// ID returns the container's instance identifier, as carried in its
	// log fields.
	ID() string
}

// RegistrationInfo describes a registered provider for introspection.
type RegistrationInfo struct {
	Key         string
	Lifetime    Lifetime
	Type        reflect.Type
	Initialized bool
}

type registration struct {
	provider Provider
	lifetime Lifetime
	typ      reflect.Type
}

// container is the map-backed Container implementation. Both maps are
// guarded by one RWMutex; registration is still expected to finish before
// the container is shared with concurrent resolvers.
type container struct {
	id     string
	log    *logger.Logger
	tracer trace.Tracer

	mu        sync.RWMutex
	providers map[string]*registration
	types     map[reflect.Type]string
}

// Option configures a container during creation.
type Option func(*container)

// WithLogger sets the logger used for registration and lifecycle events.
func WithLogger(l *logger.Logger) Option {
	return func(c *container) {
		c.log = l
	}
}

// WithTracer enables a span around every context-aware resolution.
func WithTracer(t trace.Tracer) Option {
	return func(c *container) {
		c.tracer = t
	}
}

// NewContainer creates an empty container.
func NewContainer(opts ...Option) Container {
	c := &container{
		id:        uuid.NewString()[:8],
		providers: make(map[string]*registration),
		types:     make(map[reflect.Type]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.WithComponent("di")
	}
	c.log = c.log.WithFields(logger.Fields(logger.FieldContainerID, c.id))
	return c
}

// ID returns the container's instance identifier.
func (c *container) ID() string { return c.id }

// RegisterCached binds key to a cached provider built from factory.
func (c *container) RegisterCached(key string, factory any) error {
	return c.register(key, factory, LifetimeCached)
}

// RegisterTransient binds key to a transient provider built from factory.
func (c *container) RegisterTransient(key string, factory any) error {
	return c.register(key, factory, LifetimeTransient)
}

func (c *container) register(key string, factory any, lifetime Lifetime) error {
	inv, err := newInvocable(factory)
	if err != nil {
		return err
	}

	// Result type for the type index. When the factory's declaration is the
	// empty interface this runs the factory once, eagerly, right here; the
	// produced value is used for inference only and discarded.
	typ, err := inv.resultType(context.Background())
	if err != nil {
		return err
	}

	var provider Provider
	switch lifetime {
	case LifetimeCached:
		provider = newCachedProvider(inv)
	default:
		provider = &TransientProvider{factory: inv}
	}

	c.mu.Lock()
	c.providers[key] = &registration{provider: provider, lifetime: lifetime, typ: typ}
	c.types[typ] = key
	c.mu.Unlock()

	c.log.Debug("provider registered", logger.Fields(
		logger.FieldProviderKey, key,
		logger.FieldLifetime, string(lifetime),
		logger.FieldType, typ.String(),
	))
	return nil
}

// Resolve returns the instance bound to key in the blocking convention.
func (c *container) Resolve(key string) (any, error) {
	reg, ok := c.lookup(key)
	if !ok {
		return nil, errors.ProviderNotFound(key)
	}
	return reg.provider.Get()
}

// ResolveContext returns the instance bound to key under ctx.
func (c *container) ResolveContext(ctx context.Context, key string) (any, error) {
	reg, ok := c.lookup(key)
	if !ok {
		return nil, errors.ProviderNotFound(key)
	}

	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "di.resolve", trace.WithAttributes(
			attribute.String("di.key", key),
			attribute.String("di.lifetime", string(reg.lifetime)),
		))
		defer span.End()

		value, err := reg.provider.GetContext(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return value, err
	}

	return reg.provider.GetContext(ctx)
}

// ResolveType resolves by registered type in the blocking convention.
func (c *container) ResolveType(t reflect.Type) (any, error) {
	key, ok := c.lookupType(t)
	if !ok {
		return nil, errors.ProviderNotFoundForType(typeName(t))
	}
	return c.Resolve(key)
}

// ResolveTypeContext resolves by registered type under ctx.
func (c *container) ResolveTypeContext(ctx context.Context, t reflect.Type) (any, error) {
	key, ok := c.lookupType(t)
	if !ok {
		return nil, errors.ProviderNotFoundForType(typeName(t))
	}
	return c.ResolveContext(ctx, key)
}

// Registrations returns info about all bindings.
func (c *container) Registrations() []RegistrationInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]RegistrationInfo, 0, len(c.providers))
	for key, reg := range c.providers {
		info := RegistrationInfo{
			Key:      key,
			Lifetime: reg.lifetime,
			Type:     reg.typ,
		}
		if cached, ok := reg.provider.(*CachedProvider); ok {
			info.Initialized = cached.initialized()
		}
		result = append(result, info)
	}
	return result
}

func (c *container) lookup(key string) (*registration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	reg, ok := c.providers[key]
	return reg, ok
}

func (c *container) lookupType(t reflect.Type) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key, ok := c.types[t]
	return key, ok
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
