// Package di provides a dependency injection container.
//
// A container maps string keys to providers and indexes each provider by the
// declared result type of its factory, so dependencies can be resolved by key
// or by type. Two provider lifetimes are supported: cached (the factory runs
// once and the instance is memoized) and transient (the factory runs on every
// resolution). Every operation exists in a blocking form and a context-aware
// form; context-aware factories suspend-capable work such as dialing a
// connection can run under the caller's context.
//
// # Registration
//
//	c := di.NewContainer()
//	err := c.RegisterCached("db", func(ctx context.Context) (*sql.DB, error) {
//	    return sql.Open("postgres", dsn)
//	})
//
// # Resolution
//
//	db := di.MustResolve[*sql.DB](c, "db")
//	repo, err := di.ResolveAs[*Repo](c)
//
// Registration is expected to complete before the container is shared with
// concurrent resolvers. Bindings are never removed; re-registering a key or
// a type replaces the previous binding. The container performs no dependency
// cycle detection: a cached factory that resolves its own key deadlocks on
// its own guard.
package di
