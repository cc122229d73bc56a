// Package inject wraps functions so that parameters the caller does not
// supply are resolved from a di container by their type.
//
// The target's signature is inspected once, at wrap time. A leading
// context.Context parameter marks a context-aware target; it receives the
// caller's context and its dependencies resolve through the container's
// context-aware path.
//
//	wrapped, err := inject.Wrap(func(n int, repo *Repo) error {
//	    ...
//	}, inject.WithContainer(c), inject.WithParamNames("n", "repo"))
//
//	// repo comes from the container, n from the caller:
//	_, err = wrapped.Call(5)
//
//	// an explicit argument bypasses the container:
//	_, err = wrapped.Call(5, inject.Named("repo", myRepo))
//
// Without WithContainer, the process-wide default container is captured at
// wrap time.
package inject
