package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resolution errors
const (
	// ErrCodeProviderNotFound indicates no provider is bound to the
	// requested key or type.
	ErrCodeProviderNotFound ErrorCode = "PROVIDER_NOT_FOUND"
)

// Configuration errors
const (
	// ErrCodeNoDefaultContainer indicates the process-wide default container
	// was requested before any container was designated as the default.
	ErrCodeNoDefaultContainer ErrorCode = "NO_DEFAULT_CONTAINER"
)

// Usage errors
const (
	// ErrCodeInvalidFactory indicates a factory with an unsupported shape
	// was passed to registration, or a factory whose result type could not
	// be inferred.
	ErrCodeInvalidFactory ErrorCode = "INVALID_FACTORY"
	// ErrCodeInvalidTarget indicates an injection target that is not a
	// function, or caller arguments that do not bind to its parameter list.
	ErrCodeInvalidTarget ErrorCode = "INVALID_TARGET"
)
