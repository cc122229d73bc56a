package di

import (
	"sync"

	"github.com/kbukum/dikit/errors"
)

// The process-wide default container is a single mutable slot. Designation is
// last-write-wins; there is no reset other than re-designation. The mutex
// keeps concurrent readers and writers race-free but gives no ordering
// guarantee between concurrent SetDefault calls.
var (
	defaultMu        sync.RWMutex
	defaultContainer Container
)

// SetDefault publishes c as the process-wide default container, replacing
// whatever was there.
func SetDefault(c Container) {
	defaultMu.Lock()
	defaultContainer = c
	defaultMu.Unlock()
}

// Default returns the process-wide default container. It fails with
// NO_DEFAULT_CONTAINER if none has ever been designated.
func Default() (Container, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultContainer == nil {
		return nil, errors.NoDefaultContainer()
	}
	return defaultContainer, nil
}
